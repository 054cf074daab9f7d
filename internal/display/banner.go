package display

import (
	"fmt"
	"io"

	"github.com/backmassage/foldernorm/internal/term"
)

// PrintBanner prints the ASCII art banner and version; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `  __       _     _
 / _| ___ | | __| | ___ _ __ _ __   ___  _ __ _ __ ___
| |_ / _ \| |/ _`+"`"+` |/ _ \ '__| '_ \ / _ \| '__| '_ `+"`"+` _ \
|  _| (_) | | (_| |  __/ |  | | | | (_) | |  | | | | | |
|_|  \___/|_|\__,_|\___|_|  |_| |_|\___/|_|  |_| |_| |_|
`)
	fmt.Fprint(w, term.NC)
	fmt.Fprintf(w, "%sv%s: folder name normalizer%s\n\n", term.Dim, version, term.NC)
}
