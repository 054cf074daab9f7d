package naming

// Examples are the sample folder names shown by the example screens of the
// front ends, chosen to exercise every switch.
var Examples = []string{
	"Mi Carpeta Especial ñáéíóú",
	"Fotos Vacaciones (2024)",
	"Música - Rock & Roll",
	"DOCUMENTOS IMPORTANTES!!!",
	"Nueva Carpeta 1.5",
	"Proyecto Final - Versión 2.0",
}

// Example pairs a sample name with its normalized form.
type Example struct {
	Original   string
	Normalized string
}

// RenderExamples runs every entry of [Examples] through normalize (pass
// [Normalize] or a [Cache] method) with opts.
func RenderExamples(opts Options, normalize func(string, Options) string) []Example {
	if normalize == nil {
		normalize = Normalize
	}
	out := make([]Example, len(Examples))
	for i, name := range Examples {
		out[i] = Example{Original: name, Normalized: normalize(name, opts)}
	}
	return out
}
