// Package report exports a preview or a commit as a spreadsheet: one row per
// folder with its original name, proposed name, status, and detail.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Row is one line of a report.
type Row struct {
	Index    int
	Original string
	New      string
	Status   string
	Detail   string
}

// Headers are the column titles of every report.
var Headers = []string{"#", "original_name", "new_name", "status", "detail"}

// ErrUnsupportedFormat is returned for paths not ending in .xlsx or .csv.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Write saves rows to path, choosing the format from the extension. title
// names the XLSX sheet and is ignored for CSV. Parent directories are created.
func Write(path, title string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create report directory")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, title, rows)
	case ".csv":
		return writeCSV(path, rows)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

func writeXLSX(path, title string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if title = sheetName(title); title != "" && title != sheet {
		if err := f.SetSheetName(sheet, title); err != nil {
			return errors.Wrap(err, "name sheet")
		}
		sheet = title
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Index)
		set(2, row.Original)
		set(3, row.New)
		set(4, row.Status)
		set(5, row.Detail)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "save xlsx report")
	}
	return nil
}

func writeCSV(path string, rows []Row) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv report")
	}
	defer out.Close()

	w := csv.NewWriter(out)
	_ = w.Write(Headers)
	for _, row := range rows {
		_ = w.Write([]string{strconv.Itoa(row.Index), row.Original, row.New, row.Status, row.Detail})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "write csv report")
	}
	return out.Close()
}

// sheetName trims title to the 31 characters Excel allows and drops the
// characters it rejects.
func sheetName(title string) string {
	title = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	if r := []rune(title); len(r) > 31 {
		title = string(r[:31])
	}
	return title
}
