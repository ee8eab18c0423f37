// Package export renders list views as CSV or XLSX downloads.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table is an export template: the file name and the ordered columns.
type Table[T any] struct {
	Filename string
	Sheet    string
	Columns  []Column[T]
}

func (t Table[T]) Header() []string {
	h := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		h[i] = c.Header
	}
	return h
}

func (t Table[T]) Row(v T) []string {
	r := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		r[i] = c.Value(v)
	}
	return r
}

// CSV writes the header and one record per row. Fields containing commas,
// quotes or newlines are quoted.
func (t Table[T]) CSV(w io.Writer, rows []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	for _, v := range rows {
		if err := cw.Write(t.Row(v)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// XLSX writes the same table as a single-sheet workbook.
func (t Table[T]) XLSX(w io.Writer, rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", toCells(t.Header()), excelize.RowOpts{}); err != nil {
		return err
	}
	for i, v := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toCells(t.Row(v))); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// FilenameFor returns the template file name with the extension of format.
func (t Table[T]) FilenameFor(format string) string {
	if format == "xlsx" {
		return trimExt(t.Filename) + ".xlsx"
	}
	return t.Filename
}

func toCells(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func trimExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return name
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func itoa(n int) string { return strconv.Itoa(n) }
