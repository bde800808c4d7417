// Package xlsx renders installation documents as a single-sheet Excel
// workbook, one block of rows per section.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-solarform/pkg/document"
	"github.com/goliatone/go-solarform/pkg/render"
)

// Name is the registry name of the workbook renderer.
const Name = "xlsx"

// SheetName is the worksheet holding the record.
const SheetName = "Installation"

// Renderer writes documents as XLSX.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns the workbook renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc = render.LocalizeDocument(doc, opts)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx renderer: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx renderer: style: %w", err)
	}
	heading, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("xlsx renderer: style: %w", err)
	}

	w := sheetWriter{f: f, row: 1}
	w.line(heading, doc.Title)
	w.row++

	for _, section := range doc.Sections {
		w.line(heading, section.Title)
		switch section.Kind {
		case document.SectionTable:
			w.line(bold, section.Columns...)
			for _, row := range section.Rows {
				w.line(0, row.Cells...)
			}
		default:
			for _, field := range section.Fields {
				w.pair(bold, field.Label, field.Value)
			}
		}
		w.row++
	}
	if w.err != nil {
		return nil, fmt.Errorf("xlsx renderer: %w", w.err)
	}

	if err := f.SetColWidth(SheetName, "A", "A", 18); err != nil {
		return nil, fmt.Errorf("xlsx renderer: column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("xlsx renderer: column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx renderer: write: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) line(style int, values ...string) {
	if w.err != nil {
		return
	}
	for i, value := range values {
		w.set(i+1, value, style)
	}
	w.row++
}

func (w *sheetWriter) pair(labelStyle int, label, value string) {
	if w.err != nil {
		return
	}
	w.set(1, label, labelStyle)
	w.set(2, value, 0)
	w.row++
}

func (w *sheetWriter) set(col int, value string, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStr(SheetName, cell, value); err != nil {
		w.err = err
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(SheetName, cell, cell, style)
	}
}
