package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aurumworks/showcase/internal/domain"
)

const catalogSheet = "CATALOG"

// ExcelWriter implements ReportWriter by writing an .xlsx file.
type ExcelWriter struct {
	path string
}

// NewExcelWriter creates a writer targeting the given file path.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

// Write renders the report into a single CATALOG sheet and saves the file.
func (w *ExcelWriter) Write(_ context.Context, ref domain.ReferencePrice, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(catalogSheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	meta := fmt.Sprintf("Reference gold price: %.4f USD/g (%s)", ref.PerGram, ref.Source)
	if err := f.SetCellValue(catalogSheet, "A1", meta); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	if err := w.writeRow(f, 2, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := w.writeRow(f, i+3, rowValues(row)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving report to %s: %w", w.path, err)
	}
	return nil
}

func (w *ExcelWriter) writeRow(f *excelize.File, rowNum int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetCellValue(catalogSheet, cell, v); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}
