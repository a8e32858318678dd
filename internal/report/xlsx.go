package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

const maxColumnWidth = 60

// ExportXLSX writes the report as a single workbook at path with one sheet
// per section. The snapshot and scan arguments may each be nil, in which
// case their sheets are skipped.
func ExportXLSX(path string, summary Summary, snap *health.Snapshot, scan *logscan.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSheet(f, "Summary", summaryRows(summary)); err != nil {
		return err
	}

	if snap != nil {
		if err := addSheet(f, "SystemHealth", healthRows(snap)); err != nil {
			return err
		}
		if err := addSheet(f, "Services", serviceRows(snap)); err != nil {
			return err
		}
	}
	if scan != nil {
		if err := addSheet(f, "LogFindings", findingsRows(scan)); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("add sheet %s: %w", name, err)
	}
	return writeSheet(f, name, rows)
}

func writeSheet(f *excelize.File, sheet string, rows [][]string) error {
	var widths []int
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]any, len(row))
		for j, value := range row {
			cells[j] = value
			for len(widths) <= j {
				widths = append(widths, 0)
			}
			if len(value) > widths[j] {
				widths[j] = len(value)
			}
		}
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}

	for j, width := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("sheet %s column %d: %w", sheet, j+1, err)
		}
		w := float64(width + 2)
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("sheet %s column %s: %w", sheet, col, err)
		}
	}
	return nil
}
