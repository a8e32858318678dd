package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

// ExportCSV writes the report as one CSV file per section under dir,
// creating it as needed. It returns the paths written. The snapshot and scan
// arguments may each be nil, in which case their files are skipped.
func ExportCSV(dir string, summary Summary, snap *health.Snapshot, scan *logscan.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	var created []string
	write := func(name string, rows [][]string) error {
		path := filepath.Join(dir, name)
		if err := writeCSV(path, rows); err != nil {
			return err
		}
		created = append(created, path)
		return nil
	}

	if err := write("summary.csv", summaryRows(summary)); err != nil {
		return nil, err
	}
	if snap != nil {
		if err := write("system_health.csv", healthRows(snap)); err != nil {
			return nil, err
		}
		if err := write("services.csv", serviceRows(snap)); err != nil {
			return nil, err
		}
	}
	if scan != nil {
		if err := write("log_findings.csv", findingsRows(scan)); err != nil {
			return nil, err
		}
	}
	return created, nil
}

func writeCSV(path string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		// encoding/csv rejects zero-field records; a single empty field
		// writes out as a blank line, which readers then skip.
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
