package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opsdesk/opsdesk/internal/config"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	opts := FromConfig(config.Default())
	opts.Export = config.ExportCSV
	opts.OutDir = t.TempDir()
	return opts
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunScan_ExportsCSVReport(t *testing.T) {
	opts := testOptions(t)
	opts.LogPath = writeLog(t, "ok\nerror: failed\n")
	opts.Keywords = []string{"error"}

	r, err := RunScan(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunScan returned error: %v", err)
	}
	if r.Scan == nil {
		t.Fatal("Report.Scan is nil")
	}
	if r.Scan.MatchedLines != 1 {
		t.Errorf("MatchedLines = %d, want 1", r.Scan.MatchedLines)
	}
	if r.Snapshot != nil {
		t.Error("Report.Snapshot set on scan-only run")
	}
	if len(r.Exported) != 2 {
		t.Fatalf("Exported = %v, want summary + findings", r.Exported)
	}
	for _, p := range r.Exported {
		if !strings.Contains(p, artifactPrefix) {
			t.Errorf("artifact %q missing %q prefix", p, artifactPrefix)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("artifact %q not written: %v", p, err)
		}
	}
}

func TestRunScan_MissingLogFails(t *testing.T) {
	opts := testOptions(t)
	opts.LogPath = filepath.Join(t.TempDir(), "missing.log")

	_, err := RunScan(context.Background(), opts)
	if !errors.Is(err, logscan.ErrNotFound) {
		t.Fatalf("RunScan error = %v, want ErrNotFound", err)
	}
}

func TestRunFull_DegradesWhenScanFails(t *testing.T) {
	opts := testOptions(t)
	opts.LogPath = filepath.Join(t.TempDir(), "missing.log")

	r, err := RunFull(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunFull returned error: %v", err)
	}
	if r.Snapshot == nil {
		t.Fatal("Report.Snapshot is nil")
	}
	if r.Scan != nil {
		t.Error("Report.Scan set despite failed scan")
	}
	if !errors.Is(r.ScanErr, logscan.ErrNotFound) {
		t.Errorf("ScanErr = %v, want ErrNotFound", r.ScanErr)
	}
	// Health-only export still happens.
	if len(r.Exported) == 0 {
		t.Error("Exported is empty, want health artifacts")
	}
}

func TestRunHealth_ExportsXLSX(t *testing.T) {
	opts := testOptions(t)
	opts.Export = config.ExportXLSX

	r, err := RunHealth(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunHealth returned error: %v", err)
	}
	if len(r.Exported) != 1 {
		t.Fatalf("Exported = %v, want one workbook", r.Exported)
	}
	if !strings.HasSuffix(r.Exported[0], ".xlsx") {
		t.Errorf("artifact = %q, want .xlsx suffix", r.Exported[0])
	}
	if _, err := os.Stat(r.Exported[0]); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestFinish_RejectsUnknownExport(t *testing.T) {
	opts := testOptions(t)
	opts.Export = "pdf"
	opts.LogPath = writeLog(t, "error\n")

	if _, err := RunScan(context.Background(), opts); err == nil {
		t.Fatal("RunScan returned nil error, want unknown export error")
	}
}
