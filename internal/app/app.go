package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/opsdesk/opsdesk/internal/config"
	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
	"github.com/opsdesk/opsdesk/internal/report"
)

const artifactPrefix = "it_support_report_"

// Options configure a single workflow run. Lists must already be trimmed of
// blanks (config.SplitList does this for flag values).
type Options struct {
	Services      []string
	LogPath       string
	Keywords      []string
	CaseSensitive bool
	MaxSamples    int
	MaxLineLength int
	Export        string // config.ExportXLSX or config.ExportCSV
	OutDir        string
}

// FromConfig seeds run options from loaded configuration.
func FromConfig(cfg config.Config) Options {
	return Options{
		Services:      cfg.Services,
		Keywords:      cfg.Keywords,
		CaseSensitive: cfg.CaseSensitive,
		MaxSamples:    cfg.MaxSamples,
		MaxLineLength: cfg.MaxLineLength,
		Export:        cfg.Export,
		OutDir:        cfg.OutDir,
	}
}

// Report is the outcome of one workflow run.
type Report struct {
	Snapshot *health.Snapshot
	Scan     *logscan.Result
	ScanErr  error // set by RunFull when the scan failed but health proceeded
	Summary  report.Summary
	Exported []string
}

// RunHealth collects a health snapshot and exports it.
func RunHealth(ctx context.Context, opts Options) (*Report, error) {
	snap := health.Collect(ctx, opts.Services)
	r := &Report{Snapshot: &snap}
	return r, finish(r, opts)
}

// RunScan scans the configured log file and exports the result. Scan
// failures are terminal here; RunFull is the lenient variant.
func RunScan(ctx context.Context, opts Options) (*Report, error) {
	scan, err := logscan.Scan(opts.LogPath, opts.Keywords, scanOptions(opts))
	if err != nil {
		return nil, err
	}
	r := &Report{Scan: &scan}
	return r, finish(r, opts)
}

// RunFull runs health plus log scan. A failed scan degrades to a
// health-only report with ScanErr recording why.
func RunFull(ctx context.Context, opts Options) (*Report, error) {
	snap := health.Collect(ctx, opts.Services)
	r := &Report{Snapshot: &snap}

	scan, err := logscan.Scan(opts.LogPath, opts.Keywords, scanOptions(opts))
	if err != nil {
		r.ScanErr = err
	} else {
		r.Scan = &scan
	}
	return r, finish(r, opts)
}

func scanOptions(opts Options) logscan.Options {
	return logscan.Options{
		CaseSensitive: opts.CaseSensitive,
		MaxSamples:    opts.MaxSamples,
		MaxLineLength: opts.MaxLineLength,
	}
}

// finish builds the summary and writes the export artifacts.
func finish(r *Report, opts Options) error {
	now := time.Now()
	r.Summary = report.BuildSummary(now, r.Snapshot, r.Scan)

	stamp := now.Format("20060102_150405")
	switch opts.Export {
	case config.ExportCSV:
		dir := filepath.Join(opts.OutDir, artifactPrefix+stamp)
		created, err := report.ExportCSV(dir, r.Summary, r.Snapshot, r.Scan)
		if err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		r.Exported = created
	case config.ExportXLSX:
		path := filepath.Join(opts.OutDir, artifactPrefix+stamp+".xlsx")
		if err := report.ExportXLSX(path, r.Summary, r.Snapshot, r.Scan); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		r.Exported = []string{path}
	default:
		return fmt.Errorf("%w: export must be %q or %q, got %q",
			config.ErrInvalid, config.ExportXLSX, config.ExportCSV, opts.Export)
	}
	return nil
}
