package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

// Plain-text rendering shared by the CLI commands and the interactive menu's
// result view.

// WriteHeader prints a banner line for a workflow section.
func WriteHeader(w io.Writer, title string) {
	rule := strings.Repeat("=", 72)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

// WriteSnapshot renders a health snapshot in the fixed console layout.
func WriteSnapshot(w io.Writer, snap *health.Snapshot) {
	fmt.Fprintf(w, "Time      : %s\n", snap.Timestamp.Format(timestampLayout))
	fmt.Fprintf(w, "Host      : %s\n", snap.Hostname)
	fmt.Fprintf(w, "OS        : %s %s\n", snap.OS, snap.OSVersion)
	fmt.Fprintf(w, "CPU       : cores=%s load=%s%%\n",
		formatOptInt(snap.CPU.CoresLogical), formatOptFloat(snap.CPU.LoadPercent))
	fmt.Fprintf(w, "Memory    : total=%sGB used=%sGB (%s)\n",
		formatOptFloat(snap.Memory.TotalGB), formatOptFloat(snap.Memory.UsedGB),
		formatOptPercent(snap.Memory.UsedPercent))
	fmt.Fprintln(w, "Disks     :")
	for _, d := range snap.Disks {
		fmt.Fprintf(w, "  - %s total=%sGB used=%sGB (%s) free=%sGB\n",
			d.Mount, formatOptFloat(d.TotalGB), formatOptFloat(d.UsedGB),
			formatOptPercent(d.UsedPercent), formatOptFloat(d.FreeGB))
	}
	if len(snap.Services) > 0 {
		fmt.Fprintln(w, "Services  :")
		for _, svc := range snap.Services {
			if svc.Detail != "" {
				fmt.Fprintf(w, "  - %s: %s (%s)\n", svc.Name, svc.Status, svc.Detail)
			} else {
				fmt.Fprintf(w, "  - %s: %s\n", svc.Name, svc.Status)
			}
		}
	}
}

// WriteScan renders a scan result, showing at most sampleLimit sample lines.
func WriteScan(w io.Writer, scan *logscan.Result, sampleLimit int) {
	fmt.Fprintf(w, "File      : %s\n", scan.File)
	fmt.Fprintf(w, "Total     : %d lines\n", scan.TotalLines)
	fmt.Fprintf(w, "Matched   : %d lines\n", scan.MatchedLines)
	fmt.Fprintln(w, "ByKeyword :")
	for _, row := range scan.TopKeywords() {
		fmt.Fprintf(w, "  - %s: %d\n", row.Keyword, row.Count)
	}

	if len(scan.Samples) == 0 {
		return
	}
	fmt.Fprintln(w, "\nSample matches (first few):")
	samples := scan.Samples
	if sampleLimit > 0 && len(samples) > sampleLimit {
		samples = samples[:sampleLimit]
	}
	for _, f := range samples {
		fmt.Fprintf(w, "  [%d] (%s) %s\n", f.Line, f.Keyword, f.Text)
	}
}

// WriteScanBrief renders the condensed scan section of the full workflow.
func WriteScanBrief(w io.Writer, scan *logscan.Result, keywordLimit int) {
	fmt.Fprintln(w, "\nLog Summary:")
	fmt.Fprintf(w, "  File    : %s\n", scan.File)
	fmt.Fprintf(w, "  Total   : %d\n", scan.TotalLines)
	fmt.Fprintf(w, "  Matched : %d\n", scan.MatchedLines)
	top := scan.TopKeywords()
	if keywordLimit > 0 && len(top) > keywordLimit {
		top = top[:keywordLimit]
	}
	for _, row := range top {
		fmt.Fprintf(w, "  - %s: %d\n", row.Keyword, row.Count)
	}
}

// WriteExported lists the artifact paths a workflow produced.
func WriteExported(w io.Writer, paths []string) {
	fmt.Fprintln(w, "\nExported:")
	for _, p := range paths {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
