package report

import (
	"strconv"

	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

// Row builders shared by the CSV and XLSX writers so both formats carry
// identical cells.

func summaryRows(summary Summary) [][]string {
	rows := [][]string{{"key", "value"}}
	for _, kv := range summary {
		rows = append(rows, []string{kv.Key, kv.Value})
	}
	return rows
}

func healthRows(snap *health.Snapshot) [][]string {
	rows := [][]string{{
		"timestamp", "hostname", "os", "os_version", "mount",
		"disk_total_gb", "disk_used_gb", "disk_free_gb", "disk_used_percent",
		"mem_total_gb", "mem_used_gb", "mem_free_gb", "mem_used_percent",
		"cpu_cores_logical", "cpu_load_percent",
	}}
	ts := snap.Timestamp.Format(timestampLayout)
	for _, d := range snap.Disks {
		rows = append(rows, []string{
			ts, snap.Hostname, snap.OS, snap.OSVersion, d.Mount,
			formatOptFloat(d.TotalGB), formatOptFloat(d.UsedGB), formatOptFloat(d.FreeGB), formatOptFloat(d.UsedPercent),
			formatOptFloat(snap.Memory.TotalGB), formatOptFloat(snap.Memory.UsedGB), formatOptFloat(snap.Memory.FreeGB), formatOptFloat(snap.Memory.UsedPercent),
			formatOptInt(snap.CPU.CoresLogical), formatOptFloat(snap.CPU.LoadPercent),
		})
	}
	return rows
}

func serviceRows(snap *health.Snapshot) [][]string {
	rows := [][]string{{"name", "status", "detail"}}
	for _, svc := range snap.Services {
		rows = append(rows, []string{svc.Name, svc.Status, svc.Detail})
	}
	return rows
}

func findingsRows(scan *logscan.Result) [][]string {
	rows := [][]string{
		{"file", "total_lines", "matched_lines"},
		{scan.File, strconv.Itoa(scan.TotalLines), strconv.Itoa(scan.MatchedLines)},
		{},
		{"keyword", "count"},
	}
	for _, row := range scan.TopKeywords() {
		rows = append(rows, []string{row.Keyword, strconv.Itoa(row.Count)})
	}
	rows = append(rows, []string{}, []string{"sample_line_no", "keyword", "line"})
	for _, f := range scan.Samples {
		rows = append(rows, []string{strconv.Itoa(f.Line), f.Keyword, f.Text})
	}
	return rows
}
