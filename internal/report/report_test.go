package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

func f64(v float64) *float64 { return &v }

func testSnapshot() *health.Snapshot {
	cores := 8
	return &health.Snapshot{
		Timestamp: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
		Hostname:  "host-1",
		OS:        "linux",
		OSVersion: "ubuntu 22.04",
		Disks: []health.DiskInfo{
			{Mount: "/", TotalGB: f64(100), UsedGB: f64(95), FreeGB: f64(5), UsedPercent: f64(95)},
			{Mount: "/data", TotalGB: f64(500), UsedGB: f64(100), FreeGB: f64(400), UsedPercent: f64(20)},
		},
		Memory:   health.MemoryInfo{TotalGB: f64(16), UsedGB: f64(8), FreeGB: f64(8), UsedPercent: f64(50)},
		CPU:      health.CPUInfo{CoresLogical: &cores, LoadPercent: f64(12.5)},
		Services: []health.ServiceStatus{{Name: "sshd", Status: "active"}},
	}
}

func testScan() *logscan.Result {
	return &logscan.Result{
		File:         "/var/log/app.log",
		TotalLines:   100,
		MatchedLines: 7,
		ByKeyword:    map[string]int{"error": 5, "warn": 2},
		Samples: []logscan.Finding{
			{Line: 3, Keyword: "error", Text: "error: boom"},
			{Line: 9, Keyword: "warn", Text: "warn: slow"},
		},
	}
}

func TestBuildSummary_OrderAndFlags(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 31, 0, 0, time.UTC)
	summary := BuildSummary(now, testSnapshot(), testScan())

	wantKeys := []string{
		"generated_at", "hostname", "os", "memory_used_percent",
		"disk_count", "service_checked",
		"health_flag_disk_90", "health_flag_mem_90", "health_flag_cpu_90",
		"log_file", "log_total_lines", "log_matched_lines",
		"log_top_keyword", "log_top_keyword_count",
	}
	if len(summary) != len(wantKeys) {
		t.Fatalf("len(summary) = %d, want %d", len(summary), len(wantKeys))
	}
	for i, key := range wantKeys {
		if summary[i].Key != key {
			t.Errorf("summary[%d].Key = %q, want %q", i, summary[i].Key, key)
		}
	}

	byKey := map[string]string{}
	for _, kv := range summary {
		byKey[kv.Key] = kv.Value
	}
	if byKey["health_flag_disk_90"] != "YES" {
		t.Errorf("health_flag_disk_90 = %q, want YES (root disk at 95%%)", byKey["health_flag_disk_90"])
	}
	if byKey["health_flag_mem_90"] != "NO" {
		t.Errorf("health_flag_mem_90 = %q, want NO", byKey["health_flag_mem_90"])
	}
	if byKey["health_flag_cpu_90"] != "NO" {
		t.Errorf("health_flag_cpu_90 = %q, want NO", byKey["health_flag_cpu_90"])
	}
	if byKey["log_top_keyword"] != "error" {
		t.Errorf("log_top_keyword = %q, want error", byKey["log_top_keyword"])
	}
	if byKey["log_top_keyword_count"] != "5" {
		t.Errorf("log_top_keyword_count = %q, want 5", byKey["log_top_keyword_count"])
	}
	if byKey["memory_used_percent"] != "50%" {
		t.Errorf("memory_used_percent = %q, want 50%%", byKey["memory_used_percent"])
	}
}

func TestBuildSummary_NilInputs(t *testing.T) {
	summary := BuildSummary(time.Now(), nil, nil)
	if len(summary) != 1 {
		t.Fatalf("len(summary) = %d, want 1 (generated_at only)", len(summary))
	}
	if summary[0].Key != "generated_at" {
		t.Errorf("summary[0].Key = %q, want generated_at", summary[0].Key)
	}
}

func TestBuildSummary_UnknownMemoryRendersNA(t *testing.T) {
	snap := testSnapshot()
	snap.Memory = health.MemoryInfo{}

	summary := BuildSummary(time.Now(), snap, nil)
	for _, kv := range summary {
		if kv.Key == "memory_used_percent" && kv.Value != "N/A" {
			t.Errorf("memory_used_percent = %q, want N/A", kv.Value)
		}
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func TestExportCSV_WritesAllSections(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	summary := BuildSummary(time.Now(), testSnapshot(), testScan())

	created, err := ExportCSV(dir, summary, testSnapshot(), testScan())
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}

	wantFiles := []string{"summary.csv", "system_health.csv", "services.csv", "log_findings.csv"}
	if len(created) != len(wantFiles) {
		t.Fatalf("created %d files, want %d", len(created), len(wantFiles))
	}
	for i, name := range wantFiles {
		if filepath.Base(created[i]) != name {
			t.Errorf("created[%d] = %s, want %s", i, filepath.Base(created[i]), name)
		}
	}

	healthCSV := readCSV(t, filepath.Join(dir, "system_health.csv"))
	// Header plus one row per disk.
	if len(healthCSV) != 3 {
		t.Fatalf("system_health.csv has %d rows, want 3", len(healthCSV))
	}
	if healthCSV[1][4] != "/" || healthCSV[2][4] != "/data" {
		t.Errorf("disk mounts = %q, %q, want /, /data", healthCSV[1][4], healthCSV[2][4])
	}

	// Separator rows write out as blank lines, which the CSV reader skips:
	// 0 header, 1 overview, 2 keyword header, 3-4 tally, 5 sample header.
	findings := readCSV(t, filepath.Join(dir, "log_findings.csv"))
	if len(findings) != 8 {
		t.Fatalf("log_findings.csv has %d non-blank rows, want 8", len(findings))
	}
	if findings[1][0] != "/var/log/app.log" {
		t.Errorf("findings file cell = %q, want /var/log/app.log", findings[1][0])
	}
	// Keyword tally comes sorted by descending count.
	if findings[3][0] != "error" || findings[3][1] != "5" {
		t.Errorf("first keyword row = %v, want [error 5]", findings[3])
	}
	if findings[4][0] != "warn" || findings[4][1] != "2" {
		t.Errorf("second keyword row = %v, want [warn 2]", findings[4])
	}
	if findings[5][0] != "sample_line_no" {
		t.Errorf("sample header cell = %q, want sample_line_no", findings[5][0])
	}
	if findings[6][2] != "error: boom" {
		t.Errorf("first sample line = %q, want \"error: boom\"", findings[6][2])
	}

	raw, err := os.ReadFile(filepath.Join(dir, "log_findings.csv"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(raw), "\n\n"); got != 2 {
		t.Errorf("blank separator lines = %d, want 2", got)
	}
}

func TestExportCSV_SkipsNilSections(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	summary := BuildSummary(time.Now(), nil, testScan())

	created, err := ExportCSV(dir, summary, nil, testScan())
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d files, want 2 (summary + findings)", len(created))
	}
	if _, err := os.Stat(filepath.Join(dir, "system_health.csv")); !os.IsNotExist(err) {
		t.Errorf("system_health.csv exists, want absent")
	}
}

func TestExportXLSX_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	summary := BuildSummary(time.Now(), testSnapshot(), testScan())

	if err := ExportXLSX(path, summary, testSnapshot(), testScan()); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	wantSheets := []string{"Summary", "SystemHealth", "Services", "LogFindings"}
	got := f.GetSheetList()
	if len(got) != len(wantSheets) {
		t.Fatalf("sheets = %v, want %v", got, wantSheets)
	}
	for i, name := range wantSheets {
		if got[i] != name {
			t.Errorf("sheet[%d] = %q, want %q", i, got[i], name)
		}
	}

	cell, err := f.GetCellValue("Summary", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if cell != "key" {
		t.Errorf("Summary!A1 = %q, want key", cell)
	}
	mount, err := f.GetCellValue("SystemHealth", "E2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if mount != "/" {
		t.Errorf("SystemHealth!E2 = %q, want /", mount)
	}
	svc, err := f.GetCellValue("Services", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if svc != "sshd" {
		t.Errorf("Services!A2 = %q, want sshd", svc)
	}
}

func TestWriteSnapshot_RendersNA(t *testing.T) {
	snap := testSnapshot()
	snap.Memory = health.MemoryInfo{}
	snap.CPU = health.CPUInfo{}

	var sb strings.Builder
	WriteSnapshot(&sb, snap)
	out := sb.String()

	if !strings.Contains(out, "cores=N/A") {
		t.Errorf("output missing cores=N/A:\n%s", out)
	}
	if !strings.Contains(out, "total=N/AGB") {
		t.Errorf("output missing total=N/AGB:\n%s", out)
	}
}

func TestWriteScan_LimitsSamples(t *testing.T) {
	scan := testScan()
	var sb strings.Builder
	WriteScan(&sb, scan, 1)
	out := sb.String()

	if !strings.Contains(out, "[3] (error) error: boom") {
		t.Errorf("output missing first sample:\n%s", out)
	}
	if strings.Contains(out, "warn: slow") {
		t.Errorf("output contains sample beyond limit:\n%s", out)
	}
}
