package report

import (
	"strconv"
	"time"

	"github.com/opsdesk/opsdesk/internal/health"
	"github.com/opsdesk/opsdesk/internal/logscan"
)

// highUsageThreshold is the percent at which a resource gets flagged.
const highUsageThreshold = 90.0

const timestampLayout = "2006-01-02T15:04:05"

// KV is one summary row.
type KV struct {
	Key   string
	Value string
}

// Summary is an ordered list of key/value rows. Order is the order rows were
// added, so exports and console output stay stable run to run.
type Summary []KV

func (s *Summary) add(key, value string) {
	*s = append(*s, KV{Key: key, Value: value})
}

// BuildSummary condenses a snapshot and/or scan result into the flat rows
// shown at the top of every export. Either input may be nil.
func BuildSummary(now time.Time, snap *health.Snapshot, scan *logscan.Result) Summary {
	var s Summary
	s.add("generated_at", now.Format(timestampLayout))

	if snap != nil {
		s.add("hostname", snap.Hostname)
		s.add("os", snap.OS+" "+snap.OSVersion)
		s.add("memory_used_percent", formatOptPercent(snap.Memory.UsedPercent))
		s.add("disk_count", strconv.Itoa(len(snap.Disks)))
		s.add("service_checked", strconv.Itoa(len(snap.Services)))

		diskHigh := false
		for _, d := range snap.Disks {
			if d.UsedPercent != nil && *d.UsedPercent >= highUsageThreshold {
				diskHigh = true
				break
			}
		}
		memHigh := snap.Memory.UsedPercent != nil && *snap.Memory.UsedPercent >= highUsageThreshold
		cpuHigh := snap.CPU.LoadPercent != nil && *snap.CPU.LoadPercent >= highUsageThreshold
		s.add("health_flag_disk_90", yesNo(diskHigh))
		s.add("health_flag_mem_90", yesNo(memHigh))
		s.add("health_flag_cpu_90", yesNo(cpuHigh))
	}

	if scan != nil {
		s.add("log_file", scan.File)
		s.add("log_total_lines", strconv.Itoa(scan.TotalLines))
		s.add("log_matched_lines", strconv.Itoa(scan.MatchedLines))
		if top := scan.TopKeywords(); len(top) > 0 {
			s.add("log_top_keyword", top[0].Keyword)
			s.add("log_top_keyword_count", strconv.Itoa(top[0].Count))
		}
	}

	return s
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

func formatOptInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}
