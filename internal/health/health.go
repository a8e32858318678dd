package health

import (
	"context"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

const cpuSampleInterval = 500 * time.Millisecond

// DiskInfo describes usage of one mounted filesystem. Values the platform
// could not report are nil.
type DiskInfo struct {
	Mount       string
	TotalGB     *float64
	UsedGB      *float64
	FreeGB      *float64
	UsedPercent *float64
}

// MemoryInfo describes physical memory usage.
type MemoryInfo struct {
	TotalGB     *float64
	UsedGB      *float64
	FreeGB      *float64
	UsedPercent *float64
}

// CPUInfo describes logical core count and current load.
type CPUInfo struct {
	CoresLogical *int
	LoadPercent  *float64
}

// ServiceStatus reports the state of one named service.
type ServiceStatus struct {
	Name   string
	Status string // active/inactive/running/stopped/unknown/error
	Detail string
}

// Snapshot is a single point-in-time read of local system health.
type Snapshot struct {
	Timestamp time.Time
	Hostname  string
	OS        string
	OSVersion string
	Disks     []DiskInfo
	Memory    MemoryInfo
	CPU       CPUInfo
	Services  []ServiceStatus
}

// Collect gathers a health snapshot. It never fails: metrics a platform
// cannot provide come back as nil fields rather than errors.
func Collect(ctx context.Context, services []string) Snapshot {
	snap := Snapshot{
		Timestamp: time.Now(),
		Hostname:  "unknown-host",
		OS:        runtime.GOOS,
		OSVersion: "unknown",
	}

	if name, err := os.Hostname(); err == nil && name != "" {
		snap.Hostname = name
	}
	if info, err := host.InfoWithContext(ctx); err == nil {
		if info.Hostname != "" {
			snap.Hostname = info.Hostname
		}
		if info.OS != "" {
			snap.OS = info.OS
		}
		switch {
		case info.PlatformVersion != "":
			snap.OSVersion = info.Platform + " " + info.PlatformVersion
		case info.KernelVersion != "":
			snap.OSVersion = info.KernelVersion
		}
	}

	snap.Disks = collectDisks(ctx)
	snap.Memory = collectMemory(ctx)
	snap.CPU = collectCPU(ctx)
	snap.Services = CheckServices(ctx, services)
	return snap
}

func collectDisks(ctx context.Context) []DiskInfo {
	var disks []DiskInfo
	if parts, err := disk.PartitionsWithContext(ctx, false); err == nil {
		for _, part := range parts {
			usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
			if err != nil {
				continue
			}
			disks = append(disks, DiskInfo{
				Mount:       part.Mountpoint,
				TotalGB:     gb(usage.Total),
				UsedGB:      gb(usage.Used),
				FreeGB:      gb(usage.Free),
				UsedPercent: pct(usage.UsedPercent),
			})
		}
	}

	if len(disks) == 0 {
		// Partition enumeration can come up empty in containers; fall back
		// to the root filesystem alone.
		if usage, err := disk.UsageWithContext(ctx, "/"); err == nil {
			disks = append(disks, DiskInfo{
				Mount:       "/",
				TotalGB:     gb(usage.Total),
				UsedGB:      gb(usage.Used),
				FreeGB:      gb(usage.Free),
				UsedPercent: pct(usage.UsedPercent),
			})
		} else {
			disks = append(disks, DiskInfo{Mount: "unknown"})
		}
	}
	return disks
}

func collectMemory(ctx context.Context) MemoryInfo {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryInfo{}
	}
	return MemoryInfo{
		TotalGB:     gb(vm.Total),
		UsedGB:      gb(vm.Used),
		FreeGB:      gb(vm.Available),
		UsedPercent: pct(vm.UsedPercent),
	}
}

func collectCPU(ctx context.Context) CPUInfo {
	info := CPUInfo{}
	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CoresLogical = &cores
	} else if cores := runtime.NumCPU(); cores > 0 {
		info.CoresLogical = &cores
	}
	if loads, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false); err == nil && len(loads) > 0 {
		info.LoadPercent = pct(loads[0])
	}
	return info
}

func gb(bytes uint64) *float64 {
	v := round2(float64(bytes) / (1 << 30))
	return &v
}

func pct(v float64) *float64 {
	r := round2(v)
	return &r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
