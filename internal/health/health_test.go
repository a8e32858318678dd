package health

import (
	"context"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		// 0.125 is exactly representable; the tie rounds away from zero.
		{in: 0.125, want: 0.13},
		{in: 1.5, want: 1.5},
		{in: 93.333333, want: 93.33},
		{in: 99.999, want: 100},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGB(t *testing.T) {
	got := gb(8 << 30)
	if got == nil {
		t.Fatal("gb returned nil")
	}
	if *got != 8 {
		t.Errorf("gb(8GiB) = %v, want 8", *got)
	}
}

func TestCheckServices_EmptyList(t *testing.T) {
	if got := CheckServices(context.Background(), nil); got != nil {
		t.Errorf("CheckServices(nil) = %v, want nil", got)
	}
}

func TestCollect_NeverFails(t *testing.T) {
	snap := Collect(context.Background(), nil)

	if snap.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
	if snap.Hostname == "" {
		t.Error("Hostname is empty")
	}
	if snap.OS == "" {
		t.Error("OS is empty")
	}
	if len(snap.Disks) == 0 {
		t.Error("Disks is empty, want at least the fallback entry")
	}
	if snap.Services != nil {
		t.Errorf("Services = %v, want nil when none requested", snap.Services)
	}
}
