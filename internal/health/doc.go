// Package health takes point-in-time snapshots of local system health.
//
// # Overview
//
// Collect gathers disk, memory, CPU, and host identity via gopsutil, plus
// the state of any named services, into a single Snapshot. A snapshot is a
// one-shot read: there is no polling, history, or alerting here.
//
// # Optional Metrics
//
// Platforms differ in what they can report. Numeric fields are pointers and
// nil means "unknown" - callers render these as N/A rather than zero.
// Collect itself never returns an error; a metric that cannot be read is
// simply absent from the snapshot.
//
// # Service Checks
//
// Service state comes from `systemctl is-active <unit>` with a short
// per-unit timeout. systemd's own state strings (active, inactive, failed)
// pass through verbatim. Hosts without systemctl report every service as
// "unknown" instead of failing the snapshot.
//
// # Units
//
// Sizes are reported in GiB rounded to two decimals; percentages are
// likewise rounded to two decimals.
package health
