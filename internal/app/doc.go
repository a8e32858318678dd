// Package app provides the orchestration layer for the opsdesk toolkit.
//
// # Overview
//
// This package wires configuration, health collection, log scanning, and
// report export into the three workflows both front-ends (CLI subcommands
// and the interactive menu) invoke:
//
//   - RunHealth: snapshot system health, export
//   - RunScan:   scan a log file for keywords, export
//   - RunFull:   health plus log scan in one report
//
// Each run is a single synchronous pass: collect and/or scan, build the
// summary, write the artifacts, return a Report. There is no background
// work and no state shared between runs.
//
// # Degradation in RunFull
//
// The combined workflow treats the log scan as best-effort: if the scan
// fails (missing file, unreadable path), the health portion still exports
// and Report.ScanErr records the failure for the front-end to warn about.
// RunScan, by contrast, fails outright - a scan-only run with no scan is
// useless.
//
// # Artifacts
//
// Exports land under Options.OutDir with a timestamped name,
// it_support_report_YYYYMMDD_HHMMSS, either as a directory of CSV files or
// a single .xlsx workbook depending on Options.Export.
package app
