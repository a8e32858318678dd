// Package report renders health snapshots and log scan results for people
// and spreadsheets.
//
// # Overview
//
// The package owns three output surfaces:
//
//   - BuildSummary: a flat, ordered key/value digest of a workflow run
//   - ExportCSV / ExportXLSX: file exports, one CSV per section or one
//     workbook with one sheet per section
//   - Write*: plain-text console rendering shared by the CLI and the menu
//
// Both export formats are produced from the same row builders, so a CSV
// export and an XLSX export of the same run carry identical cells. Sections:
// Summary, SystemHealth (one row per disk, memory and CPU columns repeated),
// Services, and LogFindings (overview, per-keyword tally sorted by
// descending count then keyword, then sample lines in scan order).
//
// # Absent Values
//
// Health metrics use nil to mean "unknown"; every renderer here prints those
// as "N/A" rather than zero, so a missing number can't be mistaken for a
// measured one.
//
// # Ordering
//
// Summary is a slice, not a map: rows export in the order they were built.
// Keyword tallies always sort by descending count and then keyword name,
// which is the display order downstream consumers expect.
package report
