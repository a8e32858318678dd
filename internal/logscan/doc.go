// Package logscan scans plain-text log files for literal keywords.
//
// # Overview
//
// This package implements the core of opsdesk's log analysis: a single
// sequential pass over a log file that counts keyword matches per line and
// retains a bounded list of sample findings for display and export.
//
// # Scanning Model
//
// Scan streams the file one line at a time and, for each line:
//
//  1. Strips the trailing newline
//  2. Replaces undecodable bytes with U+FFFD (lossy decode, never an error)
//  3. Truncates lines longer than MaxLineLength runes, appending a marker
//  4. Tests the line against every keyword matcher
//
// Counting rules:
//
//   - TotalLines counts every line read, matching or not
//   - Each matching keyword increments its own counter, once per line
//   - MatchedLines increments at most once per line, however many keywords hit
//   - Samples stop accumulating at MaxSamples; counters keep going
//
// Keywords are matched as literal substrings. There is no regex
// interpretation: a keyword containing "." or "*" matches those characters
// verbatim. Matching is case-insensitive unless Options.CaseSensitive is set.
//
// # Defaults
//
//   - Keywords: ["error"] when the caller supplies none
//   - MaxSamples: 50
//   - MaxLineLength: 5000 runes
//
// # Error Handling
//
// Scan validates the path before reading and surfaces three error kinds:
//
//   - ErrNotFound: the path does not exist
//   - ErrNotAFile: the path is a directory or other non-regular entry
//   - wrapped read errors: the file opened but reading failed mid-scan
//
// All are terminal: Scan never returns a partial Result. Decoding problems
// are deliberately not errors; replacing bad bytes and continuing loses less
// information than refusing to scan a slightly corrupt log.
//
// # Design Rationale
//
// The package is intentionally small and self-contained:
//   - No file watching or tailing (a scan is one pass, then done)
//   - No log rotation handling (reads the named file only)
//   - No shared state (concurrent scans of different files are safe)
//
// Reading uses bufio.Reader rather than bufio.Scanner so that a single
// pathological line cannot exceed a scanner buffer and abort the scan; the
// truncation cap bounds what is retained, not what can be read.
package logscan
