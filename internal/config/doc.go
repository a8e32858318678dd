// Package config handles loading and parsing opsdesk configuration files.
//
// # Overview
//
// This package reads the toolkit's TOML configuration to establish per-user
// defaults for exports, keyword lists, and service checks. Every field can
// be overridden by a command-line flag for a single run; the config file
// only sets the starting point.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/opsdesk/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - out_dir: ./reports
//   - export: xlsx
//   - keywords: ["error"]
//   - services: none
//   - case_sensitive: false
//   - max_samples / max_line_length: 0 (scanner defaults apply)
//
// # TOML Format
//
// Example config.toml:
//
//	out_dir = "~/reports"
//	export = "csv"
//	keywords = ["error", "timeout", "refused"]
//	services = ["sshd", "nginx"]
//
// All fields are optional. List entries are trimmed and blanks dropped.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g. cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Values Validate rejects (unknown export format, negative caps)
//
// A missing config file is NOT an error - defaults are used instead, so the
// toolkit works out of the box with no configuration at all.
package config
