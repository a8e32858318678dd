// Package menu implements the interactive front-end shown when opsdesk is
// started without a subcommand.
//
// # Flow
//
// The menu is a small bubbletea state machine:
//
//	menu -> form -> running -> result -> menu
//
// The user picks a workflow (health check, log scan, or the combined run),
// fills a short form of textinputs seeded from the loaded configuration,
// and the workflow executes in a tea.Cmd while a spinner shows. The result
// view reuses the same plain-text renderers as the CLI commands, so both
// front-ends print identical reports.
//
// Errors (bad export format, missing log file) render inline in the result
// view and return to the menu on escape; they never terminate the program.
package menu
