// Package cli implements the opsdesk command-line front-end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdesk/opsdesk/internal/config"
	"github.com/opsdesk/opsdesk/internal/logscan"
	"github.com/opsdesk/opsdesk/internal/menu"
)

const version = "0.1.0"

// Exit codes. File and validation problems are the caller's to fix; anything
// else is unexpected.
const (
	exitOK         = 0
	exitUsage      = 1
	exitInputError = 2
	exitUnexpected = 3
)

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "opsdesk: %v\n", err)
		switch {
		case errors.Is(err, logscan.ErrNotFound),
			errors.Is(err, logscan.ErrNotAFile),
			errors.Is(err, config.ErrInvalid):
			return exitInputError
		case errors.Is(err, errUsage):
			return exitUsage
		}
		return exitUnexpected
	}
	return exitOK
}

var errUsage = errors.New("usage error")

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "opsdesk",
		Short: "IT support automation toolkit",
		Long: `opsdesk snapshots local system health, scans log files for keywords,
and exports either result set to CSV files or a spreadsheet.

Without a subcommand it starts an interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return menu.Run(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file path (default ~/.config/opsdesk/config.toml)")

	root.AddCommand(
		newHealthCmd(&configPath),
		newScanCmd(&configPath),
		newRunCmd(&configPath),
		newVersionCmd(),
	)
	return root
}
