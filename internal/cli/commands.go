package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdesk/opsdesk/internal/app"
	"github.com/opsdesk/opsdesk/internal/config"
	"github.com/opsdesk/opsdesk/internal/report"
)

// runFlags carries the per-run overrides shared by the workflow commands.
// Only flags the user actually set override config values.
type runFlags struct {
	services      string
	log           string
	keywords      string
	caseSensitive bool
	export        string
	out           string
}

func (f *runFlags) addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.export, "export", "", `export format: "xlsx" or "csv"`)
	cmd.Flags().StringVar(&f.out, "out", "", "output directory for report artifacts")
}

func (f *runFlags) addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.log, "log", "", "path to the log file to scan")
	cmd.Flags().StringVar(&f.keywords, "keywords", "", "comma-separated keywords (default: error)")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "match keywords case-sensitively")
}

// resolveOptions merges config defaults with whatever flags were set.
func (f *runFlags) resolveOptions(cmd *cobra.Command, configPath string) (app.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return app.Options{}, err
	}
	opts := app.FromConfig(cfg)

	if cmd.Flags().Changed("services") {
		opts.Services = config.SplitList(f.services)
	}
	if cmd.Flags().Changed("keywords") {
		opts.Keywords = config.SplitList(f.keywords)
	}
	if cmd.Flags().Changed("case-sensitive") {
		opts.CaseSensitive = f.caseSensitive
	}
	if cmd.Flags().Changed("export") {
		opts.Export = f.export
	}
	if cmd.Flags().Changed("out") {
		opts.OutDir = f.out
	}
	opts.LogPath = f.log
	return opts, nil
}

func newHealthCmd(configPath *string) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check system health (disk/RAM/CPU) plus optional services",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolveOptions(cmd, *configPath)
			if err != nil {
				return err
			}

			report.WriteHeader(os.Stdout, "SYSTEM HEALTH CHECK")
			r, err := app.RunHealth(cmd.Context(), opts)
			if err != nil {
				return err
			}
			report.WriteSnapshot(os.Stdout, r.Snapshot)
			report.WriteExported(os.Stdout, r.Exported)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.services, "services", "",
		"comma-separated service names to check (systemd units)")
	flags.addExportFlags(cmd)
	return cmd
}

func newScanCmd(configPath *string) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a log file and count keyword matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.log == "" {
				return fmt.Errorf("%w: --log is required", errUsage)
			}
			opts, err := flags.resolveOptions(cmd, *configPath)
			if err != nil {
				return err
			}

			report.WriteHeader(os.Stdout, "LOG SCAN")
			r, err := app.RunScan(cmd.Context(), opts)
			if err != nil {
				return err
			}
			report.WriteScan(os.Stdout, r.Scan, 10)
			report.WriteExported(os.Stdout, r.Exported)
			return nil
		},
	}
	flags.addScanFlags(cmd)
	flags.addExportFlags(cmd)
	return cmd
}

func newRunCmd(configPath *string) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Full workflow: health check + log scan + export",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.log == "" {
				return fmt.Errorf("%w: --log is required", errUsage)
			}
			opts, err := flags.resolveOptions(cmd, *configPath)
			if err != nil {
				return err
			}

			report.WriteHeader(os.Stdout, "FULL WORKFLOW: HEALTH + LOG + EXPORT")
			r, err := app.RunFull(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if r.ScanErr != nil {
				fmt.Fprintf(os.Stdout, "WARNING: log scan failed (%v); continuing with system health only.\n", r.ScanErr)
			}
			report.WriteSnapshot(os.Stdout, r.Snapshot)
			if r.Scan != nil {
				report.WriteScanBrief(os.Stdout, r.Scan, 5)
			}
			report.WriteExported(os.Stdout, r.Exported)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.services, "services", "",
		"comma-separated service names to check (systemd units)")
	flags.addScanFlags(cmd)
	flags.addExportFlags(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the opsdesk version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "opsdesk %s\n", version)
		},
	}
}
