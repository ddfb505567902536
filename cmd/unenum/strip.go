package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unenum/internal/artifact"
	"unenum/internal/driver"
	"unenum/internal/observ"
	"unenum/internal/ui"
)

var stripCmd = &cobra.Command{
	Use:   "strip [flags] bundle.js",
	Short: "Remove enum tables from a bundle and inline their literals",
	Long: `Strip rewrites the bundle in place: every compiled enum table is cut out
and every reference through its public root is replaced with the literal.
The original bytes are kept in a sibling backup and the removed
definitions are listed in a sibling log.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().Bool("boundary", false, "replace references only at identifier boundaries")
	stripCmd.Flags().String("backup-suffix", artifact.DefaultBackupSuffix, "suffix inserted before the target's extension for the backup")
	stripCmd.Flags().String("log-suffix", artifact.DefaultLogSuffix, "suffix replacing the target's extension for the removal log")
	stripCmd.Flags().Uint64("max-steps", 0, "scanner step budget (0 derives it from bundle size)")
	stripCmd.Flags().Bool("best-effort", false, "exit 0 even when the scan was truncated")
}

func runStrip(cmd *cobra.Command, args []string) error {
	bundlePath := args[0]

	cfg, out, err := resolveSettings(cmd, bundlePath)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if out.timings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	res, runErr := driver.Strip(bundlePath, opts)
	if res == nil {
		return fmt.Errorf("strip failed: %w", runErr)
	}

	out.printDiagnostics(res.Bag, res.File)
	if runErr != nil {
		return fmt.Errorf("strip failed: %w", runErr)
	}

	if !out.quiet {
		summary := ui.StripSummary{
			Path:      bundlePath,
			Defs:      len(res.Defs),
			Members:   countMembers(res.Members),
			Replaced:  res.Replaced,
			BytesIn:   res.BytesIn,
			BytesOut:  res.BytesOut,
			Backup:    res.Artifacts.Backup.Path,
			Log:       res.Artifacts.Log.Path,
			Truncated: res.Truncated,
		}
		fmt.Fprint(os.Stdout, ui.RenderStrip(summary, out.useColor(os.Stdout), terminalWidth(os.Stdout)))
	}
	if out.timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if res.Truncated {
		bestEffort, flagErr := cmd.Flags().GetBool("best-effort")
		if flagErr != nil {
			return fmt.Errorf("failed to get best-effort flag: %w", flagErr)
		}
		if !bestEffort {
			// Обрезанный скан записан на диск, но не считается
			// проверенным результатом.
			os.Exit(2)
		}
	}
	return nil
}
