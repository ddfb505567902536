package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unenum/internal/diagfmt"
	"unenum/internal/driver"
	"unenum/internal/observ"
	"unenum/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] bundle.js",
	Short: "List enum tables in a bundle without touching it",
	Long: `Scan is the dry run of strip: it reports every enum definition the
scanner would remove, together with the decoded members, and writes
nothing to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Uint64("max-steps", 0, "scanner step budget (0 derives it from bundle size)")
	scanCmd.Flags().Bool("best-effort", false, "exit 0 even when the scan was truncated")
}

func runScan(cmd *cobra.Command, args []string) error {
	bundlePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

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

	res, err := driver.Scan(bundlePath, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out.printDiagnostics(res.Bag, res.File)

	switch format {
	case "json":
		if err := diagfmt.FormatDefsJSON(os.Stdout, res.Defs, res.Members, res.File); err != nil {
			return err
		}
	default:
		if err := diagfmt.FormatDefsPretty(os.Stdout, res.Defs, res.Members, res.File); err != nil {
			return err
		}
		if !out.quiet {
			summary := ui.ScanSummary{
				Path:      bundlePath,
				Defs:      len(res.Defs),
				Members:   countMembers(res.Members),
				BytesIn:   len(res.File.Content),
				Truncated: res.Truncated,
			}
			fmt.Fprint(os.Stdout, ui.RenderScan(summary, out.useColor(os.Stdout), terminalWidth(os.Stdout)))
		}
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
			// Обрезанный скан — неполный список определений.
			os.Exit(2)
		}
	}
	return nil
}
