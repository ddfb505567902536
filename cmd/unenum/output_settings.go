package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"unenum/internal/config"
	"unenum/internal/diag"
	"unenum/internal/diagfmt"
	"unenum/internal/driver"
	"unenum/internal/enumdef"
	"unenum/internal/source"
)

// outputSettings — эффективные настройки вывода: значения манифеста,
// поверх которых применены явно заданные флаги.
type outputSettings struct {
	color   string
	quiet   bool
	verbose bool
	timings bool
}

// resolveSettings discovers the manifest governing the bundle and merges
// the persistent output flags over it. Flags win only when set explicitly.
// --config replaces discovery with one explicit manifest.
func resolveSettings(cmd *cobra.Command, bundlePath string) (config.Config, outputSettings, error) {
	pf := cmd.Root().PersistentFlags()

	var cfg config.Config
	var err error
	if pf.Changed("config") {
		manifestPath, flagErr := pf.GetString("config")
		if flagErr != nil {
			return config.Config{}, outputSettings{}, fmt.Errorf("failed to get config flag: %w", flagErr)
		}
		cfg, err = config.Load(manifestPath)
	} else {
		cfg, _, err = config.Discover(filepath.Dir(bundlePath))
	}
	if err != nil {
		return config.Config{}, outputSettings{}, err
	}

	out := outputSettings{
		color:   cfg.Output.Color,
		quiet:   cfg.Output.Quiet,
		timings: cfg.Output.Timings,
	}

	if pf.Changed("color") {
		if out.color, err = pf.GetString("color"); err != nil {
			return config.Config{}, outputSettings{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if pf.Changed("quiet") {
		if out.quiet, err = pf.GetBool("quiet"); err != nil {
			return config.Config{}, outputSettings{}, fmt.Errorf("failed to get quiet flag: %w", err)
		}
	}
	if pf.Changed("timings") {
		if out.timings, err = pf.GetBool("timings"); err != nil {
			return config.Config{}, outputSettings{}, fmt.Errorf("failed to get timings flag: %w", err)
		}
	}
	// Verbosity живёт только во флаге: это режим отладки запуска,
	// а не настройка проекта.
	if out.verbose, err = pf.GetBool("verbose"); err != nil {
		return config.Config{}, outputSettings{}, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	switch out.color {
	case "auto", "on", "off":
	default:
		return config.Config{}, outputSettings{}, fmt.Errorf("invalid color mode %q (must be auto, on or off)", out.color)
	}
	return cfg, out, nil
}

func (o outputSettings) useColor(f *os.File) bool {
	return o.color == "on" || (o.color == "auto" && isTerminal(f))
}

// printDiagnostics пишет диагностики в stderr. Отказы кандидатов идут
// с уровнем info и видны только с --verbose; предупреждения печатаются
// всегда, даже под --quiet.
func (o outputSettings) printDiagnostics(bag *diag.Bag, file *source.File) {
	minSev := diag.SevWarning
	if o.verbose {
		minSev = diag.SevInfo
	}
	diagfmt.Pretty(os.Stderr, bag, file, diagfmt.PrettyOpts{
		Color:       o.useColor(os.Stderr),
		ShowNotes:   true,
		MinSeverity: minSev,
	})
}

// driverOptions merges command flags over the manifest's [strip] section.
func driverOptions(cmd *cobra.Command, cfg config.Config) (driver.Options, error) {
	opts := driver.Options{
		MaxSteps:     cfg.Strip.MaxSteps,
		Boundary:     cfg.Strip.Boundary,
		BackupSuffix: cfg.Strip.BackupSuffix,
		LogSuffix:    cfg.Strip.LogSuffix,
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("boundary") {
		if opts.Boundary, err = flags.GetBool("boundary"); err != nil {
			return driver.Options{}, fmt.Errorf("failed to get boundary flag: %w", err)
		}
	}
	if flags.Changed("backup-suffix") {
		if opts.BackupSuffix, err = flags.GetString("backup-suffix"); err != nil {
			return driver.Options{}, fmt.Errorf("failed to get backup-suffix flag: %w", err)
		}
	}
	if flags.Changed("log-suffix") {
		if opts.LogSuffix, err = flags.GetString("log-suffix"); err != nil {
			return driver.Options{}, fmt.Errorf("failed to get log-suffix flag: %w", err)
		}
	}
	if flags.Changed("max-steps") {
		if opts.MaxSteps, err = flags.GetUint64("max-steps"); err != nil {
			return driver.Options{}, fmt.Errorf("failed to get max-steps flag: %w", err)
		}
	}

	if opts.MaxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return opts, nil
}

func countMembers(members [][]enumdef.Member) int {
	total := 0
	for _, ms := range members {
		total += len(ms)
	}
	return total
}
