package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"unenum/internal/artifact"
	"unenum/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter unenum.toml manifest",
	Long: `Initialize a project for unenum by creating a manifest (unenum.toml)
with the default strip and output settings spelled out. If [path] is
omitted, initializes the current directory. The manifest governs every
bundle in the directory tree beneath it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit creates an unenum.toml manifest at the target path (or the
// current working directory when no argument or "." is provided).
//
// It resolves the target path, creates the directory if it does not
// exist, and refuses to initialize if unenum.toml already exists.
func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Create manifest file if not exists
	manifestPath := filepath.Join(target, config.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest()), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized unenum project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", config.ManifestName)
	return nil
}

// buildDefaultManifest returns the starter TOML manifest with every
// recognized key present and set to its default.
func buildDefaultManifest() string {
	return fmt.Sprintf(`# unenum project manifest
[strip]
backup-suffix = "%s"
log-suffix = "%s"
boundary = false
max-steps = 0

[output]
color = "auto"
quiet = false
timings = false
`, artifact.DefaultBackupSuffix, artifact.DefaultLogSuffix)
}
