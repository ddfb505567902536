package diagfmt

import (
	"unenum/internal/diag"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path exactly as the caller passed it.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// MinSeverity скрывает диагностики ниже порога.
	// Нулевое значение (SevInfo) печатает всё.
	MinSeverity diag.Severity
}
