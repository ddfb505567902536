package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"unenum/internal/diag"
	"unenum/internal/source"
)

var (
	sevInfoColor    = color.New(color.FgCyan)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	codeColor       = color.New(color.Faint)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (bag.Sort() вызывается здесь же).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>
// затем Notes с отступом. Подчёркивание по спану не рисуем:
// бандл минифицирован, его "строка" — это весь файл.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	bag.Sort()
	path := displayPath(file.Path, opts.PathMode)
	for _, d := range bag.Items() {
		if d.Severity < opts.MinSeverity {
			continue
		}
		pos := file.Pos(d.Primary.Start)
		sev := d.Severity.String()
		code := "[" + d.Code.ID() + "]"
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
			code = codeColor.Sprint(code)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, pos.Line, pos.Col, sev, code, d.Message)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			npos := file.Pos(n.Span.Start)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", path, npos.Line, npos.Col, n.Msg)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevWarning:
		return sevWarningColor
	case diag.SevError:
		return sevErrorColor
	default:
		return sevInfoColor
	}
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
