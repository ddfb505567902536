package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StripSummary carries the numbers of one finished strip run.
type StripSummary struct {
	Path      string
	Defs      int
	Members   int
	Replaced  int
	BytesIn   int
	BytesOut  int
	Backup    string
	Log       string
	Truncated bool
}

// ScanSummary carries the numbers of one finished dry run.
type ScanSummary struct {
	Path      string
	Defs      int
	Members   int
	BytesIn   int
	Truncated bool
}

type palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	dim   lipgloss.Style
}

func newPalette(colored bool) palette {
	if !colored {
		plain := lipgloss.NewStyle()
		return palette{title: plain, ok: plain, warn: plain, dim: plain}
	}
	return palette{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// RenderStrip builds the terminal block printed after a successful strip.
func RenderStrip(s StripSummary, colored bool, width int) string {
	p := newPalette(colored)
	var b strings.Builder

	b.WriteString(p.title.Render("strip " + truncate(s.Path, nameWidth(width))))
	b.WriteString("\n")

	writeRow(&b, "enums", p.ok.Render(fmt.Sprintf("%d removed (%d members)", s.Defs, s.Members)))
	writeRow(&b, "references", p.ok.Render(fmt.Sprintf("%d replaced", s.Replaced)))
	writeRow(&b, "bytes", fmt.Sprintf("%d -> %d (saved %d)", s.BytesIn, s.BytesOut, s.BytesIn-s.BytesOut))
	writeRow(&b, "backup", p.dim.Render(truncate(s.Backup, nameWidth(width))))
	writeRow(&b, "log", p.dim.Render(truncate(s.Log, nameWidth(width))))
	if s.Truncated {
		writeRow(&b, "truncated", p.warn.Render("scan stopped early; bundle copied through verbatim"))
	}

	return b.String()
}

// RenderScan builds the terminal block printed after a dry run.
func RenderScan(s ScanSummary, colored bool, width int) string {
	p := newPalette(colored)
	var b strings.Builder

	b.WriteString(p.title.Render("scan " + truncate(s.Path, nameWidth(width))))
	b.WriteString("\n")

	writeRow(&b, "enums", p.ok.Render(fmt.Sprintf("%d found (%d members)", s.Defs, s.Members)))
	writeRow(&b, "bytes", fmt.Sprintf("%d", s.BytesIn))
	if s.Truncated {
		writeRow(&b, "truncated", p.warn.Render("scan stopped early; listing is incomplete"))
	}

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-12s %s\n", label, value)
}

func nameWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	w := width - 16
	if w < 20 {
		w = 20
	}
	return w
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
