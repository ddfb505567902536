package diag

import (
	"unenum/internal/source"
)

// Note — дополнительный контекст к диагностике (второстепенный спан).
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by the scan pipeline.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note attached.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
