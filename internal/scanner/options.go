package scanner

import (
	"unenum/internal/diag"
	"unenum/internal/source"
)

type Options struct {
	// Reporter может быть nil — тогда отбраковки кандидатов молчаливые
	// (но скан продолжается).
	Reporter diag.Reporter
	// MaxSteps — защитный потолок итераций конечного автомата.
	// 0 означает авто: 8*len(текста)+1024, с запасом выше любого
	// честного прохода.
	MaxSteps uint64
}

func (s *Scanner) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
