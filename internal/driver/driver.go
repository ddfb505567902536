// Package driver orchestrates the strip pipeline: load the bundle,
// scan out enum definitions, decode their members, rewrite references
// and persist the artifacts. Commands talk to this package only.
package driver

import (
	"fmt"

	"unenum/internal/enumdef"
	"unenum/internal/observ"
)

// DefaultMaxDiagnostics bounds the bag when the caller does not care.
const DefaultMaxDiagnostics = 256

// Options настраивают один прогон; нулевое значение даёт вменяемое
// поведение по умолчанию.
type Options struct {
	// MaxDiagnostics ограничивает сумку диагностик; <=0 — значение
	// по умолчанию.
	MaxDiagnostics int
	// MaxSteps пробрасывается сканеру; 0 — авто-потолок.
	MaxSteps uint64
	// Boundary включает проверку границ идентификаторов при замене.
	Boundary bool
	// BackupSuffix/LogSuffix определяют соседние пути артефактов;
	// пустые значения заменяются стандартными.
	BackupSuffix string
	LogSuffix    string
	// Timer, если задан, получает фазы прогона.
	Timer *observ.Timer
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// extractAll decodes member tables for every committed definition.
// Интерьеры уже прошли валидатор, поэтому ошибка здесь — внутренняя
// несогласованность, а не плохой вход.
func extractAll(defs []enumdef.Definition) ([][]enumdef.Member, error) {
	members := make([][]enumdef.Member, len(defs))
	for i, def := range defs {
		ms, err := enumdef.Extract(def.Interior, def.InnerRoot)
		if err != nil {
			return nil, fmt.Errorf("decode enum '%s': %w", def.PublicRoot, err)
		}
		members[i] = ms
	}
	return members, nil
}

func begin(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func end(t *observ.Timer, idx int, note string) {
	if t != nil {
		t.End(idx, note)
	}
}
