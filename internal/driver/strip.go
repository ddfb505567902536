package driver

import (
	"fmt"

	"unenum/internal/artifact"
	"unenum/internal/rewrite"
)

// StripResult — полный прогон: скан плюс подстановка и три артефакта.
type StripResult struct {
	ScanResult
	// Final — целевой текст после подстановки ссылок.
	Final []byte
	// Replaced — сколько ссылок переписано литералами.
	Replaced  int
	Artifacts artifact.Report
	BytesIn   int
	BytesOut  int
}

// Saved возвращает выигрыш в байтах; может быть отрицательным, если
// литералы длиннее ссылок.
func (r *StripResult) Saved() int {
	return r.BytesIn - r.BytesOut
}

// Strip прогоняет конвейер целиком и переписывает артефакты на диске.
// Ошибка записи не откатывается: состояние диска описывает Artifacts.
func Strip(path string, opts Options) (*StripResult, error) {
	timer := opts.Timer

	scanRes, err := Scan(path, opts)
	if err != nil {
		return nil, err
	}

	bindings := make([]rewrite.Binding, len(scanRes.Defs))
	for i, def := range scanRes.Defs {
		bindings[i] = rewrite.Binding{Root: def.PublicRoot, Members: scanRes.Members[i]}
	}

	rewriteIdx := begin(timer, "rewrite")
	final, replaced := rewrite.Apply(scanRes.Stripped, bindings, rewrite.Options{
		Boundary: opts.Boundary,
	})
	end(timer, rewriteIdx, fmt.Sprintf("%d replacements", replaced))

	backupSuffix := opts.BackupSuffix
	if backupSuffix == "" {
		backupSuffix = artifact.DefaultBackupSuffix
	}
	logSuffix := opts.LogSuffix
	if logSuffix == "" {
		logSuffix = artifact.DefaultLogSuffix
	}
	paths := artifact.DerivePaths(path, backupSuffix, logSuffix)
	if paths.Backup == paths.Target || paths.Log == paths.Target || paths.Backup == paths.Log {
		return nil, fmt.Errorf("artifact paths collide for %s: backup %s, log %s",
			path, paths.Backup, paths.Log)
	}

	removed := make([]string, len(scanRes.Defs))
	for i, def := range scanRes.Defs {
		removed[i] = def.Raw
	}

	writeIdx := begin(timer, "write")
	rep := artifact.Write(paths, scanRes.File.Content, final, removed)
	end(timer, writeIdx, fmt.Sprintf("%d -> %d bytes", len(scanRes.File.Content), len(final)))

	res := &StripResult{
		ScanResult: *scanRes,
		Final:      final,
		Replaced:   replaced,
		Artifacts:  rep,
		BytesIn:    len(scanRes.File.Content),
		BytesOut:   len(final),
	}
	return res, rep.Err()
}
