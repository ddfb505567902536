package driver

import (
	"fmt"

	"unenum/internal/diag"
	"unenum/internal/enumdef"
	"unenum/internal/scanner"
	"unenum/internal/source"
)

// ScanResult — сухой прогон: что нашли и что вырезали бы, без записи
// на диск.
type ScanResult struct {
	File *source.File
	// Defs и Members параллельны: Members[i] — раскодированная таблица
	// определения Defs[i].
	Defs    []enumdef.Definition
	Members [][]enumdef.Member
	// Stripped — текст без определений, ещё до подстановки ссылок.
	Stripped  []byte
	Steps     uint64
	Truncated bool
	Bag       *diag.Bag
}

// Scan загружает бандл и прогоняет сканер с извлечением членов.
func Scan(path string, opts Options) (*ScanResult, error) {
	timer := opts.Timer

	loadIdx := begin(timer, "load")
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	end(timer, loadIdx, fmt.Sprintf("%d bytes", len(file.Content)))

	bag := diag.NewBag(opts.maxDiagnostics())

	scanIdx := begin(timer, "scan")
	res := scanner.Scan(file, scanner.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		MaxSteps: opts.MaxSteps,
	})
	end(timer, scanIdx, fmt.Sprintf("%d defs, %d steps", len(res.Defs), res.Steps))

	extractIdx := begin(timer, "extract")
	members, err := extractAll(res.Defs)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, ms := range members {
		total += len(ms)
	}
	end(timer, extractIdx, fmt.Sprintf("%d members", total))

	return &ScanResult{
		File:      file,
		Defs:      res.Defs,
		Members:   members,
		Stripped:  res.Stripped,
		Steps:     res.Steps,
		Truncated: res.Truncated,
		Bag:       bag,
	}, nil
}
