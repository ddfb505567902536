// Package fuzztests houses Go fuzz harnesses that exercise the strip
// pipeline (source -> scanner -> extract -> rewrite). Its goal is to smoke
// test robustness and guard against panics or runaway scans on arbitrary
// inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты как
// виртуальный бандл и прогоняют их через сканер и подстановку литералов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/scanner, internal/enumdef,
// internal/rewrite, internal/diag, internal/testkit.
package fuzztests
