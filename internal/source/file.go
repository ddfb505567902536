package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// File хранит содержимое бандла и индекс строк для резолва позиций.
//
// Content никогда не нормализуется (ни BOM, ни CRLF): бэкап обязан быть
// побайтово равен оригиналу, а весь текст вне вырезанных определений —
// оригинальному тексту.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Virtual bool // добавлен не с диска (тест, stdin)
}

// Load reads the bundle from disk exactly as stored.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFile(path, content, false), nil
}

// NewVirtualFile создаёт файл из памяти (тесты, stdin).
func NewVirtualFile(name string, content []byte) *File {
	return newFile(name, content, true)
}

func newFile(path string, content []byte, virtual bool) *File {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return &File{
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Virtual: virtual,
	}
}

// Size возвращает длину содержимого в байтах.
func (f *File) Size() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// Text returns the verbatim content of the given span.
func (f *File) Text(span Span) string {
	return string(f.Content[span.Start:span.End])
}

// Resolve converts a span into line and column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Pos возвращает позицию строка/колонка для байтового смещения.
func (f *File) Pos(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Если LineIdx пустой, то весь файл — одна строка.
	// Для минифицированного бандла это типичный случай.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: количество lineIdx[i] строго меньших off.
	// Сам '\n' относится к строке, которую он завершает.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := lo // индекс строки (0-based)

	var startOff uint32
	if line == 0 {
		startOff = 0
	} else {
		startOff = lineIdx[line-1] + 1
	}

	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1}
}
