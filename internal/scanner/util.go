package scanner

import (
	"fmt"

	"fortio.org/safecast"
)

// ===== Классификаторы =====

// isIdentByte — ASCII-множество символов минифицированных имён.
// Не-ASCII имена минификаторы не выдают, поэтому fast-path достаточно.
func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

// ===== Матчеры последовательностей (жадность) =====

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (s *Scanner) try2(a, b byte) bool {
	b0, b1, ok := s.cur.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	s.cur.Bump()
	s.cur.Bump()
	return true
}

func (s *Scanner) try3(a, b, c byte) bool {
	b0, b1, b2, ok := s.cur.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	s.cur.Bump()
	s.cur.Bump()
	s.cur.Bump()
	return true
}

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
