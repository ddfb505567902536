package source

import (
	"fmt"
)

// Span — полуинтервал байтовых смещений [Start, End) внутри бандла.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains проверяет, что other целиком лежит внутри s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Before сообщает, заканчивается ли s строго до начала other.
// Для непересекающихся упорядоченных спанов Before истинно попарно.
func (s Span) Before(other Span) bool {
	return s.End <= other.Start
}

// LineCol represents a human-readable position in the bundle.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
