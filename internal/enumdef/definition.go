package enumdef

import (
	"unenum/internal/source"
)

// Definition — одно закоммиченное определение enum в бандле.
// Span включает вводящий токен (`var ` или запятую) и закрывающую
// последовательность; Raw — точный текст этого диапазона.
type Definition struct {
	PublicRoot string
	InnerRoot  string
	Span       source.Span
	Raw        string
	Interior   string
	Introduced bool // рождено от `var ` (true) или от запятой (false)
}

// Member is one named entry of an enum definition.
// Key keeps the leading member-access dot (".Foo"); Literal is the verbatim
// replacement text: digits for numeric members, a quoted string otherwise.
type Member struct {
	Key     string
	Literal string
	Numeric bool
}

// Kind returns a short human label for the member's origin shape.
func (m Member) Kind() string {
	if m.Numeric {
		return "number"
	}
	return "string"
}

// Name возвращает имя члена без ведущей точки.
func (m Member) Name() string {
	if len(m.Key) > 0 && m.Key[0] == '.' {
		return m.Key[1:]
	}
	return m.Key
}
