package rewrite

import (
	"testing"

	"unenum/internal/enumdef"
)

func bind(root string, members ...enumdef.Member) Binding {
	return Binding{Root: root, Members: members}
}

func num(key, lit string) enumdef.Member {
	return enumdef.Member{Key: key, Literal: lit, Numeric: true}
}

func str(key, lit string) enumdef.Member {
	return enumdef.Member{Key: key, Literal: lit}
}

func TestApplyWorkedExample(t *testing.T) {
	text := `const c=Math.random()>.5?n.NumberEnumItem:n.StringEnumItem;`
	out, replaced := Apply([]byte(text), []Binding{
		bind("n", num(".NumberEnumItem", "123"), str(".StringEnumItem", `"ABC"`)),
	}, Options{})
	want := `const c=Math.random()>.5?123:"ABC";`
	if string(out) != want {
		t.Errorf("expected %q, got %q", want, string(out))
	}
	if replaced != 2 {
		t.Errorf("expected 2 replacements, got %d", replaced)
	}
}

// Корень длиной побольше обрабатывается раньше: паттерн короткого
// корня может сидеть внутри ссылки длинного и порвать её.
func TestApplyLongestRootFirst(t *testing.T) {
	// "b.c" — подстрока "ab.cd"; обратный порядок дал бы "a1d".
	out, replaced := Apply([]byte(`ab.cd b.c`), []Binding{
		bind("b", str(".c", "1")),
		bind("ab", str(".cd", "2")),
	}, Options{})
	if string(out) != `2 1` {
		t.Errorf("expected %q, got %q", `2 1`, string(out))
	}
	if replaced != 2 {
		t.Errorf("expected 2 replacements, got %d", replaced)
	}

	// Пара корней из описания свойства: a и ab.
	out, _ = Apply([]byte(`ab.x a.x`), []Binding{
		bind("a", str(".x", "1")),
		bind("ab", str(".x", "2")),
	}, Options{})
	if string(out) != `2 1` {
		t.Errorf("expected %q, got %q", `2 1`, string(out))
	}
}

// Внутри одного определения длинный ключ обрабатывается раньше
// короткого, который является его префиксом.
func TestApplyLongestKeyFirst(t *testing.T) {
	out, replaced := Apply([]byte(`n.xy n.x`), []Binding{
		bind("n", str(".x", "1"), str(".xy", "2")),
	}, Options{})
	if string(out) != `2 1` {
		t.Errorf("expected %q, got %q", `2 1`, string(out))
	}
	if replaced != 2 {
		t.Errorf("expected 2 replacements, got %d", replaced)
	}
}

func TestApplyPlainModeSubstringHazard(t *testing.T) {
	// Документированный риск стокового режима: имя, оканчивающееся на
	// точную последовательность <root><key>, портится.
	out, _ := Apply([]byte(`San.Num`), []Binding{
		bind("n", num(".Num", "9")),
	}, Options{})
	if string(out) != `Sa9` {
		t.Errorf("expected %q, got %q", `Sa9`, string(out))
	}
}

func TestApplyBoundaryMode(t *testing.T) {
	binding := []Binding{bind("n", num(".Num", "9"))}

	cases := []struct {
		in   string
		want string
	}{
		{`San.Num`, `San.Num`},     // слева приклеен идентификатор
		{`n.Number`, `n.Number`},   // справа продолжается имя
		{`(n.Num)`, `(9)`},         // честная ссылка в скобках
		{`n.Num`, `9`},             // края текста — валидные границы
		{`x=n.Num;`, `x=9;`},       // соседние не-идентификаторные байты
		{"ёn.Num", "ёn.Num"}, // не-ASCII слева считается именем
	}
	for _, c := range cases {
		out, _ := Apply([]byte(c.in), binding, Options{Boundary: true})
		if string(out) != c.want {
			t.Errorf("%q: expected %q, got %q", c.in, c.want, string(out))
		}
	}
}

func TestApplyBoundaryCountsOnlyFired(t *testing.T) {
	out, replaced := Apply([]byte(`San.Num n.Num`), []Binding{
		bind("n", num(".Num", "9")),
	}, Options{Boundary: true})
	if string(out) != `San.Num 9` {
		t.Errorf("expected %q, got %q", `San.Num 9`, string(out))
	}
	if replaced != 1 {
		t.Errorf("expected 1 replacement, got %d", replaced)
	}
}

func TestApplyNoBindings(t *testing.T) {
	text := `untouched()`
	out, replaced := Apply([]byte(text), nil, Options{})
	if string(out) != text {
		t.Errorf("expected %q, got %q", text, string(out))
	}
	if replaced != 0 {
		t.Errorf("expected 0 replacements, got %d", replaced)
	}
}

// Исходный порядок аргументов не мутируется: сортировка работает
// на копиях.
func TestApplyKeepsInputOrder(t *testing.T) {
	members := []enumdef.Member{str(".x", "1"), str(".xy", "2")}
	bindings := []Binding{bind("a", members...), bind("ab", str(".z", "3"))}
	_, _ = Apply([]byte(`a.x ab.z`), bindings, Options{})
	if bindings[0].Root != "a" || bindings[1].Root != "ab" {
		t.Error("binding order mutated")
	}
	if members[0].Key != ".x" || members[1].Key != ".xy" {
		t.Error("member order mutated")
	}
}
