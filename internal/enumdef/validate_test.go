package enumdef

import (
	"testing"
)

func TestValidateAcceptsBothShapes(t *testing.T) {
	cases := []struct {
		name     string
		interior string
		root     string
	}{
		{"numeric only", `t[t.Up=0]="Up"`, "t"},
		{"string only", `t.Mode="fast"`, "t"},
		{"mixed", `t[t.Num=123]="Num",t.Str="ABC"`, "t"},
		{"several numeric", `r[r.A=0]="A",r[r.B=1]="B",r[r.C=2]="C"`, "r"},
		{"negative and float", `q[q.Neg=-1]="Neg",q[q.Half=.5]="Half"`, "q"},
		{"multi-char root", `e2[e2.X=0]="X",e2.Y="y"`, "e2"},
	}
	for _, c := range cases {
		if !Validate(c.interior, c.root) {
			t.Errorf("%s: Validate(%q, %q) = false, want true", c.name, c.interior, c.root)
		}
	}
}

func TestValidateRejectsLookalikes(t *testing.T) {
	cases := []struct {
		name     string
		interior string
		root     string
	}{
		{"empty interior", ``, "t"},
		{"empty root", `t.A="x"`, ""},
		{"no assignment", `t.A"x"`, "t"},
		{"no trailing quote", `t[t.A=1]="A",t.B=5`, "t"},
		{"wrong root", `x[x.A=1]="A"`, "t"},
		{"root прилип к другой переменной", `tt.A="x"`, "t"},
		{"plain call chain", `fetch(url).then(go)`, "t"},
		{"one bad entry poisons block", `t[t.A=1]="A",done()`, "t"},
		{"trailing separator", `t.A="x",`, "t"},
		{"bracket without dot", `t[q.A=1]="A"`, "t"},
	}
	for _, c := range cases {
		if Validate(c.interior, c.root) {
			t.Errorf("%s: Validate(%q, %q) = true, want false", c.name, c.interior, c.root)
		}
	}
}

// Валидатор не должен принимать строковую форму за числовую:
// `t.A="x"` не имеет префикса `t[t.`, но валиден как строковая форма.
func TestValidateShapesDoNotOverlap(t *testing.T) {
	if !Validate(`t.A="x"`, "t") {
		t.Error("string shape rejected")
	}
	if !Validate(`t[t.A=1]="A"`, "t") {
		t.Error("numeric shape rejected")
	}
	// Обрезанная числовая запись без reverse-lookup хвоста — не форма.
	if Validate(`t[t.A=1`, "t") {
		t.Error("truncated numeric entry accepted")
	}
}
