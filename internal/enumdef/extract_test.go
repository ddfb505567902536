package enumdef

import (
	"testing"
)

func TestExtractMixedMembers(t *testing.T) {
	members, err := Extract(`t[t.NumberEnumItem=123]="NumberEnumItem",t.StringEnumItem="ABC"`, "t")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}

	num := members[0]
	if num.Key != ".NumberEnumItem" {
		t.Errorf("expected key .NumberEnumItem, got %q", num.Key)
	}
	if num.Literal != "123" {
		t.Errorf("expected literal 123, got %q", num.Literal)
	}
	if !num.Numeric {
		t.Error("expected numeric member")
	}

	str := members[1]
	if str.Key != ".StringEnumItem" {
		t.Errorf("expected key .StringEnumItem, got %q", str.Key)
	}
	if str.Literal != `"ABC"` {
		t.Errorf("expected literal %q, got %q", `"ABC"`, str.Literal)
	}
	if str.Numeric {
		t.Error("expected string member")
	}
}

// Порядок членов в результате совпадает с порядком в исходнике.
func TestExtractPreservesSourceOrder(t *testing.T) {
	members, err := Extract(`r[r.C=2]="C",r[r.A=0]="A",r.B="b"`, "r")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []string{".C", ".A", ".B"}
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for i, key := range want {
		if members[i].Key != key {
			t.Errorf("member %d: expected key %q, got %q", i, key, members[i].Key)
		}
	}
}

func TestExtractExoticNumericLiterals(t *testing.T) {
	members, err := Extract(`t[t.Neg=-12.5]="Neg",t[t.Exp=1e3]="Exp"`, "t")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if members[0].Literal != "-12.5" {
		t.Errorf("expected literal -12.5, got %q", members[0].Literal)
	}
	if members[1].Literal != "1e3" {
		t.Errorf("expected literal 1e3, got %q", members[1].Literal)
	}
}

func TestExtractStringLiteralKeepsQuotes(t *testing.T) {
	members, err := Extract(`t.Empty=""`, "t")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if members[0].Literal != `""` {
		t.Errorf("expected quoted empty string, got %q", members[0].Literal)
	}
}

func TestExtractMalformedEntry(t *testing.T) {
	// Extract предполагает, что Validate уже пропустил блок; на мусоре
	// он обязан вернуть ошибку, а не тихий результат.
	cases := []string{
		`t[t.A1]="A"`,   // нет =
		`t[t.A=1"A"`,    // нет ]=
		`done()`,        // вообще не член
		`t[t.]=-1]="x"`, // = раньше ]=
	}
	for _, interior := range cases {
		if _, err := Extract(interior, "t"); err == nil {
			t.Errorf("Extract(%q) succeeded, want error", interior)
		}
	}
}

func TestMemberKindAndName(t *testing.T) {
	m := Member{Key: ".Speed", Literal: "3", Numeric: true}
	if m.Kind() != "number" {
		t.Errorf("expected kind number, got %q", m.Kind())
	}
	if m.Name() != "Speed" {
		t.Errorf("expected name Speed, got %q", m.Name())
	}
	s := Member{Key: ".Mode", Literal: `"fast"`}
	if s.Kind() != "string" {
		t.Errorf("expected kind string, got %q", s.Kind())
	}
}
