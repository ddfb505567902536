package source

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"
)

// TestVirtualFile проверяет создание файла из памяти
func TestVirtualFile(t *testing.T) {
	f := NewVirtualFile("bundle.js", []byte("abc"))
	if !f.Virtual {
		t.Error("Expected Virtual flag to be set")
	}
	if f.Path != "bundle.js" {
		t.Errorf("Expected path bundle.js, got %s", f.Path)
	}
	if f.Size() != 3 {
		t.Errorf("Expected size 3, got %d", f.Size())
	}
	want := sha256.Sum256([]byte("abc"))
	if f.Hash != want {
		t.Error("Expected content hash to match sha256 of content")
	}
}

// TestLoadKeepsBytesVerbatim проверяет, что Load не нормализует содержимое:
// BOM и CRLF должны сохраниться как есть
func TestLoadKeepsBytesVerbatim(t *testing.T) {
	raw := []byte("\xEF\xBB\xBFvar a=1;\r\nvar b=2;\r\n")
	path := filepath.Join(t.TempDir(), "bundle.js")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(f.Content) != string(raw) {
		t.Errorf("Load changed content:\n got %q\nwant %q", f.Content, raw)
	}
	if f.Virtual {
		t.Error("Expected Virtual flag to be unset for disk file")
	}
}

// TestLoadMissingFile проверяет ошибку на отсутствующем файле
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.js"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

// TestResolvePositions проверяет резолв позиций: '\n' относится к строке,
// которую он завершает
func TestResolvePositions(t *testing.T) {
	// "α\nβ": α — байты 0..1, '\n' — 2, β — 3..4
	f := NewVirtualFile("t.js", []byte("α\nβ"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // сам '\n'
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
	}
	for _, c := range cases {
		got := f.Pos(c.off)
		if got != c.want {
			t.Errorf("Pos(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}

	start, end := f.Resolve(Span{Start: 0, End: 2})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("Resolve start = %+v, want 1:1", start)
	}
	if (end != LineCol{Line: 1, Col: 3}) {
		t.Errorf("Resolve end = %+v, want 1:3", end)
	}
}

// TestResolveSingleLine — минифицированный бандл без переводов строк
func TestResolveSingleLine(t *testing.T) {
	f := NewVirtualFile("t.js", []byte("var a=1;var b=2;"))
	got := f.Pos(9)
	if (got != LineCol{Line: 1, Col: 10}) {
		t.Errorf("Pos(9) = %+v, want 1:10", got)
	}
}

// TestSpanHelpers проверяет Contains/Before/Text
func TestSpanHelpers(t *testing.T) {
	f := NewVirtualFile("t.js", []byte("abcdef"))
	outer := Span{Start: 1, End: 5}
	inner := Span{Start: 2, End: 4}

	if !outer.Contains(inner) {
		t.Error("Expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Error("Expected inner not to contain outer")
	}
	if !(Span{Start: 0, End: 2}).Before(Span{Start: 2, End: 3}) {
		t.Error("Expected adjacent spans to be ordered")
	}
	if (Span{Start: 0, End: 3}).Before(Span{Start: 2, End: 4}) {
		t.Error("Expected overlapping spans not to be ordered")
	}
	if got := f.Text(inner); got != "cd" {
		t.Errorf("Text = %q, want cd", got)
	}
	if outer.Len() != 4 || outer.Empty() {
		t.Errorf("Len/Empty mismatch for %v", outer)
	}
	if (Span{Start: 3, End: 3}).Empty() == false {
		t.Error("Expected zero-length span to be empty")
	}
	if outer.String() != "1-5" {
		t.Errorf("String = %q, want 1-5", outer.String())
	}
}
