package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDerivePaths(t *testing.T) {
	cases := []struct {
		target string
		backup string
		log    string
	}{
		{"dist/app.js", "dist/app.orig.js", "dist/app.enums.log"},
		{"bundle.min.js", "bundle.min.orig.js", "bundle.min.enums.log"},
		{"out/script", "out/script.orig", "out/script.enums.log"},
	}
	for _, c := range cases {
		p := DerivePaths(c.target, DefaultBackupSuffix, DefaultLogSuffix)
		if p.Backup != c.backup {
			t.Errorf("%s: expected backup %q, got %q", c.target, c.backup, p.Backup)
		}
		if p.Log != c.log {
			t.Errorf("%s: expected log %q, got %q", c.target, c.log, p.Log)
		}
		if p.Target != c.target {
			t.Errorf("%s: target path mutated to %q", c.target, p.Target)
		}
	}
}

func TestDerivePathsCustomSuffixes(t *testing.T) {
	p := DerivePaths("app.js", ".bak", ".removed.txt")
	if p.Backup != "app.bak.js" {
		t.Errorf("expected app.bak.js, got %q", p.Backup)
	}
	if p.Log != "app.removed.txt" {
		t.Errorf("expected app.removed.txt, got %q", p.Log)
	}
}

func TestFormatLog(t *testing.T) {
	if body := FormatLog(nil); len(body) != 0 {
		t.Errorf("expected empty body, got %q", body)
	}
	body := FormatLog([]string{"one", "two"})
	if string(body) != "one\ntwo\n" {
		t.Errorf("expected %q, got %q", "one\ntwo\n", string(body))
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app.js")
	original := []byte(`var E=(t=>(t.A="x",t))(E||{});use(E.A);`)
	final := []byte(`use("x");`)
	if err := os.WriteFile(target, original, 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}

	paths := DerivePaths(target, DefaultBackupSuffix, DefaultLogSuffix)
	rep := Write(paths, original, final, []string{`var E=(t=>(t.A="x",t))(E||{})`})
	if err := rep.Err(); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := os.ReadFile(paths.Backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != string(original) {
		t.Errorf("backup is not verbatim original: %q", got)
	}

	got, err = os.ReadFile(paths.Target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(got) != string(final) {
		t.Errorf("target mismatch: %q", got)
	}

	got, err = os.ReadFile(paths.Log)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(got) != "var E=(t=>(t.A=\"x\",t))(E||{})\n" {
		t.Errorf("log mismatch: %q", got)
	}

	if rep.Target.Written != len(final) {
		t.Errorf("expected %d target bytes, got %d", len(final), rep.Target.Written)
	}
}

func TestWriteEmptyLog(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app.js")
	if err := os.WriteFile(target, []byte("clean()"), 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	paths := DerivePaths(target, DefaultBackupSuffix, DefaultLogSuffix)
	rep := Write(paths, []byte("clean()"), []byte("clean()"), nil)
	if err := rep.Err(); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := os.ReadFile(paths.Log)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty log file, got %q", got)
	}
}

// Права исходного файла наследуются всеми тремя артефактами.
func TestWriteModePreserved(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app.js")
	if err := os.WriteFile(target, []byte("x"), 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	paths := DerivePaths(target, DefaultBackupSuffix, DefaultLogSuffix)
	if err := Write(paths, []byte("x"), []byte("y"), nil).Err(); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, p := range []string{paths.Target, paths.Backup, paths.Log} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("%s: expected mode 0600, got %v", p, info.Mode().Perm())
		}
	}
}

// Если запись backup или лога провалилась, целевой файл остаётся
// нетронутым: оригинал всегда можно восстановить с диска.
func TestWriteSiblingFailureKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app.js")
	original := []byte("original()")
	if err := os.WriteFile(target, original, 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}

	paths := Paths{
		Target: target,
		Backup: filepath.Join(dir, "missing", "app.orig.js"),
		Log:    filepath.Join(dir, "app.enums.log"),
	}
	rep := Write(paths, original, []byte("rewritten()"), nil)
	if rep.Err() == nil {
		t.Fatal("expected write failure")
	}
	if rep.Backup.Err == nil {
		t.Error("expected backup failure to be reported")
	}
	if rep.Target.Err == nil {
		t.Error("expected target skip to be reported")
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(got) != string(original) {
		t.Errorf("target was touched despite sibling failure: %q", got)
	}
}
