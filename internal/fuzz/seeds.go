package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addBundleSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".js" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addBundleSeeds подмешивает рукописные примеры: обе формы членов,
// сцепленные объявления и тексты-ловушки, похожие на enum.
func addBundleSeeds(f *testing.F) {
	seeds := []string{
		``,
		`,`,
		`var `,
		`var n=(t=>(t[t.Num=123]="Num",t.Str="ABC",t))(n||{});`,
		`var a=1,E=(t=>(t.A="x",t))(E||{}),b=2;`,
		`var A=(t=>(t.X="1",t))(A||{}),B=(r=>(r.Y="2",r))(B||{});`,
		`var $e=(_t=>(_t[_t.K=0]="K",_t))($e||{});use($e.K);`,
		`var x=(y=>y+1)(0);`,
		`var n=(t=>(t.ok(),t))(n||{});`,
		`const s="var n=(t";`,
		`f(a,E=(t=>(t.B="b",t))(E||{}))`,
		`var E,Q=(t=>(t.B="2",t))(Q||{})=(t=>(t.A="1",t))(E||{});`,
	}
	for _, seed := range seeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
