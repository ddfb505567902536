// Package rewrite substitutes enum member references in stripped text
// with their literal values. Replacement is purely textual: the default
// mode reproduces the classic substring behavior, the boundary mode
// additionally requires both neighbours of a match to be non-identifier
// bytes.
package rewrite

import (
	"bytes"
	"sort"

	"unenum/internal/enumdef"
)

// Binding ties a public root to its decoded member table.
type Binding struct {
	Root    string
	Members []enumdef.Member
}

// Options tunes the substitution behavior.
type Options struct {
	// Boundary blocks replacements whose neighbouring bytes are
	// identifier characters, so `San.Num` keeps its name while
	// `(n.Num)` is rewritten. Off by default: plain substring
	// replacement is the stock behavior, boundary is the hardened one.
	Boundary bool
}

// Apply rewrites every `<root><key>` occurrence to the member's literal
// and reports how many replacements fired.
//
// Longer roots go first, and within one binding longer keys go first:
// otherwise a shorter pattern that prefixes a longer one would fire
// prematurely and corrupt the longer reference. Order among equal
// lengths keeps discovery order, so the result is deterministic.
func Apply(text []byte, bindings []Binding, opts Options) ([]byte, int) {
	ordered := make([]Binding, len(bindings))
	copy(ordered, bindings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Root) > len(ordered[j].Root)
	})

	replaced := 0
	for _, b := range ordered {
		members := make([]enumdef.Member, len(b.Members))
		copy(members, b.Members)
		sort.SliceStable(members, func(i, j int) bool {
			return len(members[i].Key) > len(members[j].Key)
		})
		for _, m := range members {
			pat := []byte(b.Root + m.Key)
			lit := []byte(m.Literal)
			if opts.Boundary {
				var n int
				text, n = replaceBounded(text, pat, lit)
				replaced += n
				continue
			}
			if n := bytes.Count(text, pat); n > 0 {
				text = bytes.ReplaceAll(text, pat, lit)
				replaced += n
			}
		}
	}
	return text, replaced
}

// replaceBounded is ReplaceAll that skips matches glued to identifier
// bytes on either side.
func replaceBounded(text, pat, lit []byte) ([]byte, int) {
	var out bytes.Buffer
	out.Grow(len(text))
	replaced := 0
	i := 0
	for {
		j := bytes.Index(text[i:], pat)
		if j < 0 {
			out.Write(text[i:])
			break
		}
		at := i + j
		end := at + len(pat)
		if boundaryOK(text, at, end) {
			out.Write(text[i:at])
			out.Write(lit)
			replaced++
			i = end
			continue
		}
		// Заблокированное совпадение пропускаем на один байт, чтобы не
		// потерять перекрывающееся честное.
		out.Write(text[i : at+1])
		i = at + 1
	}
	return out.Bytes(), replaced
}

func boundaryOK(text []byte, at, end int) bool {
	if at > 0 && isIdentByte(text[at-1]) {
		return false
	}
	if end < len(text) && isIdentByte(text[end]) {
		return false
	}
	return true
}

// isIdentByte is wider than the scanner's ASCII set: any non-ASCII
// byte may sit inside a multi-byte identifier, so the boundary check
// treats it as identifier material.
func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9') ||
		b >= 0x80
}
