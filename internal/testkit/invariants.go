package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"unenum/internal/enumdef"
	"unenum/internal/source"
)

// CheckDefinitionInvariants runs a minimal set of invariants on scan output:
// 1) every definition names both roots
// 2) every span is non-empty and within file content bounds
// 3) spans are ordered and pairwise disjoint
// 4) Raw is the verbatim text of the span
// 5) the introducing token matches the Introduced flag
func CheckDefinitionInvariants(defs []enumdef.Definition, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prev source.Span
	for i, def := range defs {
		if def.PublicRoot == "" || def.InnerRoot == "" {
			return fmt.Errorf("definition %d misses a root: public=%q inner=%q", i, def.PublicRoot, def.InnerRoot)
		}

		sp := def.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty definition span: %v", sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("definition span end beyond content: %d > %d", sp.End, lenContent)
		}

		if i > 0 && !prev.Before(sp) {
			return fmt.Errorf("definition spans overlap or are unordered: %v then %v", prev, sp)
		}
		prev = sp

		if raw := sf.Text(sp); raw != def.Raw {
			return fmt.Errorf("raw text mismatch for %q: span holds %q, Raw holds %q", def.PublicRoot, raw, def.Raw)
		}

		switch {
		case def.Introduced && !strings.HasPrefix(def.Raw, "var "):
			return fmt.Errorf("introduced definition %q does not start with declaration: %q", def.PublicRoot, def.Raw)
		case !def.Introduced && !strings.HasPrefix(def.Raw, ","):
			return fmt.Errorf("joined definition %q does not start with separator: %q", def.PublicRoot, def.Raw)
		}
	}
	return nil
}
