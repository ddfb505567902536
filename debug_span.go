package main

import (
    "fmt"
    "os"

    "unenum/internal/driver"
    "unenum/internal/rewrite"
    "unenum/internal/source"
)

func main() {
    file := "testdata/mixed.js"
    res, err := driver.Scan(file, driver.Options{})
    if err != nil {
        fmt.Printf("scan error: %v\n", err)
        os.Exit(1)
    }
    if res.Truncated {
        fmt.Printf("truncated after %d steps\n", res.Steps)
    }
    for i, def := range res.Defs {
        fmt.Printf("def %d: public=%q inner=%q introduced=%v span=[%d,%d)\n",
            i, def.PublicRoot, def.InnerRoot, def.Introduced, def.Span.Start, def.Span.End)
        fmt.Printf("  raw      %q\n", def.Raw)
        fmt.Printf("  interior %q\n", def.Interior)
        for _, m := range res.Members[i] {
            fmt.Printf("  member %s = %s numeric=%v\n", m.Key, m.Literal, m.Numeric)
        }
        dumpWindow(res.File, def.Span.Start)
        dumpWindow(res.File, def.Span.End)
    }
    for _, d := range res.Bag.Items() {
        fmt.Printf("bag: [%s] %s\n", d.Code.ID(), d.Message)
    }
    fmt.Printf("stripped: %s\n", res.Stripped)

    bindings := make([]rewrite.Binding, len(res.Defs))
    for i, def := range res.Defs {
        bindings[i] = rewrite.Binding{Root: def.PublicRoot, Members: res.Members[i]}
    }
    final, n := rewrite.Apply(res.Stripped, bindings, rewrite.Options{Boundary: true})
    fmt.Printf("replaced %d refs\nfinal: %s\n", n, final)
}

func dumpWindow(f *source.File, off uint32) {
    if f == nil || len(f.Content) == 0 {
        fmt.Println("no content")
        return
    }
    lo := int(off) - 12
    if lo < 0 {
        lo = 0
    }
    hi := int(off) + 12
    if hi > len(f.Content) {
        hi = len(f.Content)
    }
    fmt.Printf("  window @%d [%d,%d): %q\n", off, lo, hi, f.Content[lo:hi])
}
