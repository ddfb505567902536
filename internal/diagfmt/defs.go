package diagfmt

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"unenum/internal/enumdef"
	"unenum/internal/source"
)

// MemberOutput представляет один член определения для JSON
type MemberOutput struct {
	Name    string `json:"name"`
	Literal string `json:"literal"`
	Kind    string `json:"kind"`
}

// DefOutput представляет одно определение для JSON
type DefOutput struct {
	PublicRoot string         `json:"public_root"`
	InnerRoot  string         `json:"inner_root"`
	StartByte  uint32         `json:"start_byte"`
	EndByte    uint32         `json:"end_byte"`
	StartLine  uint32         `json:"start_line"`
	StartCol   uint32         `json:"start_col"`
	EndLine    uint32         `json:"end_line"`
	EndCol     uint32         `json:"end_col"`
	Introduced bool           `json:"introduced"`
	Members    []MemberOutput `json:"members,omitempty"`
}

// ScanOutput представляет корневую структуру JSON вывода
type ScanOutput struct {
	File        string      `json:"file"`
	SHA256      string      `json:"sha256"`
	Count       int         `json:"count"`
	Definitions []DefOutput `json:"definitions"`
}

// BuildScanOutput формирует структуру JSON-вывода без сериализации.
func BuildScanOutput(defs []enumdef.Definition, members [][]enumdef.Member, file *source.File) ScanOutput {
	out := make([]DefOutput, 0, len(defs))

	for i, def := range defs {
		var outMembers []MemberOutput
		for _, m := range members[i] {
			outMembers = append(outMembers, MemberOutput{
				Name:    m.Name(),
				Literal: m.Literal,
				Kind:    m.Kind(),
			})
		}

		startPos, endPos := file.Resolve(def.Span)
		out = append(out, DefOutput{
			PublicRoot: def.PublicRoot,
			InnerRoot:  def.InnerRoot,
			StartByte:  def.Span.Start,
			EndByte:    def.Span.End,
			StartLine:  startPos.Line,
			StartCol:   startPos.Col,
			EndLine:    endPos.Line,
			EndCol:     endPos.Col,
			Introduced: def.Introduced,
			Members:    outMembers,
		})
	}

	return ScanOutput{
		File:        file.Path,
		SHA256:      hex.EncodeToString(file.Hash[:]),
		Count:       len(out),
		Definitions: out,
	}
}

// FormatDefsPretty выводит найденные определения в человекочитаемом формате
func FormatDefsPretty(w io.Writer, defs []enumdef.Definition, members [][]enumdef.Member, file *source.File) error {
	for i, def := range defs {
		// Получаем позицию определения
		startPos, endPos := file.Resolve(def.Span)

		fmt.Fprintf(w, "%3d: %-12s", i+1, def.PublicRoot)
		fmt.Fprintf(w, " (%d members)", len(members[i]))
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if def.Introduced {
			fmt.Fprint(w, " declared")
		} else {
			fmt.Fprint(w, " joined")
		}

		fmt.Fprintln(w)

		for _, m := range members[i] {
			fmt.Fprintf(w, "       %s%s = %s (%s)\n", def.PublicRoot, m.Key, m.Literal, m.Kind())
		}
	}
	return nil
}

// FormatDefsJSON выводит найденные определения в JSON формате.
// Корневой объект несёт путь и sha256 бандла, чтобы результат можно
// было сопоставить с конкретной версией файла.
func FormatDefsJSON(w io.Writer, defs []enumdef.Definition, members [][]enumdef.Member, file *source.File) error {
	output := BuildScanOutput(defs, members, file)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
