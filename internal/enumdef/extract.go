package enumdef

import (
	"fmt"
	"strings"
)

// Extract декодирует валидный interior в упорядоченный список членов.
// Порядок записей сохраняется как в исходнике — он нужен для честного
// журнала удалений; порядок замен движок подстановки вычисляет сам.
//
// Interior предполагается уже прошедшим Validate; ошибка здесь означает
// нарушение этого предусловия, а не плохой вход.
func Extract(interior, innerRoot string) ([]Member, error) {
	entries := strings.Split(interior, ",")
	members := make([]Member, 0, len(entries))

	for _, entry := range entries {
		m, err := decodeEntry(entry, innerRoot)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// decodeEntry разбирает одну запись внутренности.
//
//	числовая:  t[t.Key=LIT]="Key" → ключ ".Key", литерал LIT
//	строковая: t.Key="LIT"        → ключ ".Key", литерал "LIT" (с кавычками)
func decodeEntry(entry, innerRoot string) (Member, error) {
	if strings.HasPrefix(entry, innerRoot+"[") {
		// Внутренность reverse-lookup скобки: t.Key=LIT
		inner := entry[len(innerRoot)+1:]
		assign := strings.Index(inner, "=")
		closeMark := strings.Index(inner, "]=")
		if assign < 0 || closeMark < 0 || assign >= closeMark {
			return Member{}, fmt.Errorf("malformed numeric member entry %q", entry)
		}
		key := strings.TrimPrefix(inner[:assign], innerRoot)
		return Member{
			Key:     key,
			Literal: inner[assign+1 : closeMark],
			Numeric: true,
		}, nil
	}

	if strings.HasPrefix(entry, innerRoot+".") {
		assign := strings.Index(entry, "=")
		if assign < 0 {
			return Member{}, fmt.Errorf("malformed string member entry %q", entry)
		}
		key := strings.TrimPrefix(entry[:assign], innerRoot)
		return Member{
			Key:     key,
			Literal: entry[assign+1:],
			Numeric: false,
		}, nil
	}

	return Member{}, fmt.Errorf("entry %q does not match a known member shape", entry)
}
