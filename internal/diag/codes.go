package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Сканирование
	ScanInfo             Code = 1000
	ScanRootAborted      Code = 1001
	ScanClosingNotFound  Code = 1002
	ScanInteriorRejected Code = 1003
	ScanRunaway          Code = 1004
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown",

	ScanInfo:             "Scan note",
	ScanRootAborted:      "Candidate abandoned before interior",
	ScanClosingNotFound:  "Closing sequence not found",
	ScanInteriorRejected: "Interior failed shape validation",
	ScanRunaway:          "Scan stopped by step budget",
}

func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("SCAN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
