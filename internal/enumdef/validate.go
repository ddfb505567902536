package enumdef

import (
	"strings"
)

// Validate сообщает, является ли interior внутренностью сгенерированного
// enum с внутренним корнем innerRoot.
//
// Разбиваем по разделителю; блок валиден, только если КАЖДАЯ запись
// соответствует ровно одной из двух известных форм:
//
//	числовая:  начинается с `<innerRoot>[<innerRoot>.`, содержит `=`,
//	           кончается кавычкой;
//	строковая: начинается с `<innerRoot>.`, содержит `=`, кончается кавычкой.
//
// Любое отклонение отклоняет блок целиком: эта проверка существует ровно
// для того, чтобы отсеивать структурных двойников, которые enum-ом не
// являются.
func Validate(interior, innerRoot string) bool {
	if interior == "" || innerRoot == "" {
		return false
	}
	numericPrefix := innerRoot + "[" + innerRoot + "."
	stringPrefix := innerRoot + "."

	for _, entry := range strings.Split(interior, ",") {
		if !strings.HasSuffix(entry, `"`) {
			return false
		}
		if !strings.Contains(entry, "=") {
			return false
		}
		if !strings.HasPrefix(entry, numericPrefix) && !strings.HasPrefix(entry, stringPrefix) {
			return false
		}
	}
	return true
}
