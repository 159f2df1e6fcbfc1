package common

import (
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsExported reports whether name starts with an upper-case letter.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}

// Capitalize upper-cases the first letter of name.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}
