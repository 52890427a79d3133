package template

import "unicode"

// validName reports whether s can name a field. Names start with a letter
// or underscore; dotted and indexed forms such as "a.b" and "a[0]" are
// accepted as plain names.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 {
			if ch != '_' && !unicode.IsLetter(ch) {
				return false
			}
			continue
		}
		switch {
		case ch == '_' || ch == '.' || ch == '[' || ch == ']' || ch == '-':
		case unicode.IsLetter(ch) || unicode.IsDigit(ch):
		default:
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !isDigit(ch) {
			return false
		}
	}
	return true
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
