// Package pattern turns a compiled template into the regular expressions
// that match it.
//
// Literal runs are quoted; every field becomes exactly one capture group
// built from its converter's fragment. Width bounds the padded field,
// precision bounds the content, and aligned fields also consume their fill
// padding and any surrounding whitespace. The post-processing step in
// package parser removes that padding again before conversion.
//
//	a, err := pattern.Build(tmpl, pattern.Options{})
//	m := a.Anchored().FindStringSubmatchIndex(text)
//	for _, slot := range a.Slots() {
//	    start, end := m[2*slot.Group], m[2*slot.Group+1]
//	    ...
//	}
package pattern
