// Package parser matches text against format templates and converts the
// captured fields into typed values. It is the reverse of template rendering.
//
// Core types:
//   - Pattern: a compiled template, safe for concurrent use
//   - Result: the typed values of one successful match
//   - Match: raw captures, converted on demand with Evaluate
//
// Example usage:
//
//	p := parser.MustCompile("{name} is {age:d} years old")
//	r := p.Parse("Alice is 30 years old")
//	if r != nil {
//	    fmt.Println(r.Named["name"], r.Named["age"]) // Alice 30
//	}
//
//	for r := range p.FindAll(text) {
//	    ...
//	}
//
// A subject that does not match is not an error: Parse, Search and FindAll
// return nil or stop. Fields whose text cannot be converted make the whole
// match fail; Match.Evaluate reports the *ConversionError instead.
//
// Convenience functions compile the template on each call, reusing recent
// compilations:
//
//	r, err := parser.Parse("{:d}-{:d}", "12-34")
package parser
