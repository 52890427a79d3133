// Package formatparse matches text against {name:spec} format templates and
// renders values back through the same templates.
//
// A template mixes literal text with {name:spec} fields. The same template
// turns text into typed values and values into text:
//
//	p := parser.MustCompile("{name} is {age:d} years old")
//	r := p.Parse("Alice is 30 years old")
//	// r.Named["name"] == "Alice", r.Named["age"] == 30
//
// The subpackages can be used on their own:
//
//   - types: built-in field types, their grammars, conversion and formatting
//   - template: template syntax, compilation and rendering
//   - pattern: regular expressions built from compiled templates
//   - parser: Parse, Search and FindAll over text, with match spans
//   - roundtrip: render parsed values and verify that text survives a round trip
//   - typedef: custom types declared in YAML, TOML or JSON files
//
// # Quick Start
//
// Searching a log line:
//
//	import "github.com/randalmurphal/formatparse/parser"
//	r, _ := parser.Search("took {:f}s", "request 7 took 0.25s")
//	// r.Fixed[0] == 0.25
//
// Rendering:
//
//	import "github.com/randalmurphal/formatparse/roundtrip"
//	p, _ := roundtrip.New("{:>6.2f}|{unit}")
//	text, _ := p.Render(template.Values{Fixed: []any{3.14159}, Named: map[string]any{"unit": "m"}})
//	// text == "  3.14|m"
//
// Custom types:
//
//	import "github.com/randalmurphal/formatparse/typedef"
//	set, _ := typedef.Load("types.yaml")
//	p, _ := set.Compile("{:hexbyte}-{:level}")
//
// # Design Philosophy
//
//   - One template drives both parsing and rendering
//   - Patterns are immutable and safe for concurrent use
//   - Conversion failures reject a match instead of returning partial values
//   - Each package usable independently
package formatparse
