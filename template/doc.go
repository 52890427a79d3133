// Package template compiles format templates written in the {name:spec}
// field grammar into an ordered sequence of literal and field segments.
//
// # Syntax
//
// Literal text is matched verbatim. Doubled braces stand for literal braces:
//
//	{{literal}} -> "{literal}"
//
// Fields name an identity and an optional format spec:
//
//	{}            auto-numbered positional field
//	{0}           indexed positional field
//	{name}        named field
//	{name:spec}   named field with a format spec
//
// The spec grammar is
//
//	[[fill]align][sign][#][0][width][,][.precision][type]
//
// where align is one of '<', '>' or '^', and fill is any single character
// written directly before the align token. The type is resolved against a
// types.Registry; codes containing strftime directives such as "%Y-%m-%d"
// describe dates.
//
// # Example
//
//	tmpl, err := template.Compile("{name:.>10} is {age:d}", nil)
//	if err != nil {
//	    return err
//	}
//	out, err := tmpl.Render(template.Values{
//	    Named: map[string]any{"name": "Joe", "age": 42},
//	})
//	// out: ".......Joe is 42"
//
// Compile errors wrap one of the sentinel errors in this package inside a
// *CompileError that records where in the template the problem is.
package template
