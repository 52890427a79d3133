// Package roundtrip pairs a compiled pattern with its renderer so that
// parsed values can be written back out and checked.
//
// A pattern is round-trip safe for some text when parsing the text,
// rendering the values, and parsing the rendered text again yields the same
// values. The rendered text itself may differ, for example in padding.
//
//	rt, err := roundtrip.New("Date: {date:%Y%m%d} Name: {name:.>16.16}")
//	res, err := rt.Verify("Date: 20251031 Name: .............Joe")
//	// res.Parsed.Named["name"] == "Joe"
package roundtrip
