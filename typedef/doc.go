// Package typedef loads custom field types from declarative definition files.
//
// A definition file lists named types, each with a regexp fragment and a
// kind that says how matched text becomes a value:
//
//	case_sensitive: false
//	types:
//	  - name: hexbyte
//	    pattern: '[0-9a-f]{2}'
//	    kind: int
//	    base: 16
//	  - name: level
//	    pattern: 'debug|info|warn|error'
//	    kind: enum
//	    values: {debug: 0, info: 1, warn: 2, error: 3}
//
// YAML, TOML and JSON files are accepted; unknown keys are rejected.
// Load reads a file, Watch reloads it whenever it changes, and the
// resulting Set plugs into parser.Compile through Set.Options.
package typedef
