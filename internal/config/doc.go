// Package config provides the YAML configuration of mock generation.
//
// A configuration file selects the packages to analyze, tunes the synthesis
// engine and pins per-type settings:
//
//	version: "1"
//	strict: false
//	seed: 42
//	max_array_len: 5
//	max_depth: 32
//	output: mock_gen.go
//	packages: [./store, ./warehouse]
//	types:
//	  - name: store.Order
//	    count: 3
//	    strategy: random
//	    overrides:
//	      Status: StatusPaid
//	      Note: nil
//
// Override values follow Go literal syntax. Quoted YAML scalars are always
// strings; plain scalars are parsed as numbers, booleans, nil or
// identifiers, falling back to a string.
//
// Shapes describe declarations without Go source, for the synth command:
//
//	shapes:
//	  - name: Person
//	    kind: record
//	    members:
//	      - name: name
//	        type: string
//	      - name: age
//	        type: int
//	  - name: Color
//	    kind: enum
//	    cases:
//	      - name: Red
//	      - name: Green
//
// Shape type strings are Go type expressions classified by analyze.ParseType.
package config
