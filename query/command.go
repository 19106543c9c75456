// Package query implements the line-oriented driver that the spec (§6.2)
// treats as an external collaborator: it decodes textual commands and
// invokes the three core bptree operations. It is not part of the core
// and carries none of its invariants.
package query

// Verb identifies which of the line protocol's commands a Command carries.
type Verb int

const (
	// Put is "p <key> <val>" — insert-or-overwrite.
	Put Verb = iota
	// Get is "g <key>" — point lookup.
	Get
	// Range is "r <low> <high>" — half-open range scan.
	Range
	// Load is "l <path>" — binary load, unimplemented (spec.md §9).
	Load
	// Debug is ".tree" — prints tree structure and stats (SPEC_FULL §4).
	Debug
)

// Command is a single decoded query-line command.
type Command struct {
	Verb Verb
	Key  int32
	Val  int32
	Low  int32
	High int32
	Path string
}
