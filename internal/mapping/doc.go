// Package mapping builds the lookup tables used to transcribe IPA into
// toolkit notation. A base IPA → toolkit table is loaded from CSV, a
// versioned correction ruleset is applied to it, and the result is split
// into single-symbol mappings and two-symbol override rules.
package mapping
