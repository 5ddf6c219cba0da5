package mapping

import "unicode/utf8"

// SymbolMapping maps a single IPA code point to its toolkit code
type SymbolMapping map[rune]string

// Overrides is a priority-ordered set of two-symbol rules with constant
// time lookup. When two rules share a window the earlier one wins, which
// is what a first-match scan over the ordered list would return.
type Overrides struct {
	rules []Pair
	index map[[2]rune]string
}

// NewOverrides creates an override set from rules in priority order.
// Rules whose IPA is not exactly two code points are returned separately.
func NewOverrides(rules ...Pair) (*Overrides, []Pair) {
	o := &Overrides{index: make(map[[2]rune]string, len(rules))}
	var rejected []Pair
	for _, r := range rules {
		if !o.add(r) {
			rejected = append(rejected, r)
		}
	}
	return o, rejected
}

func (o *Overrides) add(r Pair) bool {
	window, ok := pairWindow(r.IPA)
	if !ok {
		return false
	}
	o.rules = append(o.rules, r)
	if _, taken := o.index[window]; !taken {
		o.index[window] = r.Toolkit
	}
	return true
}

// Lookup returns the code of the highest priority rule matching a, b
func (o *Overrides) Lookup(a, b rune) (string, bool) {
	if o == nil {
		return "", false
	}
	code, ok := o.index[[2]rune{a, b}]
	return code, ok
}

// Rules returns the rules in priority order
func (o *Overrides) Rules() []Pair {
	if o == nil {
		return nil
	}
	return append([]Pair(nil), o.rules...)
}

// Len returns the number of rules
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.rules)
}

func pairWindow(s string) ([2]rune, bool) {
	var w [2]rune
	if utf8.RuneCountInString(s) != 2 {
		return w, false
	}
	i := 0
	for _, r := range s {
		w[i] = r
		i++
	}
	return w, true
}

// Tables is the output of Build
type Tables struct {
	Symbols   SymbolMapping
	Overrides *Overrides
	// Unreachable holds override rules that are not exactly two symbols:
	// base entries longer than two and prepended rules of any other length.
	// The transcoder only matches overrides on a two-symbol window.
	Unreachable []Pair
	Version     string
}

// Build applies the ruleset to base and splits the result. Single-symbol
// keys become SymbolMapping entries. Two-symbol keys become overrides in
// base order, after the ruleset's prepended rules. Build never fails:
// gaps in the base table surface later as transcription failures.
func Build(base *Table, rs Ruleset) *Tables {
	corrected := rs.Apply(base)

	var overrideRules []Pair
	overrideRules = append(overrideRules, rs.Prepend...)

	symbols := make(SymbolMapping)
	for _, p := range corrected.Pairs() {
		switch n := utf8.RuneCountInString(p.IPA); {
		case n == 0:
			continue
		case n == 1:
			r, _ := utf8.DecodeRuneInString(p.IPA)
			symbols[r] = p.Toolkit
		default:
			overrideRules = append(overrideRules, p)
		}
	}

	overrides, unreachable := NewOverrides(overrideRules...)
	return &Tables{
		Symbols:     symbols,
		Overrides:   overrides,
		Unreachable: unreachable,
		Version:     rs.Version,
	}
}
