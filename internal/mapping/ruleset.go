package mapping

// DefaultRulesetVersion identifies the built-in correction ruleset
const DefaultRulesetVersion = "2024.1"

// Ruleset is a versioned set of corrections applied to the base table
// before it is split into symbols and overrides.
//
// Remove drops keys that have no single correct mapping. Set inserts or
// overwrites single entries after the removals. Prepend lists override
// rules that take priority over every override found in the base table.
type Ruleset struct {
	Version string   `mapstructure:"version"`
	Remove  []string `mapstructure:"remove"`
	Set     []Pair   `mapstructure:"set"`
	Prepend []Pair   `mapstructure:"prepend"`
}

// DefaultRuleset returns the corrections for the English transcription table
func DefaultRuleset() Ruleset {
	return Ruleset{
		Version: DefaultRulesetVersion,
		Remove: []string{
			"ɝ or ɚ",
			"ɑ~ɒ",
		},
		Set: []Pair{
			{IPA: "ɑ", Toolkit: "a"},
			{IPA: "ɒ", Toolkit: "a"},
			{IPA: "ɚ", Toolkit: "3r"},
			{IPA: "ɝ", Toolkit: "3r"},
		},
		Prepend: []Pair{
			{IPA: "eɪ", Toolkit: "8"},
		},
	}
}

// Apply returns a corrected copy of base. Missing removal keys are ignored;
// base itself is not modified.
func (r Ruleset) Apply(base *Table) *Table {
	t := base.Clone()
	for _, k := range r.Remove {
		t.Delete(k)
	}
	for _, p := range r.Set {
		t.Set(p.IPA, p.Toolkit)
	}
	return t
}
