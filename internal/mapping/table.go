package mapping

// Pair is a single IPA → toolkit code entry
type Pair struct {
	IPA     string `mapstructure:"ipa"`
	Toolkit string `mapstructure:"toolkit"`
}

// Table is an insertion-ordered IPA → toolkit table. Setting a key that is
// already present replaces its value but keeps its original position.
type Table struct {
	keys   []string
	values map[string]string
}

// NewTable creates a table from pairs, applied in order
func NewTable(pairs ...Pair) *Table {
	t := &Table{values: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		t.Set(p.IPA, p.Toolkit)
	}
	return t
}

// Set inserts or overwrites an entry
func (t *Table) Set(ipa, code string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, ok := t.values[ipa]; !ok {
		t.keys = append(t.keys, ipa)
	}
	t.values[ipa] = code
}

// Get returns the toolkit code for an IPA key
func (t *Table) Get(ipa string) (string, bool) {
	code, ok := t.values[ipa]
	return code, ok
}

// Delete removes an entry and reports whether it was present
func (t *Table) Delete(ipa string) bool {
	if _, ok := t.values[ipa]; !ok {
		return false
	}
	delete(t.values, ipa)
	for i, k := range t.keys {
		if k == ipa {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.keys)
}

// Pairs returns all entries in insertion order
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.keys))
	for _, k := range t.keys {
		pairs = append(pairs, Pair{IPA: k, Toolkit: t.values[k]})
	}
	return pairs
}

// Clone returns an independent copy of the table
func (t *Table) Clone() *Table {
	return NewTable(t.Pairs()...)
}
