package diagnostics

// Example is a word whose pronunciation triggered a failure
type Example struct {
	Word          string
	Pronunciation string
}

// SymbolExample pairs a failing symbol with its first recorded example
type SymbolExample struct {
	Symbol string
	Example
}

// symbolExamples is an insertion-ordered, write-once map from symbol to
// example. Iteration order is the order in which symbols were first seen.
type symbolExamples struct {
	order []string
	byKey map[string]Example
}

func newSymbolExamples() *symbolExamples {
	return &symbolExamples{byKey: make(map[string]Example)}
}

// put stores ex for symbol unless the symbol already has an example
func (s *symbolExamples) put(symbol string, ex Example) bool {
	if _, ok := s.byKey[symbol]; ok {
		return false
	}
	s.order = append(s.order, symbol)
	s.byKey[symbol] = ex
	return true
}

func (s *symbolExamples) get(symbol string) (Example, bool) {
	ex, ok := s.byKey[symbol]
	return ex, ok
}

func (s *symbolExamples) list() []SymbolExample {
	out := make([]SymbolExample, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, SymbolExample{Symbol: sym, Example: s.byKey[sym]})
	}
	return out
}
