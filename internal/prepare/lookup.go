package prepare

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/unicode/norm"
)

//go:embed lookup.schema.json
var lookupSchema string

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("lookup.schema.json", strings.NewReader(lookupSchema)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("lookup.schema.json")
	})
	return compiledSchema, compileErr
}

// Lookup maps a word to its IPA pronunciation. Words are compared in
// Unicode NFC so precomposed and combining accents match.
type Lookup map[string]string

// Get returns the pronunciation for word
func (l Lookup) Get(word string) (string, bool) {
	ipa, ok := l[norm.NFC.String(word)]
	return ipa, ok
}

// LoadLookup reads and validates a JSON lookup file
func LoadLookup(path string) (Lookup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lookup: %w", err)
	}

	lookup, err := ParseLookup(raw)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", path, err)
	}
	return lookup, nil
}

// ParseLookup validates raw against the lookup schema and decodes it.
// Two keys that spell the same word in different Unicode forms are an
// error.
func ParseLookup(raw []byte) (Lookup, error) {
	s, err := schema()
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(payload); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	lookup := make(Lookup, len(decoded))
	raws := make(map[string]string, len(decoded))
	for word, ipa := range decoded {
		key := norm.NFC.String(word)
		if other, ok := raws[key]; ok {
			return nil, fmt.Errorf("keys %+q and %+q normalise to the same word %q", other, word, key)
		}
		raws[key] = word
		lookup[key] = ipa
	}
	return lookup, nil
}
