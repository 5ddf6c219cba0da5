// Package normalize cleans dictionary IPA strings before transcription:
// prosodic marks and separators are dropped and a few symbols are folded
// onto the ones the mapping table knows.
package normalize

import "strings"

// stripped is applied in order; a later entry may match text exposed by
// an earlier removal.
var stripped = []string{"/", "ˈ", "·", "ː", "-", "ˌ", "\"", ",", "'̃'"}

var folded = []struct{ from, to string }{
	{"r", "ɹ"},
	{"t̬", "t"},
}

// IPA normalises one pronunciation
func IPA(p string) string {
	p = strings.TrimSpace(p)
	for _, s := range stripped {
		p = strings.ReplaceAll(p, s, "")
	}
	for _, f := range folded {
		p = strings.ReplaceAll(p, f.from, f.to)
	}
	return openE(p)
}

// openE rewrites every e that does not start the diphthong eɪ as ɛ
func openE(p string) string {
	if !strings.ContainsRune(p, 'e') {
		return p
	}
	runes := []rune(p)
	for i, r := range runes {
		if r != 'e' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == 'ɪ' {
			continue
		}
		runes[i] = 'ɛ'
	}
	return string(runes)
}
