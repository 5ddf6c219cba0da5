package normalize

import "testing"

func TestIPA(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"slashes and stress", "/ˈkasa/", "kasa"},
		{"secondary stress and length", "ˌaːˈmoɾ", "amoɾ"},
		{"separators", "ka·sa-ma,ɾi", "kasamaɾi"},
		{"quotes", "\"pan\"", "pan"},
		{"trill folded", "pero", "pɛɹo"},
		{"voiced t", "t̬o", "to"},
		{"e before ɪ kept", "ɹeɪ", "ɹeɪ"},
		{"lone e opened", "mes", "mɛs"},
		{"e at end", "kafe", "kafɛ"},
		{"mixed e", "eɪe", "eɪɛ"},
		{"nasal quote sequence", "a'̃'b", "ab"},
		{"surrounding whitespace", "  /si/ ", "si"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IPA(tt.input); got != tt.want {
				t.Errorf("IPA(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIPAIdempotent(t *testing.T) {
	for _, p := range []string{"/ˈpeɾo/", "ɹeɪ", "mes"} {
		once := IPA(p)
		if twice := IPA(once); twice != once {
			t.Errorf("IPA not idempotent for %q: %q then %q", p, once, twice)
		}
	}
}
