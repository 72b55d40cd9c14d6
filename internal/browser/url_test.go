// ABOUTME: Tests for user-typed URL normalization
// ABOUTME: Scheme defaulting, whitespace, punycode, and pass-through cases

package browser

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "example.com", "https://example.com"},
		{"with path", "example.com/a/b", "https://example.com/a/b"},
		{"existing scheme kept", "http://example.com", "http://example.com"},
		{"https unchanged", "https://example.com/x?q=1", "https://example.com/x?q=1"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
		{"empty", "", ""},
		{"idn host", "münchen.de", "https://xn--mnchen-3ya.de"},
		{"idn host with port", "münchen.de:8080/weg", "https://xn--mnchen-3ya.de:8080/weg"},
		{"ip literal", "127.0.0.1:8000", "https://127.0.0.1:8000"},
		{"localhost", "localhost:3000", "https://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
