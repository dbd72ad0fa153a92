package vocab

import (
	"strings"
	"testing"
)

func TestLoadEnglish(t *testing.T) {
	set, err := Load("en")
	if err != nil {
		t.Fatalf("Load(en) error = %v", err)
	}
	if set.Len() == 0 {
		t.Fatal("Load(en) returned an empty vocabulary")
	}

	for _, word := range []string{"the", "cat", "sat"} {
		if !set.Contains(word) {
			t.Errorf("Contains(%q) = false, want true", word)
		}
	}
	if set.Contains("# English word forms, one per line, pre-normalized (NFKC, lowercase).") {
		t.Error("comment line leaked into the vocabulary")
	}
	if set.Contains("") {
		t.Error("empty string is in the vocabulary")
	}
}

func TestLoadPolish(t *testing.T) {
	set, err := Load("pl")
	if err != nil {
		t.Fatalf("Load(pl) error = %v", err)
	}
	if !set.Contains("się") {
		t.Error(`Contains("się") = false, want true`)
	}
}

func TestLoadUnsupportedLanguage(t *testing.T) {
	_, err := Load("xx")
	if err == nil {
		t.Fatal("Load(xx) returned nil error")
	}
	if !strings.Contains(err.Error(), "xx") {
		t.Errorf("error %q does not name the language", err)
	}
}

func TestNewAndContains(t *testing.T) {
	set := New([]string{"alpha", "beta"})

	if got, want := set.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if !set.Contains("alpha") {
		t.Error(`Contains("alpha") = false, want true`)
	}
	if set.Contains("gamma") {
		t.Error(`Contains("gamma") = true, want false`)
	}
}

func TestSupported(t *testing.T) {
	for _, code := range Languages() {
		if !Supported(code) {
			t.Errorf("Supported(%q) = false, want true", code)
		}
	}
	if Supported("de") {
		t.Error(`Supported("de") = true, want false`)
	}
}

func TestIsTrimmable(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'.', true},
		{',', true},
		{'"', true},
		{'(', true},
		{'~', true},
		{'$', true},
		{' ', true},
		{'\t', true},
		{'a', false},
		{'Z', false},
		{'7', false},
		{'ł', false}, // non-ASCII letters are never trimmed
		{'—', false}, // non-ASCII punctuation is never trimmed
	}
	for _, tt := range tests {
		if got := IsTrimmable(tt.r); got != tt.want {
			t.Errorf("IsTrimmable(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
