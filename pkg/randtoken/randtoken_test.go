package randtoken

import (
	"strings"
	"testing"
)

func TestNew_Length(t *testing.T) {
	for _, n := range []int{1, 4, 6, 12, 32} {
		tok := New(n, false)
		if len(tok) != n {
			t.Errorf("New(%d) returned %q with length %d", n, tok, len(tok))
		}
	}
}

func TestNew_NumericAlphabet(t *testing.T) {
	tok := New(64, true)
	for _, r := range tok {
		if r < '0' || r > '9' {
			t.Fatalf("numeric token contains %q: %s", r, tok)
		}
	}
}

func TestNew_AlphanumericAlphabet(t *testing.T) {
	tok := New(128, false)
	for _, r := range tok {
		if !strings.ContainsRune(AlphabetAlphanumeric, r) {
			t.Fatalf("token contains %q outside alphabet: %s", r, tok)
		}
	}
	if tok != strings.ToUpper(tok) {
		t.Errorf("token contains lowercase characters: %s", tok)
	}
}

func TestNew_InvalidLengthPanics(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", n)
				}
			}()
			New(n, false)
		}()
	}
}

func TestNumeric(t *testing.T) {
	tok := Numeric(5)
	if len(tok) != 5 {
		t.Fatalf("unexpected length: %s", tok)
	}
}
