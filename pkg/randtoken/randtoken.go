// Package randtoken generates fixed-length random tokens for order numbers.
// Tokens are drawn from a cryptographically strong source: generated numbers
// are customer-facing, and a predictable sequence would leak order volume
// and invite spoofing.
package randtoken

import (
	"crypto/rand"
	"fmt"
)

// Alphabets used for token generation. Lowercase letters are excluded
// to avoid visual ambiguity on receipts.
const (
	AlphabetAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	AlphabetNumeric      = "0123456789"
)

// New returns a random token of exactly n characters.
// When numericOnly is true the token contains digits only.
//
// Panics if n <= 0 - that is a programming error, not a runtime condition.
func New(n int, numericOnly bool) string {
	if n <= 0 {
		panic(fmt.Sprintf("randtoken: invalid token length %d", n))
	}

	alphabet := AlphabetAlphanumeric
	if numericOnly {
		alphabet = AlphabetNumeric
	}
	return fromAlphabet(n, alphabet)
}

// Numeric returns a digits-only token of n characters.
func Numeric(n int) string {
	return New(n, true)
}

// fromAlphabet fills a buffer with uniformly distributed characters.
// Rejection sampling avoids modulo bias for alphabets whose size does
// not divide 256.
func fromAlphabet(n int, alphabet string) string {
	out := make([]byte, n)
	// Largest multiple of len(alphabet) that fits in a byte.
	max := byte(256 - 256%len(alphabet))

	buf := make([]byte, n)
	filled := 0
	for filled < n {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms; treat
			// failure as unrecoverable.
			panic(fmt.Sprintf("randtoken: read random source: %v", err))
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			out[filled] = alphabet[int(b)%len(alphabet)]
			filled++
			if filled == n {
				break
			}
		}
	}
	return string(out)
}
