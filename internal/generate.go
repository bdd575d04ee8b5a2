package internal

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyList means generation was attempted against a word list with no
// entries.
var ErrEmptyList = errors.New("word list is empty")

// Generate assembles one passphrase: count uniform word draws from list,
// joined in draw order with one separator per gap. The first and last words
// get no leading or trailing separator.
//
// rng must be a cryptographically secure source — crypto/rand.Reader in
// production. It is injected so tests can supply a deterministic reader.
// The list is only read; Generate keeps no state between calls.
func Generate(rng io.Reader, count int, sep Separator, titleCase bool, list WordList) (string, error) {
	if count < 1 {
		return "", ErrZeroWords
	}
	if list.Len() == 0 {
		return "", ErrEmptyList
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			gap, err := sep.next(rng)
			if err != nil {
				return "", err
			}
			b.WriteString(gap)
		}
		idx, err := randomIndex(rng, list.Len())
		if err != nil {
			return "", err
		}
		word := list.Word(idx)
		if titleCase {
			word = titleFirst(word)
		}
		b.WriteString(word)
	}
	return b.String(), nil
}

// randomIndex draws a uniform index in [0, n) from rng. crypto/rand.Int
// rejection-samples internally, so there is no modulo bias even when n does
// not evenly divide the reader's output range.
func randomIndex(rng io.Reader, n int) (int, error) {
	v, err := crand.Int(rng, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("drawing random index: %w", err)
	}
	return int(v.Int64()), nil
}

// titleFirst converts the first rune of w to its title-case form, leaving
// the rest of the word untouched. Words starting with a non-letter pass
// through unchanged.
func titleFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	t := unicode.ToTitle(r)
	if t == r {
		return w
	}
	return string(t) + w[size:]
}
