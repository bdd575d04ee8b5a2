package internal

import (
	"io"
	"strconv"
)

// Sentinel separator values recognized by ParseSeparator.
const (
	sepNumericToken  = "_n"
	sepSymbolicToken = "_s"
	sepMixedToken    = "_b"
)

// SeparatorSymbols is the fixed alphabet used by the symbolic and mixed
// separator modes.
var SeparatorSymbols = []rune("!@#$%^&*-+=:?")

type sepMode int

const (
	sepLiteral sepMode = iota
	sepNumeric
	sepSymbolic
	sepMixed
)

// Separator is a parsed separator specification: a fixed literal or one of
// the randomized modes. The sentinel strings are interpreted once here; the
// generation loop never re-inspects raw separator input.
type Separator struct {
	mode    sepMode
	literal string
}

// ParseSeparator interprets the _n (numeric), _s (symbolic) and _b (mixed)
// sentinels. Any other value, including the empty string, is a literal.
func ParseSeparator(s string) Separator {
	switch s {
	case sepNumericToken:
		return Separator{mode: sepNumeric}
	case sepSymbolicToken:
		return Separator{mode: sepSymbolic}
	case sepMixedToken:
		return Separator{mode: sepMixed}
	default:
		return Separator{mode: sepLiteral, literal: s}
	}
}

// Randomized reports whether separators are drawn from the RNG.
func (s Separator) Randomized() bool { return s.mode != sepLiteral }

// EmptyLiteral reports whether the separator is the fixed empty string.
func (s Separator) EmptyLiteral() bool { return s.mode == sepLiteral && s.literal == "" }

// next returns the separator for one gap between adjacent words.
// Randomized modes draw fresh from rng on every call, so different gaps in
// one passphrase are independent; in mixed mode each gap flips its own coin
// between a digit and a symbol.
func (s Separator) next(rng io.Reader) (string, error) {
	switch s.mode {
	case sepNumeric:
		return randomDigit(rng)
	case sepSymbolic:
		return randomSymbol(rng)
	case sepMixed:
		coin, err := randomIndex(rng, 2)
		if err != nil {
			return "", err
		}
		if coin == 0 {
			return randomDigit(rng)
		}
		return randomSymbol(rng)
	default:
		return s.literal, nil
	}
}

// randomDigit returns one decimal digit, uniform over 0-9.
func randomDigit(rng io.Reader) (string, error) {
	n, err := randomIndex(rng, 10)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// randomSymbol returns one rune from SeparatorSymbols, uniform over the
// alphabet.
func randomSymbol(rng io.Reader) (string, error) {
	i, err := randomIndex(rng, len(SeparatorSymbols))
	if err != nil {
		return "", err
	}
	return string(SeparatorSymbols[i]), nil
}
