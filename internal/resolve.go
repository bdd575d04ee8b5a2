package internal

import (
	"errors"
	"fmt"
	"math"
)

// Entropy targets for entropy-driven requests, in bits.
const (
	// DefaultMinimumBits applies when no word count, entropy target or
	// strength is requested.
	DefaultMinimumBits = 80
	// StrengthStepBits is added per strength step above the default.
	StrengthStepBits = 20
	// SecureMinimumBits is the floor enforced by secure mode.
	SecureMinimumBits = 105
)

var (
	// ErrListTooSmall means the word list has fewer than 2 distinct
	// entries, so log2 of its size yields no entropy to work with.
	ErrListTooSmall = errors.New("word list needs at least 2 distinct words")
	// ErrZeroWords means a word count below 1 was requested.
	ErrZeroWords = errors.New("word count must be at least 1")
)

// Request selects how the number of words in a passphrase is chosen: an
// exact count, a minimum entropy target, or a strength step count. Exactly
// one variant is active by construction.
type Request interface{ isRequest() }

// ExactWords requests exactly N words. No entropy check is performed; the
// caller asked for a count and accepts whatever entropy results.
type ExactWords struct{ N int }

// MinimumEntropy requests the fewest words whose combined entropy reaches
// Bits.
type MinimumEntropy struct{ Bits int }

// Strength requests Steps 20-bit increments above the 80-bit base.
type Strength struct{ Steps int }

func (ExactWords) isRequest()     {}
func (MinimumEntropy) isRequest() {}
func (Strength) isRequest()       {}

// EffectiveBits returns the entropy target a request implies. ExactWords
// carries no target and reports ok == false.
func EffectiveBits(req Request) (bits int, ok bool) {
	switch r := req.(type) {
	case MinimumEntropy:
		return r.Bits, true
	case Strength:
		return DefaultMinimumBits + StrengthStepBits*r.Steps, true
	}
	return 0, false
}

// Resolve maps a generation request and the word list size to a concrete
// word count. A nil request means MinimumEntropy{DefaultMinimumBits}.
func Resolve(req Request, listLen int) (int, error) {
	switch r := req.(type) {
	case ExactWords:
		if r.N < 1 {
			return 0, ErrZeroWords
		}
		return r.N, nil
	case MinimumEntropy:
		return wordsForBits(r.Bits, listLen)
	case Strength:
		return wordsForBits(DefaultMinimumBits+StrengthStepBits*r.Steps, listLen)
	case nil:
		return wordsForBits(DefaultMinimumBits, listLen)
	default:
		return 0, fmt.Errorf("unsupported request type %T", req)
	}
}

// wordsForBits returns the smallest n with n*log2(listLen) >= bits.
// Ceiling, never floor: truncating would under-deliver the entropy
// guarantee.
func wordsForBits(bits, listLen int) (int, error) {
	if listLen < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrListTooSmall, listLen)
	}
	perWord := math.Log2(float64(listLen))
	n := int(math.Ceil(float64(bits) / perWord))
	if n < 1 {
		n = 1
	}
	return n, nil
}
