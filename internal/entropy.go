package internal

import "math"

// EstimateBits returns the informational entropy estimate for a passphrase
// of wordCount words drawn uniformly from a list of listLen distinct words:
// wordCount * log2(listLen).
//
// Randomized separators are deliberately not credited, so for the _n/_s/_b
// modes the estimate understates the true entropy. That keeps the reported
// number a lower bound; callers may rely on the safety margin.
func EstimateBits(wordCount, listLen int) float64 {
	if wordCount < 1 || listLen < 1 {
		return 0
	}
	return float64(wordCount) * math.Log2(float64(listLen))
}
