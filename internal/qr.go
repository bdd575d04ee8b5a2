package internal

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// RenderQR returns an ANSI-art QR code for text, for scanning a generated
// passphrase off the terminal instead of retyping it. Two rows of modules
// are packed into each text line with half-block characters, and a quiet
// zone of two modules surrounds the code.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.L)
	if err != nil {
		return "", fmt.Errorf("encoding QR: %w", err)
	}

	const quiet = 2
	dark := func(x, y int) bool {
		x -= quiet
		y -= quiet
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return false
		}
		return code.Black(x, y)
	}

	side := code.Size + 2*quiet
	var b strings.Builder
	for y := 0; y < side; y += 2 {
		for x := 0; x < side; x++ {
			upper := dark(x, y)
			lower := y+1 < side && dark(x, y+1)
			switch {
			case upper && lower:
				b.WriteRune('█')
			case upper:
				b.WriteRune('▀')
			case lower:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
