// WordLock — passphrase generator with a guaranteed entropy floor
//
// Words are drawn uniformly from a word list with crypto/rand. The word
// count either comes straight from --words, or is resolved as the smallest
// count whose total entropy reaches the requested minimum:
// ceil(bits / log2(list size)). Ceiling, never floor, so the tool never
// under-delivers the requested strength.
//
// Separators between words are a literal string by default; the sentinel
// values _n, _s and _b switch to random digits, random symbols, or an
// independent per-gap mix of both.

package main

import (
	crand "crypto/rand"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"wordlock/internal"

	"golang.org/x/term"
)

var version = "dev"

func usage() {
	prog := filepath.Base(os.Args[0])

	fmt.Fprintln(os.Stderr, internal.Banner(version))
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Fprintf(os.Stderr, "  %s %s\n", prog, internal.Style("[options]", internal.Cyan))
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, internal.Style("Options:", internal.Bold, internal.Blue))
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, internal.Style("Separators:", internal.Bold, internal.Blue), "literal string, or", internal.Style("_n", internal.Cyan), "(digits),", internal.Style("_s", internal.Cyan), "(symbols),", internal.Style("_b", internal.Cyan), "(mix)")
	fmt.Fprintln(os.Stderr, internal.Style("Lists:", internal.Bold, internal.Blue), "s (1,296 words), m (8,192 words) [default], l (17,576 words)")
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Fprintf(os.Stderr, "  %s\n", prog)
	fmt.Fprintf(os.Stderr, "  %s --entropy 128 --sep _b --title\n", prog)
	fmt.Fprintf(os.Stderr, "  %s --words 6 --list l -n 5 --verbose\n", prog)
}

func main() {
	words := flag.Int("words", 0, "Exact number of words (skips the entropy target)")
	entropy := flag.Int("entropy", 0, "Minimum entropy in bits (default 80 when nothing else is set)")
	strength := flag.Int("strength", 0, "Add 20 bits per step above the 80-bit base")
	secure := flag.Bool("secure", false, "Never generate below 105 bits of entropy")
	sep := flag.String("sep", "-", "Word separator; _n random digits, _s random symbols, _b a mix")
	list := flag.String("list", "m", "Built-in word list: s, m or l")
	listFile := flag.String("list-file", "", "Load a custom word list from file (overrides --list)")
	title := flag.Bool("title", false, "Title Case each word")
	count := flag.Int("n", 1, "How many passphrases to generate")
	verbose := flag.Bool("verbose", false, "Report the estimated entropy on stderr")
	qrFlag := flag.Bool("qr", false, "Also print each passphrase as a QR code")
	noColor := flag.Bool("no-color", false, "Disable colored output (TTY-safe)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	// Color enablement: default on for TTY unless --no-color
	internal.SetColorEnabled(!*noColor && term.IsTerminal(int(syscall.Stdout)))

	fail := func(format string, args ...any) {
		fmt.Fprintln(os.Stderr, internal.Style("error: "+fmt.Sprintf(format, args...), internal.Red))
		os.Exit(2)
	}

	// Generation-mode exclusivity and basic bounds live here; the core
	// only sees one already-validated request.
	if *words < 0 {
		fail("--words must be at least 1")
	}
	if *count < 1 {
		fail("-n must be at least 1")
	}
	if *words > 0 && (*entropy > 0 || *strength > 0 || *secure) {
		fail("--words conflicts with --entropy, --strength and --secure")
	}
	if *entropy > 0 && *strength > 0 {
		fail("--entropy conflicts with --strength")
	}

	active, warnings, err := pickList(*list, *listFile)
	if err != nil {
		fail("%v", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, internal.Style("warning: "+w, internal.Gray))
	}

	sepSpec := internal.ParseSeparator(*sep)
	// An empty literal separator on a custom list concatenates words that
	// may be ambiguous to split back apart; title casing restores visible
	// word boundaries.
	if strings.TrimSpace(*listFile) != "" && sepSpec.EmptyLiteral() && !*title {
		fail("an empty --sep with a custom list needs --title to keep words distinguishable")
	}

	n, err := internal.Resolve(buildRequest(*words, *entropy, *strength, *secure), active.Len())
	if err != nil {
		fail("%v", err)
	}

	for i := 0; i < *count; i++ {
		phrase, err := internal.Generate(crand.Reader, n, sepSpec, *title, active)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(phrase)
		if *qrFlag {
			art, err := internal.RenderQR(phrase)
			if err != nil {
				fail("%v", err)
			}
			fmt.Println(art)
		}
	}

	// Every passphrase in a run shares the word count and list, so one
	// aggregate estimate line covers them all.
	if *verbose {
		bits := internal.EstimateBits(n, active.Len())
		noun := "words"
		if n == 1 {
			noun = "word"
		}
		msg := fmt.Sprintf("%d %s from the %s list (%d words): about %.2f bits of entropy", n, noun, active.Name(), active.Len(), bits)
		fmt.Fprintln(os.Stderr, internal.Style(msg, internal.Gray))
	}
}

// buildRequest turns the validated flag set into a generation request.
// Secure mode floors the effective minimum at 105 bits but lets a higher
// explicit target pass through untouched.
func buildRequest(words, entropy, strength int, secure bool) internal.Request {
	if words > 0 {
		return internal.ExactWords{N: words}
	}
	var req internal.Request
	switch {
	case entropy > 0:
		req = internal.MinimumEntropy{Bits: entropy}
	case strength > 0:
		req = internal.Strength{Steps: strength}
	default:
		req = internal.MinimumEntropy{Bits: internal.DefaultMinimumBits}
	}
	if secure {
		if bits, ok := internal.EffectiveBits(req); ok && bits < internal.SecureMinimumBits {
			req = internal.MinimumEntropy{Bits: internal.SecureMinimumBits}
		}
	}
	return req
}

// pickList resolves the active word list: a custom file when given,
// otherwise a built-in choice.
func pickList(choice, path string) (internal.WordList, []string, error) {
	if strings.TrimSpace(path) != "" {
		return internal.LoadListFile(path)
	}
	wl, err := internal.BuiltinList(choice)
	return wl, nil, err
}
