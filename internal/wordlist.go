package internal

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//go:embed words_short.txt words_medium.txt words_long.txt
var listFS embed.FS

// WordList is an ordered, duplicate-free, read-only sequence of candidate
// words. Built-in and custom lists share this one shape, so the generation
// engine has a single code path regardless of where the words came from.
type WordList struct {
	name  string
	words []string
}

// NewWordList wraps an already-finalized word sequence. The caller is
// responsible for deduplication; duplicate entries don't break generation,
// but they make every entropy figure an overestimate.
func NewWordList(name string, words []string) WordList {
	return WordList{name: name, words: words}
}

// Name returns the list's display name.
func (l WordList) Name() string { return l.name }

// Len returns the number of words in the list.
func (l WordList) Len() int { return len(l.words) }

// Word returns the word at index i.
func (l WordList) Word(i int) string { return l.words[i] }

// Built-in lists, loaded from the embedded assets on first use.
var (
	builtinOnce  sync.Once
	builtinLists map[string]WordList
)

func loadBuiltins() {
	builtinOnce.Do(func() {
		builtinLists = map[string]WordList{
			"s": loadEmbedded("short", "words_short.txt"),
			"m": loadEmbedded("medium", "words_medium.txt"),
			"l": loadEmbedded("long", "words_long.txt"),
		}
	})
}

func loadEmbedded(name, file string) WordList {
	b, err := listFS.ReadFile(file)
	if err != nil {
		// The assets are compiled into the binary; a read failure is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded word list %s: %v", file, err))
	}
	return WordList{name: name, words: strings.Split(strings.TrimSpace(string(b)), "\n")}
}

// BuiltinList returns one of the embedded word lists by choice key:
//
//	s: short list, 1,296 words (~10.3 bits per word)
//	m: medium list, 8,192 words (13 bits per word)
//	l: long list, 17,576 words (~14.1 bits per word)
//
// An empty choice selects the default medium list.
func BuiltinList(choice string) (WordList, error) {
	loadBuiltins()
	key := strings.ToLower(strings.TrimSpace(choice))
	if key == "" {
		key = "m"
	}
	wl, ok := builtinLists[key]
	if !ok {
		return WordList{}, fmt.Errorf("unknown list choice %q (want s, m or l)", choice)
	}
	return wl, nil
}

// LoadListFile reads a custom word list from path and finalizes it with
// BuildWordList. The file must be valid UTF-8; a leading BOM is stripped.
func LoadListFile(path string) (WordList, []string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return WordList{}, nil, fmt.Errorf("reading word list: %w", err)
	}
	if !utf8.Valid(b) {
		return WordList{}, nil, fmt.Errorf("word list %s is not valid UTF-8", path)
	}
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		b = b[3:]
	}
	return BuildWordList("custom", string(b))
}

// BuildWordList finalizes raw word-list text: one word per line, CRLF
// tolerated, per-word whitespace trimmed, blank lines skipped, duplicates
// removed, the result sorted. Words keep their source casing.
//
// The returned warnings flag words that are not NFC-normalized. A list with
// mixed normalization can hold visually identical spellings that count as
// distinct entries, which silently inflates the entropy estimate.
func BuildWordList(name, text string) (WordList, []string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	seen := make(map[string]struct{})
	words := make([]string, 0, 256)
	var warnings []string
	for _, line := range strings.Split(text, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if norm.NFC.String(w) != w {
			warnings = append(warnings, fmt.Sprintf("word %q is not NFC-normalized; visually identical spellings may count as distinct words", w))
		}
		words = append(words, w)
	}
	if len(words) < 2 {
		return WordList{}, warnings, fmt.Errorf("%w: found %d", ErrListTooSmall, len(words))
	}
	sort.Strings(words)
	return WordList{name: name, words: words}, warnings, nil
}
