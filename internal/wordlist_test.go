package internal

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinListSizes(t *testing.T) {
	tests := []struct {
		choice string
		name   string
		size   int
	}{
		{"s", "short", 1296},
		{"m", "medium", 8192},
		{"l", "long", 17576},
		{"", "medium", 8192},
		{" M ", "medium", 8192},
	}
	for _, tt := range tests {
		wl, err := BuiltinList(tt.choice)
		require.NoError(t, err, "choice %q", tt.choice)
		require.Equal(t, tt.name, wl.Name())
		require.Equal(t, tt.size, wl.Len())
	}

	_, err := BuiltinList("x")
	require.Error(t, err)
}

func TestBuiltinListsAreSortedAndDistinct(t *testing.T) {
	for _, choice := range []string{"s", "m", "l"} {
		wl, err := BuiltinList(choice)
		require.NoError(t, err)

		seen := make(map[string]bool, wl.Len())
		words := make([]string, 0, wl.Len())
		for i := 0; i < wl.Len(); i++ {
			w := wl.Word(i)
			require.NotEmpty(t, w)
			require.False(t, seen[w], "list %s has duplicate %q", choice, w)
			seen[w] = true
			words = append(words, w)
		}
		require.True(t, sort.StringsAreSorted(words), "list %s is not sorted", choice)
	}
}

func TestBuildWordListNormalizesInput(t *testing.T) {
	text := "  zebra \r\nant\r\n\r\n  ant\nmoose\n\t\nzebra\n"
	wl, warnings, err := BuildWordList("custom", text)
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, 3, wl.Len())
	require.Equal(t, "ant", wl.Word(0))
	require.Equal(t, "moose", wl.Word(1))
	require.Equal(t, "zebra", wl.Word(2))
}

func TestBuildWordListKeepsSourceCasing(t *testing.T) {
	wl, _, err := BuildWordList("custom", "Bravo\nalpha\n")
	require.NoError(t, err)
	require.Equal(t, "Bravo", wl.Word(0))
	require.Equal(t, "alpha", wl.Word(1))
}

func TestBuildWordListWarnsOnMixedNormalization(t *testing.T) {
	// "café" with a combining acute accent is not NFC.
	decomposed := "cafe\u0301"
	_, warnings, err := BuildWordList("custom", "plain\n"+decomposed+"\n")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "NFC")
}

func TestBuildWordListRejectsTinyLists(t *testing.T) {
	for _, text := range []string{"", "\n\n  \n", "solo\n", "solo\nsolo\n"} {
		_, _, err := BuildWordList("custom", text)
		require.ErrorIs(t, err, ErrListTooSmall, "text %q", text)
	}
}

func TestLoadListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	// UTF-8 BOM plus CRLF line endings.
	content := "\xEF\xBB\xBFbravo\r\nalpha\r\ncharlie\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	wl, warnings, err := LoadListFile(path)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 3, wl.Len())
	require.Equal(t, "alpha", wl.Word(0))

	_, _, err = LoadListFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestLoadListFileRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'a', '\n'}, 0o644))

	_, _, err := LoadListFile(path)
	require.ErrorContains(t, err, "UTF-8")
}
