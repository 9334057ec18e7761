package words

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"crane", "abide", "zesty", "aaaaa", "zzzzz"} {
		w, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, w.String())
	}
	require.Equal(t, Word{2, 0, 1, 8, 13}, MustParse("cabin"))
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		in   string
		want error
	}{
		"empty":     {"", ErrWordLength},
		"short":     {"cat", ErrWordLength},
		"long":      {"cranes", ErrWordLength},
		"uppercase": {"Crane", ErrWordChar},
		"digit":     {"cr4ne", ErrWordChar},
		"hyphen":    {"cra-e", ErrWordChar},
		"space":     {"cr ne", ErrWordChar},
		"accented":  {"crâne", ErrWordLength}, // â is two bytes
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { MustParse("nope") })
}

func TestLetterSet(t *testing.T) {
	t.Parallel()
	var s LetterSet
	require.False(t, s.Has(0))
	s.Add(0)
	s.Add(25)
	require.True(t, s.Has(0))
	require.True(t, s.Has(25))
	require.False(t, s.Has(12))

	melee := MustParse("melee").Letters()
	for _, l := range []Letter{'m' - 'a', 'e' - 'a', 'l' - 'a'} {
		require.True(t, melee.Has(l))
	}
	require.False(t, melee.Has('z'-'a'))

	var sub LetterSet
	sub.Add('e' - 'a')
	sub.Add('m' - 'a')
	require.True(t, melee.ContainsAll(sub))
	sub.Add('z' - 'a')
	require.False(t, melee.ContainsAll(sub))
}

func TestListShape(t *testing.T) {
	t.Parallel()
	answers := []Word{MustParse("crane"), MustParse("slate")}
	extras := []Word{MustParse("roate")}
	l := NewList(answers, extras)
	require.Equal(t, 3, l.Len())
	require.Equal(t, 2, l.NumAnswers)
	require.Equal(t, answers, l.Answers())
	require.Equal(t, MustParse("roate"), l.At(2))
	require.Equal(t, 1, l.IndexOf(MustParse("slate")))
	require.Equal(t, 2, l.IndexOf(MustParse("roate")))
	require.Equal(t, -1, l.IndexOf(MustParse("zzzzz")))
}

func writeList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadFilesEmbeddedDefaults(t *testing.T) {
	t.Parallel()
	l, skipped, err := LoadFiles("", "")
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Equal(t, 85, l.NumAnswers)
	require.Equal(t, 121, l.Len())
	// The default opener must be guessable, and guess-only.
	require.GreaterOrEqual(t, l.IndexOf(MustParse("roate")), l.NumAnswers)
}

func TestLoadFilesNormalizesAndSkips(t *testing.T) {
	t.Parallel()
	answers := writeList(t, "CRANE\n  slate  \n# comment\n\ncr4ne\ntoolong\nnymph\n")
	allowed := writeList(t, "roate\nslate\nROATE\nquirk\n")

	l, skipped, err := LoadFiles(answers, allowed)
	require.NoError(t, err)
	require.Equal(t, 2, skipped) // cr4ne and toolong
	require.Equal(t, 3, l.NumAnswers)
	require.Equal(t, []Word{MustParse("crane"), MustParse("slate"), MustParse("nymph")}, l.Answers())
	// slate and the re-cased roate duplicate earlier entries.
	require.Equal(t, 5, l.Len())
	require.Equal(t, MustParse("roate"), l.At(3))
	require.Equal(t, MustParse("quirk"), l.At(4))
}

func TestLoadFilesSingleList(t *testing.T) {
	t.Parallel()
	answers := writeList(t, "crane\nslate\n")
	l, skipped, err := LoadFiles(answers, "")
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Equal(t, 2, l.NumAnswers)
	require.Equal(t, 2, l.Len())
}

func TestLoadFilesEmptyAnswers(t *testing.T) {
	t.Parallel()
	answers := writeList(t, "# nothing here\n")
	_, _, err := LoadFiles(answers, "")
	require.Error(t, err)
}

func TestLoadFilesScanError(t *testing.T) {
	t.Parallel()
	// A line past the scanner's token limit aborts the read partway
	// through the file. The load must fail loudly, not hand back the
	// words scanned so far as if the file ended there.
	long := strings.Repeat("x", 2*bufio.MaxScanTokenSize)
	bad := writeList(t, "crane\nslate\n"+long+"\nnymph\nquirk\n")

	l, skipped, err := LoadFiles(bad, "")
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.Zero(t, skipped)
	require.Zero(t, l.Len())

	good := writeList(t, "crane\nslate\n")
	_, _, err = LoadFiles(good, bad)
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoadFilesMissingFile(t *testing.T) {
	t.Parallel()
	_, _, err := LoadFiles(filepath.Join(t.TempDir(), "absent.txt"), "")
	require.Error(t, err)
}
