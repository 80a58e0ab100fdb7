package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"a>b",
		"a*b",
		"a~b",
		"a|b",
		"a_b",
		"a#b",
		"a$b",
		"a\\b",
		"a\nb",
		"a\tb",
		"mixed >*~|_#$\\\n\t chars",
		"emoji 🎉 string",
		"RTL שלום",
		"combining é (e + ́)",
	}
	for _, s := range cases {
		esc := Escape(s)
		got, err := Unescape(esc)
		require.NoError(t, err)
		assert.Equal(t, s, got, "round trip of %q", s)
	}
}

func TestEscapeLeavesPlainTextAlone(t *testing.T) {
	assert.Equal(t, "plain text 123", Escape("plain text 123"))
}

func TestEscapeLiteralBackslashSentinelText(t *testing.T) {
	// A literal two-character "\0" in the source must round-trip, not be
	// confused with the reserved Null sentinel.
	esc := Escape(`\0`)
	assert.Equal(t, `\\0`, esc)
	got, err := Unescape(esc)
	require.NoError(t, err)
	assert.Equal(t, `\0`, got)
}

func TestUnescapeTrailingBackslashFails(t *testing.T) {
	_, err := Unescape(`abc\`)
	require.Error(t, err)
	var esc *Error
	require.ErrorAs(t, err, &esc)
}

func TestUnescapeUnknownEscapeLetterFails(t *testing.T) {
	_, err := Unescape(`a\zb`)
	require.Error(t, err)
}

func TestUnescapeAllStructuralCharacters(t *testing.T) {
	for _, c := range []byte{'>', '*', '~', '|', '_', '#', '$', '\\'} {
		s := string([]byte{'a', c, 'b'})
		got, err := Unescape(Escape(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
