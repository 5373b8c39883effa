package dvi

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func defaultOpts() Options {
	return Options{GlyphAdvanceSP: 65_536, LineAdvanceSP: 786_432}
}

func TestBuildEvents_RejectsNonPositiveAdvances(t *testing.T) {
	_, ok := BuildEvents([]byte("A"), Options{GlyphAdvanceSP: 0, LineAdvanceSP: 786_432})
	require.False(t, ok)

	_, ok = BuildEvents([]byte("A"), Options{GlyphAdvanceSP: 65_536, LineAdvanceSP: -1})
	require.False(t, ok)
}

func TestBuildEvents_RejectsUnsupportedByte(t *testing.T) {
	_, ok := BuildEvents([]byte{0x1f}, defaultOpts())
	require.False(t, ok)

	_, ok = BuildEvents([]byte("A\x7fB"), defaultOpts())
	require.False(t, ok)
}

func TestBuildEvents_EmptyBodyIsOnePage(t *testing.T) {
	events, ok := BuildEvents(nil, defaultOpts())
	require.True(t, ok)
	require.Equal(t, []Event{{Kind: EventBop}, {Kind: EventEop}}, events)
}

func TestWriteThenValidate_RoundTrips(t *testing.T) {
	cases := []string{"", "A", "AB", "ABCDE", "Hello, world!\n\x0cpage two"}
	for _, body := range cases {
		out, ok := Write([]byte(body), defaultOpts())
		require.True(t, ok, "body=%q", body)
		require.Zero(t, len(out)%4, "body=%q", body)
		require.True(t, Validate(out, []byte(body), defaultOpts()), "body=%q", body)
	}
}

func TestValidate_RejectsCorruptedBytes(t *testing.T) {
	out, ok := Write([]byte("ABCDE"), defaultOpts())
	require.True(t, ok)

	corrupted := append([]byte(nil), out...)
	corrupted[0] ^= 0xff
	require.False(t, Validate(corrupted, []byte("ABCDE"), defaultOpts()))
}

func TestValidate_RejectsMismatchedBody(t *testing.T) {
	out, ok := Write([]byte("ABCDE"), defaultOpts())
	require.True(t, ok)
	require.False(t, Validate(out, []byte("ZZZZZ"), defaultOpts()))
}

// Grounded on ok_v0_tests.rs's ok_text_two_chars_emits_single_right_move_only:
// "AB" yields exactly one positive Right3, no reset, no Down3, one font select.
func TestClassifyMovements_TwoChars(t *testing.T) {
	out, ok := Write([]byte("AB"), defaultOpts())
	require.True(t, ok)

	got, ok := ClassifyMovements(out)
	require.True(t, ok)
	require.Equal(t, Movements{Right3PositiveNonReset: 1, FontSelects: 1}, got)
}

// Grounded on ok_v0_tests.rs's ok_newline_control_word_emits_down3_and_stays_single_page:
// a single line break resets cursor_x only when nonzero; here cursor_x is
// zero at the break (a lone glyph then newline), so no reset Right3 fires.
func TestClassifyMovements_NewlineAfterSingleGlyph(t *testing.T) {
	out, ok := Write([]byte("A\nB"), defaultOpts())
	require.True(t, ok)

	got, ok := ClassifyMovements(out)
	require.True(t, ok)
	require.Equal(t, Movements{Down3: 1, FontSelects: 1}, got)
}

// Two glyphs before a line break leave cursor_x > 0, so the break emits
// one reset Right3 alongside its Down3, per spec.md §4.7's literal body
// rule (see DESIGN.md: the corresponding Rust counter test's exact tuple
// is not reproducible, since the write-side function it exercises is
// absent from the retrieved source; this asserts BuildEvents's own
// documented behavior instead).
func TestClassifyMovements_NewlineAfterTwoGlyphs(t *testing.T) {
	out, ok := Write([]byte("AB\nC"), defaultOpts())
	require.True(t, ok)

	got, ok := ClassifyMovements(out)
	require.True(t, ok)
	require.Equal(t, Movements{Right3PositiveNonReset: 1, Right3Negative: 1, Down3: 1, FontSelects: 1}, got)
}

// Grounded on ok_v0_tests.rs's pagebreak_marker_emits_two_pages.
func TestCountPages_FormFeedEmitsTwoPages(t *testing.T) {
	out, ok := Write([]byte("AB\x0cCD"), defaultOpts())
	require.True(t, ok)

	n, ok := CountPages(out)
	require.True(t, ok)
	require.Equal(t, 2, n)
}

// The page-layout-event stream is the shared writer/validator mirror (§9
// design note); round-tripping it through CBOR is this package's
// test-only snapshot format, the same technique the teacher's planfmt
// uses to get a canonical encoding before hashing.
func TestEvents_CBORRoundTrip(t *testing.T) {
	events, ok := BuildEvents([]byte("ABCDE"), defaultOpts())
	require.True(t, ok)

	encoded, err := cbor.Marshal(events)
	require.NoError(t, err)

	var decoded []Event
	require.NoError(t, cbor.Unmarshal(encoded, &decoded))
	require.Equal(t, events, decoded)
	require.Equal(t, EventsDigest(events), EventsDigest(decoded))
}

func TestEventsDigest_DiffersOnDifferentBodies(t *testing.T) {
	a, ok := BuildEvents([]byte("AB"), defaultOpts())
	require.True(t, ok)
	b, ok := BuildEvents([]byte("BA"), defaultOpts())
	require.True(t, ok)
	require.NotEqual(t, EventsDigest(a), EventsDigest(b))
}
