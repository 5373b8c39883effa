package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boan-anbo/carreltex-sub000/token"
)

func TestTokenize_CaretHexDecoding(t *testing.T) {
	tokens, err := Tokenize([]byte("^^41^^42"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.NewChar('A'), token.NewChar('B')}, tokens)
}

func TestTokenize_LoneCaretIsFailClosed(t *testing.T) {
	_, err := Tokenize([]byte("^^"))
	require.Error(t, err)

	_, err = Tokenize([]byte("^^4"))
	require.Error(t, err)

	_, err = Tokenize([]byte("^^zz"))
	require.Error(t, err)
}

func TestTokenize_CommentSkipsToLineBreak(t *testing.T) {
	tokens, err := Tokenize([]byte("A%comment here\nB"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{
		token.NewChar('A'),
		token.SpaceTok,
		token.NewChar('B'),
	}, tokens)
}

func TestTokenize_GroupDelimiters(t *testing.T) {
	tokens, err := Tokenize([]byte("{A}"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.BeginGroupTok, token.NewChar('A'), token.EndGroupTok}, tokens)
}

func TestTokenize_WhitespaceRunCollapsesToOneSpaceToken(t *testing.T) {
	tokens, err := Tokenize([]byte("A   \t\r\nB"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.NewChar('A'), token.SpaceTok, token.NewChar('B')}, tokens)
}

func TestTokenize_ControlWordSubstitution(t *testing.T) {
	tokens, err := Tokenize([]byte("\\textbackslash"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.NewChar('\\')}, tokens)
}

func TestTokenize_ControlWordSwallowsOneTrailingWhitespaceRun(t *testing.T) {
	tokens, err := Tokenize([]byte("\\par   X"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.SpaceTok, token.NewChar('X')}, tokens)
}

func TestTokenize_UnresolvedControlWordBecomesControlSeq(t *testing.T) {
	tokens, err := Tokenize([]byte("\\mystery"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.NewControlSeq([]byte("mystery"))}, tokens)
}

func TestTokenize_ControlSymbolSubstitution(t *testing.T) {
	tokens, err := Tokenize([]byte("\\%\\&"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.NewChar('%'), token.NewChar('&')}, tokens)
}

func TestTokenize_UnsupportedAccentControlSymbolFails(t *testing.T) {
	_, err := Tokenize([]byte("\\~"))
	require.Error(t, err)
}

func TestTokenize_NonAsciiControlWordFails(t *testing.T) {
	_, err := Tokenize([]byte("\\foo\x80"))
	require.Error(t, err)
}

func TestTokenize_VerbIsRejected(t *testing.T) {
	_, err := Tokenize([]byte("\\verb"))
	require.Error(t, err)
}
