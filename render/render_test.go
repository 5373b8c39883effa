package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boan-anbo/carreltex-sub000/token"
)

func documentClassArticle() []token.Token {
	return []token.Token{
		token.NewControlSeq([]byte("documentclass")),
		token.BeginGroupTok,
		token.NewChar('a'), token.NewChar('r'), token.NewChar('t'), token.NewChar('i'), token.NewChar('c'), token.NewChar('l'), token.NewChar('e'),
		token.EndGroupTok,
	}
}

func beginDocument() []token.Token {
	return []token.Token{
		token.NewControlSeq([]byte("begin")),
		token.BeginGroupTok,
		token.NewChar('d'), token.NewChar('o'), token.NewChar('c'), token.NewChar('u'), token.NewChar('m'), token.NewChar('e'), token.NewChar('n'), token.NewChar('t'),
		token.EndGroupTok,
	}
}

func endDocument() []token.Token {
	return []token.Token{
		token.NewControlSeq([]byte("end")),
		token.BeginGroupTok,
		token.NewChar('d'), token.NewChar('o'), token.NewChar('c'), token.NewChar('u'), token.NewChar('m'), token.NewChar('e'), token.NewChar('n'), token.NewChar('t'),
		token.EndGroupTok,
	}
}

func wrapDoc(body ...token.Token) []token.Token {
	var out []token.Token
	out = append(out, documentClassArticle()...)
	out = append(out, beginDocument()...)
	out = append(out, body...)
	out = append(out, endDocument()...)
	return out
}

func TestExtractBody_EmptyBody(t *testing.T) {
	body, ok := ExtractBody(wrapDoc())
	require.True(t, ok)
	require.Empty(t, body)
}

func TestExtractBody_PlainChars(t *testing.T) {
	body, ok := ExtractBody(wrapDoc(token.NewChar('A'), token.NewChar('B'), token.NewChar('C')))
	require.True(t, ok)
	require.Equal(t, []byte("ABC"), body)
}

func TestExtractBody_CollapsesAdjacentSpacesToOne(t *testing.T) {
	body, ok := ExtractBody(wrapDoc(
		token.NewChar('A'), token.SpaceTok, token.SpaceTok, token.SpaceTok, token.NewChar('B'),
	))
	require.True(t, ok)
	require.Equal(t, []byte("A B"), body)
}

func TestExtractBody_RejectsControlSeqInBody(t *testing.T) {
	_, ok := ExtractBody(wrapDoc(token.NewControlSeq([]byte("foo"))))
	require.False(t, ok)
}

func TestExtractBody_RejectsBackslashCharByte(t *testing.T) {
	_, ok := ExtractBody(wrapDoc(token.NewChar('\\')))
	require.False(t, ok)
}

func TestExtractBody_RejectsWrongDocumentClass(t *testing.T) {
	tokens := []token.Token{
		token.NewControlSeq([]byte("documentclass")),
		token.BeginGroupTok,
		token.NewChar('r'), token.NewChar('e'), token.NewChar('p'), token.NewChar('o'), token.NewChar('r'), token.NewChar('t'),
		token.EndGroupTok,
	}
	tokens = append(tokens, beginDocument()...)
	tokens = append(tokens, endDocument()...)
	_, ok := ExtractBody(tokens)
	require.False(t, ok)
}

func TestExtractBody_RejectsTrailingTokensAfterEndDocument(t *testing.T) {
	tokens := wrapDoc()
	tokens = append(tokens, token.NewChar('X'))
	_, ok := ExtractBody(tokens)
	require.False(t, ok)
}

func TestExtractBody_PageAndLineBreakBytesPassThrough(t *testing.T) {
	body, ok := ExtractBody(wrapDoc(token.NewChar('A'), token.NewChar(0x0a), token.NewChar(0x0c), token.NewChar('B')))
	require.True(t, ok)
	require.Equal(t, []byte{'A', 0x0a, 0x0c, 'B'}, body)
}
