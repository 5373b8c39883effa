// Package render is the OK-subset renderer (§4.6): recognizes a strict
// \documentclass{article} ... \begin{document} BODY \end{document} grammar
// and extracts BODY as flattened text bytes for the DVI codec.
package render

import "github.com/boan-anbo/carreltex-sub000/token"

const (
	MaxTextBytes    = 64 * 1024
	GlyphAdvanceSP  = 65_536
	LineAdvanceSP   = 786_432
)

// ExtractBody recognizes the strict grammar and returns the flattened body
// bytes, or ok=false if tokens fall outside the grammar (the caller should
// fail over to NotImplemented rather than treat this as INVALID_INPUT).
func ExtractBody(tokens []token.Token) (body []byte, ok bool) {
	index := 0
	if !isControlSeqNamed(tokens, index, "documentclass") {
		return nil, false
	}
	index++
	index, ok = consumeGroupLiteral(tokens, index, []byte("article"))
	if !ok {
		return nil, false
	}
	index = skipSpaces(tokens, index)

	if !isControlSeqNamed(tokens, index, "begin") {
		return nil, false
	}
	index++
	index, ok = consumeGroupLiteral(tokens, index, []byte("document"))
	if !ok {
		return nil, false
	}

	previousWasSpace := false
	for index < len(tokens) {
		t := tokens[index]
		switch {
		case t.Kind == token.Space:
			if !previousWasSpace {
				body = append(body, ' ')
				previousWasSpace = true
			}
			index++
		case t.Kind == token.Char && t.Byte == 0x0c:
			body = append(body, 0x0c)
			previousWasSpace = false
			index++
		case t.Kind == token.Char && t.Byte == 0x0a:
			body = append(body, 0x0a)
			previousWasSpace = false
			index++
		case t.Kind == token.Char && isSupportedChar(t.Byte):
			body = append(body, t.Byte)
			previousWasSpace = false
			index++
		default:
			goto endOfBody
		}
	}
endOfBody:

	if !isControlSeqNamed(tokens, index, "end") {
		return nil, false
	}
	index++
	index, ok = consumeGroupLiteral(tokens, index, []byte("document"))
	if !ok {
		return nil, false
	}
	index = skipSpaces(tokens, index)
	if index != len(tokens) {
		return nil, false
	}
	return body, true
}

func isSupportedChar(b byte) bool {
	return b >= 0x20 && b <= 0x7e && b != '\\'
}

func isControlSeqNamed(tokens []token.Token, index int, name string) bool {
	return index < len(tokens) && tokens[index].Kind == token.ControlSeq && string(tokens[index].Name) == name
}

func skipSpaces(tokens []token.Token, index int) int {
	for index < len(tokens) && tokens[index].Kind == token.Space {
		index++
	}
	return index
}

// consumeGroupLiteral matches a literal {...} group whose payload is
// exactly the given byte sequence as Char tokens.
func consumeGroupLiteral(tokens []token.Token, index int, literal []byte) (int, bool) {
	if index >= len(tokens) || tokens[index].Kind != token.BeginGroup {
		return 0, false
	}
	index++
	for _, expected := range literal {
		if index >= len(tokens) || tokens[index].Kind != token.Char || tokens[index].Byte != expected {
			return 0, false
		}
		index++
	}
	if index >= len(tokens) || tokens[index].Kind != token.EndGroup {
		return 0, false
	}
	return index + 1, true
}
