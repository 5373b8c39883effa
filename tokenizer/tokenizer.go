// Package tokenizer is the byte-level lexer (§4.2): caret-hex decoding,
// comment and whitespace handling, control-sequence parsing, and the large
// control-word substitution table.
package tokenizer

import (
	"github.com/boan-anbo/carreltex-sub000/reason"
	"github.com/boan-anbo/carreltex-sub000/token"
)

// Tokenize lexes input into a token sequence, or fails closed with one of
// the tokenizer reason kinds.
func Tokenize(input []byte) ([]token.Token, error) {
	var tokens []token.Token
	index := 0
	for index < len(input) {
		b := input[index]

		if b == '%' {
			index = skipComment(input, index)
			continue
		}

		decoded, nextIndex, err := decodeCaretHex(input, index)
		if err != nil {
			return nil, err
		}
		if decoded == 0 {
			return nil, reason.New(reason.TokenizeFailed)
		}

		switch {
		case isWhitespace(decoded):
			index = consumeWhitespaceRun(input, index)
			if err := push(&tokens, token.SpaceTok); err != nil {
				return nil, err
			}
		case decoded == '{':
			index = nextIndex
			if err := push(&tokens, token.BeginGroupTok); err != nil {
				return nil, err
			}
		case decoded == '}':
			index = nextIndex
			if err := push(&tokens, token.EndGroupTok); err != nil {
				return nil, err
			}
		case decoded == '\\':
			newTokens, afterIndex, err := parseControlSeq(input, nextIndex)
			if err != nil {
				return nil, err
			}
			for _, t := range newTokens {
				if err := push(&tokens, t); err != nil {
					return nil, err
				}
			}
			index = afterIndex
		default:
			index = nextIndex
			if err := push(&tokens, token.NewChar(decoded)); err != nil {
				return nil, err
			}
		}
	}
	return tokens, nil
}

func push(tokens *[]token.Token, t token.Token) error {
	if len(*tokens) >= token.MaxTokens {
		return reason.New(reason.TokenizeFailed)
	}
	*tokens = append(*tokens, t)
	return nil
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// skipComment advances past a '%' and raw bytes up to (but not consuming)
// the next line break. Bytes inside a comment are never caret-hex decoded.
func skipComment(input []byte, index int) int {
	index++ // past '%'
	for index < len(input) && input[index] != '\n' && input[index] != '\r' {
		index++
	}
	return index
}

// consumeWhitespaceRun advances past a maximal run of whitespace, decoding
// caret-hex as it goes so that e.g. "^^20" after a literal space is folded
// into the same run.
func consumeWhitespaceRun(input []byte, index int) int {
	for index < len(input) {
		decoded, nextIndex, err := decodeCaretHex(input, index)
		if err != nil || !isWhitespace(decoded) {
			return index
		}
		index = nextIndex
	}
	return index
}

// decodeCaretHex decodes a "^^XX" escape at index, or returns the byte at
// index unchanged (advancing by one) if it does not start with "^^". A "^^"
// not followed by two hex digits is a fail-closed error; a single '^' not
// followed by another '^' passes through as an ordinary byte.
func decodeCaretHex(input []byte, index int) (byte, int, error) {
	if index >= len(input) {
		return 0, index, reason.New(reason.TokenizerCaretNotSupported)
	}
	if input[index] != '^' || index+1 >= len(input) || input[index+1] != '^' {
		return input[index], index + 1, nil
	}
	if index+4 > len(input) {
		return 0, index, reason.New(reason.TokenizerCaretNotSupported)
	}
	high, ok1 := hexNibble(input[index+2])
	low, ok2 := hexNibble(input[index+3])
	if !ok1 || !ok2 {
		return 0, index, reason.New(reason.TokenizerCaretNotSupported)
	}
	return (high << 4) | low, index + 4, nil
}

func hexNibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseControlSeq parses a control sequence starting right after the '\'
// byte at index, dispatching to the word or symbol form.
func parseControlSeq(input []byte, index int) ([]token.Token, int, error) {
	if index >= len(input) {
		return nil, 0, reason.New(reason.TokenizeFailed)
	}
	decoded, nextIndex, err := decodeCaretHex(input, index)
	if err != nil {
		return nil, 0, err
	}
	if decoded == 0 {
		return nil, 0, reason.New(reason.TokenizeFailed)
	}
	if isASCIIAlpha(decoded) {
		return parseControlWord(input, decoded, nextIndex)
	}
	return parseControlSymbol(decoded, nextIndex)
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// parseControlWord consumes a maximal run of ASCII letters (each possibly
// caret-hex escaped) as the control word name, swallows one trailing
// whitespace run, then either substitutes from the table or emits an
// unresolved ControlSeq.
func parseControlWord(input []byte, firstByte byte, index int) ([]token.Token, int, error) {
	name := []byte{firstByte}
	for index < len(input) {
		decoded, nextIndex, err := decodeCaretHex(input, index)
		if err != nil {
			break
		}
		if decoded == 0 {
			return nil, 0, reason.New(reason.TokenizeFailed)
		}
		if !isASCIIAlpha(decoded) {
			break
		}
		name = append(name, decoded)
		index = nextIndex
	}

	if string(name) == "verb" {
		return nil, 0, reason.New(reason.TokenizeFailed)
	}
	if !isASCIIOnly(name) {
		return nil, 0, reason.New(reason.TokenizerControlSeqNonAscii)
	}

	if index < len(input) {
		decoded, _, err := decodeCaretHex(input, index)
		if err == nil {
			if isWhitespace(decoded) {
				index = consumeWhitespaceRun(input, index)
			} else if decoded >= 0x80 {
				return nil, 0, reason.New(reason.TokenizerControlSeqNonAscii)
			}
		}
	}

	if sub, ok := controlWordTable[string(name)]; ok {
		if sub.isSpace {
			return []token.Token{token.SpaceTok}, index, nil
		}
		out := make([]token.Token, len(sub.bytes))
		for i, b := range sub.bytes {
			out[i] = token.NewChar(b)
		}
		return out, index, nil
	}

	traceUnresolvedControlWord(string(name))
	return []token.Token{token.NewControlSeq(name)}, index, nil
}

func isASCIIOnly(name []byte) bool {
	for _, b := range name {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// controlSymbolTable maps a control-symbol byte to its literal Char
// substitution (§4.2's fixed mapping).
var controlSymbolTable = map[byte]byte{
	',': ' ',
	'%': '%',
	'_': '_',
	'#': '#',
	'$': '$',
	'&': '&',
	'{': '{',
	'}': '}',
}

// accentNotSupported is the set of control-symbol bytes that the engine
// explicitly refuses to emulate as accents.
var accentNotSupported = map[byte]bool{
	'~': true,
	'^': true,
	'"': true,
}

func parseControlSymbol(b byte, index int) ([]token.Token, int, error) {
	if b >= 0x80 {
		return nil, 0, reason.New(reason.TokenizerControlSeqNonAscii)
	}
	if replacement, ok := controlSymbolTable[b]; ok {
		return []token.Token{token.NewChar(replacement)}, index, nil
	}
	if accentNotSupported[b] {
		return nil, 0, reason.New(reason.TokenizerAccentNotSupported)
	}
	return []token.Token{token.NewControlSeq([]byte{b})}, index, nil
}
