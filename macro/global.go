package macro

import "github.com/boan-anbo/carreltex-sub000/token"

// parseGlobalPrefixedMacroBinding parses \global (absorbing any repeated
// \global prefixes) followed by one of the binding forms it can make
// global: def/gdef/edef/xdef/let/futurelet.
func parseGlobalPrefixedMacroBinding(tokens []token.Token, globalIndex int, f *frames, counters *[2]uint32) (int, error) {
	index := globalIndex
	for index < len(tokens) && tokens[index].Kind == token.ControlSeq && string(tokens[index].Name) == "global" {
		index++
	}

	if index >= len(tokens) || tokens[index].Kind != token.ControlSeq {
		return 0, errMacroGlobalPrefixUnsupported()
	}
	switch string(tokens[index].Name) {
	case "def", "gdef":
		return parseDef(tokens, index, f, counters, true, false)
	case "edef":
		return parseDef(tokens, index, f, counters, true, true)
	case "xdef":
		return parseXdef(tokens, index, f, counters, true)
	case "let":
		return parseLet(tokens, index, f, true)
	case "futurelet":
		return parseFuturelet(tokens, index, f, true)
	default:
		return 0, errMacroGlobalPrefixUnsupported()
	}
}
