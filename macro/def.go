package macro

import "github.com/boan-anbo/carreltex-sub000/token"

// parseDef parses \def, \gdef, and \edef (expandBody selects the \edef
// expand-at-definition-time form). It dispatches through expandStream for
// \edef, so def.go and expand.go are mutually recursive by construction.
func parseDef(tokens []token.Token, defIndex int, f *frames, counters *[2]uint32, isGlobal, expandBody bool) (int, error) {
	nameIndex := defIndex + 1
	if nameIndex >= len(tokens) || tokens[nameIndex].Kind != token.ControlSeq {
		return 0, errMacroValidationFailed()
	}
	macroName := tokens[nameIndex].Name

	var paramCount byte
	bodyStartIndex := nameIndex + 1
	switch {
	case bodyStartIndex < len(tokens) && tokens[bodyStartIndex].Kind == token.BeginGroup:
	case bodyStartIndex < len(tokens) && tokens[bodyStartIndex].Kind == token.Char && tokens[bodyStartIndex].Byte == '#':
		if expandBody {
			return 0, errMacroParamsUnsupported()
		}
		if bodyStartIndex+1 >= len(tokens) || tokens[bodyStartIndex+1].Kind != token.Char {
			return 0, errMacroParamsUnsupported()
		}
		if tokens[bodyStartIndex+1].Byte != '1' {
			return 0, errMacroParamsUnsupported()
		}
		paramCount = 1
		bodyStartIndex += 2
		if bodyStartIndex < len(tokens) && tokens[bodyStartIndex].Kind == token.Char && tokens[bodyStartIndex].Byte == '#' {
			return 0, errMacroParamsUnsupported()
		}
		if bodyStartIndex >= len(tokens) || tokens[bodyStartIndex].Kind != token.BeginGroup {
			return 0, errMacroValidationFailed()
		}
	default:
		return 0, errMacroValidationFailed()
	}

	bodyTokens, nextIndex, err := parseBalancedGroupPayload(tokens, bodyStartIndex)
	if err != nil {
		return 0, err
	}
	if err := validateMacroBodyTokens(bodyTokens, paramCount); err != nil {
		return 0, err
	}

	finalBodyTokens := bodyTokens
	if expandBody {
		if paramCount != 0 {
			return 0, errMacroParamsUnsupported()
		}
		expanded, err := expandStream(bodyTokens, f, counters, 0)
		if err != nil {
			return 0, err
		}
		finalBodyTokens = expanded
	}

	targetFrameIndex, err := f.targetFrameIndex(isGlobal)
	if err != nil {
		return 0, err
	}
	def := MacroDef{ParamCount: paramCount, Body: finalBodyTokens}
	if expandBody {
		def.ParamCount = 0
	}
	if paramCount > 1 {
		return 0, errMacroValidationFailed()
	}
	if err := f.insert(targetFrameIndex, macroName, def); err != nil {
		return 0, err
	}
	return nextIndex, nil
}

// parseXdef parses \xdef: body is parsed without parameter placeholders,
// fully expanded at definition time, and always installed globally when
// isGlobal is set by \global\xdef.
func parseXdef(tokens []token.Token, xdefIndex int, f *frames, counters *[2]uint32, isGlobal bool) (int, error) {
	nameIndex := xdefIndex + 1
	if nameIndex >= len(tokens) || tokens[nameIndex].Kind != token.ControlSeq {
		return 0, errMacroXdefUnsupported()
	}
	macroName := tokens[nameIndex].Name

	bodyStartIndex := nameIndex + 1
	if bodyStartIndex >= len(tokens) || tokens[bodyStartIndex].Kind != token.BeginGroup {
		return 0, errMacroXdefUnsupported()
	}
	bodyTokens, nextIndex, err := parseBalancedGroupPayload(tokens, bodyStartIndex)
	if err != nil {
		return 0, errMacroXdefUnsupported()
	}
	for _, t := range bodyTokens {
		if t.Kind == token.Char && t.Byte == '#' {
			return 0, errMacroXdefUnsupported()
		}
	}

	expanded, err := expandStream(bodyTokens, f, counters, 0)
	if err != nil {
		return 0, err
	}

	targetFrameIndex, err := f.targetFrameIndex(isGlobal)
	if err != nil {
		return 0, err
	}
	if err := f.insert(targetFrameIndex, macroName, MacroDef{ParamCount: 0, Body: expanded}); err != nil {
		return 0, err
	}
	return nextIndex, nil
}
