package macro

import "github.com/boan-anbo/carreltex-sub000/token"

func parseNewcommand(tokens []token.Token, commandIndex int, f *frames) (int, error) {
	return parseNewOrRenewCommand(tokens, commandIndex, f, false)
}

func parseRenewcommand(tokens []token.Token, commandIndex int, f *frames) (int, error) {
	return parseNewOrRenewCommand(tokens, commandIndex, f, true)
}

// parseNewOrRenewCommand parses \newcommand{\name}[1]{body} /
// \renewcommand{\name}[1]{body}; only the 0- or 1-argument forms are
// supported, matching \def/\edef's parameter model.
func parseNewOrRenewCommand(tokens []token.Token, commandIndex int, f *frames, isRenew bool) (int, error) {
	unsupported := errMacroNewcommandUnsupported
	if isRenew {
		unsupported = errMacroRenewcommandUnsupported
	}

	nameGroupIndex := commandIndex + 1
	macroName, index, ok := parseBracedControlSeqName(tokens, nameGroupIndex)
	if !ok {
		return 0, unsupported()
	}

	if index < len(tokens) && tokens[index].Kind == token.Space {
		index++
	}

	var paramCount byte
	if index < len(tokens) && tokens[index].Kind == token.Char && tokens[index].Byte == '[' {
		if index+2 >= len(tokens) ||
			tokens[index+1].Kind != token.Char || tokens[index+1].Byte != '1' ||
			tokens[index+2].Kind != token.Char || tokens[index+2].Byte != ']' {
			return 0, unsupported()
		}
		paramCount = 1
		index += 3
		if index < len(tokens) && tokens[index].Kind == token.Space {
			index++
		}
	}

	if index >= len(tokens) || tokens[index].Kind != token.BeginGroup {
		return 0, unsupported()
	}
	bodyTokens, nextIndex, err := parseBalancedGroupPayload(tokens, index)
	if err != nil {
		return 0, unsupported()
	}
	if err := validateMacroBodyTokens(bodyTokens, paramCount); err != nil {
		return 0, err
	}

	isDefined := f.lookup(macroName) != nil
	if !isRenew && isDefined {
		return 0, errMacroNewcommandAlreadyDefined()
	}
	if isRenew && !isDefined {
		return 0, errMacroRenewcommandUndefined()
	}

	targetFrameIndex, err := f.targetFrameIndex(false)
	if err != nil {
		return 0, err
	}
	if err := f.insert(targetFrameIndex, macroName, MacroDef{ParamCount: paramCount, Body: bodyTokens}); err != nil {
		return 0, err
	}
	return nextIndex, nil
}

// parseProvidecommand parses \providecommand{\name}[1]{body}: it defines
// name only if undefined, and is otherwise a silent no-op over a
// well-formed but already-bound definition (§4.4).
func parseProvidecommand(tokens []token.Token, commandIndex int, f *frames) (int, error) {
	unsupported := errMacroProvidecommandUnsupported

	nameGroupIndex := commandIndex + 1
	macroName, index, ok := parseBracedControlSeqName(tokens, nameGroupIndex)
	if !ok {
		return 0, unsupported()
	}

	if index < len(tokens) && tokens[index].Kind == token.Space {
		index++
	}

	var paramCount byte
	if index < len(tokens) && tokens[index].Kind == token.Char && tokens[index].Byte == '[' {
		if index+2 >= len(tokens) ||
			tokens[index+1].Kind != token.Char || tokens[index+1].Byte != '1' ||
			tokens[index+2].Kind != token.Char || tokens[index+2].Byte != ']' {
			return 0, unsupported()
		}
		paramCount = 1
		index += 3
		if index < len(tokens) && tokens[index].Kind == token.Space {
			index++
		}
	}

	if index >= len(tokens) || tokens[index].Kind != token.BeginGroup {
		return 0, unsupported()
	}
	bodyTokens, nextIndex, err := parseBalancedGroupPayload(tokens, index)
	if err != nil {
		return 0, unsupported()
	}
	if err := validateMacroBodyTokens(bodyTokens, paramCount); err != nil {
		return 0, err
	}

	if f.lookup(macroName) != nil {
		return nextIndex, nil
	}

	targetFrameIndex, err := f.targetFrameIndex(false)
	if err != nil {
		return 0, err
	}
	if err := f.insert(targetFrameIndex, macroName, MacroDef{ParamCount: paramCount, Body: bodyTokens}); err != nil {
		return 0, err
	}
	return nextIndex, nil
}

func parseBracedControlSeqName(tokens []token.Token, index int) ([]byte, int, bool) {
	nameGroupTokens, nextIndex, err := parseBalancedGroupPayload(tokens, index)
	if err != nil || len(nameGroupTokens) != 1 || nameGroupTokens[0].Kind != token.ControlSeq {
		return nil, 0, false
	}
	return nameGroupTokens[0].Name, nextIndex, true
}
