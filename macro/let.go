package macro

import "github.com/boan-anbo/carreltex-sub000/token"

// parseLet parses \let<alias> = <target> (the '=' and surrounding spaces
// are optional), snapshotting target's binding at definition time.
func parseLet(tokens []token.Token, letIndex int, f *frames, isGlobal bool) (int, error) {
	if letIndex+1 >= len(tokens) || tokens[letIndex+1].Kind != token.ControlSeq {
		return 0, errMacroValidationFailed()
	}
	aliasName := tokens[letIndex+1].Name

	index := skipSpaceTokens(tokens, letIndex+2)
	if index < len(tokens) && tokens[index].Kind == token.Char && tokens[index].Byte == '=' {
		index = skipSpaceTokens(tokens, index+1)
	}

	if index >= len(tokens) || tokens[index].Kind != token.ControlSeq {
		return 0, errMacroLetUnsupported()
	}
	targetName := tokens[index].Name

	resolved, err := snapshotLetBinding(*f, targetName)
	if err != nil {
		return 0, err
	}
	targetFrameIndex, err := f.targetFrameIndex(isGlobal)
	if err != nil {
		return 0, err
	}
	if err := f.insert(targetFrameIndex, aliasName, LetAlias{TargetName: targetName, Resolved: resolved}); err != nil {
		return 0, err
	}
	return index + 1, nil
}

// parseFuturelet parses \futurelet<alias><probe><target>: alias is bound
// to a ControlSeqLiteral of target's name, and parsing resumes right
// before probe so probe still sees its natural following token.
func parseFuturelet(tokens []token.Token, futureletIndex int, f *frames, isGlobal bool) (int, error) {
	aliasNameIndex := skipSpaceTokens(tokens, futureletIndex+1)
	if aliasNameIndex >= len(tokens) || tokens[aliasNameIndex].Kind != token.ControlSeq {
		return 0, errMacroFutureletUnsupported()
	}
	aliasName := tokens[aliasNameIndex].Name

	probeIndex := skipSpaceTokens(tokens, aliasNameIndex+1)
	if probeIndex >= len(tokens) || tokens[probeIndex].Kind != token.ControlSeq {
		return 0, errMacroFutureletUnsupported()
	}

	targetIndex := skipSpaceTokens(tokens, probeIndex+1)
	if targetIndex >= len(tokens) || tokens[targetIndex].Kind != token.ControlSeq {
		return 0, errMacroFutureletUnsupported()
	}
	targetName := tokens[targetIndex].Name

	targetFrameIndex, err := f.targetFrameIndex(isGlobal)
	if err != nil {
		return 0, err
	}
	if err := f.insert(targetFrameIndex, aliasName, ControlSeqLiteral{Target: targetName}); err != nil {
		return 0, err
	}
	return probeIndex, nil
}
