package macro

import "github.com/boan-anbo/carreltex-sub000/token"

// parseString parses \string<csname>, emitting '\' followed by the
// control sequence's bare name as literal Char tokens.
func parseString(tokens []token.Token, stringIndex int) ([]token.Token, int, error) {
	nextIndex := skipSpaceTokens(tokens, stringIndex+1)
	if nextIndex >= len(tokens) || tokens[nextIndex].Kind != token.ControlSeq {
		return nil, 0, errMacroStringUnsupported()
	}
	controlName := tokens[nextIndex].Name

	var out []token.Token
	if err := pushChecked(&out, token.NewChar('\\')); err != nil {
		return nil, 0, err
	}
	if err := pushASCIIBytes(&out, controlName); err != nil {
		return nil, 0, err
	}
	return out, nextIndex + 1, nil
}

// parseMeaning parses \meaning<csname>, emitting a short diagnostic
// description of the queried control sequence's current binding.
func parseMeaning(tokens []token.Token, meaningIndex int, f frames) ([]token.Token, int, error) {
	nextIndex := skipSpaceTokens(tokens, meaningIndex+1)
	if nextIndex >= len(tokens) || tokens[nextIndex].Kind != token.ControlSeq {
		return nil, 0, errMacroMeaningUnsupported()
	}
	queryName := tokens[nextIndex].Name

	var out []token.Token
	switch b := f.lookup(queryName).(type) {
	case MacroDef:
		if err := pushASCIIBytes(&out, []byte("macro:")); err != nil {
			return nil, 0, err
		}
		if err := pushASCIIBytes(&out, queryName); err != nil {
			return nil, 0, err
		}
	case ControlSeqLiteral:
		if err := writeAliasMeaning(&out, queryName, b.Target); err != nil {
			return nil, 0, err
		}
	case LetAlias:
		if err := writeAliasMeaning(&out, queryName, b.TargetName); err != nil {
			return nil, 0, err
		}
	default:
		if err := pushASCIIBytes(&out, []byte("undefined:")); err != nil {
			return nil, 0, err
		}
		if err := pushASCIIBytes(&out, queryName); err != nil {
			return nil, 0, err
		}
	}
	return out, nextIndex + 1, nil
}

func writeAliasMeaning(out *[]token.Token, queryName, targetName []byte) error {
	if err := pushASCIIBytes(out, []byte("alias:")); err != nil {
		return err
	}
	if err := pushASCIIBytes(out, queryName); err != nil {
		return err
	}
	if err := pushASCIIBytes(out, []byte("->")); err != nil {
		return err
	}
	return pushASCIIBytes(out, targetName)
}
