package macro

import "github.com/boan-anbo/carreltex-sub000/token"

func skipSpaceTokens(tokens []token.Token, index int) int {
	for index < len(tokens) && tokens[index].Kind == token.Space {
		index++
	}
	return index
}

func pushChecked(out *[]token.Token, t token.Token) error {
	if len(*out) >= token.MaxTokens {
		return errMacroValidationFailed()
	}
	*out = append(*out, t)
	return nil
}

func pushASCIIBytes(out *[]token.Token, bytes []byte) error {
	for _, b := range bytes {
		if err := pushChecked(out, token.NewChar(b)); err != nil {
			return err
		}
	}
	return nil
}

// parseBalancedGroupPayload consumes a {...} group starting at
// beginGroupIndex, returning its (flattened, brace-stripped) payload and
// the index just past the closing brace.
func parseBalancedGroupPayload(tokens []token.Token, beginGroupIndex int) ([]token.Token, int, error) {
	if beginGroupIndex >= len(tokens) || tokens[beginGroupIndex].Kind != token.BeginGroup {
		return nil, 0, errMacroValidationFailed()
	}
	depth := 1
	var payload []token.Token
	index := beginGroupIndex + 1
	for index < len(tokens) {
		t := tokens[index]
		switch t.Kind {
		case token.BeginGroup:
			depth++
			payload = append(payload, t)
		case token.EndGroup:
			depth--
			if depth == 0 {
				return payload, index + 1, nil
			}
			payload = append(payload, t)
		default:
			payload = append(payload, t)
		}
		index++
	}
	return nil, 0, errMacroValidationFailed()
}

// validateMacroBodyTokens requires every '#' in a body to be immediately
// followed by '1' when paramCount == 1, and forbids '#' entirely otherwise.
func validateMacroBodyTokens(body []token.Token, paramCount byte) error {
	index := 0
	for index < len(body) {
		t := body[index]
		if t.Kind == token.Char && t.Byte == '#' {
			switch paramCount {
			case 1:
				if index+1 >= len(body) || body[index+1].Kind != token.Char || body[index+1].Byte != '1' {
					return errMacroParamsUnsupported()
				}
				index += 2
			default:
				return errMacroParamsUnsupported()
			}
			continue
		}
		index++
	}
	return nil
}

// substituteSingleParamPlaceholders replaces every "#1" placeholder in
// body with argument, in order.
func substituteSingleParamPlaceholders(body, argument []token.Token) ([]token.Token, error) {
	var out []token.Token
	index := 0
	for index < len(body) {
		t := body[index]
		if t.Kind == token.Char && t.Byte == '#' {
			if index+1 >= len(body) || body[index+1].Kind != token.Char || body[index+1].Byte != '1' {
				return nil, errMacroParamsUnsupported()
			}
			for _, a := range argument {
				if err := pushChecked(&out, a); err != nil {
					return nil, err
				}
			}
			index += 2
			continue
		}
		if err := pushChecked(&out, t); err != nil {
			return nil, err
		}
		index++
	}
	return out, nil
}
