package macro

import "github.com/boan-anbo/carreltex-sub000/token"

const maxIfxDepth = 64

// parseIfx parses \ifx <csname> <csname> ... [\else ...] \fi. It may
// recurse into nested \ifx or \ifnum and keeps its own conditional stack
// independent from parseIfnum's, so a stray \else reports the right
// reason for whichever kind was innermost (§4.4 design note).
func parseIfx(tokens []token.Token, ifxIndex int, counters *[2]uint32, ifDepth int, f frames) ([]token.Token, int, error) {
	if ifDepth >= maxIfxDepth {
		return nil, 0, errMacroIfxDepthExceeded()
	}

	index := skipSpaceTokens(tokens, ifxIndex+1)
	left, err := parseIfxOperand(tokens, &index)
	if err != nil {
		return nil, 0, err
	}
	index = skipSpaceTokens(tokens, index)
	right, err := parseIfxOperand(tokens, &index)
	if err != nil {
		return nil, 0, err
	}
	condition := compareIfxControlSeqs(f, left, right)

	var out []token.Token
	inElse, sawElse := false, false
	for index < len(tokens) {
		t := tokens[index]
		switch {
		case t.Kind == token.ControlSeq && string(t.Name) == "ifx":
			nested, nextIndex, err := parseIfx(tokens, index, counters, ifDepth+1, f)
			if err != nil {
				return nil, 0, err
			}
			if branchSelected(condition, inElse) {
				for _, nt := range nested {
					if err := pushChecked(&out, nt); err != nil {
						return nil, 0, err
					}
				}
			}
			index = nextIndex
		case t.Kind == token.ControlSeq && string(t.Name) == "ifnum":
			nested, nextIndex, err := parseIfnum(tokens, index, counters, 0)
			if err != nil {
				return nil, 0, err
			}
			if branchSelected(condition, inElse) {
				for _, nt := range nested {
					if err := pushChecked(&out, nt); err != nil {
						return nil, 0, err
					}
				}
			}
			index = nextIndex
		case t.Kind == token.ControlSeq && string(t.Name) == "fi":
			return out, index + 1, nil
		case t.Kind == token.ControlSeq && string(t.Name) == "else":
			if sawElse {
				return nil, 0, errMacroIfxElseDuplicate()
			}
			sawElse = true
			inElse = true
			index++
		default:
			if branchSelected(condition, inElse) {
				if err := pushChecked(&out, t); err != nil {
					return nil, 0, err
				}
			}
			index++
		}
	}
	return nil, 0, errMacroIfxMissingFi()
}

func parseIfxOperand(tokens []token.Token, index *int) ([]byte, error) {
	if *index >= len(tokens) || tokens[*index].Kind != token.ControlSeq {
		return nil, errMacroIfxUnsupported()
	}
	name := tokens[*index].Name
	*index++
	return name, nil
}
