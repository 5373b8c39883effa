package macro

import "github.com/boan-anbo/carreltex-sub000/token"

const maxIfDepth = 64

// parseIfnum parses \ifnum \count<d> <op> \count<d> ... [\else ...] \fi,
// returning the tokens of the taken branch and the index just past \fi.
// Its conditional stack is independent from parseIfx's (§4.4 design note).
func parseIfnum(tokens []token.Token, ifnumIndex int, counters *[2]uint32, ifDepth int) ([]token.Token, int, error) {
	if ifDepth >= maxIfDepth {
		return nil, 0, errMacroIfDepthExceeded()
	}

	index := skipSpaceTokens(tokens, ifnumIndex+1)
	left, err := parseIfnumCountOperand(tokens, &index, counters)
	if err != nil {
		return nil, 0, err
	}
	index = skipSpaceTokens(tokens, index)
	if index >= len(tokens) || tokens[index].Kind != token.Char {
		return nil, 0, errMacroIfnumUnsupported()
	}
	operator := tokens[index].Byte
	if operator != '<' && operator != '=' && operator != '>' {
		return nil, 0, errMacroIfnumUnsupported()
	}
	index++
	index = skipSpaceTokens(tokens, index)
	right, err := parseIfnumCountOperand(tokens, &index, counters)
	if err != nil {
		return nil, 0, err
	}

	var condition bool
	switch operator {
	case '<':
		condition = left < right
	case '=':
		condition = left == right
	case '>':
		condition = left > right
	}

	var out []token.Token
	inElse, sawElse := false, false
	for index < len(tokens) {
		t := tokens[index]
		switch {
		case t.Kind == token.ControlSeq && string(t.Name) == "ifnum":
			nested, nextIndex, err := parseIfnum(tokens, index, counters, ifDepth+1)
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
				return nil, 0, errMacroIfElseDuplicate()
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
	return nil, 0, errMacroIfMissingFi()
}

func parseIfnumCountOperand(tokens []token.Token, index *int, counters *[2]uint32) (uint32, error) {
	if *index >= len(tokens) || tokens[*index].Kind != token.ControlSeq || string(tokens[*index].Name) != "count" {
		return 0, errMacroIfnumUnsupported()
	}
	*index++
	if *index >= len(tokens) || tokens[*index].Kind != token.Char {
		return 0, errMacroIfnumUnsupported()
	}
	switch tokens[*index].Byte {
	case '0':
		*index++
		return counters[0], nil
	case '1':
		*index++
		return counters[1], nil
	default:
		return 0, errMacroIfnumUnsupported()
	}
}

func branchSelected(condition, inElse bool) bool {
	return (condition && !inElse) || (!condition && inElse)
}
