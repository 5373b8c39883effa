package macro

import (
	"strconv"

	"github.com/boan-anbo/carreltex-sub000/token"
)

const maxCountValue = 1_000_000

// parseCountAssignment parses \count<0|1>=<digits>.
func parseCountAssignment(tokens []token.Token, countIndex int, counters *[2]uint32) (int, error) {
	if countIndex+1 >= len(tokens) || tokens[countIndex+1].Kind != token.Char {
		return 0, errMacroCountAssignmentUnsupported()
	}
	var registerIndex int
	switch tokens[countIndex+1].Byte {
	case '0':
		registerIndex = 0
	case '1':
		registerIndex = 1
	default:
		return 0, errMacroCountAssignmentUnsupported()
	}
	if countIndex+2 >= len(tokens) || tokens[countIndex+2].Kind != token.Char || tokens[countIndex+2].Byte != '=' {
		return 0, errMacroCountAssignmentUnsupported()
	}

	index := countIndex + 3
	var value uint32
	sawDigit := false
	for index < len(tokens) && tokens[index].Kind == token.Char && tokens[index].Byte >= '0' && tokens[index].Byte <= '9' {
		sawDigit = true
		value = value*10 + uint32(tokens[index].Byte-'0')
		if value > maxCountValue {
			return 0, errMacroCountAssignmentUnsupported()
		}
		index++
	}
	if !sawDigit {
		return 0, errMacroCountAssignmentUnsupported()
	}

	counters[registerIndex] = value
	return index, nil
}

// parseThe parses \the\count<0|1>, emitting its decimal value as Char
// tokens.
func parseThe(tokens []token.Token, theIndex int, counters *[2]uint32) ([]token.Token, int, error) {
	if theIndex+1 >= len(tokens) || tokens[theIndex+1].Kind != token.ControlSeq || string(tokens[theIndex+1].Name) != "count" {
		return nil, 0, errMacroTheUnsupported()
	}
	if theIndex+2 >= len(tokens) || tokens[theIndex+2].Kind != token.Char {
		return nil, 0, errMacroTheUnsupported()
	}
	var registerIndex int
	switch tokens[theIndex+2].Byte {
	case '0':
		registerIndex = 0
	case '1':
		registerIndex = 1
	default:
		return nil, 0, errMacroTheUnsupported()
	}

	var out []token.Token
	if err := pushASCIIBytes(&out, []byte(strconv.FormatUint(uint64(counters[registerIndex]), 10))); err != nil {
		return nil, 0, err
	}
	return out, theIndex + 3, nil
}
