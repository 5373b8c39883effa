// Package inputexpand walks a token stream, recursively inlining
// \input{path} inclusions against a Mount and producing an audit Trace
// (§4.3).
package inputexpand

import (
	"strings"

	"github.com/boan-anbo/carreltex-sub000/mount"
	"github.com/boan-anbo/carreltex-sub000/reason"
	"github.com/boan-anbo/carreltex-sub000/token"
	"github.com/boan-anbo/carreltex-sub000/tokenizer"
)

const (
	maxInputDepth       = 32
	maxInputExpansions  = 1024
)

// Expand walks tokens, recursively inlining \input sites against m, and
// returns the fully expanded sequence plus the resulting audit trace.
func Expand(tokens []token.Token, m *mount.Mount) ([]token.Token, *Trace, error) {
	activeStack := []string{"main.tex"}
	expansionCount := 0
	trace := NewTrace()
	expanded, err := expandInner(tokens, m, 0, &activeStack, &expansionCount, trace)
	if err != nil {
		return nil, nil, err
	}
	return expanded, trace, nil
}

func expandInner(tokens []token.Token, m *mount.Mount, depth int, activeStack *[]string, expansionCount *int, trace *Trace) ([]token.Token, error) {
	if depth > maxInputDepth {
		return nil, reason.New(reason.InputDepthExceeded)
	}

	var out []token.Token
	index := 0
	for index < len(tokens) {
		t := tokens[index]
		if t.Kind == token.ControlSeq && string(t.Name) == "input" {
			*expansionCount++
			if *expansionCount > maxInputExpansions {
				return nil, reason.New(reason.InputExpansionsExceeded)
			}
			trace.Expansions = uint64(*expansionCount)

			normalizedPath, nextIndex, err := parseInputPathGroup(tokens, index)
			if err != nil {
				return nil, err
			}
			for _, p := range *activeStack {
				if p == normalizedPath {
					return nil, reason.New(reason.InputCycleFailed)
				}
			}
			trace.recordFile(normalizedPath)
			trace.recordDepth(depth + 1)

			data, err := m.ReadFileByBytes([]byte(normalizedPath))
			if err != nil || data == nil {
				return nil, reason.New(reason.InputValidationFailed)
			}
			includedTokens, err := tokenizer.Tokenize(data)
			if err != nil {
				return nil, reason.New(reason.InputValidationFailed)
			}

			*activeStack = append(*activeStack, normalizedPath)
			expanded, err := expandInner(includedTokens, m, depth+1, activeStack, expansionCount, trace)
			*activeStack = (*activeStack)[:len(*activeStack)-1]
			if err != nil {
				return nil, err
			}

			if len(out)+len(expanded) > token.MaxTokens {
				return nil, reason.New(reason.InputValidationFailed)
			}
			out = append(out, expanded...)
			index = nextIndex
		} else {
			if len(out) >= token.MaxTokens {
				return nil, reason.New(reason.InputValidationFailed)
			}
			out = append(out, t)
			index++
		}
	}
	return out, nil
}

// parseInputPathGroup parses the braced or unbraced path argument after a
// \input control sequence, normalises it via Mount's path rules, and
// appends ".tex" if the normalised path lacks that suffix.
func parseInputPathGroup(tokens []token.Token, inputIndex int) (string, int, error) {
	if !(tokens[inputIndex].Kind == token.ControlSeq && string(tokens[inputIndex].Name) == "input") {
		return "", 0, reason.New(reason.InputValidationFailed)
	}

	index := inputIndex + 1
	var pathBytes []byte

	if index < len(tokens) && tokens[index].Kind == token.BeginGroup {
		index++
		for {
			if index >= len(tokens) {
				return "", 0, reason.New(reason.InputValidationFailed)
			}
			t := tokens[index]
			switch t.Kind {
			case token.Char:
				pathBytes = append(pathBytes, t.Byte)
				index++
			case token.EndGroup:
				index++
				goto doneBraced
			default:
				return "", 0, reason.New(reason.InputValidationFailed)
			}
		}
	doneBraced:
	} else {
		for index < len(tokens) && tokens[index].Kind == token.Char {
			pathBytes = append(pathBytes, tokens[index].Byte)
			index++
		}
	}

	if len(pathBytes) == 0 {
		return "", 0, reason.New(reason.InputValidationFailed)
	}

	normalized, err := mount.NormalizePath(pathBytes)
	if err != nil {
		return "", 0, reason.New(reason.InputValidationFailed)
	}
	if !strings.HasSuffix(normalized, ".tex") {
		normalized += ".tex"
	}
	return normalized, index, nil
}
