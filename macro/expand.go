package macro

import "github.com/boan-anbo/carreltex-sub000/token"

const (
	maxMacroExpansions = 4096
	maxMacroDepth      = 64
	maxGroupDepth      = 1024
)

type conditionalKind int

const (
	condNone conditionalKind = iota
	condIfnum
	condIfx
)

// Expand runs the macro expander over tokens, starting from an empty
// global binding frame and zeroed \count registers.
func Expand(tokens []token.Token) ([]token.Token, error) {
	f := newFrames()
	var counters [2]uint32
	return expandStream(tokens, &f, &counters, 0)
}

// expandStream runs expandStreamInner with fresh active-macro-cycle and
// expansion-count bookkeeping; used both for the top-level entry point and
// for \edef/\xdef bodies, which track their own expansion budget
// independent from the stream they're defined in.
func expandStream(tokens []token.Token, f *frames, counters *[2]uint32, depth int) ([]token.Token, error) {
	var out []token.Token
	var activeMacros [][]byte
	expansionCount := 0
	if err := expandStreamInner(tokens, f, counters, &out, &activeMacros, &expansionCount, depth); err != nil {
		return nil, err
	}
	return out, nil
}

func expandStreamInner(
	tokens []token.Token,
	f *frames,
	counters *[2]uint32,
	out *[]token.Token,
	activeMacros *[][]byte,
	expansionCount *int,
	depth int,
) error {
	if depth > maxMacroDepth {
		return errMacroDepthExceeded()
	}

	lastConditionalKind := condNone
	index := 0
	for index < len(tokens) {
		t := tokens[index]

		switch {
		case t.Kind == token.BeginGroup:
			f.pushFrame()
			if err := pushChecked(out, token.BeginGroupTok); err != nil {
				return err
			}
			index++

		case t.Kind == token.EndGroup:
			f.popFrame()
			if err := pushChecked(out, token.EndGroupTok); err != nil {
				return err
			}
			index++

		case t.Kind == token.ControlSeq && isDefName(t.Name):
			isGlobal := string(t.Name) == "gdef"
			expandBody := string(t.Name) == "edef"
			next, err := parseDef(tokens, index, f, counters, isGlobal, expandBody)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "newcommand":
			next, err := parseNewcommand(tokens, index, f)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "renewcommand":
			next, err := parseRenewcommand(tokens, index, f)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "providecommand":
			next, err := parseProvidecommand(tokens, index, f)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "xdef":
			// \xdef is \global\edef by definition: always installs globally.
			next, err := parseXdef(tokens, index, f, counters, true)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "let":
			next, err := parseLet(tokens, index, f, false)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "futurelet":
			next, err := parseFuturelet(tokens, index, f, false)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "expandafter":
			reordered, next, err := parseExpandafter(tokens, index)
			if err != nil {
				return err
			}
			if err := expandStreamInner(reordered, f, counters, out, activeMacros, expansionCount, depth+1); err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "csname":
			generated, next, err := parseCsname(tokens, index)
			if err != nil {
				return err
			}
			if err := expandStreamInner([]token.Token{generated}, f, counters, out, activeMacros, expansionCount, depth+1); err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "string":
			chars, next, err := parseString(tokens, index)
			if err != nil {
				return err
			}
			if err := pushAll(out, chars); err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "meaning":
			chars, next, err := parseMeaning(tokens, index, *f)
			if err != nil {
				return err
			}
			if err := pushAll(out, chars); err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "count":
			next, err := parseCountAssignment(tokens, index, counters)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "the":
			chars, next, err := parseThe(tokens, index, counters)
			if err != nil {
				return err
			}
			if err := pushAll(out, chars); err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "global":
			next, err := parseGlobalPrefixedMacroBinding(tokens, index, f, counters)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && isGroupSynonym(t.Name):
			groupToken, _ := controlSeqToGroupToken(t.Name)
			if groupToken.Kind == token.BeginGroup {
				if len(*f) >= maxGroupDepth {
					return errMacroGroupDepthExceeded()
				}
				f.pushFrame()
			} else if len(*f) > 1 {
				f.popFrame()
			} else if isEndgroupSynonym(t.Name) {
				return errMacroGroupUnderflow()
			}
			if err := pushChecked(out, groupToken); err != nil {
				return err
			}
			index++

		case t.Kind == token.ControlSeq && string(t.Name) == "relax":
			index++

		case t.Kind == token.ControlSeq && string(t.Name) == "noexpand":
			next, err := parseNoexpand(tokens, index, out)
			if err != nil {
				return err
			}
			index = next

		case t.Kind == token.ControlSeq && string(t.Name) == "ifnum":
			selected, next, err := parseIfnum(tokens, index, counters, 0)
			if err != nil {
				return err
			}
			if err := expandStreamInner(selected, f, counters, out, activeMacros, expansionCount, depth+1); err != nil {
				return err
			}
			index = next
			lastConditionalKind = condIfnum

		case t.Kind == token.ControlSeq && string(t.Name) == "ifx":
			selected, next, err := parseIfx(tokens, index, counters, 0, *f)
			if err != nil {
				return err
			}
			if err := expandStreamInner(selected, f, counters, out, activeMacros, expansionCount, depth+1); err != nil {
				return err
			}
			index = next
			lastConditionalKind = condIfx

		case t.Kind == token.ControlSeq && string(t.Name) == "else":
			if lastConditionalKind == condIfx {
				return errMacroIfxElseWithoutIf()
			}
			return errMacroIfElseWithoutIf()

		case t.Kind == token.ControlSeq:
			if err := dispatchControlSeq(tokens, &index, t.Name, f, counters, out, activeMacros, expansionCount, depth); err != nil {
				return err
			}

		default:
			if err := pushChecked(out, t); err != nil {
				return err
			}
			index++
		}
	}

	if len(*out) > token.MaxTokens {
		return errMacroValidationFailed()
	}
	return nil
}

func isDefName(name []byte) bool {
	s := string(name)
	return s == "def" || s == "gdef" || s == "edef"
}

func isGroupSynonym(name []byte) bool {
	_, ok := controlSeqToGroupToken(name)
	return ok
}

func pushAll(out *[]token.Token, ts []token.Token) error {
	for _, t := range ts {
		if err := pushChecked(out, t); err != nil {
			return err
		}
	}
	return nil
}

// dispatchControlSeq handles the generic bound-or-unbound control sequence
// case: a user macro expands (with cycle/expansion-budget checks), a
// ControlSeqLiteral re-emits its target one step ahead, a LetAlias
// expands its resolved binding, and an unbound name passes through
// unchanged.
func dispatchControlSeq(
	tokens []token.Token,
	index *int,
	name []byte,
	f *frames,
	counters *[2]uint32,
	out *[]token.Token,
	activeMacros *[][]byte,
	expansionCount *int,
	depth int,
) error {
	switch b := f.lookup(name).(type) {
	case MacroDef:
		*expansionCount++
		if *expansionCount > maxMacroExpansions {
			return errMacroExpansionsExceeded()
		}
		for _, active := range *activeMacros {
			if string(active) == string(name) {
				return errMacroCycleFailed()
			}
		}

		var expandedBody []token.Token
		nextIndex := *index + 1
		switch b.ParamCount {
		case 0:
			expandedBody = b.Body
		case 1:
			argumentTokens, argNextIndex, err := parseBalancedGroupPayload(tokens, *index+1)
			if err != nil {
				return err
			}
			substituted, err := substituteSingleParamPlaceholders(b.Body, argumentTokens)
			if err != nil {
				return err
			}
			expandedBody = substituted
			nextIndex = argNextIndex
		default:
			return errMacroValidationFailed()
		}

		*activeMacros = append(*activeMacros, name)
		err := expandStreamInner(expandedBody, f, counters, out, activeMacros, expansionCount, depth+1)
		*activeMacros = (*activeMacros)[:len(*activeMacros)-1]
		if err != nil {
			return err
		}
		*index = nextIndex

	case ControlSeqLiteral:
		if err := pushChecked(out, token.NewControlSeq(b.Target)); err != nil {
			return err
		}
		*index++

	case LetAlias:
		if err := expandBinding(name, b.Resolved, f, counters, out, activeMacros, expansionCount, depth); err != nil {
			return err
		}
		*index++

	default:
		if err := pushChecked(out, tokens[*index]); err != nil {
			return err
		}
		*index++
	}
	return nil
}

// expandBinding expands an already-resolved Binding directly (the
// \let-alias path, which skips re-lookup by name).
func expandBinding(
	name []byte,
	binding Binding,
	f *frames,
	counters *[2]uint32,
	out *[]token.Token,
	activeMacros *[][]byte,
	expansionCount *int,
	depth int,
) error {
	*expansionCount++
	if *expansionCount > maxMacroExpansions {
		return errMacroExpansionsExceeded()
	}
	for _, active := range *activeMacros {
		if string(active) == string(name) {
			return errMacroCycleFailed()
		}
	}

	*activeMacros = append(*activeMacros, name)
	var err error
	switch b := binding.(type) {
	case MacroDef:
		if b.ParamCount != 0 {
			err = errMacroValidationFailed()
		} else {
			err = expandStreamInner(b.Body, f, counters, out, activeMacros, expansionCount, depth+1)
		}
	case ControlSeqLiteral:
		err = expandStreamInner([]token.Token{token.NewControlSeq(b.Target)}, f, counters, out, activeMacros, expansionCount, depth+1)
	case LetAlias:
		err = expandBinding(name, b.Resolved, f, counters, out, activeMacros, expansionCount, depth+1)
	}
	*activeMacros = (*activeMacros)[:len(*activeMacros)-1]
	return err
}
