// Package macro is the macro expander (§4.4): lexically scoped binding
// frames, \def/\gdef/\edef/\xdef, \let/\futurelet, \newcommand family,
// \csname/\expandafter/\noexpand/\string/\meaning, \count/\the, group
// synonyms, and the independent \ifnum/\ifx conditional stacks.
package macro

import "github.com/boan-anbo/carreltex-sub000/token"

const maxMacros = 4096

// Binding is the MacroBinding sum type (§3): a user macro, a literal
// control-sequence alias (the \futurelet shape), or a \let alias carrying
// its resolved target binding alongside the target's raw name.
type Binding interface {
	isBinding()
}

// MacroDef is a \def-family binding: a body of ParamCount 0 or 1
// positional parameters.
type MacroDef struct {
	ParamCount byte
	Body       []token.Token
}

func (MacroDef) isBinding() {}

// ControlSeqLiteral is the binding \futurelet installs: looking it up
// re-emits Target as a fresh control sequence one step ahead.
type ControlSeqLiteral struct {
	Target []byte
}

func (ControlSeqLiteral) isBinding() {}

// LetAlias is the binding \let installs: TargetName is the alias's
// argument at definition time (for \meaning/diagnostics), Resolved is the
// snapshot of the target's binding taken at definition time.
type LetAlias struct {
	TargetName []byte
	Resolved   Binding
}

func (LetAlias) isBinding() {}

// frames is the lexically scoped binding stack; frames[0] is global scope.
type frames []map[string]Binding

func newFrames() frames {
	return frames{make(map[string]Binding)}
}

func (f *frames) pushFrame() { *f = append(*f, make(map[string]Binding)) }

func (f *frames) popFrame() {
	if len(*f) > 1 {
		*f = (*f)[:len(*f)-1]
	}
}

func (f frames) lookup(name []byte) Binding {
	key := string(name)
	for i := len(f) - 1; i >= 0; i-- {
		if b, ok := f[i][key]; ok {
			return b
		}
	}
	return nil
}

func (f frames) totalDefs() int {
	total := 0
	for _, frame := range f {
		total += len(frame)
	}
	return total
}

// targetFrameIndex resolves the insertion point for a binding write:
// global scope for \gdef/\xdef/\global, otherwise the innermost frame.
func (f frames) targetFrameIndex(isGlobal bool) (int, error) {
	if isGlobal {
		return 0, nil
	}
	if len(f) == 0 {
		return 0, errMacroValidationFailed()
	}
	return len(f) - 1, nil
}

// insert writes name -> binding into the target frame, enforcing the
// global macro-table size cap unless name is already bound there.
func (f frames) insert(targetFrameIndex int, name []byte, binding Binding) error {
	key := string(name)
	if _, exists := f[targetFrameIndex][key]; !exists && f.totalDefs() >= maxMacros {
		return errMacroValidationFailed()
	}
	f[targetFrameIndex][key] = binding
	return nil
}

// ifxComparable is the reduced shape classify_ifx_binding_v0 compares:
// either undefined, an unresolved alias chain collapsed to its final
// target name, or a concrete macro definition.
type ifxComparable struct {
	kind   ifxKind
	target []byte
	def    *MacroDef
}

type ifxKind int

const (
	ifxUndefined ifxKind = iota
	ifxAliasTarget
	ifxMacro
)

func classifyIfxBinding(f frames, name []byte) ifxComparable {
	binding := f.lookup(name)
	switch b := binding.(type) {
	case nil:
		return ifxComparable{kind: ifxUndefined}
	case MacroDef:
		return ifxComparable{kind: ifxMacro, def: &b}
	case ControlSeqLiteral:
		return ifxComparable{kind: ifxAliasTarget, target: resolveAliasTargetName(f, b.Target)}
	case LetAlias:
		return classifyIfxFromResolvedBinding(b.Resolved)
	default:
		return ifxComparable{kind: ifxUndefined}
	}
}

func classifyIfxFromResolvedBinding(binding Binding) ifxComparable {
	switch b := binding.(type) {
	case MacroDef:
		return ifxComparable{kind: ifxMacro, def: &b}
	case ControlSeqLiteral:
		return ifxComparable{kind: ifxAliasTarget, target: b.Target}
	case LetAlias:
		return classifyIfxFromResolvedBinding(b.Resolved)
	default:
		return ifxComparable{kind: ifxUndefined}
	}
}

func resolveAliasTargetName(f frames, start []byte) []byte {
	current := start
	var seen [][]byte
	for {
		dup := false
		for _, s := range seen {
			if string(s) == string(current) {
				dup = true
				break
			}
		}
		if dup {
			return current
		}
		seen = append(seen, current)
		switch b := f.lookup(current).(type) {
		case ControlSeqLiteral:
			current = b.Target
		case LetAlias:
			current = b.TargetName
		default:
			return current
		}
	}
}

// compareIfxControlSeqs implements \ifx (§4.4): two undefined names are
// equal, two alias chains are equal iff they bottom out at the same
// target, two macros are equal iff param count and body tokens match
// exactly. A BLAKE2b digest of each macro body is computed first as a
// cheap inequality short-circuit before the exact token comparison runs.
func compareIfxControlSeqs(f frames, left, right []byte) bool {
	l, r := classifyIfxBinding(f, left), classifyIfxBinding(f, right)
	if l.kind != r.kind {
		return false
	}
	switch l.kind {
	case ifxUndefined:
		return true
	case ifxAliasTarget:
		return string(l.target) == string(r.target)
	case ifxMacro:
		if l.def.ParamCount != r.def.ParamCount {
			return false
		}
		if macroBodyDigest(l.def) != macroBodyDigest(r.def) {
			return false
		}
		return token.EqualSeq(l.def.Body, r.def.Body)
	default:
		return false
	}
}

// snapshotLetBinding resolves target through any alias chain to the
// binding \let should capture (a concrete macro, or the terminal
// unresolved control-sequence name as a ControlSeqLiteral).
func snapshotLetBinding(f frames, target []byte) (Binding, error) {
	current := target
	var seen [][]byte
	for {
		for _, s := range seen {
			if string(s) == string(current) {
				return nil, errMacroCycleFailed()
			}
		}
		seen = append(seen, current)
		switch b := f.lookup(current).(type) {
		case MacroDef:
			return b, nil
		case ControlSeqLiteral:
			current = b.Target
		case LetAlias:
			return b.Resolved, nil
		default:
			return ControlSeqLiteral{Target: current}, nil
		}
	}
}
