// Package reason is the closed sum type of INVALID_INPUT rejection causes
// and the total rendering functions that turn a Reason into the bytes a
// caller observes. Keeping this a single enumerated type with one pure
// "to log bytes" mapping is what makes the A-F precedence order provable by
// inspection rather than by scattered call-site string literals.
package reason

// Reason is one rejection cause. The zero value is never a valid Reason;
// every construction site uses one of the named constants below.
type Reason int

const (
	_ Reason = iota

	// Mount (precedence A/B/C).
	RequestInvalid
	MountFinalizeFailed
	EntrypointMissing

	// Tokenizer (precedence D).
	TokenizeFailed
	TokenizerCaretNotSupported
	TokenizerAccentNotSupported
	TokenizerControlSeqNonAscii

	// Stats (precedence E).
	StatsBuildFailed

	// Input expansion (precedence F).
	InputValidationFailed
	InputCycleFailed
	InputDepthExceeded
	InputExpansionsExceeded

	// Macro expansion (precedence F).
	MacroValidationFailed
	MacroParamsUnsupported
	MacroCycleFailed
	MacroDepthExceeded
	MacroExpansionsExceeded
	MacroGlobalPrefixUnsupported
	MacroLetUnsupported
	MacroFutureletUnsupported
	MacroExpandafterUnsupported
	MacroCsnameUnsupported
	MacroStringUnsupported
	MacroMeaningUnsupported
	MacroCountAssignmentUnsupported
	MacroTheUnsupported
	MacroXdefUnsupported
	MacroNoexpandUnsupported
	MacroGroupUnderflow
	MacroGroupDepthExceeded
	MacroIfnumUnsupported
	MacroIfDepthExceeded
	MacroIfElseDuplicate
	MacroIfElseWithoutIf
	MacroIfMissingFi
	MacroIfxUnsupported
	MacroIfxElseDuplicate
	MacroIfxElseWithoutIf
	MacroIfxMissingFi
	MacroIfxDepthExceeded
	MacroNewcommandAlreadyDefined
	MacroRenewcommandUndefined
	MacroProvidecommandUnsupported
	MacroNewcommandUnsupported
	MacroRenewcommandUnsupported
)

// token is the single total mapping from Reason to its snake_case wire
// token. A missing entry is a programming error, caught by Token's panic
// below rather than silently returning "".
var token = map[Reason]string{
	RequestInvalid:      "request_invalid",
	MountFinalizeFailed: "mount_finalize_failed",
	EntrypointMissing:   "entrypoint_missing",

	TokenizeFailed:              "tokenize_failed",
	TokenizerCaretNotSupported:  "tokenizer_caret_not_supported",
	TokenizerAccentNotSupported: "tokenizer_accent_not_supported",
	TokenizerControlSeqNonAscii: "tokenizer_control_seq_non_ascii",

	StatsBuildFailed: "stats_build_failed",

	InputValidationFailed:  "input_validation_failed",
	InputCycleFailed:       "input_cycle_failed",
	InputDepthExceeded:     "input_depth_exceeded",
	InputExpansionsExceeded: "input_expansions_exceeded",

	MacroValidationFailed:           "macro_validation_failed",
	MacroParamsUnsupported:          "macro_params_unsupported",
	MacroCycleFailed:                "macro_cycle_failed",
	MacroDepthExceeded:              "macro_depth_exceeded",
	MacroExpansionsExceeded:         "macro_expansions_exceeded",
	MacroGlobalPrefixUnsupported:    "macro_global_prefix_unsupported",
	MacroLetUnsupported:             "macro_let_unsupported",
	MacroFutureletUnsupported:       "macro_futurelet_unsupported",
	MacroExpandafterUnsupported:     "macro_expandafter_unsupported",
	MacroCsnameUnsupported:          "macro_csname_unsupported",
	MacroStringUnsupported:          "macro_string_unsupported",
	MacroMeaningUnsupported:         "macro_meaning_unsupported",
	MacroCountAssignmentUnsupported: "macro_count_assignment_unsupported",
	MacroTheUnsupported:             "macro_the_unsupported",
	MacroXdefUnsupported:            "macro_xdef_unsupported",
	MacroNoexpandUnsupported:        "macro_noexpand_unsupported",
	MacroGroupUnderflow:             "macro_group_underflow",
	MacroGroupDepthExceeded:         "macro_group_depth_exceeded",
	MacroIfnumUnsupported:           "macro_ifnum_unsupported",
	MacroIfDepthExceeded:            "macro_if_depth_exceeded",
	MacroIfElseDuplicate:            "macro_if_else_duplicate",
	MacroIfElseWithoutIf:            "macro_if_else_without_if",
	MacroIfMissingFi:                "macro_if_missing_fi",
	MacroIfxUnsupported:             "macro_ifx_unsupported",
	MacroIfxElseDuplicate:           "macro_ifx_else_duplicate",
	MacroIfxElseWithoutIf:           "macro_ifx_else_without_if",
	MacroIfxMissingFi:               "macro_ifx_missing_fi",
	MacroIfxDepthExceeded:           "macro_ifx_depth_exceeded",
	MacroNewcommandAlreadyDefined:   "macro_newcommand_already_defined",
	MacroRenewcommandUndefined:      "macro_renewcommand_undefined",
	MacroProvidecommandUnsupported:  "macro_providecommand_unsupported",
	MacroNewcommandUnsupported:      "macro_newcommand_unsupported",
	MacroRenewcommandUnsupported:    "macro_renewcommand_unsupported",
}

// Token returns the snake_case wire name for r.
func Token(r Reason) string {
	t, ok := token[r]
	if !ok {
		panic("reason: unmapped Reason value")
	}
	return t
}

// Error adapts a Reason to the standard error interface so it can travel
// through (T, error) returns the way every other fallible call in this
// module does.
type Error struct {
	Reason Reason
}

func (e *Error) Error() string {
	return "INVALID_INPUT: " + Token(e.Reason)
}

// New wraps r as an error.
func New(r Reason) error {
	return &Error{Reason: r}
}

// As extracts the Reason carried by err, if any.
func As(err error) (Reason, bool) {
	if e, ok := err.(*Error); ok {
		return e.Reason, true
	}
	return 0, false
}

// LogBytes renders the literal ASCII log_bytes payload for an INVALID_INPUT
// result: "INVALID_INPUT: <reason_token>".
func LogBytes(r Reason) []byte {
	return []byte("INVALID_INPUT: " + Token(r))
}
