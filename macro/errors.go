package macro

import "github.com/boan-anbo/carreltex-sub000/reason"

func errMacroValidationFailed() error  { return reason.New(reason.MacroValidationFailed) }
func errMacroParamsUnsupported() error { return reason.New(reason.MacroParamsUnsupported) }
func errMacroCycleFailed() error       { return reason.New(reason.MacroCycleFailed) }
func errMacroDepthExceeded() error     { return reason.New(reason.MacroDepthExceeded) }
func errMacroExpansionsExceeded() error {
	return reason.New(reason.MacroExpansionsExceeded)
}
func errMacroGlobalPrefixUnsupported() error {
	return reason.New(reason.MacroGlobalPrefixUnsupported)
}
func errMacroLetUnsupported() error       { return reason.New(reason.MacroLetUnsupported) }
func errMacroFutureletUnsupported() error { return reason.New(reason.MacroFutureletUnsupported) }
func errMacroExpandafterUnsupported() error {
	return reason.New(reason.MacroExpandafterUnsupported)
}
func errMacroCsnameUnsupported() error { return reason.New(reason.MacroCsnameUnsupported) }
func errMacroStringUnsupported() error { return reason.New(reason.MacroStringUnsupported) }
func errMacroMeaningUnsupported() error { return reason.New(reason.MacroMeaningUnsupported) }
func errMacroCountAssignmentUnsupported() error {
	return reason.New(reason.MacroCountAssignmentUnsupported)
}
func errMacroTheUnsupported() error  { return reason.New(reason.MacroTheUnsupported) }
func errMacroXdefUnsupported() error { return reason.New(reason.MacroXdefUnsupported) }
func errMacroNoexpandUnsupported() error {
	return reason.New(reason.MacroNoexpandUnsupported)
}
func errMacroGroupUnderflow() error { return reason.New(reason.MacroGroupUnderflow) }
func errMacroGroupDepthExceeded() error {
	return reason.New(reason.MacroGroupDepthExceeded)
}
func errMacroIfnumUnsupported() error  { return reason.New(reason.MacroIfnumUnsupported) }
func errMacroIfDepthExceeded() error   { return reason.New(reason.MacroIfDepthExceeded) }
func errMacroIfElseDuplicate() error   { return reason.New(reason.MacroIfElseDuplicate) }
func errMacroIfElseWithoutIf() error   { return reason.New(reason.MacroIfElseWithoutIf) }
func errMacroIfMissingFi() error       { return reason.New(reason.MacroIfMissingFi) }
func errMacroIfxUnsupported() error    { return reason.New(reason.MacroIfxUnsupported) }
func errMacroIfxElseDuplicate() error  { return reason.New(reason.MacroIfxElseDuplicate) }
func errMacroIfxElseWithoutIf() error  { return reason.New(reason.MacroIfxElseWithoutIf) }
func errMacroIfxMissingFi() error      { return reason.New(reason.MacroIfxMissingFi) }
func errMacroIfxDepthExceeded() error  { return reason.New(reason.MacroIfxDepthExceeded) }
func errMacroNewcommandAlreadyDefined() error {
	return reason.New(reason.MacroNewcommandAlreadyDefined)
}
func errMacroRenewcommandUndefined() error {
	return reason.New(reason.MacroRenewcommandUndefined)
}
func errMacroNewcommandUnsupported() error {
	return reason.New(reason.MacroNewcommandUnsupported)
}
func errMacroRenewcommandUnsupported() error {
	return reason.New(reason.MacroRenewcommandUnsupported)
}
func errMacroProvidecommandUnsupported() error {
	return reason.New(reason.MacroProvidecommandUnsupported)
}
