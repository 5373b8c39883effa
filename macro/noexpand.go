package macro

import "github.com/boan-anbo/carreltex-sub000/token"

// parseNoexpand pushes the single token following \noexpand unchanged.
func parseNoexpand(tokens []token.Token, noexpandIndex int, out *[]token.Token) (int, error) {
	if noexpandIndex+1 >= len(tokens) {
		return 0, errMacroNoexpandUnsupported()
	}
	if err := pushChecked(out, tokens[noexpandIndex+1]); err != nil {
		return 0, err
	}
	return noexpandIndex + 2, nil
}
