package macro

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boan-anbo/carreltex-sub000/reason"
	"github.com/boan-anbo/carreltex-sub000/token"
	"github.com/boan-anbo/carreltex-sub000/tokenizer"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := tokenizer.Tokenize([]byte(src))
	require.NoError(t, err)
	return tokens
}

func chars(s string) []token.Token {
	out := make([]token.Token, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = token.NewChar(s[i])
	}
	return out
}

func TestExpand_DefThenInvoke(t *testing.T) {
	tokens := tokenize(t, `\def\greet{HI}\greet\greet`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("HIHI"), expanded)
}

func TestExpand_LetAliasesCurrentBinding(t *testing.T) {
	tokens := tokenize(t, `\def\a{X}\let\b=\a\def\a{Y}\b`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("X"), expanded)
}

func TestExpand_GlobalPrefixInstallsInOutermostFrame(t *testing.T) {
	tokens := tokenize(t, `{\global\def\g{G}}\g`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.BeginGroupTok, token.EndGroupTok, token.NewChar('G')}, expanded)
}

func TestExpand_IfnumTrueBranch(t *testing.T) {
	tokens := tokenize(t, `\count0=1\count1=2\ifnum\count0<\count1XYZ\fi`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("XYZ"), expanded)
}

func TestExpand_IfnumFalseBranchWithElse(t *testing.T) {
	tokens := tokenize(t, `\count0=1\count1=2\ifnum\count0>\count1XYZ\else QRS\fi`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("QRS"), expanded)
}

func TestExpand_IfnumDuplicateElseReportsIfnumReason(t *testing.T) {
	tokens := tokenize(t, `\count0=1\count1=2\ifnum\count0<\count1A\else B\else C\fi`)
	_, err := Expand(tokens)
	r, ok := reason.As(err)
	require.True(t, ok)
	require.Equal(t, reason.MacroIfElseDuplicate, r)
}

func TestExpand_IfxDuplicateElseReportsIfxReason(t *testing.T) {
	tokens := tokenize(t, `\ifx\a\a A\else B\else C\fi`)
	_, err := Expand(tokens)
	r, ok := reason.As(err)
	require.True(t, ok)
	require.Equal(t, reason.MacroIfxElseDuplicate, r)
}

func TestExpand_IfxTwoUndefinedNamesAreEqual(t *testing.T) {
	tokens := tokenize(t, `\ifx\undefa\undefb YES\else NO\fi`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("YES"), expanded)
}

func TestExpand_IfxComparesMacroBodiesExactly(t *testing.T) {
	tokens := tokenize(t, `\def\a{Z}\def\b{Z}\ifx\a\b SAME\else DIFF\fi`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("SAME"), expanded)

	tokens = tokenize(t, `\def\a{Z}\def\b{W}\ifx\a\b SAME\else DIFF\fi`)
	expanded, err = Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("DIFF"), expanded)
}

func TestExpand_TheCountEmitsDecimalDigits(t *testing.T) {
	tokens := tokenize(t, `\count0=42\the\count0`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, chars("42"), expanded)
}

func TestExpand_LoneEndgroupUnderflows(t *testing.T) {
	tokens := tokenize(t, `\endgroup`)
	_, err := Expand(tokens)
	r, ok := reason.As(err)
	require.True(t, ok)
	require.Equal(t, reason.MacroGroupUnderflow, r)
}

func TestExpand_BegingroupEndgroupSynonymsBalance(t *testing.T) {
	tokens := tokenize(t, `\begingroup A\endgroup`)
	expanded, err := Expand(tokens)
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.BeginGroupTok, token.NewChar('A'), token.EndGroupTok}, expanded)
}
