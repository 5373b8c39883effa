package inputexpand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boan-anbo/carreltex-sub000/mount"
	"github.com/boan-anbo/carreltex-sub000/reason"
	"github.com/boan-anbo/carreltex-sub000/token"
	"github.com/boan-anbo/carreltex-sub000/tokenizer"
)

func newMountWith(t *testing.T, files map[string]string) *mount.Mount {
	t.Helper()
	m := mount.New()
	for path, data := range files {
		require.NoError(t, m.AddFile([]byte(path), []byte(data)))
	}
	return m
}

func TestExpand_InlinesInputTargetAndTracksTrace(t *testing.T) {
	m := newMountWith(t, map[string]string{
		"main.tex": "A\\input{b.tex}C",
		"b.tex":    "B",
	})
	tokens, err := tokenizer.Tokenize([]byte("A\\input{b.tex}C"))
	require.NoError(t, err)

	expanded, trace, err := Expand(tokens, m)
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.NewChar('A'), token.NewChar('B'), token.NewChar('C')}, expanded)
	require.Equal(t, uint64(1), trace.Expansions)
	require.Equal(t, uint64(1), trace.MaxDepth)
	require.Equal(t, []string{"main.tex", "b.tex"}, trace.Files)
}

func TestExpand_DetectsSelfInputCycle(t *testing.T) {
	m := newMountWith(t, map[string]string{
		"main.tex": "\\input{main.tex}",
	})
	tokens, err := tokenizer.Tokenize([]byte("\\input{main.tex}"))
	require.NoError(t, err)

	_, _, err = Expand(tokens, m)
	r, ok := reason.As(err)
	require.True(t, ok)
	require.Equal(t, reason.InputCycleFailed, r)
}

func TestExpand_DetectsTwoFileInputCycle(t *testing.T) {
	m := newMountWith(t, map[string]string{
		"main.tex": "\\input{a.tex}",
		"a.tex":    "\\input{main.tex}",
	})
	tokens, err := tokenizer.Tokenize([]byte("\\input{a.tex}"))
	require.NoError(t, err)

	_, _, err = Expand(tokens, m)
	r, ok := reason.As(err)
	require.True(t, ok)
	require.Equal(t, reason.InputCycleFailed, r)
}

func TestExpand_MissingTargetIsInputValidationFailed(t *testing.T) {
	m := newMountWith(t, map[string]string{"main.tex": "\\input{missing.tex}"})
	tokens, err := tokenizer.Tokenize([]byte("\\input{missing.tex}"))
	require.NoError(t, err)

	_, _, err = Expand(tokens, m)
	r, ok := reason.As(err)
	require.True(t, ok)
	require.Equal(t, reason.InputValidationFailed, r)
}

func TestExpand_NoInputSitesLeavesTraceAtBaseline(t *testing.T) {
	m := newMountWith(t, map[string]string{"main.tex": "plain"})
	tokens, err := tokenizer.Tokenize([]byte("plain"))
	require.NoError(t, err)

	expanded, trace, err := Expand(tokens, m)
	require.NoError(t, err)
	require.Equal(t, tokens, expanded)
	require.Equal(t, uint64(0), trace.Expansions)
	require.Equal(t, []string{"main.tex"}, trace.Files)
}

func TestTrace_JSONAndCanonicalJSONAgreeOnContent(t *testing.T) {
	trace := NewTrace()
	trace.Expansions = 2
	trace.recordDepth(3)
	trace.recordFile("a.tex")

	plain := trace.JSON()
	require.True(t, strings.Contains(plain, `"expansions":2`))
	require.True(t, strings.Contains(plain, `"files":["main.tex","a.tex"]`))

	canonical, err := trace.CanonicalJSON()
	require.NoError(t, err)
	require.Contains(t, string(canonical), `"a.tex"`)
	require.Contains(t, string(canonical), `"main.tex"`)
}
