package mount

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddFile_AccumulatesTotalBytesAndRejectsDuplicates(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFile([]byte("main.tex"), []byte("hello")))
	require.Equal(t, 5, m.totalBytes)

	err := m.AddFile([]byte("main.tex"), []byte("again"))
	require.Equal(t, ErrDuplicatePath, err)
	require.Equal(t, 5, m.totalBytes)
}

func TestAddFile_RejectsAfterFinalize(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFile([]byte("main.tex"), []byte("\\documentclass{article}")))
	require.NoError(t, m.Finalize())

	err := m.AddFile([]byte("other.tex"), []byte("x"))
	require.Equal(t, ErrInvalidInput, err)
}

func TestFinalize_IsIdempotentAndRequiresMainTex(t *testing.T) {
	m := New()
	require.Equal(t, ErrMissingMainTex, m.Finalize())

	require.NoError(t, m.AddFile([]byte("main.tex"), []byte("\\documentclass{article}")))
	require.NoError(t, m.Finalize())
	require.True(t, m.IsFinalized())
	require.NoError(t, m.Finalize())
}

func TestFinalize_RejectsInvalidMainTex(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFile([]byte("main.tex"), []byte("   \t\n")))
	require.Equal(t, ErrInvalidMainTex, m.Finalize())
}

func TestReset_ClearsFilesAndFinalizedLatch(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFile([]byte("main.tex"), []byte("\\documentclass{article}")))
	require.NoError(t, m.Finalize())

	m.Reset()
	require.False(t, m.IsFinalized())
	has, err := m.HasFile([]byte("main.tex"))
	require.NoError(t, err)
	require.False(t, has)
}

func TestNormalizePath_RejectsLeadingSlashAndDotDot(t *testing.T) {
	_, err := NormalizePath([]byte("/abs.tex"))
	require.Equal(t, ErrInvalidPath, err)

	_, err = NormalizePath([]byte("a/../b.tex"))
	require.Equal(t, ErrInvalidPath, err)

	_, err = NormalizePath([]byte(""))
	require.Equal(t, ErrInvalidInput, err)

	path, err := NormalizePath([]byte("sub/dir/a.tex"))
	require.NoError(t, err)
	require.Equal(t, "sub/dir/a.tex", path)
}

func TestNormalizePath_RejectsPathTooLong(t *testing.T) {
	_, err := NormalizePath([]byte(strings.Repeat("a", MaxPathLen+1)))
	require.Equal(t, ErrPathTooLong, err)
}

func TestAddFile_RejectsFileTooLargeAndTooManyFiles(t *testing.T) {
	m := New()
	big := make([]byte, MaxFileBytes+1)
	require.Equal(t, ErrFileTooLarge, m.AddFile([]byte("big.tex"), big))

	for i := 0; i < MaxFiles; i++ {
		require.NoError(t, m.AddFile([]byte(pathFor(i)), []byte("x")))
	}
	require.Equal(t, ErrTooManyFiles, m.AddFile([]byte("one-too-many.tex"), []byte("x")))
}

func pathFor(i int) string {
	return "f" + string(rune('a'+i%26)) + string(rune('0'+i/26)) + ".tex"
}

func TestReadFileByBytes_AbsentIsNilNotError(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFile([]byte("main.tex"), []byte("x")))

	data, err := m.ReadFileByBytes([]byte("missing.tex"))
	require.NoError(t, err)
	require.Nil(t, data)

	_, err = m.ReadFileByBytes([]byte("/bad"))
	require.Equal(t, ErrInvalidPath, err)
}
