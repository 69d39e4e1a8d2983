package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree/parser/source"
)

func TestTableOriginIsAlwaysZeroZero(t *testing.T) {
	for _, input := range []string{"", "a", "abc", "\n", "a\nb"} {
		tbl := source.NewTable([]byte(input))
		require.Equal(t, source.FilePos{Line: 0, Column: 0}, tbl.Position(0), "%q", input)
	}
}

func TestTableNewlineConvention(t *testing.T) {
	input := []byte("ab\ncd\n\nef")
	tbl := source.NewTable(input)

	for k, b := range input {
		if b != '\n' {
			continue
		}
		require.Equal(t, -1, tbl[k].Column, "newline at %d", k)
		// The byte after a newline starts its line at column 0 — unless
		// it is itself a newline, which carries the -1 marker instead.
		if k+1 < len(input) && input[k+1] == '\n' {
			continue
		}
		if k+1 < len(tbl) {
			require.Equal(t, 0, tbl[k+1].Column, "offset %d", k+1)
		}
		if k > 0 && input[k-1] != '\n' && k+1 < len(tbl) {
			require.Equal(t, tbl[k-1].Line+1, tbl[k+1].Line, "offset %d", k+1)
		}
	}

	require.Equal(t, source.FilePos{Line: 0, Column: 1}, tbl.Position(1)) // b
	require.Equal(t, source.FilePos{Line: 1, Column: 0}, tbl.Position(3)) // c
	require.Equal(t, source.FilePos{Line: 3, Column: 1}, tbl.Position(8)) // f
}

func TestTableLeadingNewline(t *testing.T) {
	tbl := source.NewTable([]byte("\nx"))
	require.Equal(t, source.FilePos{Line: 0, Column: 0}, tbl.Position(0))
	require.Equal(t, source.FilePos{Line: 1, Column: 0}, tbl.Position(1))

	tbl = source.NewTable([]byte("\n"))
	require.Equal(t, source.FilePos{Line: 0, Column: 0}, tbl.Position(0))
	require.Equal(t, source.FilePos{Line: 1, Column: 0}, tbl.Position(1))
}

func TestTableEndOfInput(t *testing.T) {
	tbl := source.NewTable([]byte("ab"))
	require.Len(t, tbl, 3)
	require.Equal(t, source.FilePos{Line: 0, Column: 2}, tbl.Position(2))

	tbl = source.NewTable([]byte("ab\n"))
	require.Equal(t, source.FilePos{Line: 1, Column: 0}, tbl.Position(3))
}

func TestTableOutOfRange(t *testing.T) {
	tbl := source.NewTable([]byte("ab"))
	require.Equal(t, source.FilePos{}, tbl.Position(source.NoPos))
	require.Equal(t, source.FilePos{}, tbl.Position(99))
}

func TestFile(t *testing.T) {
	f := source.NewFile("test.rb", []byte("a\nb"))
	require.Equal(t, 3, f.Size())
	require.Equal(t, source.FilePos{Line: 1, Column: 0}, f.Position(2))
	require.Equal(t, "1:0", f.Position(2).String())
}
