package testhelper

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree/parser"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
)

// Parse parses input and fails the test on error.
func Parse(t *testing.T, input string) *node.Node {
	t.Helper()
	f := source.NewFile("test", []byte(input))
	tree, err := parser.NewParser(f).Parse()
	require.NoError(t, err, "input: %s", input)
	return tree
}

// ExpectTree parses input and compares the S-expression rendering of the
// tree against want, printing a unified diff on mismatch.
func ExpectTree(t *testing.T, input, want string) *node.Node {
	t.Helper()
	tree := Parse(t, input)
	got := tree.String()
	if got != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		t.Fatalf("tree mismatch for %q:\n%s", input, diff)
	}
	return tree
}

// ExpectError asserts the parse fails and reports the furthest offset.
func ExpectError(t *testing.T, input string, wantOffset int) {
	t.Helper()
	f := source.NewFile("test", []byte(input))
	_, err := parser.NewParser(f).Parse()
	require.Error(t, err, "input: %s", input)
	perr, ok := err.(*parser.Error)
	require.True(t, ok, "error type: %T", err)
	require.Equal(t, wantOffset, perr.Offset, "input: %s, error: %v", input, err)
}
