// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package repr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree"
	"github.com/rubytree/rubytree/repr"
)

func TestDump(t *testing.T) {
	tree, err := rubytree.Parse("x = 1 + 2")
	require.NoError(t, err)

	out := repr.Dump(tree)
	require.Contains(t, out, "= @ 0:2")
	require.Contains(t, out, "x @ 0:0")
	require.Contains(t, out, "+ @ 0:6")
	require.Contains(t, out, "1 @ 0:4")
	require.Contains(t, out, "2 @ 0:8")
}

func TestDumpComments(t *testing.T) {
	tree, err := rubytree.Parse("# doc\nx")
	require.NoError(t, err)

	out := repr.Dump(tree)
	require.Contains(t, out, "x @ 1:0")
	require.Contains(t, out, "# doc")
}
