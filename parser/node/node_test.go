package node_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
)

func TestLeafAndComposite(t *testing.T) {
	leaf := node.New("x")
	require.True(t, leaf.Leaf())
	require.Empty(t, leaf.Comments())

	add := node.New("+", node.New("1"), node.New("2"))
	require.False(t, add.Leaf())
	require.Len(t, add.Children, 2)
}

func TestString(t *testing.T) {
	n := node.New("+", node.New("1"), node.New("*", node.New("2"), node.New("3")))
	require.Equal(t, `("+" 1 ("*" 2 3))`, n.String())
	require.Equal(t, "x", node.New("x").String())
}

func TestWithSharesMetadata(t *testing.T) {
	op := node.New("+")
	op.SetPos(4)
	op.AddComment(node.NewComment(" note"))

	composite := op.With(node.New("a"), node.New("b"))
	require.Equal(t, "+", composite.Data)
	require.Equal(t, source.Pos(4), composite.Pos())
	require.Len(t, composite.Comments(), 1)
	require.Len(t, composite.Children, 2)

	// The original is untouched.
	require.True(t, op.Leaf())
}

func TestResolve(t *testing.T) {
	tbl := source.NewTable([]byte("a\nb + c"))

	a := node.New("a")
	a.SetPos(0)
	b := node.New("b")
	b.SetPos(2)
	c := node.New("c")
	c.SetPos(6)
	op := node.New("+", b, c)
	op.SetPos(4)
	root := node.New(node.TagSeq, a, op)
	root.SetPos(0)

	cm := node.NewComment(" hello")
	cm.SetPos(2)
	op.AddComment(cm)

	_, resolved := a.Position()
	require.False(t, resolved)

	root.Resolve(tbl)

	for n, want := range map[*node.Node]source.FilePos{
		a:    {Line: 0, Column: 0},
		b:    {Line: 1, Column: 0},
		c:    {Line: 1, Column: 4},
		op:   {Line: 1, Column: 2},
		cm:   {Line: 1, Column: 0},
		root: {Line: 0, Column: 0},
	} {
		got, ok := n.Position()
		require.True(t, ok, n.Data)
		require.Equal(t, want, got, n.Data)
	}
}

func TestResolveIdempotent(t *testing.T) {
	tbl := source.NewTable([]byte("x\ny"))
	n := node.New("y")
	n.SetPos(2)
	n.Resolve(tbl)
	first, _ := n.Position()

	// A second pass over an already resolved tree changes nothing, even
	// against a different table.
	n.Resolve(source.NewTable([]byte("zzzzzz")))
	second, ok := n.Position()
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestWalkAndCount(t *testing.T) {
	root := node.New("+", node.New("1"), node.New("2"))
	root.AddComment(node.NewComment(" c"))
	require.Equal(t, 5, root.Count()) // +, 1, 2, comment, comment text

	var tags []string
	root.Walk(func(n *node.Node) bool {
		tags = append(tags, n.Data)
		return n.Data != node.TagComment
	})
	require.Equal(t, []string{"+", "1", "2", node.TagComment}, tags)
}
