// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package node

import (
	"strings"

	"github.com/rubytree/rubytree/parser/source"
)

// Structural tags. Everything else in Node.Data is literal token text: an
// identifier, a number, an operator symbol or a keyword.
const (
	TagInvoke  = "()" // invocation: callee, argument list, optional block
	TagGroup   = "("  // parenthesized expression, one child
	TagHash    = "{"  // data container, one comma child wrapping the pairs
	TagBlock   = "{}" // executable block: params, body
	TagSeq     = ";"  // statement sequence of two or more
	TagComment = "#"  // line comment, one child holding the raw text
)

// Node is one grammar production or terminal token. A node with zero
// children is a leaf; one with children is a composite whose Data names an
// operator, keyword form or structural tag. The same Data may occur both
// ways (a method name and an operator call), told apart by child count
// alone.
type Node struct {
	Data     string
	Children []*Node

	comments []*Node
	pos      source.Pos
	resolved bool
	filePos  source.FilePos
}

// New returns a node with no recorded offset.
func New(data string, children ...*Node) *Node {
	return &Node{Data: data, Children: children, pos: source.NoPos}
}

// NewComment wraps raw comment text in a comment node.
func NewComment(text string) *Node {
	return New(TagComment, New(text))
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// With returns a copy of n with the given children, sharing Data, offset,
// resolved position and attached comments. Rotation uses it so that no node
// another production already holds is ever mutated.
func (n *Node) With(children ...*Node) *Node {
	return &Node{
		Data:     n.Data,
		Children: children,
		comments: n.comments,
		pos:      n.pos,
		resolved: n.resolved,
		filePos:  n.filePos,
	}
}

// Comments returns the comment nodes attached immediately before n in
// source order. It is never nil-sensitive: an unannotated node returns an
// empty sequence.
func (n *Node) Comments() []*Node { return n.comments }

// AddComment appends c to the comments attached to n.
func (n *Node) AddComment(c *Node) {
	n.comments = append(n.comments, c)
}

// SetPos records the raw offset at which the node's match began.
func (n *Node) SetPos(p source.Pos) { n.pos = p }

// Pos returns the raw offset, NoPos if none was recorded.
func (n *Node) Pos() source.Pos { return n.pos }

// Position returns the resolved position. The second result is false until
// Resolve has run over the tree.
func (n *Node) Position() (source.FilePos, bool) {
	return n.filePos, n.resolved
}

// IsComment reports whether n is a comment node.
func (n *Node) IsComment() bool {
	return n.Data == TagComment && len(n.Children) == 1
}

// Resolve replaces every raw offset in the tree, comment nodes included,
// with its entry from the table. Running it a second time is a no-op:
// resolved positions are stable once set.
func (n *Node) Resolve(tbl source.Table) {
	for _, c := range n.Children {
		c.Resolve(tbl)
	}
	for _, c := range n.comments {
		c.Resolve(tbl)
	}
	if n.resolved {
		return
	}
	n.filePos = tbl.Position(n.pos)
	n.resolved = true
}

// String renders the tree as an S-expression: leaves print their Data,
// composites print ("tag" child ...).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Leaf() {
		b.WriteString(n.Data)
		return
	}
	b.WriteString(`("`)
	b.WriteString(n.Data)
	b.WriteString(`"`)
	for _, c := range n.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteString(`)`)
}

// Walk visits n and every descendant, comments included, depth first. It
// stops early when fn returns false for a node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
	for _, c := range n.comments {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the tree, comments included.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
