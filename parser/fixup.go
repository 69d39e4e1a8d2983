// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import "github.com/rubytree/rubytree/parser/node"

// The grammar recurses into a full sub-expression on the right of every
// binary production, so an unfixed parse right-associates everything.
// fix runs at each reduction and restores precedence by rotating the tree
// left whenever the operator being reduced binds at least as tightly as the
// operator of the node its recursion returned: strictly tighter, or equally
// tightly when the outer operator is left-associative.
//
// fix is pure: it builds new composite nodes with Node.With and never
// mutates a node a completed production might still reference. Attached
// comments and raw offsets travel with their nodes; only parent/child
// relationships change.
func (p *Parser) fix(o exprOpts, op *node.Node, children ...*node.Node) *node.Node {
	last := children[len(children)-1]

	// A comma chain of the same mode splices flat, which is what produces
	// the n-ary ("," a b ...) shapes.
	if op.Data == "," && last.Data == "," && !last.Leaf() {
		flat := make([]*node.Node, 0, len(children)-1+len(last.Children))
		flat = append(flat, children[:len(children)-1]...)
		flat = append(flat, last.Children...)
		return op.With(flat...)
	}

	if len(last.Children) >= 2 && p.prec.Rotates(op.Data, last.Data, o.commaHigh) {
		// (op1 a... (op2 mid rest...)) => (op2 (op1 a... mid) rest...).
		// The new inner node is rotated again in turn: a chain of equal
		// left-associative operators ends up fully left-nested.
		inner := make([]*node.Node, 0, len(children))
		inner = append(inner, children[:len(children)-1]...)
		inner = append(inner, last.Children[0])
		rest := make([]*node.Node, 0, len(last.Children))
		rest = append(rest, p.fix(o, op, inner...))
		rest = append(rest, last.Children[1:]...)
		return last.With(rest...)
	}

	return op.With(children...)
}
