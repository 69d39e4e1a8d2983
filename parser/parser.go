// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package parser builds syntax trees for a deliberately loosened subset of
// Ruby's surface grammar out of small composable parsing primitives. The
// grammar right-associates everything by construction; precedence and
// associativity are restored by rotating each binary reduction (fixup.go),
// and a final pass rewrites every raw byte offset into a line/column pair.
package parser

import (
	"sort"

	"github.com/rubytree/rubytree/parser/comb"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
	"github.com/rubytree/rubytree/token"
)

// pfunc is the shape every grammar production takes: a node parser over the
// immutable cursor.
type pfunc = comb.Parser[*node.Node]

// exprOpts parameterizes the expression grammar per level: whether the
// comma participates at all, and in which of its two binding modes. The
// statement level uses the low mode (x, y = 1, 2 groups as one multiple
// assignment); argument lists and containers use the high mode (f(x, y = 1,
// 2) keeps y = 1 a single argument).
type exprOpts struct {
	comma     bool
	commaHigh bool
}

var (
	stmtOpts = exprOpts{comma: true}
	argOpts  = exprOpts{comma: true, commaHigh: true}
	bareOpts = exprOpts{}
)

// Parser parses one file. Each parse is independent: nothing here is shared
// across concurrent parses except the immutable precedence configuration.
type Parser struct {
	file *source.File
	prec *token.Precedence

	binaryOps []string
	unaryOps  []string
}

// NewParser returns a parser over file.
func NewParser(file *source.File) *Parser {
	prec := token.NewPrecedence()

	binary := append(append([]string{}, prec.Binary()...), prec.Statement()...)
	unary := append(append([]string{}, prec.Unary()...), prec.StatementUnary()...)
	sort.SliceStable(binary, func(i, j int) bool { return len(binary[i]) > len(binary[j]) })
	sort.SliceStable(unary, func(i, j int) bool { return len(unary[i]) > len(unary[j]) })

	return &Parser{
		file:      file,
		prec:      prec,
		binaryOps: binary,
		unaryOps:  unary,
	}
}

// Parse reduces the whole input to a single position-resolved tree, or
// fails with the furthest offset reached across all attempted alternatives.
// There is no error recovery: a failure yields no tree at all.
func (p *Parser) Parse() (*node.Node, error) {
	root, err := p.program(comb.NewState(p.file.Data))
	if err != nil {
		off := len(p.file.Data)
		msg := "invalid syntax"
		if ce, ok := err.(*comb.Error); ok {
			off = ce.Off
			msg = "expected " + ce.Want
		}
		return nil, &Error{
			Filename: p.file.Name,
			Pos:      p.file.Position(source.Pos(off)),
			Offset:   off,
			Msg:      msg,
		}
	}
	root.Resolve(p.file.Table())
	return root, nil
}

// program parses a statement sequence covering the entire input. Comments
// trailing the last statement attach to the root, having no later node.
func (p *Parser) program(s comb.State) (*node.Node, error) {
	stmts, cur, serr := p.statementSeq(s)
	rest, trailing := p.skip(cur, true)
	if !rest.EOF() {
		return nil, comb.Furthest(serr, comb.NewError(rest, "statement"))
	}
	root := p.sequence(stmts, 0)
	for _, cm := range trailing {
		root.AddComment(cm)
	}
	return root, nil
}

// sequence wraps parsed statements: none yields an empty slot node, one is
// itself, more are joined under a ";" node.
func (p *Parser) sequence(stmts []*node.Node, at source.Pos) *node.Node {
	switch len(stmts) {
	case 0:
		return p.emptyAt(at)
	case 1:
		return stmts[0]
	}
	seq := node.New(node.TagSeq, stmts...)
	seq.SetPos(stmts[0].Pos())
	return seq
}

// emptyAt returns the empty slot node used for an absent class parent,
// parameter list or body.
func (p *Parser) emptyAt(at source.Pos) *node.Node {
	n := node.New(node.TagInvoke)
	n.SetPos(at)
	return n
}
