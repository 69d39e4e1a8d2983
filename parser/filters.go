// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"github.com/rubytree/rubytree/parser/comb"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
)

// Lexical insensitivity happens at the grammar level, immediately before
// each terminal, rather than in a token stream: that is what lets a line
// comment attach to the syntactically nearest node that follows it.

// skip consumes whitespace starting at s. With nl set it also crosses
// newlines and captures any line comments it passes, returning them in
// source order. Without nl it stops at the first newline (the continuation
// joints of the grammar, e.g. directly before a binary operator).
func (p *Parser) skip(s comb.State, nl bool) (comb.State, []*node.Node) {
	var comments []*node.Node
	for {
		switch c := s.At(0); {
		case c == ' ' || c == '\t' || c == '\r':
			s = s.Advance(1)
		case nl && c == '\n':
			s = s.Advance(1)
		case nl && c == '#' && !s.EOF():
			var cm *node.Node
			cm, s = p.scanComment(s)
			comments = append(comments, cm)
		default:
			return s, comments
		}
	}
}

// scanComment consumes a line comment up to, not including, the newline.
func (p *Parser) scanComment(s comb.State) (*node.Node, comb.State) {
	start := s.Off()
	n := 1
	for s.At(n) != '\n' && !s.Advance(n).EOF() {
		n++
	}
	cm := node.NewComment(s.Advance(1).Text(n - 1))
	cm.SetPos(source.Pos(start))
	cm.Children[0].SetPos(source.Pos(start + 1))
	return cm, s.Advance(n)
}

// spaceInsensitive wraps pr to skip leading whitespace and newlines, and to
// attach captured leading comments onto the node pr produces.
func (p *Parser) spaceInsensitive(pr pfunc) pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		skipped, comments := p.skip(s, true)
		n, next, err := pr(skipped)
		if err != nil {
			return nil, s, err
		}
		for _, cm := range comments {
			n.AddComment(cm)
		}
		return n, next, nil
	}
}

// noNewlineBefore wraps pr to skip leading spaces and tabs only. A newline
// before the wrapped parser means it does not apply on this line.
func (p *Parser) noNewlineBefore(pr pfunc) pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		skipped, _ := p.skip(s, false)
		n, next, err := pr(skipped)
		if err != nil {
			return nil, s, err
		}
		return n, next, nil
	}
}

// recordsPosition tags the produced node with the raw offset at which its
// match began; the position-mapping pass resolves it after the parse.
func recordsPosition(pr pfunc) pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		n, next, err := pr(s)
		if err != nil {
			return nil, s, err
		}
		if !n.Pos().IsValid() {
			n.SetPos(source.Pos(s.Off()))
		}
		return n, next, nil
	}
}
