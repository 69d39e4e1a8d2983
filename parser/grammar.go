// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"github.com/rubytree/rubytree/parser/comb"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
)

// expression is the reference contract of the grammar: ordered alternation
// of binary, unary and leaf, binary first since it shares a leaf prefix
// with the fallback.
func (p *Parser) expression(o exprOpts) pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		return comb.Alt(p.binary(o), p.unary(o), p.leaf(o))(s)
	}
}

// binary parses leaf, operator, recursive expression, zips the three into
// (op left right) and fixes the rotation eagerly. Newlines are significant
// directly before the operator: an operator on a new line belongs to the
// next statement, not this one.
func (p *Parser) binary(o exprOpts) pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		left, s1, err := p.leaf(o)(s)
		if err != nil {
			return nil, s, err
		}
		op, s2, err := p.noNewlineBefore(p.operator(o))(s1)
		if err != nil {
			return nil, s, err
		}
		if op.Data == "?" {
			return p.ternary(o, op, left, s, s2)
		}
		right, s3, err := p.expression(o)(s2)
		if err != nil {
			return nil, s, err
		}
		return p.fix(o, op, left, right), s3, nil
	}
}

// ternary finishes cond ? then : else after the "?" has been consumed. The
// then branch is parsed comma-free so an argument-list comma cannot leak
// into it; the else branch is the ordinary recursive tail and takes part in
// rotation like any binary right-hand side.
func (p *Parser) ternary(o exprOpts, op, cond *node.Node, s, cur comb.State) (*node.Node, comb.State, error) {
	thn, s1, err := p.expression(exprOpts{})(cur)
	if err != nil {
		return nil, s, err
	}
	s2, cms := p.skip(s1, true)
	if s2.At(0) != ':' {
		return nil, s, comb.NewError(s2, `":"`)
	}
	els, s3, err := p.expression(o)(s2.Advance(1))
	if err != nil {
		return nil, s, err
	}
	for _, cm := range cms {
		op.AddComment(cm)
	}
	return p.fix(o, op, cond, thn, els), s3, nil
}

// unary zips the operator and a full recursive expression; there is no
// right-hand binary peer, so no rotation applies.
func (p *Parser) unary(o exprOpts) pfunc {
	return p.spaceInsensitive(func(s comb.State) (*node.Node, comb.State, error) {
		op, s1, err := p.unaryOp()(s)
		if err != nil {
			return nil, s, err
		}
		operand, s2, err := p.expression(o)(s1)
		if err != nil {
			return nil, s, err
		}
		op.Children = []*node.Node{operand}
		return op, s2, nil
	})
}

// leaf parses a primary and then its postfix suffixes: dot chains,
// parenthesized argument lists and brace blocks. Consuming dots here, not
// in binary, is what makes a callee group before its argument list in the
// ("()" callee args block) shape. Suffixes never cross a newline.
func (p *Parser) leaf(o exprOpts) pfunc {
	return p.spaceInsensitive(func(s comb.State) (*node.Node, comb.State, error) {
		n, cur, err := p.primary()(s)
		if err != nil {
			return nil, s, err
		}
		for {
			t, _ := p.skip(cur, false)
			switch {
			case t.At(0) == '.' && t.At(1) != '.':
				dot := node.New(".")
				dot.SetPos(source.Pos(t.Off()))
				after, _ := p.skip(t.Advance(1), false)
				name, nx, err := p.anyName()(after)
				if err != nil {
					return nil, s, err
				}
				dot.Children = []*node.Node{n, name}
				n, cur = dot, nx

			case t.At(0) == '(':
				inv, nx, err := p.invocation(n, t)
				if err != nil {
					return nil, s, err
				}
				n, cur = inv, nx

			case t.At(0) == '{':
				blk, nx, err := p.block()(t)
				if err != nil {
					// Not a block; leave the brace for whatever follows.
					return n, cur, nil
				}
				if n.Data == node.TagInvoke && !n.Leaf() {
					n.Children = append(n.Children, blk)
				} else {
					inv := node.New(node.TagInvoke, n, blk)
					inv.SetPos(n.Pos())
					n = inv
				}
				cur = nx

			default:
				return n, cur, nil
			}
		}
	})
}

// invocation parses ( args ) after a callee. The argument list uses the
// high-precedence comma, so f(x, y = 1, 2) keeps y = 1 a single argument.
func (p *Parser) invocation(callee *node.Node, s comb.State) (*node.Node, comb.State, error) {
	inv := node.New(node.TagInvoke, callee)
	inv.SetPos(callee.Pos())

	interior, cms := p.skip(s.Advance(1), true)
	if interior.At(0) == ')' {
		for _, cm := range cms {
			inv.AddComment(cm)
		}
		return inv, interior.Advance(1), nil
	}

	args, s1, err := p.expression(argOpts)(s.Advance(1))
	if err != nil {
		return nil, s, err
	}
	s2, cms := p.skip(s1, true)
	if s2.At(0) != ')' {
		return nil, s, comb.NewError(s2, `")"`)
	}
	inv.Children = append(inv.Children, args)
	for _, cm := range cms {
		inv.AddComment(cm)
	}
	return inv, s2.Advance(1), nil
}

// primary recognizes the atoms of the expression grammar.
func (p *Parser) primary() pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		return comb.Alt(
			p.ident(),
			p.group(),
			p.ivar(),
			p.global(),
			p.symbol(),
			p.number(),
			p.regex(),
			p.hash(),
		)(s)
	}
}

// group parses a parenthesized expression into a single-child "(" node.
func (p *Parser) group() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != '(' {
			return nil, s, comb.NewError(s, `"("`)
		}
		e, s1, err := p.expression(bareOpts)(s.Advance(1))
		if err != nil {
			return nil, s, err
		}
		s2, cms := p.skip(s1, true)
		if s2.At(0) != ')' {
			return nil, s, comb.NewError(s2, `")"`)
		}
		g := node.New(node.TagGroup, e)
		for _, cm := range cms {
			g.AddComment(cm)
		}
		return g, s2.Advance(1), nil
	})
}

// hash parses { pair, pair } into ("{" ("," pair ...)); the comma wrapper
// is present even for a single pair.
func (p *Parser) hash() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != '{' {
			return nil, s, comb.NewError(s, `"{"`)
		}
		cur, cms := p.skip(s.Advance(1), true)
		if cur.At(0) == '}' {
			h := node.New(node.TagHash)
			for _, cm := range cms {
				h.AddComment(cm)
			}
			return h, cur.Advance(1), nil
		}

		var pairs []*node.Node
		for {
			pair, nx, err := p.hashPair()(cur)
			if err != nil {
				return nil, s, err
			}
			for _, cm := range cms {
				pair.AddComment(cm)
			}
			pairs = append(pairs, pair)
			var nx2 comb.State
			nx2, cms = p.skip(nx, true)
			if nx2.At(0) == ',' {
				cur = nx2.Advance(1)
				continue
			}
			if nx2.At(0) != '}' {
				return nil, s, comb.NewError(nx2, `"}"`)
			}
			cur = nx2.Advance(1)
			break
		}

		wrap := node.New(",", pairs...)
		wrap.SetPos(pairs[0].Pos())
		h := node.New(node.TagHash, wrap)
		// Comments between the last pair and the closing brace have no
		// later node inside the container; they ride on the hash itself.
		for _, cm := range cms {
			h.AddComment(cm)
		}
		return h, cur, nil
	})
}

// hashPair parses k: v into (":" k v) or k => v into ("=>" k v). Values are
// parsed comma-free; the container supplies its own comma splitting.
func (p *Parser) hashPair() pfunc {
	colonStyle := func(s comb.State) (*node.Node, comb.State, error) {
		key, s1, err := p.spaceInsensitive(p.ident())(s)
		if err != nil {
			return nil, s, err
		}
		// The colon must follow the key directly, else :name would have
		// scanned as a symbol in the first place.
		if s1.At(0) != ':' || s1.At(1) == ':' {
			return nil, s, comb.NewError(s1, `":"`)
		}
		col := node.New(":")
		col.SetPos(source.Pos(s1.Off()))
		val, s2, err := p.expression(bareOpts)(s1.Advance(1))
		if err != nil {
			return nil, s, err
		}
		col.Children = []*node.Node{key, val}
		return col, s2, nil
	}

	arrowStyle := func(s comb.State) (*node.Node, comb.State, error) {
		key, s1, err := p.expression(bareOpts)(s)
		if err != nil {
			return nil, s, err
		}
		s2, cms := p.skip(s1, true)
		if !s2.HasPrefix("=>") {
			return nil, s, comb.NewError(s2, `"=>"`)
		}
		arrow := node.New("=>")
		arrow.SetPos(source.Pos(s2.Off()))
		for _, cm := range cms {
			arrow.AddComment(cm)
		}
		val, s3, err := p.expression(bareOpts)(s2.Advance(2))
		if err != nil {
			return nil, s, err
		}
		arrow.Children = []*node.Node{key, val}
		return arrow, s3, nil
	}

	return comb.Alt(colonStyle, arrowStyle)
}

// blockParams parses the names between the parameter bars. The closing bar
// would read as a binary operator to the expression grammar, so the list is
// scanned as plain comma-separated names instead.
func (p *Parser) blockParams(s comb.State) (*node.Node, comb.State, error) {
	var names []*node.Node
	cur := s
	for {
		at, _ := p.skip(cur, false)
		name, nx, err := p.ident()(at)
		if err != nil {
			return nil, s, err
		}
		names = append(names, name)
		sep, _ := p.skip(nx, false)
		if sep.At(0) == ',' {
			cur = sep.Advance(1)
			continue
		}
		cur = nx
		break
	}
	if len(names) == 1 {
		return names[0], cur, nil
	}
	wrap := node.New(",", names...)
	wrap.SetPos(names[0].Pos())
	return wrap, cur, nil
}

// block parses { |params| body } into ("{}" params body). An absent
// parameter list is the empty slot node.
func (p *Parser) block() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != '{' {
			return nil, s, comb.NewError(s, `"{"`)
		}
		cur, _ := p.skip(s.Advance(1), false)

		params := p.emptyAt(source.Pos(cur.Off()))
		if cur.At(0) == '|' {
			plist, s1, err := p.blockParams(cur.Advance(1))
			if err != nil {
				return nil, s, err
			}
			s2, _ := p.skip(s1, false)
			if s2.At(0) != '|' {
				return nil, s, comb.NewError(s2, `"|"`)
			}
			params = plist
			cur = s2.Advance(1)
		}

		stmts, s3, serr := p.statementSeq(cur)
		s4, trailing := p.skip(s3, true)
		if s4.At(0) != '}' {
			return nil, s, comb.Furthest(serr, comb.NewError(s4, `"}"`))
		}
		body := p.sequence(stmts, source.Pos(cur.Off()))
		for _, cm := range trailing {
			body.AddComment(cm)
		}
		return node.New(node.TagBlock, params, body), s4.Advance(1), nil
	})
}
