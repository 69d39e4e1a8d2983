// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"github.com/rubytree/rubytree/parser/comb"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
)

// statement parses one statement: a keyword compound form, or an
// expression at the statement level (low-precedence comma, statement
// operators, modifiers).
func (p *Parser) statement() pfunc {
	return func(s comb.State) (*node.Node, comb.State, error) {
		return comb.Alt(
			p.defForm(),
			p.classForm(),
			p.moduleForm(),
			p.aliasForm(),
			p.expression(stmtOpts),
		)(s)
	}
}

// statementSeq parses statements joined by newlines or semicolons for as
// long as one can be parsed. The error returned alongside the statements is
// advisory: the furthest failure of the attempt that ended the sequence,
// for the caller to merge into its own diagnostics.
func (p *Parser) statementSeq(s comb.State) ([]*node.Node, comb.State, error) {
	var (
		stmts    []*node.Node
		furthest error
	)
	cur := s
	for {
		start := cur
		st, next, err := p.statement()(cur)
		if err != nil {
			return stmts, cur, comb.Furthest(furthest, err)
		}
		stmts = append(stmts, st)
		cur = next

		sep, _ := p.skip(cur, false)
		switch {
		case sep.At(0) == ';':
			cur = sep.Advance(1)
		case sep.At(0) == '\n' || sep.At(0) == '#':
			// A line comment always ends the line; leave both for the
			// next statement's filter so the comment attaches to it.
			cur = sep
		case sep.EOF():
			return stmts, cur, furthest
		default:
			// The statement itself parsed; retry its binary form so the
			// diagnostic names the furthest point any alternative
			// reached, not just the separator.
			serr := comb.NewError(sep, "statement separator")
			if _, _, perr := p.binary(stmtOpts)(start); perr != nil {
				serr = comb.Furthest(serr, perr)
			}
			return stmts, cur, comb.Furthest(furthest, serr)
		}
	}
}

// body parses a statement sequence and then the closing end keyword,
// attaching any comments found before end to the body node.
func (p *Parser) body(s comb.State) (*node.Node, comb.State, error) {
	stmts, s1, serr := p.statementSeq(s)
	s2, trailing := p.skip(s1, true)
	_, s3, err := p.keyword("end")(s2)
	if err != nil {
		return nil, s, comb.Furthest(serr, err)
	}
	b := p.sequence(stmts, source.Pos(s.Off()))
	for _, cm := range trailing {
		b.AddComment(cm)
	}
	return b, s3, nil
}

// defForm parses def name params ... end and def recv.name params ... end
// into ("def" name params body).
func (p *Parser) defForm() pfunc {
	return p.spaceInsensitive(func(s comb.State) (*node.Node, comb.State, error) {
		kw, s1, err := p.keyword("def")(s)
		if err != nil {
			return nil, s, err
		}
		s2, _ := p.skip(s1, false)
		name, s3, err := p.ident()(s2)
		if err != nil {
			return nil, s, comb.NewError(s2, "method name")
		}
		if after, _ := p.skip(s3, false); after.At(0) == '.' && after.At(1) != '.' {
			dot := node.New(".")
			dot.SetPos(source.Pos(after.Off()))
			at, _ := p.skip(after.Advance(1), false)
			meth, nx, err := p.anyName()(at)
			if err != nil {
				return nil, s, err
			}
			dot.Children = []*node.Node{name, meth}
			name, s3 = dot, nx
		}

		params, s4, err := p.defParams(s3)
		if err != nil {
			return nil, s, err
		}
		b, s5, err := p.body(s4)
		if err != nil {
			return nil, s, err
		}
		kw.Children = []*node.Node{name, params, b}
		return kw, s5, nil
	})
}

// defParams parses an optional parameter list, parenthesized or bare, with
// the high-precedence comma. No parameters yields the empty slot node. A
// bare list never starts on a later line: that would be the method body.
func (p *Parser) defParams(s comb.State) (*node.Node, comb.State, error) {
	cur, _ := p.skip(s, false)
	switch c := cur.At(0); {
	case c == '(':
		interior, cms := p.skip(cur.Advance(1), true)
		if interior.At(0) == ')' {
			params := p.emptyAt(source.Pos(cur.Off()))
			for _, cm := range cms {
				params.AddComment(cm)
			}
			return params, interior.Advance(1), nil
		}
		args, s1, err := p.expression(argOpts)(cur.Advance(1))
		if err != nil {
			return nil, s, err
		}
		s2, cms := p.skip(s1, true)
		if s2.At(0) != ')' {
			return nil, s, comb.NewError(s2, `")"`)
		}
		for _, cm := range cms {
			args.AddComment(cm)
		}
		return args, s2.Advance(1), nil
	case c == '\n' || c == ';' || c == '#' || cur.EOF():
		return p.emptyAt(source.Pos(cur.Off())), s, nil
	}
	return p.expression(argOpts)(cur)
}

// classForm parses the three class shapes: ("class" name () body),
// ("class" name parent body) and ("class" ("<<" x) body).
func (p *Parser) classForm() pfunc {
	return p.spaceInsensitive(func(s comb.State) (*node.Node, comb.State, error) {
		kw, s1, err := p.keyword("class")(s)
		if err != nil {
			return nil, s, err
		}
		s2, _ := p.skip(s1, false)

		if s2.At(0) == '<' && s2.At(1) == '<' {
			shift := node.New("<<")
			shift.SetPos(source.Pos(s2.Off()))
			obj, s3, err := p.expression(bareOpts)(s2.Advance(2))
			if err != nil {
				return nil, s, err
			}
			shift.Children = []*node.Node{obj}
			b, s4, err := p.body(s3)
			if err != nil {
				return nil, s, err
			}
			kw.Children = []*node.Node{shift, b}
			return kw, s4, nil
		}

		name, s3, err := p.ident()(s2)
		if err != nil {
			return nil, s, comb.NewError(s2, "class name")
		}
		after, _ := p.skip(s3, false)
		parent := p.emptyAt(source.Pos(after.Off()))
		if after.At(0) == '<' && after.At(1) != '<' && after.At(1) != '=' {
			parent, s3, err = p.leaf(bareOpts)(after.Advance(1))
			if err != nil {
				return nil, s, err
			}
		}
		b, s4, err := p.body(s3)
		if err != nil {
			return nil, s, err
		}
		kw.Children = []*node.Node{name, parent, b}
		return kw, s4, nil
	})
}

// moduleForm parses module name ... end into ("module" name body).
func (p *Parser) moduleForm() pfunc {
	return p.spaceInsensitive(func(s comb.State) (*node.Node, comb.State, error) {
		kw, s1, err := p.keyword("module")(s)
		if err != nil {
			return nil, s, err
		}
		s2, _ := p.skip(s1, false)
		name, s3, err := p.ident()(s2)
		if err != nil {
			return nil, s, comb.NewError(s2, "module name")
		}
		b, s4, err := p.body(s3)
		if err != nil {
			return nil, s, err
		}
		kw.Children = []*node.Node{name, b}
		return kw, s4, nil
	})
}

// aliasForm parses alias v1 v2 into ("alias" v1 v2); the names may be
// identifiers, symbols, globals or instance variables.
func (p *Parser) aliasForm() pfunc {
	return p.spaceInsensitive(func(s comb.State) (*node.Node, comb.State, error) {
		kw, s1, err := p.keyword("alias")(s)
		if err != nil {
			return nil, s, err
		}
		name := func(s comb.State) (*node.Node, comb.State, error) {
			skipped, _ := p.skip(s, false)
			return comb.Alt(p.symbol(), p.global(), p.ivar(), p.ident())(skipped)
		}
		v1, s2, err := name(s1)
		if err != nil {
			return nil, s, err
		}
		v2, s3, err := name(s2)
		if err != nil {
			return nil, s, err
		}
		kw.Children = []*node.Node{v1, v2}
		return kw, s3, nil
	})
}

// anyName matches a name without the reserved-word refusal; method names
// after a dot may shadow keywords.
func (p *Parser) anyName() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		n := scanName(s, 0)
		if n == 0 {
			return nil, s, comb.NewError(s, "method name")
		}
		return node.New(s.Text(n)), s.Advance(n), nil
	})
}
