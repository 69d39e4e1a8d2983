// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"github.com/rubytree/rubytree/parser/comb"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/token"
)

// Terminals recognize fixed lexical patterns and construct exactly one leaf
// node each. String literals are not implemented: a quote fails the parse
// like any other unmatched input.

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWord(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isOctal(c byte) bool { return c >= '0' && c <= '7' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// scanName matches identifier characters with an optional ?/! suffix,
// returning the matched length.
func scanName(s comb.State, at int) int {
	if !isWordStart(s.At(at)) {
		return 0
	}
	n := at + 1
	for isWord(s.At(n)) {
		n++
	}
	if c := s.At(n); c == '?' || c == '!' {
		n++
	}
	return n - at
}

// ident matches a plain identifier. Reserved words are refused so that a
// keyword like end never parses as a trailing operand.
func (p *Parser) ident() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		n := scanName(s, 0)
		if n == 0 {
			return nil, s, comb.NewError(s, "identifier")
		}
		name := s.Text(n)
		if p.prec.IsKeyword(name) {
			return nil, s, comb.NewError(s, "identifier")
		}
		return node.New(name), s.Advance(n), nil
	})
}

// global matches $name.
func (p *Parser) global() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != '$' {
			return nil, s, comb.NewError(s, "global variable")
		}
		n := scanName(s, 1)
		if n == 0 {
			return nil, s, comb.NewError(s, "global variable")
		}
		return node.New(s.Text(n + 1)), s.Advance(n + 1), nil
	})
}

// ivar matches @name.
func (p *Parser) ivar() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != '@' {
			return nil, s, comb.NewError(s, "instance variable")
		}
		n := scanName(s, 1)
		if n == 0 {
			return nil, s, comb.NewError(s, "instance variable")
		}
		return node.New(s.Text(n + 1)), s.Advance(n + 1), nil
	})
}

// symbol matches : followed by an identifier, global or instance variable,
// normalized to a single :name token.
func (p *Parser) symbol() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != ':' {
			return nil, s, comb.NewError(s, "symbol")
		}
		at := 1
		if c := s.At(1); c == '$' || c == '@' {
			at = 2
		}
		n := scanName(s, at)
		if n == 0 {
			return nil, s, comb.NewError(s, "symbol")
		}
		return node.New(s.Text(at + n)), s.Advance(at + n), nil
	})
}

// number matches integer, float with optional exponent, hex and octal
// literals.
func (p *Parser) number() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if !isDigit(s.At(0)) {
			return nil, s, comb.NewError(s, "number")
		}

		if s.At(0) == '0' {
			if c := s.At(1); c == 'x' || c == 'X' {
				n := 2
				for isHex(s.At(n)) {
					n++
				}
				if n == 2 {
					return nil, s, comb.NewError(s.Advance(2), "hex digits")
				}
				return node.New(s.Text(n)), s.Advance(n), nil
			} else if c == 'o' || c == 'O' {
				n := 2
				for isOctal(s.At(n)) {
					n++
				}
				if n == 2 {
					return nil, s, comb.NewError(s.Advance(2), "octal digits")
				}
				return node.New(s.Text(n)), s.Advance(n), nil
			}
		}

		n := 1
		for isDigit(s.At(n)) {
			n++
		}
		// Fractional part only when a digit follows the dot, so a range
		// like 1..2 keeps its dots.
		if s.At(n) == '.' && isDigit(s.At(n+1)) {
			n += 2
			for isDigit(s.At(n)) {
				n++
			}
		}
		if c := s.At(n); c == 'e' || c == 'E' {
			m := n + 1
			if c := s.At(m); c == '+' || c == '-' {
				m++
			}
			if isDigit(s.At(m)) {
				for isDigit(s.At(m)) {
					m++
				}
				n = m
			}
		}
		return node.New(s.Text(n)), s.Advance(n), nil
	})
}

// regex matches a /.../ literal with basic backslash escaping; flags and
// escape classes are out of scope.
func (p *Parser) regex() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if s.At(0) != '/' {
			return nil, s, comb.NewError(s, "regex")
		}
		n := 1
		for {
			c := s.At(n)
			switch {
			case s.Advance(n).EOF() || c == '\n':
				return nil, s, comb.NewError(s.Advance(n), "closing /")
			case c == '\\':
				n += 2
			case c == '/':
				return node.New(s.Text(n + 1)), s.Advance(n + 1), nil
			default:
				n++
			}
		}
	})
}

// matchOp matches one operator spelling at s, word-boundary checked for
// keyword-shaped symbols. Returns the matched length, 0 on no match.
func matchOp(s comb.State, sym string) int {
	if !s.HasPrefix(sym) {
		return 0
	}
	if isWordStart(sym[0]) {
		if c := s.At(len(sym)); isWord(c) || c == '?' || c == '!' {
			return 0
		}
	}
	return len(sym)
}

// operator matches a binary operator from the precedence lists, longest
// spelling first. The dot is not included: dot chains are consumed as
// postfix suffixes so a callee groups before its argument list. The comma
// participates only when the current grammar level says so.
func (p *Parser) operator(o exprOpts) pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		for _, sym := range p.binaryOps {
			if n := matchOp(s, sym); n > 0 {
				return node.New(sym), s.Advance(n), nil
			}
		}
		if o.comma && s.At(0) == ',' {
			return node.New(","), s.Advance(1), nil
		}
		return nil, s, comb.NewError(s, "operator")
	})
}

// unaryOp matches a unary operator and tags the node with its unary
// spelling so it never collides with the binary form.
func (p *Parser) unaryOp() pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		for _, sym := range p.unaryOps {
			if n := matchOp(s, sym); n > 0 {
				return node.New(token.UnaryTag(sym)), s.Advance(n), nil
			}
		}
		return nil, s, comb.NewError(s, "unary operator")
	})
}

// keyword matches an exact reserved word with a trailing word boundary.
func (p *Parser) keyword(word string) pfunc {
	return recordsPosition(func(s comb.State) (*node.Node, comb.State, error) {
		if matchOp(s, word) == 0 {
			return nil, s, comb.NewError(s, word)
		}
		return node.New(word), s.Advance(len(word)), nil
	})
}
