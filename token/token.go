// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package token

import "sort"

// Unary operators carry their Ruby singleton-method spelling so they never
// collide with their binary forms in the precedence table.
const (
	UnaryAdd = "+@"
	UnarySub = "-@"
	UnaryNot = "!"
	UnaryXor = "~"
)

// boundary separates operator groups of equal binding power in the ordered
// lists below. Crossing it while building the table increments the level.
const boundary = ""

// commaLow and commaHigh mark where the two comma modes sit in the table.
// Both spell "," in source; the grammar picks the level by context.
const (
	commaLow  = ",lo"
	commaHigh = ",hi"
)

// exprOps lists the expression-level operators, tightest group first.
var exprOps = []string{
	".", boundary,
	UnaryNot, UnaryXor, UnaryAdd, UnarySub, boundary,
	"**", boundary,
	"*", "/", "%", boundary,
	"+", "-", boundary,
	"<<", ">>", boundary,
	"&", boundary,
	"|", "^", boundary,
	"<", "<=", ">", ">=", boundary,
	"==", "===", "!=", "=~", "!~", "<=>", boundary,
	"&&", boundary,
	"||", boundary,
	"..", "...", boundary,
	"?",
}

// stmtOps continues the table below every expression-level group.
var stmtOps = []string{
	"rescue", boundary,
	commaLow, boundary,
	"=", "+=", "-=", "*=", "/=", "%=", "**=",
	"<<=", ">>=", "&=", "|=", "^=", "&&=", "||=", boundary,
	commaHigh, boundary,
	"defined?", boundary,
	"not", boundary,
	"and", "or", boundary,
	"if", "unless", "while", "until",
}

// rightAssoc lists the symbols that associate right-to-left.
var rightAssoc = []string{
	UnaryNot, UnaryXor, UnaryAdd, UnarySub,
	"**", "?", "not",
	"=", "+=", "-=", "*=", "/=", "%=", "**=",
	"<<=", ">>=", "&=", "|=", "^=", "&&=", "||=",
}

var keywords = []string{
	"def", "end", "class", "module", "alias",
	"if", "unless", "while", "until", "rescue",
	"and", "or", "not", "defined?",
}

// Precedence is the immutable operator configuration threaded through the
// grammar. Construct it with NewPrecedence; never share a mutated copy.
type Precedence struct {
	level      map[string]int
	right      map[string]bool
	keyword    map[string]bool
	commaLow   int
	commaHigh  int
	binary     []string
	statement  []string
	unary      []string
	stmtUnary  []string
	modifiers  []string
	assignment []string
}

// NewPrecedence builds the operator tables by walking the ordered group
// lists, expression-level groups first, statement-level groups below them.
func NewPrecedence() *Precedence {
	p := &Precedence{
		level:   make(map[string]int),
		right:   make(map[string]bool),
		keyword: make(map[string]bool),
	}

	level := 0
	add := func(syms []string) {
		for _, sym := range syms {
			switch sym {
			case boundary:
				level++
			case commaLow:
				p.commaLow = level
			case commaHigh:
				p.commaHigh = level
			default:
				p.level[sym] = level
			}
		}
		level++
	}
	add(exprOps)
	add(stmtOps)

	for _, sym := range rightAssoc {
		p.right[sym] = true
	}
	for _, kw := range keywords {
		p.keyword[kw] = true
	}

	p.unary = []string{UnaryNot, UnaryXor, "+", "-"}
	p.stmtUnary = []string{"not", "defined?"}
	p.modifiers = []string{"if", "unless", "while", "until", "rescue"}
	p.assignment = longestFirst([]string{
		"=", "+=", "-=", "*=", "/=", "%=", "**=",
		"<<=", ">>=", "&=", "|=", "^=", "&&=", "||=",
	})
	p.binary = longestFirst([]string{
		"**", "*", "/", "%", "+", "-", "<<", ">>", "&", "|", "^",
		"<", "<=", ">", ">=", "==", "===", "!=", "=~", "!~", "<=>",
		"&&", "||", "..", "...", "?",
	})
	p.statement = longestFirst(append(append([]string{}, p.assignment...),
		"rescue", "and", "or", "if", "unless", "while", "until"))
	return p
}

// Level returns the binding level of sym; smaller binds tighter. The comma
// is not in the table, use CommaLevel for it.
func (p *Precedence) Level(sym string) (int, bool) {
	l, ok := p.level[sym]
	return l, ok
}

// CommaLevel returns the comma's level in the given mode. The high mode is
// the argument-list comma, the low mode the statement-level one.
func (p *Precedence) CommaLevel(high bool) int {
	if high {
		return p.commaHigh
	}
	return p.commaLow
}

// RightAssoc reports whether sym associates right-to-left.
func (p *Precedence) RightAssoc(sym string) bool { return p.right[sym] }

// IsKeyword reports whether name is reserved and may not be an identifier.
func (p *Precedence) IsKeyword(name string) bool { return p.keyword[name] }

// Rotates reports whether a freshly reduced (outer left (inner mid right))
// must rotate left into (inner (outer left mid) right): outer binds strictly
// tighter than inner, or equally tightly when outer is left-associative.
// Symbols without a table entry never rotate. commaHigh selects the comma
// mode for "," on either side.
func (p *Precedence) Rotates(outer, inner string, commaHigh bool) bool {
	lo, ok := p.levelIn(outer, commaHigh)
	if !ok {
		return false
	}
	li, ok := p.levelIn(inner, commaHigh)
	if !ok {
		return false
	}
	if lo != li {
		return lo < li
	}
	return !p.right[outer]
}

func (p *Precedence) levelIn(sym string, commaHigh bool) (int, bool) {
	if sym == "," {
		return p.CommaLevel(commaHigh), true
	}
	l, ok := p.level[sym]
	return l, ok
}

// Binary returns the expression-level binary operator spellings, longest
// first so terminals can match greedily.
func (p *Precedence) Binary() []string { return p.binary }

// Statement returns the statement-level binary operator spellings, longest
// first. Word-shaped entries need a trailing word boundary when matched.
func (p *Precedence) Statement() []string { return p.statement }

// Unary returns the expression-level unary operator spellings as written in
// source; UnaryTag maps them to their table spelling.
func (p *Precedence) Unary() []string { return p.unary }

// StatementUnary returns the statement-level unary keyword operators.
func (p *Precedence) StatementUnary() []string { return p.stmtUnary }

// Modifiers returns the statement modifier keywords.
func (p *Precedence) Modifiers() []string { return p.modifiers }

// UnaryTag maps an operator as written to the tag its node carries.
func UnaryTag(sym string) string {
	switch sym {
	case "+":
		return UnaryAdd
	case "-":
		return UnarySub
	}
	return sym
}

func longestFirst(syms []string) []string {
	sort.SliceStable(syms, func(i, j int) bool {
		return len(syms[i]) > len(syms[j])
	})
	return syms
}
