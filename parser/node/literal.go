// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package node

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/shopspring/decimal"
)

// IsSymbol reports whether n is a symbol leaf like :name.
func (n *Node) IsSymbol() bool {
	return n.Leaf() && len(n.Data) > 1 && n.Data[0] == ':'
}

// SymbolName returns the symbol's name without the leading colon.
func (n *Node) SymbolName() string {
	if !n.IsSymbol() {
		return ""
	}
	return n.Data[1:]
}

// IsRegex reports whether n is a regular-expression leaf.
func (n *Node) IsRegex() bool {
	return n.Leaf() && len(n.Data) >= 2 &&
		n.Data[0] == '/' && n.Data[len(n.Data)-1] == '/'
}

// Regexp compiles a regex leaf's pattern. Ruby regex syntax is closer to
// what regexp2 accepts than to RE2, hence the engine choice.
func (n *Node) Regexp() (*regexp2.Regexp, error) {
	if !n.IsRegex() {
		return nil, fmt.Errorf("node: %q is not a regex literal", n.Data)
	}
	return regexp2.Compile(n.Data[1:len(n.Data)-1], regexp2.None)
}

// NumberValue parses a numeric leaf: integer, float with optional exponent,
// hex with 0x, octal with 0o or a plain leading zero.
func (n *Node) NumberValue() (decimal.Decimal, error) {
	if !n.Leaf() {
		return decimal.Zero, fmt.Errorf("node: %q is not a leaf", n.Data)
	}
	s := n.Data
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"),
		strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return decimal.Zero, fmt.Errorf("node: bad numeric literal %q: %w", s, err)
		}
		return decimal.NewFromInt(v), nil
	case len(s) > 1 && s[0] == '0' && isOctalDigits(s[1:]):
		v, err := strconv.ParseInt(s[1:], 8, 64)
		if err != nil {
			return decimal.Zero, fmt.Errorf("node: bad numeric literal %q: %w", s, err)
		}
		return decimal.NewFromInt(v), nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("node: bad numeric literal %q: %w", s, err)
	}
	return v, nil
}

func isOctalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return len(s) > 0
}
