// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package rubytree parses a loosened subset of Ruby source into a uniform
// string-tagged syntax tree. Every node keeps its original line/column and
// the comments that preceded it, so the source is reconstructible from the
// tree.
package rubytree

import (
	"fmt"

	"github.com/rubytree/rubytree/parser"
	"github.com/rubytree/rubytree/parser/node"
	"github.com/rubytree/rubytree/parser/source"
)

// Parse coerces src to text once and returns the fully position-resolved
// tree. src may be a string, []byte or fmt.Stringer. Each call is
// independent and safe to run in parallel with others.
func Parse(src any) (*node.Node, error) {
	data, err := coerce(src)
	if err != nil {
		return nil, err
	}
	return ParseFile("", data)
}

// ParseFile parses data, naming the input for error messages.
func ParseFile(name string, data []byte) (*node.Node, error) {
	return parser.NewParser(source.NewFile(name, data)).Parse()
}

func coerce(src any) ([]byte, error) {
	switch v := src.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case fmt.Stringer:
		return []byte(v.String()), nil
	}
	return nil, fmt.Errorf("rubytree: cannot parse %T", src)
}
