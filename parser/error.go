// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"fmt"

	"github.com/rubytree/rubytree/parser/source"
)

// Error represents a parser error. The parse either yields a complete,
// position-resolved tree or this: there are no partial trees and no
// recoverable failures at this layer. Offset is the furthest byte reached
// across all attempted alternatives.
type Error struct {
	Filename string
	Pos      source.FilePos
	Offset   int
	Msg      string
}

func (e *Error) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("Parse Error: %s\n\tat %s:%s", e.Msg, e.Filename, e.Pos)
	}
	return fmt.Sprintf("Parse Error: %s\n\tat %s", e.Msg, e.Pos)
}
