// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package source

import "fmt"

// Pos is a raw byte offset into the input, recorded on every node while the
// tree is being built and replaced by a FilePos once parsing completes.
type Pos int

// NoPos marks a node that never recorded an offset.
const NoPos Pos = -1

// IsValid returns true if the position is valid.
func (p Pos) IsValid() bool { return p >= 0 }

// FilePos is a resolved line/column pair. Line counts from 0. Column is -1
// exactly on a newline byte and 0 on the byte that follows it; no node is
// ever anchored on a newline, the convention only simplifies the table.
type FilePos struct {
	Line   int
	Column int
}

func (p FilePos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Table maps every byte offset of an input, 0 through len(input) inclusive,
// to its FilePos. It is built once per input and never mutated afterwards.
type Table []FilePos

// NewTable indexes data in a single linear pass.
func NewTable(data []byte) Table {
	t := make(Table, len(data)+1)
	line, column := 0, 0
	for i, b := range data {
		if b == '\n' {
			t[i] = FilePos{Line: line, Column: -1}
			line++
			column = 0
			continue
		}
		t[i] = FilePos{Line: line, Column: column}
		column++
	}
	t[len(data)] = FilePos{Line: line, Column: column}
	// Offset 0 is always 0:0, even when the input opens with a newline;
	// no node is ever anchored on that newline anyway.
	if len(data) > 0 && data[0] == '\n' {
		t[0] = FilePos{}
	}
	return t
}

// Position resolves a raw offset. Offsets outside the table, including
// NoPos, resolve to the zero FilePos.
func (t Table) Position(p Pos) FilePos {
	if !p.IsValid() || int(p) >= len(t) {
		return FilePos{}
	}
	return t[p]
}

// File couples an input buffer with its position table.
type File struct {
	// Name as provided to NewFile, used in error messages only.
	Name string
	// Data is the raw input.
	Data []byte

	table Table
}

// NewFile indexes data and returns the file wrapper.
func NewFile(name string, data []byte) *File {
	return &File{Name: name, Data: data, table: NewTable(data)}
}

// Size returns the input length in bytes.
func (f *File) Size() int { return len(f.Data) }

// Table returns the file's position table.
func (f *File) Table() Table { return f.table }

// Position resolves a raw offset within the file.
func (f *File) Position(p Pos) FilePos { return f.table.Position(p) }
