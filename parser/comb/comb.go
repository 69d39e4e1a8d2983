// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package comb is the minimal parsing-state substrate the grammar is built
// on: an immutable offset cursor plus sequencing, ordered alternation,
// repetition and mapping. Alternation backtracks by trying each branch
// against a copy of the cursor and committing only on success; there is no
// shared mutable parse state.
package comb

import "fmt"

// State is an immutable cursor over the input. Copies are cheap values;
// advancing returns a new State and never touches the original.
type State struct {
	input []byte
	off   int
}

// NewState returns a cursor at the start of input.
func NewState(input []byte) State {
	return State{input: input}
}

// Off returns the current byte offset.
func (s State) Off() int { return s.off }

// EOF reports whether the cursor is past the last byte.
func (s State) EOF() bool { return s.off >= len(s.input) }

// At returns the byte i positions ahead of the cursor, 0 past the end.
func (s State) At(i int) byte {
	if s.off+i >= len(s.input) {
		return 0
	}
	return s.input[s.off+i]
}

// Advance returns a cursor moved n bytes forward.
func (s State) Advance(n int) State {
	s.off += n
	if s.off > len(s.input) {
		s.off = len(s.input)
	}
	return s
}

// Text returns the next n bytes without advancing.
func (s State) Text(n int) string {
	end := s.off + n
	if end > len(s.input) {
		end = len(s.input)
	}
	return string(s.input[s.off:end])
}

// HasPrefix reports whether the input at the cursor starts with lit.
func (s State) HasPrefix(lit string) bool {
	return len(lit) <= len(s.input)-s.off && s.Text(len(lit)) == lit
}

// Error is a parse failure at a byte offset. Alternation keeps the failure
// whose offset reached furthest, the standard ordered-choice diagnostic.
type Error struct {
	Off  int
	Want string
}

func (e *Error) Error() string {
	return fmt.Sprintf("expected %s at offset %d", e.Want, e.Off)
}

// NewError returns a failure at the cursor's offset.
func NewError(s State, want string) error {
	return &Error{Off: s.off, Want: want}
}

// Furthest returns whichever failure reached further into the input.
func Furthest(a, b error) error {
	ea, aok := a.(*Error)
	eb, bok := b.(*Error)
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case !aok:
		return a
	case !bok:
		return b
	case eb.Off > ea.Off:
		return b
	}
	return a
}

// Parser consumes input from a cursor and yields a value plus the cursor
// past the match, or an error with the offset at which matching stopped.
type Parser[T any] func(State) (T, State, error)

// Map transforms a parser's result.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return func(s State) (B, State, error) {
		a, next, err := p(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return fn(a), next, nil
	}
}

// Alt tries each parser in order against the same cursor and commits to the
// first success. On total failure it reports the furthest-reaching error.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(s State) (T, State, error) {
		var furthest error
		for _, p := range ps {
			v, next, err := p(s)
			if err == nil {
				return v, next, nil
			}
			furthest = Furthest(furthest, err)
		}
		var zero T
		return zero, s, furthest
	}
}

// Opt makes p optional: on failure it yields the zero value and consumes
// nothing.
func Opt[T any](p Parser[T]) Parser[T] {
	return func(s State) (T, State, error) {
		v, next, err := p(s)
		if err != nil {
			var zero T
			return zero, s, nil
		}
		return v, next, nil
	}
}

// Many applies p zero or more times, stopping at the first failure.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		var out []T
		for {
			v, next, err := p(s)
			if err != nil {
				return out, s, nil
			}
			// A parser that consumes nothing would loop forever.
			if next.Off() == s.Off() {
				return out, s, nil
			}
			out = append(out, v)
			s = next
		}
	}
}

// Lit matches an exact string.
func Lit(lit string) Parser[string] {
	return func(s State) (string, State, error) {
		if !s.HasPrefix(lit) {
			return "", s, NewError(s, fmt.Sprintf("%q", lit))
		}
		return lit, s.Advance(len(lit)), nil
	}
}

// While matches a run of at least min bytes satisfying pred.
func While(want string, min int, pred func(byte) bool) Parser[string] {
	return func(s State) (string, State, error) {
		n := 0
		for !s.Advance(n).EOF() && pred(s.At(n)) {
			n++
		}
		if n < min {
			return "", s, NewError(s, want)
		}
		return s.Text(n), s.Advance(n), nil
	}
}
