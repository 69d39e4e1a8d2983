package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree/token"
)

func TestLevels(t *testing.T) {
	p := token.NewPrecedence()

	tighter := func(a, b string) {
		la, ok := p.Level(a)
		require.True(t, ok, a)
		lb, ok := p.Level(b)
		require.True(t, ok, b)
		require.Less(t, la, lb, "%s should bind tighter than %s", a, b)
	}

	tighter(".", token.UnarySub)
	tighter(token.UnarySub, "**")
	tighter("**", "*")
	tighter("*", "+")
	tighter("+", "<<")
	tighter("<<", "&")
	tighter("&", "|")
	tighter("|", "<")
	tighter("<", "==")
	tighter("==", "&&")
	tighter("&&", "||")
	tighter("||", "..")
	tighter("..", "?")
	tighter("?", "rescue")
	tighter("rescue", "=")
	tighter("=", "defined?")
	tighter("defined?", "not")
	tighter("not", "and")
	tighter("and", "if")

	lmul, _ := p.Level("*")
	ldiv, _ := p.Level("/")
	require.Equal(t, lmul, ldiv)
}

func TestCommaLevels(t *testing.T) {
	p := token.NewPrecedence()
	assign, ok := p.Level("=")
	require.True(t, ok)

	require.Less(t, p.CommaLevel(false), assign, "statement comma groups before assignment")
	require.Greater(t, p.CommaLevel(true), assign, "argument comma groups after assignment")
}

func TestRotates(t *testing.T) {
	p := token.NewPrecedence()

	// 1 * 2 + 3 reduced naively as (* 1 (+ 2 3)) must rotate.
	require.True(t, p.Rotates("*", "+", false))
	// 1 + 2 * 3 reduced as (+ 1 (* 2 3)) must not.
	require.False(t, p.Rotates("+", "*", false))
	// Equal levels rotate only when the outer op is left-associative.
	require.True(t, p.Rotates("-", "-", false))
	require.False(t, p.Rotates("**", "**", false))
	require.False(t, p.Rotates("=", "=", false))
	// Symbols outside the table never rotate.
	require.False(t, p.Rotates("(", "+", false))
	require.False(t, p.Rotates("+", "()", false))
	// Comma mode flips its relation to assignment.
	require.True(t, p.Rotates(",", "=", false))
	require.False(t, p.Rotates(",", "=", true))
}

func TestRightAssoc(t *testing.T) {
	p := token.NewPrecedence()
	for _, sym := range []string{"**", "?", "=", "+=", "not", token.UnarySub} {
		require.True(t, p.RightAssoc(sym), sym)
	}
	for _, sym := range []string{"+", "-", "*", "&&", "and", "."} {
		require.False(t, p.RightAssoc(sym), sym)
	}
}

func TestKeywordsAndTags(t *testing.T) {
	p := token.NewPrecedence()
	for _, kw := range []string{"def", "end", "class", "alias", "defined?"} {
		require.True(t, p.IsKeyword(kw), kw)
	}
	require.False(t, p.IsKeyword("foo"))
	require.False(t, p.IsKeyword("ends"))

	require.Equal(t, token.UnarySub, token.UnaryTag("-"))
	require.Equal(t, token.UnaryAdd, token.UnaryTag("+"))
	require.Equal(t, "!", token.UnaryTag("!"))
}
