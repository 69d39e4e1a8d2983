package comb_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree/parser/comb"
)

func TestStateIsValue(t *testing.T) {
	s := comb.NewState([]byte("abc"))
	s2 := s.Advance(2)
	require.Equal(t, 0, s.Off())
	require.Equal(t, 2, s2.Off())
	require.Equal(t, byte('a'), s.At(0))
	require.Equal(t, byte('c'), s2.At(0))
	require.Equal(t, byte(0), s2.At(5))
	require.False(t, s.EOF())
	require.True(t, s.Advance(10).EOF())
}

func TestLit(t *testing.T) {
	p := comb.Lit("abc")
	v, next, err := p(comb.NewState([]byte("abcd")))
	require.NoError(t, err)
	require.Equal(t, "abc", v)
	require.Equal(t, 3, next.Off())

	_, _, err = p(comb.NewState([]byte("abd")))
	require.Error(t, err)
}

func TestAltFurthestError(t *testing.T) {
	long := func(s comb.State) (string, comb.State, error) {
		if s.HasPrefix("ab") {
			return "", s, comb.NewError(s.Advance(2), "c")
		}
		return "", s, comb.NewError(s, "ab")
	}
	short := comb.Lit("x")

	_, _, err := comb.Alt(short, long)(comb.NewState([]byte("abd")))
	require.Error(t, err)
	ce, ok := err.(*comb.Error)
	require.True(t, ok)
	require.Equal(t, 2, ce.Off)
	require.True(t, strings.Contains(err.Error(), "offset 2"))
}

func TestAltFirstWins(t *testing.T) {
	p := comb.Alt(comb.Lit("a"), comb.Lit("ab"))
	v, next, err := p(comb.NewState([]byte("ab")))
	require.NoError(t, err)
	require.Equal(t, "a", v)
	require.Equal(t, 1, next.Off())
}

func TestOpt(t *testing.T) {
	p := comb.Opt(comb.Lit("a"))
	v, next, err := p(comb.NewState([]byte("b")))
	require.NoError(t, err)
	require.Equal(t, "", v)
	require.Equal(t, 0, next.Off())
}

func TestMany(t *testing.T) {
	p := comb.Many(comb.Lit("ab"))
	vs, next, err := p(comb.NewState([]byte("ababx")))
	require.NoError(t, err)
	require.Equal(t, []string{"ab", "ab"}, vs)
	require.Equal(t, 4, next.Off())

	vs, next, err = p(comb.NewState([]byte("x")))
	require.NoError(t, err)
	require.Empty(t, vs)
	require.Equal(t, 0, next.Off())
}

func TestManyEmptyMatchTerminates(t *testing.T) {
	empty := func(s comb.State) (string, comb.State, error) {
		return "", s, nil
	}
	vs, _, err := comb.Many[string](empty)(comb.NewState([]byte("abc")))
	require.NoError(t, err)
	require.Empty(t, vs)
}

func TestWhile(t *testing.T) {
	digits := comb.While("digit", 1, func(b byte) bool { return b >= '0' && b <= '9' })
	v, next, err := digits(comb.NewState([]byte("123a")))
	require.NoError(t, err)
	require.Equal(t, "123", v)
	require.Equal(t, 3, next.Off())

	_, _, err = digits(comb.NewState([]byte("a")))
	require.Error(t, err)
}

func TestMap(t *testing.T) {
	p := comb.Map(comb.Lit("ab"), strings.ToUpper)
	v, _, err := p(comb.NewState([]byte("ab")))
	require.NoError(t, err)
	require.Equal(t, "AB", v)
}

func TestFurthest(t *testing.T) {
	a := &comb.Error{Off: 1, Want: "a"}
	b := &comb.Error{Off: 5, Want: "b"}
	require.Equal(t, error(b), comb.Furthest(a, b))
	require.Equal(t, error(b), comb.Furthest(b, a))
	require.Equal(t, error(a), comb.Furthest(a, nil))
	require.Equal(t, error(a), comb.Furthest(nil, a))
}
