package node_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rubytree/rubytree/parser/node"
)

func TestNumberValue(t *testing.T) {
	cases := map[string]string{
		"42":     "42",
		"3.14":   "3.14",
		"1e3":    "1000",
		"2.5e-1": "0.25",
		"0x1f":   "31",
		"0o17":   "15",
		"017":    "15",
		"0":      "0",
	}
	for lit, want := range cases {
		v, err := node.New(lit).NumberValue()
		require.NoError(t, err, lit)
		expected, err := decimal.NewFromString(want)
		require.NoError(t, err)
		require.True(t, v.Equal(expected), "%s => %s, want %s", lit, v, want)
	}

	_, err := node.New("0xzz").NumberValue()
	require.Error(t, err)
	_, err = node.New("+", node.New("1"), node.New("2")).NumberValue()
	require.Error(t, err)
}

func TestSymbol(t *testing.T) {
	s := node.New(":foo")
	require.True(t, s.IsSymbol())
	require.Equal(t, "foo", s.SymbolName())

	require.False(t, node.New("foo").IsSymbol())
	require.False(t, node.New(":").IsSymbol())
	require.Equal(t, "", node.New("foo").SymbolName())
}

func TestRegexp(t *testing.T) {
	r := node.New(`/a+b/`)
	require.True(t, r.IsRegex())
	re, err := r.Regexp()
	require.NoError(t, err)
	ok, err := re.MatchString("aab")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = node.New("abc").Regexp()
	require.Error(t, err)
}
