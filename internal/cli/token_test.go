package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitInput(t *testing.T) {
	cases := []struct {
		line string
		want []any
	}{
		{`CREATE-TABLE "t"`, []any{"CREATE-TABLE", `"t"`}},
		{`a, b, c`, []any{[]string{"a", "b", "c"}}},
		{`x a,b,c`, []any{"x", []string{"a", "b", "c"}}},
		{`a, b y`, []any{[]string{"a", "b"}, "y"}},
		{`   spaced    out  `, []any{"spaced", "out"}},
		{``, nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, splitInput(tc.line), tc.line)
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(`Insert-Data "users" ann, 30`)
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Kind: TokenCommand, Text: "insert-data"},
		{Kind: TokenName, Text: "users"},
		{Kind: TokenList, List: []string{"ann", "30"}},
	}, tokens)
}

func TestTokenizeNumber(t *testing.T) {
	tokens, err := Tokenize(`INSERT-COLUMN "users" "age" 3`)
	require.NoError(t, err)

	require.Len(t, tokens, 4)
	assert.Equal(t, TokenNumber, tokens[3].Kind)
	assert.Equal(t, 3.0, tokens[3].Number)
}

func TestTokenizeRejectsUnknownWord(t *testing.T) {
	_, err := Tokenize(`CREATE-TABLE users`)
	require.Error(t, err)
	assert.Equal(t, "invalid command users", err.Error())
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "name", TokenName.String())
	assert.Equal(t, "list", TokenList.String())
	assert.Equal(t, "unknown", TokenKind(42).String())
}
