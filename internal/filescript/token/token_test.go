package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/vk/fscheck/internal/i18n"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, Var, Lookup("var"))
	assert.Equal(t, If, Lookup("if"))
	assert.Equal(t, Else, Lookup("else"))
	assert.Equal(t, For, Lookup("for"))
	assert.Equal(t, Ident, Lookup("variable"))
	assert.Equal(t, Ident, Lookup("MoveFile"))
}

func TestKind_Predicates(t *testing.T) {
	assert.True(t, Var.IsKeyword())
	assert.True(t, For.IsKeyword())
	assert.False(t, Ident.IsKeyword())
	assert.False(t, keywordEnd.IsKeyword())

	for _, k := range []Kind{Eq, Ne, Gt, Lt} {
		assert.True(t, k.IsComparison(), k.String())
	}
	assert.False(t, Assign.IsComparison())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "==", Eq.String())
	assert.Equal(t, "else", Else.String())
	assert.Equal(t, "token(?)", Kind(-1).String())
	assert.Equal(t, "token(?)", keywordBeg.String())
}

func TestToken_Describe(t *testing.T) {
	en := i18n.NewPrinter(language.English)
	pt := i18n.NewPrinter(language.BrazilianPortuguese)

	testCases := []struct {
		name     string
		tok      Token
		expected string
	}{
		{name: "eof", tok: Token{Kind: EOF}, expected: "end of input"},
		{name: "ident", tok: Token{Kind: Ident, Text: "x"}, expected: `name "x"`},
		{name: "number", tok: Token{Kind: Number, Text: "42"}, expected: "number 42"},
		{name: "string", tok: Token{Kind: String, Text: "a.txt"}, expected: `string "a.txt"`},
		{name: "punctuation", tok: Token{Kind: LBrace, Text: "{"}, expected: "'{'"},
		{name: "keyword", tok: Token{Kind: Else, Text: "else"}, expected: "'else'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.tok.Describe(en))
		})
	}

	assert.Equal(t, "a name", DescribeKind(en, Ident))
	assert.Equal(t, "'}'", DescribeKind(en, RBrace))
	assert.Equal(t, "fim da entrada", Token{Kind: EOF}.Describe(pt))
}
