// Package token defines the lexical tokens of FileScript.
package token

import (
	"github.com/hashicorp/hcl/v2"
	"golang.org/x/text/message"

	"github.com/vk/fscheck/internal/i18n"
)

// Kind is the lexical class of a token.
type Kind int

const (
	Illegal Kind = iota
	EOF

	Ident
	Number
	String

	LBrace // {
	RBrace // }
	LParen // (
	RParen // )
	Comma  // ,
	Assign // =
	Plus   // +
	Minus  // -
	Eq     // ==
	Ne     // !=
	Gt     // >
	Lt     // <

	keywordBeg
	Var
	If
	Else
	For
	keywordEnd
)

var kindNames = [...]string{
	Illegal: "ILLEGAL",
	EOF:     "EOF",
	Ident:   "IDENT",
	Number:  "NUMBER",
	String:  "STRING",
	LBrace:  "{",
	RBrace:  "}",
	LParen:  "(",
	RParen:  ")",
	Comma:   ",",
	Assign:  "=",
	Plus:    "+",
	Minus:   "-",
	Eq:      "==",
	Ne:      "!=",
	Gt:      ">",
	Lt:      "<",
	Var:     "var",
	If:      "if",
	Else:    "else",
	For:     "for",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "token(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > keywordBeg && k < keywordEnd
}

// IsComparison reports whether k can join the two sides of a condition.
func (k Kind) IsComparison() bool {
	switch k {
	case Eq, Ne, Gt, Lt:
		return true
	}
	return false
}

var keywords = map[string]Kind{
	"var":  Var,
	"if":   If,
	"else": Else,
	"for":  For,
}

// Lookup maps an identifier to its keyword kind, or Ident.
func Lookup(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Ident
}

// Token is one lexeme with its source range. For strings, Text holds the
// unescaped value without quotes.
type Token struct {
	Kind  Kind
	Text  string
	Range hcl.Range
}

// Describe renders the token for use inside a diagnostic summary.
func (t Token) Describe(p *message.Printer) string {
	switch t.Kind {
	case EOF:
		return p.Sprintf(i18n.DescEOF)
	case Ident:
		return p.Sprintf(i18n.DescIdent, t.Text)
	case Number:
		return p.Sprintf(i18n.DescNumber, t.Text)
	case String:
		return p.Sprintf(i18n.DescString, t.Text)
	case Illegal:
		return p.Sprintf(i18n.DescToken, t.Text)
	}
	return DescribeKind(p, t.Kind)
}

// DescribeKind renders a fixed token kind (punctuation or keyword) for use
// inside a diagnostic summary.
func DescribeKind(p *message.Printer, k Kind) string {
	if k == Ident {
		return p.Sprintf(i18n.DescName)
	}
	return p.Sprintf(i18n.DescToken, k.String())
}
