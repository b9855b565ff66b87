// Package lexer turns FileScript source text into tokens.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vk/fscheck/internal/filescript/token"
	"github.com/vk/fscheck/internal/i18n"
)

// Lexer scans one source file. Positions are 1-based lines and columns
// counted in runes, plus 0-based byte offsets.
type Lexer struct {
	filename string
	src      []byte
	pos      hcl.Pos
	printer  *message.Printer
	diags    hcl.Diagnostics
}

// New creates a lexer. A nil printer reports in English.
func New(filename string, src []byte, p *message.Printer) *Lexer {
	if p == nil {
		p = i18n.NewPrinter(language.English)
	}
	return &Lexer{
		filename: filename,
		src:      src,
		pos:      hcl.Pos{Line: 1, Column: 1, Byte: 0},
		printer:  p,
	}
}

// Next returns the next token. At the end of input it keeps returning EOF.
// Illegal tokens come with a diagnostic recorded on the lexer.
func (l *Lexer) Next() token.Token {
	l.skipSpace()
	start := l.pos

	r, size := l.peek()
	if size == 0 {
		return l.emit(token.EOF, start)
	}

	switch {
	case r == '"':
		return l.lexString(start)
	case isDigit(r):
		return l.lexNumber(start)
	case isIdentStart(r):
		return l.lexIdent(start)
	}

	l.advance()
	switch r {
	case '{':
		return l.emit(token.LBrace, start)
	case '}':
		return l.emit(token.RBrace, start)
	case '(':
		return l.emit(token.LParen, start)
	case ')':
		return l.emit(token.RParen, start)
	case ',':
		return l.emit(token.Comma, start)
	case '+':
		return l.emit(token.Plus, start)
	case '-':
		return l.emit(token.Minus, start)
	case '>':
		return l.emit(token.Gt, start)
	case '<':
		return l.emit(token.Lt, start)
	case '=':
		if l.accept('=') {
			return l.emit(token.Eq, start)
		}
		return l.emit(token.Assign, start)
	case '!':
		if l.accept('=') {
			return l.emit(token.Ne, start)
		}
	}

	tok := l.emit(token.Illegal, start)
	l.Error(tok.Range, l.printer.Sprintf(i18n.MsgUnexpectedChar, r))
	return tok
}

// All scans the remaining input, up to and including EOF or the first
// illegal token.
func (l *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Illegal {
			return toks
		}
	}
}

// Error records a lexical error.
func (l *Lexer) Error(rng hcl.Range, summary string) {
	subject := rng
	l.diags = append(l.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Subject:  &subject,
	})
}

// Diagnostics returns the errors recorded so far.
func (l *Lexer) Diagnostics() hcl.Diagnostics {
	return l.diags
}

func (l *Lexer) lexString(start hcl.Pos) token.Token {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		r, size := l.peek()
		switch {
		case size == 0:
			tok := l.emit(token.Illegal, start)
			l.Error(tok.Range, l.printer.Sprintf(i18n.MsgUnterminatedStr))
			return tok
		case r == '"':
			l.advance()
			tok := l.emit(token.String, start)
			tok.Text = sb.String()
			return tok
		case r == '\\':
			l.advance()
			if next, n := l.peek(); n > 0 {
				sb.WriteRune(next)
				l.advance()
			}
		default:
			sb.WriteRune(r)
			l.advance()
		}
	}
}

func (l *Lexer) lexNumber(start hcl.Pos) token.Token {
	for {
		r, size := l.peek()
		if size == 0 || !isDigit(r) {
			break
		}
		l.advance()
	}
	return l.emit(token.Number, start)
}

func (l *Lexer) lexIdent(start hcl.Pos) token.Token {
	for {
		r, size := l.peek()
		if size == 0 || !isIdentPart(r) {
			break
		}
		l.advance()
	}
	tok := l.emit(token.Ident, start)
	tok.Kind = token.Lookup(tok.Text)
	return tok
}

func (l *Lexer) emit(kind token.Kind, start hcl.Pos) token.Token {
	return token.Token{
		Kind: kind,
		Text: string(l.src[start.Byte:l.pos.Byte]),
		Range: hcl.Range{
			Filename: l.filename,
			Start:    start,
			End:      l.pos,
		},
	}
}

func (l *Lexer) skipSpace() {
	for {
		r, size := l.peek()
		if size == 0 || !unicode.IsSpace(r) {
			return
		}
		l.advance()
	}
}

func (l *Lexer) peek() (rune, int) {
	if l.pos.Byte >= len(l.src) {
		return 0, 0
	}
	return utf8.DecodeRune(l.src[l.pos.Byte:])
}

func (l *Lexer) advance() {
	r, size := l.peek()
	if size == 0 {
		return
	}
	l.pos.Byte += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
		return
	}
	l.pos.Column++
}

func (l *Lexer) accept(want rune) bool {
	if r, size := l.peek(); size > 0 && r == want {
		l.advance()
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
