// Package parser builds FileScript syntax trees. Parsing stops at the first
// error; there is no recovery.
package parser

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vk/fscheck/internal/filescript/ast"
	"github.com/vk/fscheck/internal/filescript/lexer"
	"github.com/vk/fscheck/internal/filescript/token"
	"github.com/vk/fscheck/internal/i18n"
)

// errSyntax unwinds the parse once a diagnostic has been recorded.
var errSyntax = errors.New("syntax error")

type parser struct {
	lex     *lexer.Lexer
	tok     token.Token
	printer *message.Printer
	diags   hcl.Diagnostics
}

// Parse parses a complete program. On failure the returned program is nil
// and the diagnostics hold exactly one error. A nil printer reports in
// English.
func Parse(filename string, src []byte, p *message.Printer) (*ast.Program, hcl.Diagnostics) {
	if p == nil {
		p = i18n.NewPrinter(language.English)
	}
	ps := &parser{
		lex:     lexer.New(filename, src, p),
		printer: p,
	}

	prog, err := ps.parseProgram()
	diags := append(ps.lex.Diagnostics(), ps.diags...)
	if err != nil {
		return nil, diags
	}
	return prog, diags
}

func (p *parser) parseProgram() (*ast.Program, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.EOF {
		return nil, p.errorf(p.tok.Range, i18n.MsgTrailingInput, p.tok.Describe(p.printer))
	}
	return &ast.Program{Body: body}, nil
}

func (p *parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Lbrace: lbrace.Range}
	for p.tok.Kind != token.RBrace && p.tok.Kind != token.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	block.Rbrace = rbrace.Range
	return block, nil
}

func (p *parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Kind {
	case token.Var:
		return p.parseVarDecl()
	case token.If:
		return p.parseIf()
	case token.For:
		return p.parseFor()
	case token.Ident:
		if _, ok := ast.LookupBuiltin(p.tok.Text); ok {
			call, err := p.parseCall()
			if err != nil {
				return nil, err
			}
			return &ast.CallStmt{Call: call}, nil
		}
		return p.parseAssign()
	}
	return nil, p.errorf(p.tok.Range, i18n.MsgExpectedStmt, p.tok.Describe(p.printer))
}

func (p *parser) parseVarDecl() (*ast.VarDecl, error) {
	kw := p.tok.Range
	if err := p.next(); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{
		Keyword: kw,
		Name:    &ast.Ident{Name: name.Text, Rng: name.Range},
		Value:   value,
	}, nil
}

func (p *parser) parseAssign() (*ast.Assign, error) {
	name := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Kind == token.LParen {
		return nil, p.errorf(name.Range, i18n.MsgUnknownFunction, name.Text)
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{
		Name:  &ast.Ident{Name: name.Text, Rng: name.Range},
		Value: value,
	}, nil
}

func (p *parser) parseIf() (*ast.If, error) {
	stmt := &ast.If{Keyword: p.tok.Range}
	if err := p.next(); err != nil {
		return nil, err
	}
	var err error
	if stmt.Cond, err = p.parseCondition(); err != nil {
		return nil, err
	}
	if stmt.Then, err = p.parseBlock(); err != nil {
		return nil, err
	}
	if p.tok.Kind != token.Else {
		return stmt, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if stmt.Else, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseFor() (*ast.For, error) {
	stmt := &ast.For{Keyword: p.tok.Range}
	if err := p.next(); err != nil {
		return nil, err
	}
	var err error
	if stmt.Cond, err = p.parseCondition(); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseCondition() (*ast.Condition, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.tok.Kind.IsComparison() {
		return nil, p.errorf(p.tok.Range, i18n.MsgExpectedCompare, p.tok.Describe(p.printer))
	}
	op := p.tok.Kind
	if err := p.next(); err != nil {
		return nil, err
	}
	y, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Condition{Op: op, X: x, Y: y}, nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.Plus || p.tok.Kind == token.Minus {
		op := p.tok.Kind
		if err := p.next(); err != nil {
			return nil, err
		}
		y, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		x = &ast.Binary{Op: op, X: x, Y: y}
	}
	return x, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.tok
	switch tok.Kind {
	case token.String:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: cty.StringVal(tok.Text), Rng: tok.Range}, nil
	case token.Number:
		v, err := cty.ParseNumberVal(tok.Text)
		if err != nil {
			// The lexer only produces digit runs.
			return nil, p.errorf(tok.Range, i18n.MsgExpectedExpr, tok.Describe(p.printer))
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: v, Rng: tok.Range}, nil
	case token.Ident:
		if b, ok := ast.LookupBuiltin(tok.Text); ok {
			if !b.Yields() {
				return nil, p.errorf(tok.Range, i18n.MsgNoValue, tok.Text)
			}
			return p.parseCall()
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.Ident{Name: tok.Text, Rng: tok.Range}, nil
	}
	return nil, p.errorf(tok.Range, i18n.MsgExpectedExpr, tok.Describe(p.printer))
}

// parseCall parses a built-in call; the current token is its name.
func (p *parser) parseCall() (*ast.Call, error) {
	call := &ast.Call{Name: &ast.Ident{Name: p.tok.Text, Rng: p.tok.Range}}
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	if p.tok.Kind != token.RParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if p.tok.Kind != token.Comma {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	call.Rparen = rparen.Range
	return call, nil
}

// next advances to the next token. Lexical errors are already recorded by
// the lexer, so they only need to stop the parse.
func (p *parser) next() error {
	p.tok = p.lex.Next()
	if p.tok.Kind == token.Illegal {
		return errSyntax
	}
	return nil
}

// expect consumes a token of the given kind and returns it.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, p.errorf(tok.Range, i18n.MsgExpected,
			token.DescribeKind(p.printer, kind), tok.Describe(p.printer))
	}
	if err := p.next(); err != nil {
		return tok, err
	}
	return tok, nil
}

func (p *parser) errorf(rng hcl.Range, key string, args ...any) error {
	subject := rng
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  p.printer.Sprintf(key, args...),
		Subject:  &subject,
	})
	return errSyntax
}
