// Package ast declares the syntax tree of FileScript programs.
//
// The language, in EBNF:
//
//	program   = block EOF ;
//	block     = "{" { statement } "}" ;
//	statement = "var" IDENT "=" expr
//	          | "if" condition block [ "else" block ]
//	          | "for" condition block
//	          | call
//	          | IDENT "=" expr ;
//	condition = expr ( "==" | "!=" | ">" | "<" ) expr ;
//	expr      = primary { ( "+" | "-" ) primary } ;
//	primary   = STRING | NUMBER | call | IDENT ;
//	call      = BUILTIN "(" [ expr { "," expr } ] ")" ;
//
//	IDENT     = ( letter | "_" ) { letter | digit | "_" } ;
//	NUMBER    = digit { digit } ;
//	letter    = any Unicode letter ;
//	digit     = "0" ... "9" ;
//
// Only built-ins that yield a value may appear as a primary.
package ast

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/fscheck/internal/filescript/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Range() hcl.Range
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed file.
type Program struct {
	Body *Block
}

func (p *Program) Range() hcl.Range { return p.Body.Range() }

// Block is a braced statement list.
type Block struct {
	Lbrace hcl.Range
	Stmts  []Stmt
	Rbrace hcl.Range
}

func (b *Block) Range() hcl.Range { return hcl.RangeBetween(b.Lbrace, b.Rbrace) }

type (
	// VarDecl is `var name = value`.
	VarDecl struct {
		Keyword hcl.Range
		Name    *Ident
		Value   Expr
	}

	// Assign is `name = value`.
	Assign struct {
		Name  *Ident
		Value Expr
	}

	// If is `if cond { ... } else { ... }`. Else may be nil.
	If struct {
		Keyword hcl.Range
		Cond    *Condition
		Then    *Block
		Else    *Block
	}

	// For is `for cond { ... }`.
	For struct {
		Keyword hcl.Range
		Cond    *Condition
		Body    *Block
	}

	// CallStmt is a built-in call used as a statement.
	CallStmt struct {
		Call *Call
	}
)

func (s *VarDecl) Range() hcl.Range  { return hcl.RangeBetween(s.Keyword, s.Value.Range()) }
func (s *Assign) Range() hcl.Range   { return hcl.RangeBetween(s.Name.Range(), s.Value.Range()) }
func (s *For) Range() hcl.Range      { return hcl.RangeBetween(s.Keyword, s.Body.Range()) }
func (s *CallStmt) Range() hcl.Range { return s.Call.Range() }

func (s *If) Range() hcl.Range {
	if s.Else != nil {
		return hcl.RangeBetween(s.Keyword, s.Else.Range())
	}
	return hcl.RangeBetween(s.Keyword, s.Then.Range())
}

func (*VarDecl) stmtNode()  {}
func (*Assign) stmtNode()   {}
func (*If) stmtNode()       {}
func (*For) stmtNode()      {}
func (*CallStmt) stmtNode() {}

// Condition compares two expressions. Op is one of Eq, Ne, Gt, Lt.
type Condition struct {
	Op token.Kind
	X  Expr
	Y  Expr
}

func (c *Condition) Range() hcl.Range { return hcl.RangeBetween(c.X.Range(), c.Y.Range()) }

type (
	// Literal is a string or number constant.
	Literal struct {
		Value cty.Value
		Rng   hcl.Range
	}

	// Ident names a variable.
	Ident struct {
		Name string
		Rng  hcl.Range
	}

	// Call invokes a built-in.
	Call struct {
		Name   *Ident
		Args   []Expr
		Rparen hcl.Range
	}

	// Binary is `x + y` or `x - y`.
	Binary struct {
		Op token.Kind
		X  Expr
		Y  Expr
	}
)

func (e *Literal) Range() hcl.Range { return e.Rng }
func (e *Ident) Range() hcl.Range   { return e.Rng }
func (e *Call) Range() hcl.Range    { return hcl.RangeBetween(e.Name.Range(), e.Rparen) }
func (e *Binary) Range() hcl.Range  { return hcl.RangeBetween(e.X.Range(), e.Y.Range()) }

func (*Literal) exprNode() {}
func (*Ident) exprNode()   {}
func (*Call) exprNode()    {}
func (*Binary) exprNode()  {}
