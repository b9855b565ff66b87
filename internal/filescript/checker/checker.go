// Package checker runs the semantic checks that the grammar alone cannot
// express: built-in arity, numeric arguments, subtraction on strings and
// reads of never-assigned variables.
//
// Expressions are evaluated over cty values. Literals are known; variables
// and built-in results are unknown values of their best-known type, so
// constant sub-expressions fold and the rest only carry a type.
package checker

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vk/fscheck/internal/filescript/ast"
	"github.com/vk/fscheck/internal/filescript/token"
	"github.com/vk/fscheck/internal/i18n"
)

type checker struct {
	printer  *message.Printer
	assigned map[string]bool
	diags    hcl.Diagnostics
}

// Check walks the program in source order and returns every problem found.
// Warnings do not make a program invalid. A nil printer reports in English.
func Check(prog *ast.Program, p *message.Printer) hcl.Diagnostics {
	if p == nil {
		p = i18n.NewPrinter(language.English)
	}
	c := &checker{
		printer:  p,
		assigned: make(map[string]bool),
	}
	c.block(prog.Body)
	return c.diags
}

func (c *checker) block(b *ast.Block) {
	for _, stmt := range b.Stmts {
		c.stmt(stmt)
	}
}

func (c *checker) stmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.expr(s.Value)
		c.assigned[s.Name.Name] = true
	case *ast.Assign:
		c.expr(s.Value)
		c.assigned[s.Name.Name] = true
	case *ast.If:
		c.condition(s.Cond)
		c.block(s.Then)
		if s.Else != nil {
			c.block(s.Else)
		}
	case *ast.For:
		c.condition(s.Cond)
		c.block(s.Body)
	case *ast.CallStmt:
		c.call(s.Call)
	}
}

func (c *checker) condition(cond *ast.Condition) {
	c.expr(cond.X)
	c.expr(cond.Y)
}

// expr checks e and returns its value: known for constant expressions,
// unknown (possibly of dynamic type) otherwise.
func (c *checker) expr(e ast.Expr) cty.Value {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value
	case *ast.Ident:
		if !c.assigned[e.Name] {
			c.warnf(e.Range(), i18n.MsgUnassignedDetail, i18n.MsgUnassignedRead, e.Name)
			return cty.StringVal(e.Name)
		}
		return cty.DynamicVal
	case *ast.Call:
		return c.call(e)
	case *ast.Binary:
		return c.binary(e)
	}
	return cty.DynamicVal
}

func (c *checker) call(call *ast.Call) cty.Value {
	args := make([]cty.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = c.expr(arg)
	}

	b, ok := ast.LookupBuiltin(call.Name.Name)
	if !ok {
		// The parser only builds calls for built-ins.
		c.errorf(call.Name.Range(), i18n.MsgUnknownFunction, call.Name.Name)
		return cty.DynamicVal
	}

	if len(args) != b.Arity {
		c.errorf(call.Range(), i18n.MsgArity, b.Name, b.Arity, len(args))
	} else if b.Numeric {
		for i, arg := range args {
			if arg.Type() == cty.String {
				c.errorf(call.Args[i].Range(), i18n.MsgNumberArgument, b.Name)
			}
		}
	}

	if !b.Yields() {
		return cty.DynamicVal
	}
	return cty.UnknownVal(b.Result)
}

func (c *checker) binary(e *ast.Binary) cty.Value {
	x := c.expr(e.X)
	y := c.expr(e.Y)

	switch e.Op {
	case token.Minus:
		if x.Type() == cty.String || y.Type() == cty.String {
			c.errorf(e.Range(), i18n.MsgInvalidSubtract)
			return cty.DynamicVal
		}
		if x.Type() == cty.Number && y.Type() == cty.Number {
			if x.IsKnown() && y.IsKnown() {
				return x.Subtract(y)
			}
			return cty.UnknownVal(cty.Number)
		}
	case token.Plus:
		switch {
		case x.Type() == cty.Number && y.Type() == cty.Number:
			if x.IsKnown() && y.IsKnown() {
				return x.Add(y)
			}
			return cty.UnknownVal(cty.Number)
		case x.Type() == cty.String && y.Type() == cty.String:
			if x.IsKnown() && y.IsKnown() {
				return cty.StringVal(x.AsString() + y.AsString())
			}
			return cty.UnknownVal(cty.String)
		case x.Type() == cty.String || y.Type() == cty.String:
			// Mixed operands concatenate.
			return cty.UnknownVal(cty.String)
		}
	}
	return cty.DynamicVal
}

func (c *checker) errorf(rng hcl.Range, key string, args ...any) {
	subject := rng
	c.diags = append(c.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  c.printer.Sprintf(key, args...),
		Subject:  &subject,
	})
}

func (c *checker) warnf(rng hcl.Range, detailKey, key string, args ...any) {
	subject := rng
	c.diags = append(c.diags, &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  c.printer.Sprintf(key, args...),
		Detail:   c.printer.Sprintf(detailKey),
		Subject:  &subject,
	})
}
