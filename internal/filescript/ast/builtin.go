package ast

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Builtin describes one of the file operations the language provides.
type Builtin struct {
	Name  string
	Arity int
	// Result is the type of the value the call yields, or cty.NilType when
	// the call can only be used as a statement.
	Result cty.Type
	// Numeric marks built-ins whose arguments must be numbers.
	Numeric bool
}

// Yields reports whether the built-in can be used inside an expression.
func (b Builtin) Yields() bool {
	return b.Result != cty.NilType
}

var builtins = map[string]Builtin{
	"MoveFile":   {Name: "MoveFile", Arity: 2},
	"CopyFile":   {Name: "CopyFile", Arity: 2},
	"RenameFile": {Name: "RenameFile", Arity: 2},
	"DeleteFile": {Name: "DeleteFile", Arity: 1},
	"ListFiles":  {Name: "ListFiles", Arity: 1},
	"CountFiles": {Name: "CountFiles", Arity: 1, Result: cty.Number},
	"CheckSpace": {Name: "CheckSpace", Arity: 1, Result: cty.Number},
	"Wait":       {Name: "Wait", Arity: 1, Numeric: true},
}

// LookupBuiltin returns the built-in with the given name.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// Builtins returns every built-in, sorted by name.
func Builtins() []Builtin {
	out := make([]Builtin, 0, len(builtins))
	for _, b := range builtins {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
