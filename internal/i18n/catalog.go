package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Each key doubles as the English text.
const (
	MsgValid   = "program is valid"
	MsgInvalid = "parse error, program is not valid"

	MsgReadFailed       = "failed to read input: %v"
	MsgCanceled         = "validation canceled: %v"
	MsgUnexpectedChar   = "unexpected character %q"
	MsgUnterminatedStr  = "unterminated string"
	MsgExpected         = "expected %s, found %s"
	MsgExpectedExpr     = "expected an expression, found %s"
	MsgExpectedStmt     = "expected a statement, found %s"
	MsgExpectedCompare  = "expected a comparison operator, found %s"
	MsgTrailingInput    = "unexpected %s after the program block"
	MsgUnknownFunction  = "unknown function %s"
	MsgNoValue          = "%s does not return a value"
	MsgArity            = "%s takes %d argument(s), got %d"
	MsgInvalidSubtract  = "invalid subtraction: operand is a string"
	MsgNumberArgument   = "%s expects a number"
	MsgUnassignedRead   = "variable %s is read before it is assigned"
	MsgUnassignedDetail = "unassigned names evaluate to their own name as a string"
)

// Token descriptions used inside diagnostic summaries.
const (
	DescEOF    = "end of input"
	DescName   = "a name"
	DescIdent  = "name %q"
	DescNumber = "number %s"
	DescString = "string %q"
	DescToken  = "'%s'"
)

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

// Default is the language used when nothing else is requested.
var Default = language.BrazilianPortuguese

var messages = catalog.NewBuilder(catalog.Fallback(language.English))

var ptBR = map[string]string{
	MsgValid:   "Programa válido!",
	MsgInvalid: "Erro na análise, programa não é válido.",

	MsgReadFailed:       "Erro ao ler arquivo: %v",
	MsgCanceled:         "Validação cancelada: %v",
	MsgUnexpectedChar:   "Caractere inesperado %q",
	MsgUnterminatedStr:  "String não fechada",
	MsgExpected:         "Esperado %s, encontrado %s",
	MsgExpectedExpr:     "Expressão esperada, encontrado %s",
	MsgExpectedStmt:     "Statement esperado, encontrado %s",
	MsgExpectedCompare:  "Operador de comparação esperado, encontrado %s",
	MsgTrailingInput:    "%s inesperado após o bloco do programa",
	MsgUnknownFunction:  "Função desconhecida: %s",
	MsgNoValue:          "%s não retorna valor",
	MsgArity:            "%s requer %d argumento(s), recebeu %d",
	MsgInvalidSubtract:  "Operação de subtração inválida: operando é uma string",
	MsgNumberArgument:   "%s requer um número",
	MsgUnassignedRead:   "Variável %s lida antes de ser atribuída",
	MsgUnassignedDetail: "nomes não atribuídos valem o próprio nome como string",

	DescEOF:    "fim da entrada",
	DescName:   "um nome",
	DescIdent:  "nome %q",
	DescNumber: "número %s",
	DescString: "string %q",
	DescToken:  "'%s'",
}

var keys = []string{
	MsgValid, MsgInvalid,
	MsgReadFailed, MsgCanceled, MsgUnexpectedChar, MsgUnterminatedStr,
	MsgExpected, MsgExpectedExpr, MsgExpectedStmt, MsgExpectedCompare,
	MsgTrailingInput, MsgUnknownFunction, MsgNoValue, MsgArity,
	MsgInvalidSubtract, MsgNumberArgument, MsgUnassignedRead, MsgUnassignedDetail,
	DescEOF, DescName, DescIdent, DescNumber, DescString, DescToken,
}

func init() {
	for _, key := range keys {
		mustSet(language.English, key, key)
		mustSet(language.BrazilianPortuguese, key, ptBR[key])
	}
}

func mustSet(tag language.Tag, key, msg string) {
	if err := messages.SetString(tag, key, msg); err != nil {
		panic("i18n: " + err.Error())
	}
}

// NewPrinter returns a printer bound to the fscheck catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
