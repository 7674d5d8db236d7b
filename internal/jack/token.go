package jack

import "fmt"

// Token is a single lexical unit handed to the parser. Tokens are produced
// upstream and never mutated once the parser holds them.
type Token struct {
	Kind  Kind
	Value string
	// Line is the source line the token was scanned from, 0 when unknown.
	Line int
}

// NewToken creates a new token
func NewToken(kind Kind, value string, line int) *Token {
	return &Token{kind, value, line}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s '%s'", t.Kind, t.Value)
}

// Kind is the lexical category of a token.
type Kind uint

const (
	KEYWORD Kind = iota
	IDENTIFIER
	SYMBOL
	INT_CONST
	STRING_CONST
)

func (k Kind) String() string {
	switch k {
	case KEYWORD:
		return "keyword"
	case IDENTIFIER:
		return "identifier"
	case SYMBOL:
		return "symbol"
	case INT_CONST:
		return "integerConstant"
	case STRING_CONST:
		return "stringConstant"
	}
	return fmt.Sprintf("Kind(%d)", uint(k))
}

// ParseKind maps the name of a kind back to its value. Besides the names
// returned by Kind.String, the upper-case names used by token dumps
// ("KEYWORD", "INT_CONST", ...) are accepted.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "keyword", "KEYWORD":
		return KEYWORD, nil
	case "identifier", "IDENTIFIER":
		return IDENTIFIER, nil
	case "symbol", "SYMBOL":
		return SYMBOL, nil
	case "integerConstant", "INT_CONST", "INTEGER_CONSTANT":
		return INT_CONST, nil
	case "stringConstant", "STRING_CONST", "STRING_CONSTANT":
		return STRING_CONST, nil
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// Keywords is the set of reserved words of the language.
var Keywords = map[string]struct{}{
	"class":       {},
	"constructor": {},
	"function":    {},
	"method":      {},
	"field":       {},
	"static":      {},
	"var":         {},
	"int":         {},
	"char":        {},
	"boolean":     {},
	"void":        {},
	"true":        {},
	"false":       {},
	"null":        {},
	"this":        {},
	"let":         {},
	"do":          {},
	"if":          {},
	"else":        {},
	"while":       {},
	"return":      {},
}

// Symbols is the set of single-character symbols of the language.
var Symbols = map[rune]struct{}{
	'{': {}, '}': {}, '(': {}, ')': {}, '[': {}, ']': {},
	'.': {}, ',': {}, ';': {},
	'+': {}, '-': {}, '*': {}, '/': {},
	'&': {}, '|': {}, '<': {}, '>': {}, '=': {}, '~': {},
}

// MaxIntConst is the largest integer constant the language accepts.
const MaxIntConst = 32767
