package jack

// DefaultMaxDepth is the default maximum nesting depth of productions.
const DefaultMaxDepth = 500

var (
	primitiveTypes   = []string{"int", "char", "boolean"}
	returnTypes      = []string{"void", "int", "char", "boolean"}
	classVarKinds    = []string{"static", "field"}
	subroutineKinds  = []string{"constructor", "function", "method"}
	keywordConstants = []string{"true", "false", "null", "this"}
	binaryOperators  = []string{"+", "-", "*", "/", "&", "|", "<", ">", "="}
	unaryOperators   = []string{"-", "~"}
)

// Option configures a Parser.
type Option func(parser *Parser)

// WithMaxDepth sets the maximum nesting depth of productions. Input nested
// deeper than this is rejected instead of growing the stack without bound.
// A depth of 0 or less keeps the default.
func WithMaxDepth(depth int) Option {
	return func(parser *Parser) {
		if depth > 0 {
			parser.maxDepth = depth
		}
	}
}

type production func() (*Node, error)

// Parser builds the parse tree of a program from a sequence of tokens using
// one token of lookahead. The grammar it follows is described in the package
// documentation.
//
// A Parser must not be used from more than one goroutine at a time. Separate
// parsers over separate token sequences need no coordination.
type Parser struct {
	tokens   []*Token
	cursor   *TokenCursor
	depth    int
	maxDepth int
	// statements maps every statement-introducing keyword to its production.
	statements map[string]production
}

// NewParser creates a parser over tokens.
func NewParser(tokens []*Token, options ...Option) *Parser {
	parser := &Parser{
		tokens:   tokens,
		cursor:   NewTokenCursor(tokens),
		maxDepth: DefaultMaxDepth,
	}
	parser.statements = map[string]production{
		"let":    parser.letStatement,
		"if":     parser.ifStatement,
		"while":  parser.whileStatement,
		"do":     parser.doStatement,
		"return": parser.returnStatement,
	}
	for _, opt := range options {
		opt(parser)
	}
	return parser
}

// Parse parses the given token sequence into a program tree.
func Parse(tokens []*Token, options ...Option) (*Node, error) {
	return NewParser(tokens, options...).Parse()
}

// Parse returns the "program" node for the whole token sequence, or the
// diagnostic of the first syntax violation. Every call starts from the
// first token.
func (parser *Parser) Parse() (*Node, error) {
	parser.cursor = NewTokenCursor(parser.tokens)
	parser.depth = 0
	return parser.program()
}

// program --> class* ;
func (parser *Parser) program() (*Node, error) {
	node, err := parser.enter("program")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	for !parser.cursor.Exhausted() {
		class, err := parser.class()
		if err != nil {
			return nil, err
		}
		node.AppendChild(class)
	}
	return node, nil
}

// class --> "class" IDENT "{" classVarDec* subroutine* "}" ;
func (parser *Parser) class() (*Node, error) {
	node, err := parser.enter("class")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "class"); err != nil {
		return nil, err
	}
	if err := parser.consume(node, IDENTIFIER); err != nil {
		return nil, err
	}
	if err := parser.consume(node, SYMBOL, "{"); err != nil {
		return nil, err
	}
	for parser.have(KEYWORD, classVarKinds...) {
		if err := parser.descend(node, parser.classVarDec); err != nil {
			return nil, err
		}
	}
	for parser.have(KEYWORD, subroutineKinds...) {
		if err := parser.descend(node, parser.subroutine); err != nil {
			return nil, err
		}
	}
	if err := parser.consume(node, SYMBOL, "}"); err != nil {
		return nil, err
	}
	return node, nil
}

// classVarDec --> ( "static" | "field" ) type IDENT ( "," IDENT )* ";" ;
func (parser *Parser) classVarDec() (*Node, error) {
	node, err := parser.enter("classVarDec")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, classVarKinds...); err != nil {
		return nil, err
	}
	if err := parser.varNames(node); err != nil {
		return nil, err
	}
	return node, nil
}

// subroutine --> ( "constructor" | "function" | "method" ) ( "void" | type )
//                IDENT "(" parameterList ")" subroutineBody ;
func (parser *Parser) subroutine() (*Node, error) {
	node, err := parser.enter("subroutine")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, subroutineKinds...); err != nil {
		return nil, err
	}
	if err := parser.typ(node, returnTypes); err != nil {
		return nil, err
	}
	if err := parser.consume(node, IDENTIFIER); err != nil {
		return nil, err
	}
	if err := parser.consume(node, SYMBOL, "("); err != nil {
		return nil, err
	}
	if err := parser.descend(node, parser.parameterList); err != nil {
		return nil, err
	}
	if err := parser.consume(node, SYMBOL, ")"); err != nil {
		return nil, err
	}
	if err := parser.descend(node, parser.subroutineBody); err != nil {
		return nil, err
	}
	return node, nil
}

// parameterList --> ( type IDENT ( "," type IDENT )* )? ;
func (parser *Parser) parameterList() (*Node, error) {
	node, err := parser.enter("parameterList")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if parser.have(SYMBOL, ")") {
		return node, nil
	}
	for {
		if err := parser.typ(node, primitiveTypes); err != nil {
			return nil, err
		}
		if err := parser.consume(node, IDENTIFIER); err != nil {
			return nil, err
		}
		if !parser.have(SYMBOL, ",") {
			return node, nil
		}
		if err := parser.consume(node, SYMBOL, ","); err != nil {
			return nil, err
		}
	}
}

// subroutineBody --> "{" varDec* statements "}" ;
func (parser *Parser) subroutineBody() (*Node, error) {
	node, err := parser.enter("subroutineBody")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, SYMBOL, "{"); err != nil {
		return nil, err
	}
	for parser.have(KEYWORD, "var") {
		if err := parser.descend(node, parser.varDec); err != nil {
			return nil, err
		}
	}
	if err := parser.descend(node, parser.statementList); err != nil {
		return nil, err
	}
	if err := parser.consume(node, SYMBOL, "}"); err != nil {
		return nil, err
	}
	return node, nil
}

// varDec --> "var" type IDENT ( "," IDENT )* ";" ;
func (parser *Parser) varDec() (*Node, error) {
	node, err := parser.enter("varDec")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "var"); err != nil {
		return nil, err
	}
	if err := parser.varNames(node); err != nil {
		return nil, err
	}
	return node, nil
}

// statements --> ( letStatement | ifStatement | whileStatement
//                | doStatement | returnStatement )* ;
func (parser *Parser) statementList() (*Node, error) {
	node, err := parser.enter("statements")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	for {
		tok, err := parser.cursor.Current()
		if err != nil || tok.Kind != KEYWORD {
			return node, nil
		}
		statement, ok := parser.statements[tok.Value]
		if !ok {
			return node, nil
		}
		if err := parser.descend(node, statement); err != nil {
			return nil, err
		}
	}
}

// letStatement --> "let" IDENT ( "[" expression "]" )? "=" expression ";" ;
func (parser *Parser) letStatement() (*Node, error) {
	node, err := parser.enter("letStatement")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "let"); err != nil {
		return nil, err
	}
	if err := parser.consume(node, IDENTIFIER); err != nil {
		return nil, err
	}
	if parser.have(SYMBOL, "[") {
		if err := parser.subscript(node); err != nil {
			return nil, err
		}
	}
	if err := parser.consume(node, SYMBOL, "="); err != nil {
		return nil, err
	}
	if err := parser.descend(node, parser.expression); err != nil {
		return nil, err
	}
	if err := parser.consume(node, SYMBOL, ";"); err != nil {
		return nil, err
	}
	return node, nil
}

// ifStatement --> "if" "(" expression ")" "{" statements "}"
//                 ( "else" "{" statements "}" )? ;
func (parser *Parser) ifStatement() (*Node, error) {
	node, err := parser.enter("ifStatement")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "if"); err != nil {
		return nil, err
	}
	if err := parser.condition(node); err != nil {
		return nil, err
	}
	if err := parser.block(node); err != nil {
		return nil, err
	}
	if parser.have(KEYWORD, "else") {
		if err := parser.consume(node, KEYWORD, "else"); err != nil {
			return nil, err
		}
		if err := parser.block(node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// whileStatement --> "while" "(" expression ")" "{" statements "}" ;
func (parser *Parser) whileStatement() (*Node, error) {
	node, err := parser.enter("whileStatement")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "while"); err != nil {
		return nil, err
	}
	if err := parser.condition(node); err != nil {
		return nil, err
	}
	if err := parser.block(node); err != nil {
		return nil, err
	}
	return node, nil
}

// doStatement --> "do" IDENT ( "." IDENT )? "(" expressionList ")" ";" ;
func (parser *Parser) doStatement() (*Node, error) {
	node, err := parser.enter("doStatement")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "do"); err != nil {
		return nil, err
	}
	if err := parser.consume(node, IDENTIFIER); err != nil {
		return nil, err
	}
	if err := parser.call(node); err != nil {
		return nil, err
	}
	if err := parser.consume(node, SYMBOL, ";"); err != nil {
		return nil, err
	}
	return node, nil
}

// returnStatement --> "return" expression? ";" ;
func (parser *Parser) returnStatement() (*Node, error) {
	node, err := parser.enter("returnStatement")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.consume(node, KEYWORD, "return"); err != nil {
		return nil, err
	}
	if !parser.have(SYMBOL, ";") {
		if err := parser.descend(node, parser.expression); err != nil {
			return nil, err
		}
	}
	if err := parser.consume(node, SYMBOL, ";"); err != nil {
		return nil, err
	}
	return node, nil
}

// Operators are grouped flat from left to right. Precedence is left to the
// consumers of the tree.
//
// expression --> term ( op term )* ;
func (parser *Parser) expression() (*Node, error) {
	node, err := parser.enter("expression")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if err := parser.descend(node, parser.term); err != nil {
		return nil, err
	}
	for parser.have(SYMBOL, binaryOperators...) {
		if err := parser.consume(node, SYMBOL, binaryOperators...); err != nil {
			return nil, err
		}
		if err := parser.descend(node, parser.term); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// term --> INT | STRING | "true" | "false" | "null" | "this"
//        | IDENT ( "[" expression "]" | ( "." IDENT )? "(" expressionList ")" )?
//        | "(" expression ")"
//        | ( "-" | "~" ) term ;
func (parser *Parser) term() (*Node, error) {
	node, err := parser.enter("term")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	tok, err := parser.cursor.Current()
	if err != nil {
		return nil, newExpectedConstructError("term", nil, parser.cursor.Position())
	}
	switch tok.Kind {
	case INT_CONST, STRING_CONST:
		err = parser.consume(node, tok.Kind)
	case KEYWORD:
		err = parser.consume(node, KEYWORD, keywordConstants...)
	case IDENTIFIER:
		err = parser.variableOrCall(node)
	case SYMBOL:
		switch {
		case parser.have(SYMBOL, "("):
			err = parser.group(node)
		case parser.have(SYMBOL, unaryOperators...):
			err = parser.unary(node)
		default:
			err = newExpectedConstructError("term", tok, parser.cursor.Position())
		}
	default:
		err = newExpectedConstructError("term", tok, parser.cursor.Position())
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

// expressionList --> ( expression ( "," expression )* )? ;
func (parser *Parser) expressionList() (*Node, error) {
	node, err := parser.enter("expressionList")
	if err != nil {
		return nil, err
	}
	defer parser.leave()

	if parser.have(SYMBOL, ")") {
		return node, nil
	}
	for {
		if err := parser.descend(node, parser.expression); err != nil {
			return nil, err
		}
		if !parser.have(SYMBOL, ",") {
			return node, nil
		}
		if err := parser.consume(node, SYMBOL, ","); err != nil {
			return nil, err
		}
	}
}

// variableOrCall decides between a plain variable, an array element and a
// subroutine call by looking at the token after the identifier.
func (parser *Parser) variableOrCall(node *Node) error {
	if err := parser.consume(node, IDENTIFIER); err != nil {
		return err
	}
	switch {
	case parser.have(SYMBOL, "["):
		return parser.subscript(node)
	case parser.have(SYMBOL, "(", "."):
		return parser.call(node)
	}
	return nil
}

func (parser *Parser) group(node *Node) error {
	if err := parser.consume(node, SYMBOL, "("); err != nil {
		return err
	}
	if err := parser.descend(node, parser.expression); err != nil {
		return err
	}
	return parser.consume(node, SYMBOL, ")")
}

func (parser *Parser) unary(node *Node) error {
	if err := parser.consume(node, SYMBOL, unaryOperators...); err != nil {
		return err
	}
	return parser.descend(node, parser.term)
}

// call parses what follows the name of a called subroutine:
// ( "." IDENT )? "(" expressionList ")"
func (parser *Parser) call(node *Node) error {
	if parser.have(SYMBOL, ".") {
		if err := parser.consume(node, SYMBOL, "."); err != nil {
			return err
		}
		if err := parser.consume(node, IDENTIFIER); err != nil {
			return err
		}
	}
	if err := parser.consume(node, SYMBOL, "("); err != nil {
		return err
	}
	if err := parser.descend(node, parser.expressionList); err != nil {
		return err
	}
	return parser.consume(node, SYMBOL, ")")
}

// "[" expression "]"
func (parser *Parser) subscript(node *Node) error {
	if err := parser.consume(node, SYMBOL, "["); err != nil {
		return err
	}
	if err := parser.descend(node, parser.expression); err != nil {
		return err
	}
	return parser.consume(node, SYMBOL, "]")
}

// "(" expression ")"
func (parser *Parser) condition(node *Node) error {
	return parser.group(node)
}

// "{" statements "}"
func (parser *Parser) block(node *Node) error {
	if err := parser.consume(node, SYMBOL, "{"); err != nil {
		return err
	}
	if err := parser.descend(node, parser.statementList); err != nil {
		return err
	}
	return parser.consume(node, SYMBOL, "}")
}

// type IDENT ( "," IDENT )* ";"
func (parser *Parser) varNames(node *Node) error {
	if err := parser.typ(node, primitiveTypes); err != nil {
		return err
	}
	if err := parser.consume(node, IDENTIFIER); err != nil {
		return err
	}
	for parser.have(SYMBOL, ",") {
		if err := parser.consume(node, SYMBOL, ","); err != nil {
			return err
		}
		if err := parser.consume(node, IDENTIFIER); err != nil {
			return err
		}
	}
	return parser.consume(node, SYMBOL, ";")
}

// typ accepts a class name or one of the given type keywords.
func (parser *Parser) typ(node *Node, keywords []string) error {
	if parser.have(IDENTIFIER) {
		return parser.consume(node, IDENTIFIER)
	}
	return parser.consume(node, KEYWORD, keywords...)
}

// descend runs a sub-production and appends its node to node.
func (parser *Parser) descend(node *Node, sub production) error {
	child, err := sub()
	if err != nil {
		return err
	}
	node.AppendChild(child)
	return nil
}

// consume expects a token and appends it to node.
func (parser *Parser) consume(node *Node, kind Kind, values ...string) error {
	tok, err := parser.expect(kind, values...)
	if err != nil {
		return err
	}
	node.AppendToken(tok)
	return nil
}

// have reports whether the current token has the given kind and, when values
// are given, one of those values. It never advances and never fails.
func (parser *Parser) have(kind Kind, values ...string) bool {
	tok, err := parser.cursor.Current()
	if err != nil || tok.Kind != kind {
		return false
	}
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if tok.Value == v {
			return true
		}
	}
	return false
}

// expect returns the current token and advances past it if it matches, it
// fails with a ParseError otherwise.
func (parser *Parser) expect(kind Kind, values ...string) (*Token, error) {
	tok, _ := parser.cursor.Current()
	if !parser.have(kind, values...) {
		return nil, newUnexpectedTokenError(kind, values, tok, parser.cursor.Position())
	}
	if err := parser.cursor.Advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (parser *Parser) enter(label string) (*Node, error) {
	if parser.depth >= parser.maxDepth {
		tok, _ := parser.cursor.Current()
		return nil, newNestingTooDeepError(tok, parser.cursor.Position(), parser.maxDepth)
	}
	parser.depth++
	return NewNode(label), nil
}

func (parser *Parser) leave() {
	parser.depth--
}
