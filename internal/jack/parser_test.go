package jack

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyClass(t *testing.T) {
	assert := assert.New(t)
	toks := []*Token{kw("class"), ident("MyClass"), sym("{"), sym("}")}

	tree, err := Parse(toks)
	require.NoError(t, err)

	assert.Equal(
		node("program",
			node("class", kw("class"), ident("MyClass"), sym("{"), sym("}"))),
		tree,
	)
	class := tree.Children[0].(*Node)
	assert.Len(class.Children, 4)
	assert.Empty(class.Nodes("classVarDec"))
}

func TestParseEmptyProgram(t *testing.T) {
	tree, err := Parse([]*Token{})
	require.NoError(t, err)
	assert.Equal(t, node("program"), tree)
}

func TestParseClassVarDec(t *testing.T) {
	testCases := []struct {
		toks []*Token
		tree *Node
	}{
		{
			[]*Token{kw("field"), kw("int"), ident("x"), sym(";")},
			node("classVarDec", kw("field"), kw("int"), ident("x"), sym(";")),
		},
		{
			[]*Token{kw("static"), kw("boolean"), ident("a"), sym(","), ident("b"), sym(";")},
			node("classVarDec", kw("static"), kw("boolean"), ident("a"), sym(","), ident("b"), sym(";")),
		},
		{
			[]*Token{kw("field"), ident("Point"), ident("p"), sym(";")},
			node("classVarDec", kw("field"), ident("Point"), ident("p"), sym(";")),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree, err := Parse(classOf(tc.toks...))
		require.NoError(t, err)

		class := tree.Children[0].(*Node)
		assert.Equal(
			[]Tree{kw("class"), ident("Main"), sym("{"), tc.tree, sym("}")},
			class.Children,
		)
	}
}

func TestParseMultipleClasses(t *testing.T) {
	assert := assert.New(t)
	toks := append(classOf(), []*Token{kw("class"), ident("Other"), sym("{"), sym("}")}...)

	tree, err := Parse(toks)
	require.NoError(t, err)

	assert.Equal(
		"(program (class class Main { }) (class class Other { }))",
		sexpr(tree),
	)
}

func TestParseSubroutine(t *testing.T) {
	testCases := []struct {
		toks []*Token
		tree string
	}{
		{
			[]*Token{
				kw("function"), kw("void"), ident("main"), sym("("), sym(")"),
				sym("{"), sym("}"),
			},
			"(subroutine function void main ( (parameterList) ) (subroutineBody { (statements) }))",
		},
		{
			[]*Token{
				kw("method"), ident("Point"), ident("add"),
				sym("("), kw("int"), ident("a"), sym(","), ident("Point"), ident("b"), sym(")"),
				sym("{"), sym("}"),
			},
			"(subroutine method Point add ( (parameterList int a , Point b) ) (subroutineBody { (statements) }))",
		},
		{
			[]*Token{
				kw("constructor"), ident("Main"), ident("new"), sym("("), sym(")"),
				sym("{"),
				kw("var"), kw("char"), ident("c"), sym(";"),
				kw("var"), ident("Array"), ident("a"), sym(","), ident("b"), sym(";"),
				kw("return"), kw("this"), sym(";"),
				sym("}"),
			},
			"(subroutine constructor Main new ( (parameterList) ) (subroutineBody { " +
				"(varDec var char c ;) (varDec var Array a , b ;) " +
				"(statements (returnStatement return (expression (term this)) ;)) }))",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree, err := Parse(classOf(tc.toks...))
		require.NoError(t, err)
		assert.Equal(tc.tree, sexpr(firstNode(tree, "subroutine")))
	}
}

func TestParseClassVarDecBeforeSubroutines(t *testing.T) {
	toks := classOf(
		kw("field"), kw("int"), ident("x"), sym(";"),
		kw("function"), kw("void"), ident("f"), sym("("), sym(")"), sym("{"), sym("}"),
	)

	tree, err := Parse(toks)
	require.NoError(t, err)

	class := tree.Children[0].(*Node)
	assert.Len(t, class.Nodes("classVarDec"), 1)
	assert.Len(t, class.Nodes("subroutine"), 1)
}

func TestParseStatements(t *testing.T) {
	testCases := []struct {
		toks []*Token
		tree string
	}{
		{
			[]*Token{kw("let"), ident("x"), sym("="), intConst("1"), sym(";")},
			"(letStatement let x = (expression (term 1)) ;)",
		},
		{
			[]*Token{
				kw("let"), ident("a"), sym("["), ident("i"), sym("]"),
				sym("="), strConst("s"), sym(";"),
			},
			`(letStatement let a [ (expression (term i)) ] = (expression (term "s")) ;)`,
		},
		{
			[]*Token{
				kw("while"), sym("("), kw("true"), sym(")"), sym("{"),
				kw("do"), ident("f"), sym("("), sym(")"), sym(";"),
				sym("}"),
			},
			"(whileStatement while ( (expression (term true)) ) { " +
				"(statements (doStatement do f ( (expressionList) ) ;)) })",
		},
		{
			[]*Token{
				kw("do"), ident("Output"), sym("."), ident("printInt"),
				sym("("), intConst("1"), sym(","), ident("x"), sym(")"), sym(";"),
			},
			"(doStatement do Output . printInt ( (expressionList (expression (term 1)) , (expression (term x))) ) ;)",
		},
		{
			[]*Token{kw("return"), sym(";")},
			"(returnStatement return ;)",
		},
		{
			[]*Token{kw("return"), ident("x"), sym(";")},
			"(returnStatement return (expression (term x)) ;)",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree, err := Parse(functionOf(tc.toks...))
		require.NoError(t, err)

		statements := firstNode(tree, "statements")
		require.Len(t, statements.Children, 1)
		assert.Equal(tc.tree, sexpr(statements.Children[0]))
	}
}

func TestParseIfStatement(t *testing.T) {
	assert := assert.New(t)
	ifElse := []*Token{
		kw("if"), sym("("), ident("x"), sym(")"), sym("{"), sym("}"),
		kw("else"), sym("{"), sym("}"),
	}

	tree, err := Parse(functionOf(ifElse...))
	require.NoError(t, err)
	stmt := firstNode(tree, "ifStatement")
	assert.Equal(
		"(ifStatement if ( (expression (term x)) ) { (statements) } else { (statements) })",
		sexpr(stmt),
	)
	assert.Len(stmt.Children, 11)

	tree, err = Parse(functionOf(ifElse[:6]...))
	require.NoError(t, err)
	stmt = firstNode(tree, "ifStatement")
	assert.Equal(
		"(ifStatement if ( (expression (term x)) ) { (statements) })",
		sexpr(stmt),
	)
	assert.Len(stmt.Children, 7)
}

func TestParseStatementSequence(t *testing.T) {
	toks := functionOf(
		kw("let"), ident("x"), sym("="), intConst("1"), sym(";"),
		kw("do"), ident("f"), sym("("), sym(")"), sym(";"),
		kw("return"), sym(";"),
	)

	tree, err := Parse(toks)
	require.NoError(t, err)

	var labels []string
	for _, child := range firstNode(tree, "statements").Children {
		labels = append(labels, child.(*Node).Label)
	}
	assert.Equal(t, []string{"letStatement", "doStatement", "returnStatement"}, labels)
}

func TestParseExpression(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr string
	}{
		{
			[]*Token{intConst("1"), sym("+"), intConst("2"), sym("*"), intConst("3")},
			"(expression (term 1) + (term 2) * (term 3))",
		},
		{
			[]*Token{ident("a"), sym("&"), ident("b"), sym("|"), ident("c")},
			"(expression (term a) & (term b) | (term c))",
		},
		{
			[]*Token{ident("a"), sym("<"), ident("b"), sym("="), kw("false")},
			"(expression (term a) < (term b) = (term false))",
		},
		{
			[]*Token{sym("-"), intConst("1"), sym("-"), intConst("2")},
			"(expression (term - (term 1)) - (term 2))",
		},
		{
			[]*Token{sym("("), intConst("1"), sym("+"), intConst("2"), sym(")"), sym("/"), intConst("3")},
			"(expression (term ( (expression (term 1) + (term 2)) )) / (term 3))",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks := append([]*Token{kw("let"), ident("x"), sym("=")}, tc.toks...)
		toks = append(toks, sym(";"))

		tree, err := Parse(functionOf(toks...))
		require.NoError(t, err)
		assert.Equal(tc.expr, sexpr(firstNode(tree, "expression")))
	}
}

func TestParseTerm(t *testing.T) {
	testCases := []struct {
		toks []*Token
		term string
	}{
		{[]*Token{intConst("42")}, "(term 42)"},
		{[]*Token{strConst("hello world")}, `(term "hello world")`},
		{[]*Token{kw("true")}, "(term true)"},
		{[]*Token{kw("false")}, "(term false)"},
		{[]*Token{kw("null")}, "(term null)"},
		{[]*Token{kw("this")}, "(term this)"},
		{[]*Token{ident("x")}, "(term x)"},
		{
			[]*Token{ident("a"), sym("["), intConst("1"), sym("]")},
			"(term a [ (expression (term 1)) ])",
		},
		{
			[]*Token{ident("f"), sym("("), sym(")")},
			"(term f ( (expressionList) ))",
		},
		{
			[]*Token{ident("a"), sym("."), ident("b"), sym("("), intConst("1"), sym(")")},
			"(term a . b ( (expressionList (expression (term 1))) ))",
		},
		{
			[]*Token{sym("("), ident("x"), sym(")")},
			"(term ( (expression (term x)) ))",
		},
		{
			[]*Token{sym("-"), ident("x")},
			"(term - (term x))",
		},
		{
			[]*Token{sym("~"), sym("~"), ident("x")},
			"(term ~ (term ~ (term x)))",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks := append([]*Token{kw("let"), ident("x"), sym("=")}, tc.toks...)
		toks = append(toks, sym(";"))

		tree, err := Parse(functionOf(toks...))
		require.NoError(t, err)
		assert.Equal(tc.term, sexpr(firstNode(tree, "term")))
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		toks     []*Token
		position int
		message  string
	}{
		{
			[]*Token{kw("class"), sym("{"), sym("}")},
			1,
			"expected identifier but found symbol '{' at position 1",
		},
		{
			[]*Token{ident("class"), ident("Main"), sym("{"), sym("}")},
			0,
			"expected keyword 'class' but found identifier 'class' at position 0",
		},
		{
			classOf(kw("field"), kw("int"), ident("x"), kw("if")),
			6,
			"expected symbol ';' but found keyword 'if' at position 6",
		},
		{
			classOf(kw("field"), kw("void"), ident("x"), sym(";")),
			4,
			"expected keyword 'int', 'char' or 'boolean' but found keyword 'void' at position 4",
		},
		{
			append(classOf(), sym(";")),
			4,
			"expected keyword 'class' but found symbol ';' at position 4",
		},
		{
			functionOf(kw("let"), ident("x"), sym("="), sym(";")),
			12,
			"expected term but found symbol ';' at position 12",
		},
		{
			functionOf(kw("let"), ident("x"), sym("="), kw("class"), sym(";")),
			12,
			"expected keyword 'true', 'false', 'null' or 'this' but found keyword 'class' at position 12",
		},
		{
			functionOf(
				kw("let"), ident("x"), sym("="), intConst("1"), sym(";"),
				kw("var"), kw("int"), ident("y"), sym(";"),
			),
			14,
			"expected symbol '}' but found keyword 'var' at position 14",
		},
		{
			functionOf(ident("foo"), sym(";")),
			9,
			"expected symbol '}' but found identifier 'foo' at position 9",
		},
		{
			functionOf(kw("do"), ident("f"), sym(";")),
			11,
			"expected symbol '(' but found symbol ';' at position 11",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree, err := Parse(tc.toks)
		assert.Nil(tree)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(tc.position, parseErr.Position)
		assert.Equal(tc.message, err.Error())
		assert.ErrorIs(err, ErrUnexpectedToken)
		assert.False(errors.Is(err, ErrEndOfInput))
	}
}

func TestParseUnterminatedClass(t *testing.T) {
	assert := assert.New(t)
	toks := []*Token{kw("class"), ident("MyClass"), sym("{")}

	tree, err := Parse(toks)
	assert.Nil(tree)
	assert.ErrorIs(err, ErrEndOfInput)
	assert.ErrorIs(err, ErrUnexpectedToken)
	assert.Equal("expected symbol '}' but found end of input at position 3", err.Error())
}

func TestParseErrorCarriesLine(t *testing.T) {
	toks := []*Token{
		NewToken(KEYWORD, "class", 1),
		NewToken(IDENTIFIER, "Main", 1),
		NewToken(SYMBOL, "{", 1),
		NewToken(KEYWORD, "field", 2),
		NewToken(KEYWORD, "int", 2),
		NewToken(IDENTIFIER, "x", 2),
		NewToken(KEYWORD, "if", 3),
	}

	_, err := Parse(toks)
	assert.EqualError(t, err, "[line 3] expected symbol ';' but found keyword 'if' at position 6")
}

func TestParseRejectsEveryReplacedToken(t *testing.T) {
	assert := assert.New(t)
	valid := scanSample()
	_, err := Parse(valid)
	require.NoError(t, err)

	for i := range valid {
		toks := make([]*Token, len(valid))
		copy(toks, valid)
		toks[i] = NewToken(SYMBOL, "@", valid[i].Line)

		tree, err := Parse(toks)
		assert.Nil(tree)

		var parseErr *ParseError
		if assert.True(errors.As(err, &parseErr), "token %d", i) {
			assert.Equal(i, parseErr.Position, "token %d", i)
			assert.Equal(ErrUnexpectedToken, parseErr.Reason, "token %d", i)
		}
	}
}

func TestParseTruncatedInputEndsWithEndOfInput(t *testing.T) {
	assert := assert.New(t)
	valid := scanSample()

	for n := 1; n < len(valid); n++ {
		tree, err := Parse(valid[:n])
		assert.Nil(tree)
		assert.ErrorIs(err, ErrEndOfInput, "prefix of %d tokens", n)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	toks := scanSample()

	first, err := Parse(toks)
	require.NoError(t, err)
	second, err := Parse(toks)
	require.NoError(t, err)
	assert.Equal(first, second)

	parser := NewParser(toks)
	again, err := parser.Parse()
	require.NoError(t, err)
	again2, err := parser.Parse()
	require.NoError(t, err)
	assert.Equal(first, again)
	assert.Equal(first, again2)
}

func TestParseSampleProgram(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse(scanSample())
	require.NoError(t, err)

	class := firstNode(tree, "class")
	assert.Len(class.Nodes("classVarDec"), 2)
	assert.Len(class.Nodes("subroutine"), 2)

	var leaves int
	_ = Walk(tree, func(elem Tree, depth int) error {
		if _, ok := elem.(*Token); ok {
			leaves++
		}
		return nil
	})
	assert.Equal(len(scanSample()), leaves)
}

// nestedParens returns `let x = ( ... ( 1 ) ... );` with n pairs of parentheses.
func nestedParens(n int) []*Token {
	toks := []*Token{kw("let"), ident("x"), sym("=")}
	for i := 0; i < n; i++ {
		toks = append(toks, sym("("))
	}
	toks = append(toks, intConst("1"))
	for i := 0; i < n; i++ {
		toks = append(toks, sym(")"))
	}
	return append(toks, sym(";"))
}

func TestParseNestingDepth(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse(functionOf(nestedParens(100)...))
	require.NoError(t, err)
	assert.True(strings.HasPrefix(sexpr(firstNode(tree, "term")), "(term ( (expression (term ("))

	tree, err = Parse(functionOf(nestedParens(100)...), WithMaxDepth(50))
	assert.Nil(tree)
	assert.ErrorIs(err, ErrNestingTooDeep)
	assert.False(errors.Is(err, ErrUnexpectedToken))
	assert.Contains(err.Error(), "nesting exceeds maximum depth of 50")

	_, err = Parse(functionOf(nestedParens(DefaultMaxDepth)...))
	assert.ErrorIs(err, ErrNestingTooDeep)

	_, err = Parse(functionOf(nestedParens(10)...), WithMaxDepth(0))
	assert.NoError(err)
}
