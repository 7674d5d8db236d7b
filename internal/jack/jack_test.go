package jack

import "errors"

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func kw(value string) *Token {
	return NewToken(KEYWORD, value, 0)
}

func ident(value string) *Token {
	return NewToken(IDENTIFIER, value, 0)
}

func sym(value string) *Token {
	return NewToken(SYMBOL, value, 0)
}

func intConst(value string) *Token {
	return NewToken(INT_CONST, value, 0)
}

func strConst(value string) *Token {
	return NewToken(STRING_CONST, value, 0)
}

func node(label string, children ...Tree) *Node {
	return &Node{label, children}
}

// classOf wraps tokens of subroutine declarations into `class Main { ... }`.
func classOf(body ...*Token) []*Token {
	toks := []*Token{kw("class"), ident("Main"), sym("{")}
	toks = append(toks, body...)
	return append(toks, sym("}"))
}

// functionOf wraps statement tokens into `function void run() { ... }`
// inside class Main.
func functionOf(statements ...*Token) []*Token {
	toks := []*Token{kw("function"), kw("void"), ident("run"), sym("("), sym(")"), sym("{")}
	toks = append(toks, statements...)
	toks = append(toks, sym("}"))
	return classOf(toks...)
}

// sexpr renders tree for compact comparisons.
func sexpr(tree Tree) string {
	var printer SExprPrinter
	return printer.Sprint(tree)
}

var errFound = errors.New("found")

// firstNode returns the first node labeled label in depth-first order.
func firstNode(tree Tree, label string) *Node {
	var found *Node
	_ = Walk(tree, func(t Tree, depth int) error {
		if n, ok := t.(*Node); ok && n.Label == label {
			found = n
			return errFound
		}
		return nil
	})
	return found
}

const sampleProgram = `
// A small program touching every production.
class Main {
    static int count;
    field Array items, other;

    /** Creates a new Main. */
    constructor Main new(int n, Point p) {
        let count = n;
        return this;
    }

    method void run() {
        var int i;
        var String s;
        let i = 0;
        let s = "hi";
        while (i < 10) {
            let items[i] = -i + (count * 2);
            let i = i + 1;
        }
        if (~(i = 10)) {
            do Output.printInt(i);
        } else {
            do run();
        }
        return;
    }
}
`

func scanSample() []*Token {
	return NewScanner([]rune(sampleProgram), newMockReporter()).Scan()
}
