package jack

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Printer writes a textual form of a parse tree.
type Printer interface {
	Print(w io.Writer, tree Tree) error
}

// Output formats understood by NewPrinter.
const (
	FormatXML   = "xml"
	FormatSExpr = "sexpr"
	FormatYAML  = "yaml"
)

// NewPrinter returns the printer for the named format.
func NewPrinter(format string, indent int) (Printer, error) {
	switch format {
	case FormatXML:
		return &XMLPrinter{Indent: indent}, nil
	case FormatSExpr:
		return &SExprPrinter{}, nil
	case FormatYAML:
		return &YAMLPrinter{Indent: indent}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// XMLPrinter prints the tree with one element per line, tokens as
// <kind> value </kind>.
type XMLPrinter struct {
	Indent int

	w     io.Writer
	depth int
}

func (printer *XMLPrinter) Print(w io.Writer, tree Tree) error {
	printer.w = w
	printer.depth = 0
	return tree.Accept(printer)
}

func (printer *XMLPrinter) VisitNode(node *Node) error {
	if _, err := fmt.Fprintf(printer.w, "%s<%s>\n", printer.pad(), node.Label); err != nil {
		return err
	}
	printer.depth++
	for _, child := range node.Children {
		if err := child.Accept(printer); err != nil {
			return err
		}
	}
	printer.depth--
	_, err := fmt.Fprintf(printer.w, "%s</%s>\n", printer.pad(), node.Label)
	return err
}

func (printer *XMLPrinter) VisitToken(tok *Token) error {
	_, err := fmt.Fprintf(
		printer.w,
		"%s<%s> %s </%s>\n",
		printer.pad(), tok.Kind, xmlEscaper.Replace(tok.Value), tok.Kind,
	)
	return err
}

func (printer *XMLPrinter) pad() string {
	return strings.Repeat(" ", printer.depth*printer.Indent)
}

// SExprPrinter prints the tree on a single line, e.g.
// (class class Main { }). String constants are quoted.
type SExprPrinter struct {
	b strings.Builder
}

func (printer *SExprPrinter) Print(w io.Writer, tree Tree) error {
	_, err := io.WriteString(w, printer.Sprint(tree))
	return err
}

// Sprint returns the s-expression of tree.
func (printer *SExprPrinter) Sprint(tree Tree) string {
	printer.b.Reset()
	// visiting never fails when writing to a strings.Builder
	_ = tree.Accept(printer)
	return printer.b.String()
}

func (printer *SExprPrinter) VisitNode(node *Node) error {
	printer.b.WriteString("(")
	printer.b.WriteString(node.Label)
	for _, child := range node.Children {
		printer.b.WriteString(" ")
		if err := child.Accept(printer); err != nil {
			return err
		}
	}
	printer.b.WriteString(")")
	return nil
}

func (printer *SExprPrinter) VisitToken(tok *Token) error {
	if tok.Kind == STRING_CONST {
		printer.b.WriteString(strconv.Quote(tok.Value))
	} else {
		printer.b.WriteString(tok.Value)
	}
	return nil
}

type yamlNode struct {
	Label    string        `yaml:"label"`
	Children []interface{} `yaml:"children,omitempty"`
}

type yamlLeaf struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// YAMLPrinter prints the tree as nested label/children mappings.
type YAMLPrinter struct {
	Indent int

	stack []*yamlNode
	root  interface{}
}

func (printer *YAMLPrinter) Print(w io.Writer, tree Tree) error {
	printer.stack = nil
	printer.root = nil
	if err := tree.Accept(printer); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if printer.Indent > 0 {
		enc.SetIndent(printer.Indent)
	}
	if err := enc.Encode(printer.root); err != nil {
		return err
	}
	return enc.Close()
}

func (printer *YAMLPrinter) VisitNode(node *Node) error {
	n := &yamlNode{Label: node.Label}
	printer.add(n)
	printer.stack = append(printer.stack, n)
	for _, child := range node.Children {
		if err := child.Accept(printer); err != nil {
			return err
		}
	}
	printer.stack = printer.stack[:len(printer.stack)-1]
	return nil
}

func (printer *YAMLPrinter) VisitToken(tok *Token) error {
	printer.add(&yamlLeaf{tok.Kind.String(), tok.Value})
	return nil
}

func (printer *YAMLPrinter) add(v interface{}) {
	if len(printer.stack) == 0 {
		printer.root = v
		return
	}
	parent := printer.stack[len(printer.stack)-1]
	parent.Children = append(parent.Children, v)
}
