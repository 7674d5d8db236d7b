package jack

// Tree is an element of a parse tree: either a *Node or a *Token leaf.
type Tree interface {
	Accept(visitor TreeVisitor) error
}

// TreeVisitor is implemented by everything that walks a parse tree.
type TreeVisitor interface {
	VisitNode(node *Node) error
	VisitToken(tok *Token) error
}

// Node is a labeled interior node of the parse tree. Children are kept in
// source order.
type Node struct {
	Label    string
	Children []Tree
}

// NewNode creates a node without children
func NewNode(label string) *Node {
	return &Node{label, nil}
}

// AppendChild adds child as the last child of node.
func (node *Node) AppendChild(child Tree) {
	node.Children = append(node.Children, child)
}

// AppendToken adds tok as a leaf after the existing children.
func (node *Node) AppendToken(tok *Token) {
	node.AppendChild(tok)
}

// Nodes returns the children of node that are nodes with the given label.
func (node *Node) Nodes(label string) []*Node {
	var nodes []*Node
	for _, child := range node.Children {
		if n, ok := child.(*Node); ok && n.Label == label {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (node *Node) Accept(visitor TreeVisitor) error {
	return visitor.VisitNode(node)
}

func (t *Token) Accept(visitor TreeVisitor) error {
	return visitor.VisitToken(t)
}

// Walk visits tree depth first, children in order. Returning an error from
// fn stops the walk.
func Walk(tree Tree, fn func(tree Tree, depth int) error) error {
	return walk(tree, 0, fn)
}

func walk(tree Tree, depth int, fn func(Tree, int) error) error {
	if err := fn(tree, depth); err != nil {
		return err
	}
	node, ok := tree.(*Node)
	if !ok {
		return nil
	}
	for _, child := range node.Children {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
