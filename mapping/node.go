package mapping

// Node is one entry of a mapping tree: either an object (Properties is
// non-nil) or a leaf with an Elasticsearch data type and optional
// multi-fields.
type Node struct {
	// Type is the Elasticsearch data type. Object nodes may carry "object" or
	// "nested" here, or nothing.
	Type string
	// Index is the explicit "index" flag; nil means indexed.
	Index *bool
	// Enabled is the explicit "enabled" flag of object fields; nil means enabled.
	Enabled *bool
	// Properties holds structural children. Non-nil marks an object node,
	// even when empty.
	Properties Properties
	// Fields holds multi-fields of a leaf.
	Fields Properties
	// Params keeps every other mapping parameter (analyzer, format, ...)
	// verbatim.
	Params map[string]any
}

// Property is a named child of a node, kept in declaration order.
type Property struct {
	Name string
	Node *Node
}

// Properties is an ordered list of named children.
type Properties []Property

// Get returns the child with the given name.
func (ps Properties) Get(name string) (*Node, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Node, true
		}
	}
	return nil, false
}

// Names returns the child names in order.
func (ps Properties) Names() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

// Leaf returns a leaf node of the given type.
func Leaf(typ string) *Node { return &Node{Type: typ} }

// Object returns an object node with the given children.
func Object(props ...Property) *Node {
	if props == nil {
		props = Properties{}
	}
	return &Node{Properties: props}
}

// Prop is shorthand for Property{Name: name, Node: n}.
func Prop(name string, n *Node) Property { return Property{Name: name, Node: n} }

// WithFields attaches multi-fields to a leaf and returns it.
func (n *Node) WithFields(fields ...Property) *Node {
	n.Fields = fields
	return n
}

// NotIndexed sets index:false and returns the node.
func (n *Node) NotIndexed() *Node {
	f := false
	n.Index = &f
	return n
}

// IsObject reports whether the node has structural children.
func (n *Node) IsObject() bool { return n != nil && n.Properties != nil }

// IsLeaf reports whether the node is a typed leaf.
func (n *Node) IsLeaf() bool { return n != nil && n.Properties == nil && n.Type != "" }

// Indexed reports whether the node takes part in input projections: neither
// index:false nor enabled:false is set.
func (n *Node) Indexed() bool {
	if n.Index != nil && !*n.Index {
		return false
	}
	if n.Enabled != nil && !*n.Enabled {
		return false
	}
	return true
}

// Lookup follows a canonical path through Properties only.
func (n *Node) Lookup(segments ...string) (*Node, bool) {
	cur := n
	for _, s := range segments {
		if !cur.IsObject() {
			return nil, false
		}
		next, ok := cur.Properties.Get(s)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Visit is called by Walk for every node below the root. path holds the
// segments from the root, multi is true when the last segment was reached
// through Fields.
type Visit func(path []string, n *Node, multi bool) error

// Walk visits every descendant of n depth-first in declaration order.
// Returning SkipChildren from fn skips the descendants of that node.
func (n *Node) Walk(fn Visit) error {
	return walk(n, nil, fn)
}

type skipChildren struct{}

func (skipChildren) Error() string { return "skip children" }

// SkipChildren can be returned by a Visit to prune the subtree.
var SkipChildren error = skipChildren{}

func walk(n *Node, path []string, fn Visit) error {
	step := func(ps Properties, multi bool) error {
		for _, p := range ps {
			child := append(append([]string(nil), path...), p.Name)
			err := fn(child, p.Node, multi)
			if err == SkipChildren {
				continue
			}
			if err != nil {
				return err
			}
			if err := walk(p.Node, child, fn); err != nil {
				return err
			}
		}
		return nil
	}
	if err := step(n.Properties, false); err != nil {
		return err
	}
	return step(n.Fields, true)
}
