// Package ndc holds the generic document tree the seat availability
// engine works on. A supplier response is decoded into Nodes without any
// schema knowledge: a field may occur zero, one or many times and the
// accessors below never assume which.
package ndc

import (
	"math"
	"strconv"
	"strings"
)

// Node is one element of a decoded supplier document.
//
// Children are grouped by element name, in document order within each
// name. Every accessor is safe to call on a nil *Node so that a chain such
// as doc.Path("Response", "DataLists").Children("PaxSegment") simply
// yields nothing when part of the path is missing.
type Node struct {
	Name  string
	Attrs map[string]string
	Text  string

	order    []string
	children map[string][]*Node
}

// NewNode returns an empty node with the given element name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Append adds child under its own name and returns n for chaining.
func (n *Node) Append(child *Node) *Node {
	if n == nil || child == nil {
		return n
	}
	if n.children == nil {
		n.children = make(map[string][]*Node)
	}
	if _, ok := n.children[child.Name]; !ok {
		n.order = append(n.order, child.Name)
	}
	n.children[child.Name] = append(n.children[child.Name], child)
	return n
}

// SetAttr sets an attribute and returns n for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n == nil {
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Children returns every child element called name. This is the single
// place where singular-vs-repeated ambiguity is resolved: callers always
// get a slice, empty when the element is absent.
func (n *Node) Children(name string) []*Node {
	if n == nil {
		return nil
	}
	return n.children[name]
}

// Child returns the first child called name, or nil.
func (n *Node) Child(name string) *Node {
	if c := n.Children(name); len(c) > 0 {
		return c[0]
	}
	return nil
}

// Has reports whether at least one child called name exists.
func (n *Node) Has(name string) bool {
	return n.Child(name) != nil
}

// Path follows the first child at each step.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ChildNames lists child element names in first-seen order.
func (n *Node) ChildNames() []string {
	if n == nil {
		return nil
	}
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Attr returns the attribute value or "" when absent.
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[key]
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(key string) bool {
	if n == nil {
		return false
	}
	_, ok := n.Attrs[key]
	return ok
}

// Value returns the trimmed character data of the node.
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text)
}

// IsEmpty reports whether the node carries no text, attributes or children.
func (n *Node) IsEmpty() bool {
	return n == nil || (n.Value() == "" && len(n.Attrs) == 0 && len(n.children) == 0)
}

// Values returns the trimmed text of every child called name.
func (n *Node) Values(name string) []string {
	kids := n.Children(name)
	out := make([]string, 0, len(kids))
	for _, k := range kids {
		out = append(out, k.Value())
	}
	return out
}

// Int converts a supplier amount to an integer the lenient way the
// supplier data requires: "1000" and "1000.00" both give 1000, anything
// unparsable or outside the int64 range gives 0.
func Int(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, ok := parseDecimal(s); ok {
		return int64(f)
	}
	return 0
}

// IsNumeric reports whether s is a plain decimal number that fits an
// amount.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, ok := parseDecimal(s)
	return ok
}

// parseDecimal accepts digits, sign, point and exponent only, so NaN,
// Inf and hex floats are rejected along with values int64 cannot hold.
func parseDecimal(s string) (float64, bool) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	}) >= 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return f, true
}
