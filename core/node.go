package core

import (
	"strconv"

	"github.com/beevik/etree"
)

// Node is a non-owning handle onto one element in a document tree. The
// zero Node refers to no element; reads on it report absence and Present
// returns false.
type Node struct {
	el *etree.Element
}

// Wrap returns a Node for the given element. Wrapping nil yields the zero
// Node.
func Wrap(el *etree.Element) Node {
	return Node{el: el}
}

// Element returns the underlying element, or nil for the zero Node.
func (n Node) Element() *etree.Element {
	return n.el
}

// Present reports whether the Node refers to an element.
func (n Node) Present() bool {
	return n.el != nil
}

// Attr returns the value of the named attribute. The second return is
// false when the attribute (or the node itself) is absent.
func (n Node) Attr(name string) (string, bool) {
	if n.el == nil {
		return "", false
	}
	a := n.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// AttrString returns the named attribute's value, or "" when absent.
func (n Node) AttrString(name string) string {
	v, _ := n.Attr(name)
	return v
}

// IntAttr returns the named attribute parsed as an int. Absent or
// unparsable values report absence.
func (n Node) IntAttr(name string) (int, bool) {
	s, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatAttr returns the named attribute parsed as a float64. Absent or
// unparsable values report absence.
func (n Node) FloatAttr(name string) (float64, bool) {
	s, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetAttr sets the named attribute in place. The node must be present.
func (n Node) SetAttr(name, value string) {
	n.el.CreateAttr(name, value)
}

// SetIntAttr sets the named attribute to the decimal form of value.
func (n Node) SetIntAttr(name string, value int) {
	n.SetAttr(name, strconv.Itoa(value))
}

// SetFloatAttr sets the named attribute to the shortest form of value.
func (n Node) SetFloatAttr(name string, value float64) {
	n.SetAttr(name, strconv.FormatFloat(value, 'g', -1, 64))
}

// RemoveAttr removes the named attribute if present.
func (n Node) RemoveAttr(name string) {
	if n.el != nil {
		n.el.RemoveAttr(name)
	}
}

// Text returns the node's character data, or "" for an absent node.
func (n Node) Text() string {
	if n.el == nil {
		return ""
	}
	return n.el.Text()
}

// SetText replaces the node's character data. The node must be present.
func (n Node) SetText(text string) {
	n.el.SetText(text)
}

// Child returns the first child with the given namespace URI and local
// name, or the zero Node.
func (n Node) Child(uri, local string) Node {
	if n.el == nil {
		return Node{}
	}
	for _, c := range n.el.ChildElements() {
		if c.Tag == local && NamespaceURI(c) == uri {
			return Wrap(c)
		}
	}
	return Node{}
}

// Children returns all children with the given namespace URI and local
// name, in document order.
func (n Node) Children(uri, local string) []Node {
	if n.el == nil {
		return nil
	}
	var out []Node
	for _, c := range n.el.ChildElements() {
		if c.Tag == local && NamespaceURI(c) == uri {
			out = append(out, Wrap(c))
		}
	}
	return out
}

// ChildElements returns every child element of the node.
func (n Node) ChildElements() []Node {
	if n.el == nil {
		return nil
	}
	kids := n.el.ChildElements()
	out := make([]Node, len(kids))
	for i, c := range kids {
		out[i] = Wrap(c)
	}
	return out
}

// CreateChild appends a new child with a correctly qualified tag for the
// given namespace URI and returns it. The node must be present.
func (n Node) CreateChild(uri, local string) Node {
	return Wrap(createElementNS(n.el, uri, local))
}

// EnsureChild returns the first matching child, creating it if absent.
func (n Node) EnsureChild(uri, local string) Node {
	if c := n.Child(uri, local); c.Present() {
		return c
	}
	return n.CreateChild(uri, local)
}

// RemoveChild detaches the given child element from the node.
func (n Node) RemoveChild(child Node) {
	if n.el != nil && child.el != nil {
		n.el.RemoveChild(child.el)
	}
}

// TextChild returns the character data of the first matching child. The
// second return is false when no such child exists.
func (n Node) TextChild(uri, local string) (string, bool) {
	c := n.Child(uri, local)
	if !c.Present() {
		return "", false
	}
	return c.Text(), true
}

// SetTextChild sets the character data of the first matching child,
// creating the child if absent.
func (n Node) SetTextChild(uri, local, text string) {
	n.EnsureChild(uri, local).SetText(text)
}

// NamespaceURI resolves the node's own namespace URI through in-scope
// xmlns declarations, or "" when unbound.
func (n Node) NamespaceURI() string {
	if n.el == nil {
		return ""
	}
	return NamespaceURI(n.el)
}

// Tag returns the node's local tag name.
func (n Node) Tag() string {
	if n.el == nil {
		return ""
	}
	return n.el.Tag
}
