package core

import (
	"errors"
	"fmt"
)

// Seq errors.
var (
	// ErrIndexOutOfRange is returned by [Seq.At] for an index outside
	// [0, Len). Elements are only ever created through [Seq.Resize].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCountTooSmall is returned by [Seq.Resize] when the requested
	// count is below the sequence's minimum.
	ErrCountTooSmall = errors.New("count below minimum")
)

// Seq is an indexed view over the run of children of Parent whose tag
// resolves to (URI, Local). The count is never stored; it is derived from
// the matching children and mutated through Resize.
type Seq struct {
	Parent Node
	URI    string
	Local  string

	// Min is the smallest count Resize accepts.
	Min int

	// Init, when non-nil, is called for each node Resize appends, with
	// the node's index in the sequence.
	Init func(i int, n Node)
}

// Len returns the number of matching children.
func (s Seq) Len() int {
	return len(s.Parent.Children(s.URI, s.Local))
}

// At returns the i'th matching child. An index outside [0, Len) is a
// contract violation reported through ErrIndexOutOfRange, never a silent
// create.
func (s Seq) At(i int) (Node, error) {
	kids := s.Parent.Children(s.URI, s.Local)
	if i < 0 || i >= len(kids) {
		return Node{}, fmt.Errorf("%s[%d]: %w (have %d)", s.Local, i, ErrIndexOutOfRange, len(kids))
	}
	return kids[i], nil
}

// Resize grows or shrinks the sequence to n elements. Growth appends
// default-constructed nodes (running Init on each); shrinkage removes
// children from the tail, highest index first, so lower-indexed elements
// are never perturbed.
func (s Seq) Resize(n int) error {
	if n < s.Min {
		return fmt.Errorf("%s count %d: %w (minimum %d)", s.Local, n, ErrCountTooSmall, s.Min)
	}
	kids := s.Parent.Children(s.URI, s.Local)
	for i := len(kids) - 1; i >= n; i-- {
		s.Parent.RemoveChild(kids[i])
	}
	for i := len(kids); i < n; i++ {
		node := s.Parent.CreateChild(s.URI, s.Local)
		if s.Init != nil {
			s.Init(i, node)
		}
	}
	return nil
}

// RemoveAll detaches every matching child.
func (s Seq) RemoveAll() {
	for _, c := range s.Parent.Children(s.URI, s.Local) {
		s.Parent.RemoveChild(c)
	}
}
