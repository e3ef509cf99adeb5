// Package core provides the low-level primitives for working with OME-XML
// element trees.
//
// This package implements the building blocks the schema wrappers in the
// root package are layered on:
//
//   - [Node] - a non-owning handle onto one element in a document tree,
//     with attribute and text accessors
//   - [Seq] - an indexed view over a run of same-tag sibling elements,
//     with count semantics (grow appends, shrink removes from the tail)
//   - namespace resolution - mapping element prefixes to namespace URIs
//     through in-scope xmlns declarations, and creating children with
//     correctly qualified tags
//
// The document (held by the caller) is the sole owner of all element
// memory; a Node never outlives it. Reads on an absent node or attribute
// return absence values rather than failing, to tolerate partially
// populated documents.
package core
