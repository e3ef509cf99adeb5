// Package omexml reads and writes OME-XML metadata documents.
//
// OME-XML is the Open Microscopy Environment schema for describing image
// acquisition metadata: images, channels, planes, regions of interest,
// timing and exposure data. This package exposes a typed accessor layer
// over one XML tree, so callers read and write OME fields without
// handling namespace boilerplate, and serializes the result back to a
// compliant XML string (typically embedded in a TIFF ImageDescription
// tag).
//
// Basic usage:
//
//	o := omexml.New()
//	if err := o.SetImageCount(1); err != nil {
//	    // handle error
//	}
//	img, _ := o.Image(0)
//	img.SetName("MyImage")
//	img.Pixels().SetSizeX(512)
//	xml, err := o.ToXML()
//
// Or start from existing metadata:
//
//	o, err := omexml.Parse(xmlString)
//	if err != nil {
//	    // handle error
//	}
//	img, _ := o.Image(0)
//	fmt.Println(img.AcquisitionDate())
//
// Collections use count semantics: setting a count appends
// default-constructed entries or removes entries from the tail, so
// lower-indexed entries are never disturbed by a resize. Reads of fields
// that were never set report absence rather than failing; this tolerates
// the partially populated documents other tools in the OME ecosystem
// produce.
//
// All operations are in-memory tree mutations. A document is not safe
// for concurrent mutation; callers serialize access themselves.
package omexml

import (
	"errors"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/openmicro/omexml/core"
)

// OMEXML is one OME-XML document. It owns the entire element tree; the
// entity wrappers handed out by its accessors are non-owning views into
// that tree and must not be used after the document is discarded.
type OMEXML struct {
	doc *etree.Document
	ns  core.NSSet
}

// New creates a minimal valid document: an OME root carrying the
// namespace declarations and nothing else. Populate it through
// [OMEXML.SetImageCount] and the entity wrappers.
func New() *OMEXML {
	doc := etree.NewDocument()
	root := doc.CreateElement("OME")
	root.CreateAttr("xmlns", NSOME)
	root.CreateAttr("xmlns:sa", NSSA)
	root.CreateAttr("xmlns:spw", NSSPW)
	root.CreateAttr("xmlns:om", NSOriginalMetadata)
	return &OMEXML{
		doc: doc,
		ns:  core.NSSet{OME: NSOME, SA: NSSA, SPW: NSSPW},
	}
}

// Parse constructs a document from an OME-XML string. Malformed XML is
// reported as a [*ParseError]; well-formed XML whose root is not OME is
// reported as [ErrNotOME]. Non-UTF-8 encodings declared in the XML
// prolog are decoded transparently.
func Parse(xml string) (*OMEXML, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromString(xml); err != nil {
		return nil, &ParseError{Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: errors.New("document has no root element")}
	}
	ns := core.DetectNamespaces(root, core.NSSet{SA: NSSA, SPW: NSSPW})
	if root.Tag != "OME" || ns.OME == "" {
		return nil, ErrNotOME
	}
	return &OMEXML{doc: doc, ns: ns}, nil
}

// ToXML serializes the current tree. Serialization is deterministic:
// repeated calls on an unmodified tree produce identical strings, and a
// parse of the output yields an equivalent tree.
func (o *OMEXML) ToXML() (string, error) {
	return o.doc.WriteToString()
}

// String serializes the current tree, returning "" on a write error. Use
// [OMEXML.ToXML] when the error matters.
func (o *OMEXML) String() string {
	s, err := o.doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// Namespace returns the namespace URI in use for the given schema family
// key: "ome", "sa" or "spw".
func (o *OMEXML) Namespace(key string) string {
	switch key {
	case "ome":
		return o.ns.OME
	case "sa":
		return o.ns.SA
	case "spw":
		return o.ns.SPW
	}
	return ""
}

// Root returns the OME root element for callers that need to walk the
// tree directly.
func (o *OMEXML) Root() core.Node {
	return core.Wrap(o.doc.Root())
}
