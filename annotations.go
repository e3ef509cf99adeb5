package omexml

import (
	"github.com/openmicro/omexml/core"
)

// StructuredAnnotations represents the OME/StructuredAnnotations
// container.
//
// Structured annotations let OME-XML carry metadata from other file
// formats, for example TIFF tag values. Pragmatically that metadata is
// stored as key/value pairs in OriginalMetadata annotations; images refer
// to annotations by ID.
//
// The XML traversed here:
//
//	<StructuredAnnotations>
//	   <XMLAnnotation ID="…">
//	       <Value>
//	           <OriginalMetadata>
//	               <Key>Foo</Key>
//	               <Value>Bar</Value>
//	           </OriginalMetadata>
//	       </Value>
//	   </XMLAnnotation>
//	</StructuredAnnotations>
type StructuredAnnotations struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (sa *StructuredAnnotations) Node() core.Node { return sa.node }

// IDs returns the ID of every annotation in the container, in document
// order. Annotations without an ID are skipped.
func (sa *StructuredAnnotations) IDs() []string {
	var out []string
	for _, c := range sa.node.ChildElements() {
		if id, ok := c.Attr("ID"); ok {
			out = append(out, id)
		}
	}
	return out
}

// Has reports whether an annotation with the given ID exists.
func (sa *StructuredAnnotations) Has(id string) bool {
	for _, c := range sa.node.ChildElements() {
		if v, ok := c.Attr("ID"); ok && v == id {
			return true
		}
	}
	return false
}

// Annotation returns the annotation element with the given ID.
func (sa *StructuredAnnotations) Annotation(id string) (core.Node, bool) {
	for _, c := range sa.node.ChildElements() {
		if v, ok := c.Attr("ID"); ok && v == id {
			return c, true
		}
	}
	return core.Node{}, false
}

// AddOriginalMetadata creates an original-metadata key/value pair, for
// instance ("PhotometricInterpretation", "RGB"), and returns the
// generated annotation ID.
func (sa *StructuredAnnotations) AddOriginalMetadata(key, value string) string {
	ann := sa.node.CreateChild(sa.ns.SA, "XMLAnnotation")
	id := newLSID("Annotation")
	ann.SetAttr("ID", id)
	val := ann.CreateChild(sa.ns.SA, "Value")
	om := val.CreateChild(NSOriginalMetadata, "OriginalMetadata")
	om.CreateChild(NSOriginalMetadata, "Key").SetText(key)
	om.CreateChild(NSOriginalMetadata, "Value").SetText(value)
	return id
}

// MetadataPair is one original-metadata entry with the ID of the
// annotation that carries it (which can tie the entry to an image).
type MetadataPair struct {
	AnnotationID string
	Key          string
	Value        string
}

// OriginalMetadata returns every original-metadata pair in the container,
// in document order. Entries missing a key or value element are skipped.
func (sa *StructuredAnnotations) OriginalMetadata() []MetadataPair {
	var out []MetadataPair
	for _, ann := range sa.node.Children(sa.ns.SA, "XMLAnnotation") {
		id := ann.AttrString("ID")
		for _, val := range ann.Children(sa.ns.SA, "Value") {
			for _, om := range val.Children(NSOriginalMetadata, "OriginalMetadata") {
				key, okK := om.TextChild(NSOriginalMetadata, "Key")
				value, okV := om.TextChild(NSOriginalMetadata, "Value")
				if okK && okV {
					out = append(out, MetadataPair{AnnotationID: id, Key: key, Value: value})
				}
			}
		}
	}
	return out
}

// HasOriginalMetadata reports whether an original-metadata entry with the
// given key exists.
func (sa *StructuredAnnotations) HasOriginalMetadata(key string) bool {
	_, ok := sa.OriginalMetadataValue(key)
	return ok
}

// OriginalMetadataValue returns the value for the given original-metadata
// key. The second return is false when no entry has the key.
func (sa *StructuredAnnotations) OriginalMetadataValue(key string) (string, bool) {
	for _, p := range sa.OriginalMetadata() {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// OriginalMetadataRefs returns the key/value pairs carried by the
// annotations whose IDs appear in ids.
func (sa *StructuredAnnotations) OriginalMetadataRefs(ids []string) map[string]string {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make(map[string]string)
	for _, p := range sa.OriginalMetadata() {
		if _, ok := want[p.AnnotationID]; ok {
			out[p.Key] = p.Value
		}
	}
	return out
}
