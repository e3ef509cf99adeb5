package omexml

import (
	"strings"
	"testing"
)

func TestStructuredAnnotationsLazyCreate(t *testing.T) {
	o := New()
	sa := o.StructuredAnnotations()
	if !sa.Node().Present() {
		t.Fatal("StructuredAnnotations element not created")
	}
	// a second call reuses the element
	o.StructuredAnnotations()
	if got := len(o.Root().Children(o.Namespace("sa"), "StructuredAnnotations")); got != 1 {
		t.Errorf("StructuredAnnotations element count = %d, want 1", got)
	}
	if got := len(sa.IDs()); got != 0 {
		t.Errorf("fresh container has %d IDs, want 0", got)
	}
}

func TestAddOriginalMetadata(t *testing.T) {
	o := New()
	sa := o.StructuredAnnotations()
	id := sa.AddOriginalMetadata("PhotometricInterpretation", "RGB")
	if !strings.HasPrefix(id, "Annotation:") {
		t.Errorf("annotation ID = %q, want Annotation: prefix", id)
	}
	if !sa.Has(id) {
		t.Error("Has(id) = false for a just-added annotation")
	}
	if !sa.HasOriginalMetadata("PhotometricInterpretation") {
		t.Error("HasOriginalMetadata = false for a just-added key")
	}
	v, ok := sa.OriginalMetadataValue("PhotometricInterpretation")
	if !ok || v != "RGB" {
		t.Errorf("OriginalMetadataValue = %q, %v; want RGB, true", v, ok)
	}
	if _, ok := sa.OriginalMetadataValue("NoSuchKey"); ok {
		t.Error("OriginalMetadataValue found a key that was never added")
	}
}

func TestOriginalMetadataListsInDocumentOrder(t *testing.T) {
	o := New()
	sa := o.StructuredAnnotations()
	sa.AddOriginalMetadata("Make", "Acme")
	sa.AddOriginalMetadata("Model", "Wide-Field 3000")
	sa.AddOriginalMetadata("BitsPerSample", "16")

	pairs := sa.OriginalMetadata()
	if len(pairs) != 3 {
		t.Fatalf("pair count = %d, want 3", len(pairs))
	}
	wantKeys := []string{"Make", "Model", "BitsPerSample"}
	for i, p := range pairs {
		if p.Key != wantKeys[i] {
			t.Errorf("pair %d key = %q, want %q", i, p.Key, wantKeys[i])
		}
		if p.AnnotationID == "" {
			t.Errorf("pair %d has no annotation ID", i)
		}
	}
}

func TestOriginalMetadataRefs(t *testing.T) {
	o := New()
	sa := o.StructuredAnnotations()
	id1 := sa.AddOriginalMetadata("Make", "Acme")
	sa.AddOriginalMetadata("Model", "Wide-Field 3000")

	got := sa.OriginalMetadataRefs([]string{id1, "Annotation:nonexistent"})
	if len(got) != 1 {
		t.Fatalf("ref map size = %d, want 1", len(got))
	}
	if got["Make"] != "Acme" {
		t.Errorf(`got["Make"] = %q, want Acme`, got["Make"])
	}
}

func TestOriginalMetadataRoundTrip(t *testing.T) {
	o := New()
	sa := o.StructuredAnnotations()
	sa.AddOriginalMetadata("ImageWidth", "1392")

	xml, err := o.ToXML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(xml)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := back.StructuredAnnotations().OriginalMetadataValue("ImageWidth")
	if !ok || v != "1392" {
		t.Errorf("value after round trip = %q, %v; want 1392, true", v, ok)
	}
}

func TestAnnotationLookup(t *testing.T) {
	o := New()
	sa := o.StructuredAnnotations()
	id := sa.AddOriginalMetadata("Key", "Value")

	n, ok := sa.Annotation(id)
	if !ok {
		t.Fatal("Annotation(id) not found")
	}
	if got := n.Tag(); got != "XMLAnnotation" {
		t.Errorf("annotation tag = %q, want XMLAnnotation", got)
	}
	if _, ok := sa.Annotation("Annotation:missing"); ok {
		t.Error("Annotation found an ID that was never added")
	}
}
