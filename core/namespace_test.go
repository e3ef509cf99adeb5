package core

import (
	"testing"

	"github.com/beevik/etree"
)

func TestSchemaKey(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"http://www.openmicroscopy.org/Schemas/OME/2013-06", "ome"},
		{"http://www.openmicroscopy.org/Schemas/SA/2013-06", "sa"},
		{"http://www.openmicroscopy.org/Schemas/SPW/2013-06", "spw"},
		{"http://www.openmicroscopy.org/Schemas/OME/2011-06", "ome"},
		{"http://example.com/whatever", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SchemaKey(tt.uri); got != tt.want {
			t.Errorf("SchemaKey(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestNamespaceURIResolvesThroughAncestors(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<OME xmlns="urn:a" xmlns:sa="urn:b"><Image><sa:Note/></Image></OME>`); err != nil {
		t.Fatal(err)
	}
	img := doc.Root().ChildElements()[0]
	if got := NamespaceURI(img); got != "urn:a" {
		t.Errorf("default namespace = %q, want urn:a", got)
	}
	note := img.ChildElements()[0]
	if got := NamespaceURI(note); got != "urn:b" {
		t.Errorf("prefixed namespace = %q, want urn:b", got)
	}
}

func TestNamespaceURIUnbound(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<root><x:child/></root>`); err != nil {
		t.Fatal(err)
	}
	if got := NamespaceURI(doc.Root()); got != "" {
		t.Errorf("namespace of undeclared root = %q, want empty", got)
	}
	child := doc.Root().ChildElements()[0]
	if got := NamespaceURI(child); got != "" {
		t.Errorf("namespace of unbound prefix = %q, want empty", got)
	}
}

func TestDetectNamespaces(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<OME xmlns="http://www.openmicroscopy.org/Schemas/OME/2011-06"
		xmlns:sa="http://www.openmicroscopy.org/Schemas/SA/2011-06">
		<Image/><sa:StructuredAnnotations/></OME>`)
	if err != nil {
		t.Fatal(err)
	}
	ns := DetectNamespaces(doc.Root(), NSSet{
		SA:  "http://www.openmicroscopy.org/Schemas/SA/2013-06",
		SPW: "http://www.openmicroscopy.org/Schemas/SPW/2013-06",
	})
	if ns.OME != "http://www.openmicroscopy.org/Schemas/OME/2011-06" {
		t.Errorf("OME = %q", ns.OME)
	}
	// SA comes from the document, not the defaults
	if ns.SA != "http://www.openmicroscopy.org/Schemas/SA/2011-06" {
		t.Errorf("SA = %q", ns.SA)
	}
	// SPW never appears, so the default wins
	if ns.SPW != "http://www.openmicroscopy.org/Schemas/SPW/2013-06" {
		t.Errorf("SPW = %q", ns.SPW)
	}
}

func TestCreateChildReusesBoundPrefix(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("OME")
	root.CreateAttr("xmlns", "urn:ome")
	root.CreateAttr("xmlns:sa", "urn:sa")

	img := createElementNS(root, "urn:ome", "Image")
	if img.Space != "" || img.Tag != "Image" {
		t.Errorf("default-namespace child = %s:%s, want Image", img.Space, img.Tag)
	}
	ann := createElementNS(root, "urn:sa", "StructuredAnnotations")
	if ann.Space != "sa" {
		t.Errorf("prefix = %q, want sa", ann.Space)
	}
}

func TestCreateChildDeclaresMissingPrefix(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("OME")
	root.CreateAttr("xmlns", "urn:ome")

	uri := "http://www.openmicroscopy.org/Schemas/SPW/2013-06"
	plate := createElementNS(root, uri, "Plate")
	if plate.Space != "spw" {
		t.Errorf("generated prefix = %q, want spw", plate.Space)
	}
	if got := resolvePrefix(plate, "spw"); got != uri {
		t.Errorf("declared binding resolves to %q, want %q", got, uri)
	}
	// a second child reuses the declaration instead of stacking a new one
	createElementNS(root, uri, "Plate")
	count := 0
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Key == "spw" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("spw declared %d times, want 1", count)
	}
}

func TestDeclarePrefixAvoidsCollision(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("OME")
	root.CreateAttr("xmlns:spw", "urn:something-else")

	uri := "http://www.openmicroscopy.org/Schemas/SPW/2013-06"
	got := declarePrefix(root, uri)
	if got == "spw" {
		t.Fatal("declarePrefix clobbered an existing binding")
	}
	if resolvePrefix(root, got) != uri {
		t.Errorf("fresh prefix %q does not resolve to %q", got, uri)
	}
}
