package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// NSSet holds the namespace URIs in effect for one document. The keys
// mirror the OME schema families: the main OME namespace, structured
// annotations (SA) and screen/plate/well (SPW).
type NSSet struct {
	OME string
	SA  string
	SPW string
}

// omeSchemaRE matches an OME schema namespace URI and captures the schema
// family key ("OME", "SA", "SPW", "ROI", ...).
var omeSchemaRE = regexp.MustCompile(`openmicroscopy\.org/Schemas/(\w+)/`)

// SchemaKey extracts the lowercase schema family key from a namespace URI,
// or "" when the URI is not an OME schema namespace.
func SchemaKey(uri string) string {
	m := omeSchemaRE.FindStringSubmatch(uri)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// DetectNamespaces scans every element in the tree rooted at root and
// records the namespace URI in use for each OME schema family. Families
// not present in the document fall back to the given defaults. The OME
// entry is left empty when no element is in an OME namespace at all.
func DetectNamespaces(root *etree.Element, defaults NSSet) NSSet {
	ns := NSSet{}
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		uri := NamespaceURI(el)
		switch SchemaKey(uri) {
		case "ome":
			ns.OME = uri
		case "sa":
			ns.SA = uri
		case "spw":
			ns.SPW = uri
		}
		for _, c := range el.ChildElements() {
			walk(c)
		}
	}
	walk(root)
	if ns.SA == "" {
		ns.SA = defaults.SA
	}
	if ns.SPW == "" {
		ns.SPW = defaults.SPW
	}
	return ns
}

// NamespaceURI resolves an element's namespace URI through the xmlns
// declarations in scope, walking toward the root. Returns "" for an
// unbound prefix or an unprefixed element with no default namespace.
func NamespaceURI(el *etree.Element) string {
	return resolvePrefix(el, el.Space)
}

func resolvePrefix(el *etree.Element, prefix string) string {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if prefix == "" {
				if a.Space == "" && a.Key == "xmlns" {
					return a.Value
				}
			} else if a.Space == "xmlns" && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

// prefixFor finds a prefix bound to the given URI in scope at el. The
// empty prefix (default namespace) is a valid result; ok reports whether
// any binding was found.
func prefixFor(el *etree.Element, uri string) (prefix string, ok bool) {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Space == "xmlns" && a.Value == uri {
				return a.Key, true
			}
			if a.Space == "" && a.Key == "xmlns" && a.Value == uri {
				return "", true
			}
		}
	}
	return "", false
}

// createElementNS appends a child of parent with the given local name,
// qualified for the namespace URI. If no prefix is bound to the URI in
// scope, one is declared on the document root first.
func createElementNS(parent *etree.Element, uri, local string) *etree.Element {
	prefix, ok := prefixFor(parent, uri)
	if !ok {
		prefix = declarePrefix(parent, uri)
	}
	tag := local
	if prefix != "" {
		tag = prefix + ":" + local
	}
	return parent.CreateElement(tag)
}

// declarePrefix binds a fresh prefix for uri on the topmost element and
// returns it. Well-known OME schema families get their conventional
// prefix; anything else gets a generated one.
func declarePrefix(el *etree.Element, uri string) string {
	root := el
	for root.Parent() != nil {
		root = root.Parent()
	}
	prefix := SchemaKey(uri)
	if prefix == "" {
		if strings.Contains(uri, "OriginalMetadata") {
			prefix = "om"
		} else {
			prefix = "ns"
		}
	}
	// avoid clobbering an existing binding of the same prefix
	candidate := prefix
	for i := 0; resolvePrefix(root, candidate) != ""; i++ {
		candidate = fmt.Sprintf("%s%d", prefix, i)
	}
	root.CreateAttr("xmlns:"+candidate, uri)
	return candidate
}
