package omexml

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/openmicro/omexml/core"
)

// xsdNow returns the current time in the xsd:dateTime form used by
// AcquisitionDate.
func xsdNow() string {
	return time.Now().Format("2006-01-02T15:04:05")
}

// newLSID generates a schema-valid LSID for the given entity restriction,
// e.g. "Pixels:0d6f…".
func newLSID(restriction string) string {
	return restriction + ":" + uuid.NewString()
}

// checkLSID validates an ID against the schema's LSID pattern for the
// given restriction: either "urn:lsid:<authority>:<Restriction>:…" or the
// short "<Restriction>:…" form.
func checkLSID(restriction, value string) error {
	pat := fmt.Sprintf(`^(?i:urn:lsid:(?:[\w.\-]+\.[\w.\-]+)+:%s:\S+|%s:\S+)$`,
		restriction, restriction)
	if !regexp.MustCompile(pat).MatchString(value) {
		return validationErr("ID", value, "must match the "+restriction+" LSID pattern")
	}
	return nil
}

// images is the OME/Image collection. New entries are populated with the
// defaults a bare acquisition needs: an ID, a placeholder name, the
// acquisition date and a one-channel 512x512 uint8 Pixels block.
func (o *OMEXML) images() core.Seq {
	return core.Seq{Parent: o.Root(), URI: o.ns.OME, Local: "Image", Min: 1, Init: o.initImage}
}

func (o *OMEXML) initImage(i int, n core.Node) {
	n.SetAttr("ID", newLSID("Image"))
	n.SetAttr("Name", "default.png")
	n.SetTextChild(o.ns.OME, "AcquisitionDate", xsdNow())
	px := n.CreateChild(o.ns.OME, "Pixels")
	px.SetAttr("ID", newLSID("Pixels"))
	px.SetAttr("DimensionOrder", DOXYCTZ)
	px.SetAttr("Type", PTUint8)
	px.SetIntAttr("SizeC", 1)
	px.SetIntAttr("SizeT", 1)
	px.SetIntAttr("SizeX", 512)
	px.SetIntAttr("SizeY", 512)
	px.SetIntAttr("SizeZ", 1)
	ch := px.CreateChild(o.ns.OME, "Channel")
	chID := fmt.Sprintf("Channel:%d:0", i)
	ch.SetAttr("ID", chID)
	ch.SetAttr("Name", chID)
	ch.SetIntAttr("SamplesPerPixel", 1)
}

// ImageCount returns the number of images (series) in the document.
func (o *OMEXML) ImageCount() int {
	return o.images().Len()
}

// SetImageCount adds or removes Image nodes as needed. A document must
// describe at least one image, so n < 1 is rejected. Growth appends
// default-populated images; shrinkage removes from the tail.
func (o *OMEXML) SetImageCount(n int) error {
	return o.images().Resize(n)
}

// Image returns the indexed image. The index must be inside the current
// count; images are created through [OMEXML.SetImageCount] only.
func (o *OMEXML) Image(i int) (*Image, error) {
	n, err := o.images().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Image{doc: o, node: n}, nil
}

// rois is the document-level OME/ROI collection. Each new ROI gets an
// "ROI:<index>" ID matching the ROIRef registered at the image, a marker
// name, and exactly one empty Union; shapes are added explicitly through
// the Union.
func (o *OMEXML) rois() core.Seq {
	return core.Seq{Parent: o.Root(), URI: o.ns.OME, Local: "ROI", Min: 1, Init: o.initROI}
}

func (o *OMEXML) initROI(i int, n core.Node) {
	n.SetAttr("ID", fmt.Sprintf("ROI:%d", i))
	n.SetAttr("Name", fmt.Sprintf("Marker %d", i))
	n.CreateChild(o.ns.OME, "Union")
}

// ROICount returns the number of ROI entities in the document.
func (o *OMEXML) ROICount() int {
	return o.rois().Len()
}

// SetROICount adds or removes ROI nodes as needed. ROI IDs must be
// matched by ROIRef registrations on an image; use [Image.SetROICount]
// to enforce that pairing.
func (o *OMEXML) SetROICount(n int) error {
	return o.rois().Resize(n)
}

// ROI returns the indexed ROI entity.
func (o *OMEXML) ROI(i int) (*ROI, error) {
	n, err := o.rois().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &ROI{node: n, ns: o.ns}, nil
}

// StructuredAnnotations returns the OME/StructuredAnnotations container,
// creating the element if it does not exist yet.
func (o *OMEXML) StructuredAnnotations() *StructuredAnnotations {
	n := o.Root().EnsureChild(o.ns.SA, "StructuredAnnotations")
	return &StructuredAnnotations{node: n, ns: o.ns}
}

// instruments is the OME/Instrument collection.
func (o *OMEXML) instruments() core.Seq {
	return core.Seq{Parent: o.Root(), URI: o.ns.OME, Local: "Instrument", Init: func(i int, n core.Node) {
		n.SetAttr("ID", newLSID("Instrument"))
	}}
}

// InstrumentCount returns the number of instruments in the document.
func (o *OMEXML) InstrumentCount() int {
	return o.instruments().Len()
}

// SetInstrumentCount adds or removes Instrument nodes as needed.
func (o *OMEXML) SetInstrumentCount(n int) error {
	return o.instruments().Resize(n)
}

// Instrument returns the indexed instrument.
func (o *OMEXML) Instrument(i int) (*Instrument, error) {
	n, err := o.instruments().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Instrument{node: n, ns: o.ns}, nil
}

// Plates returns the document's SPW plate collection.
func (o *OMEXML) Plates() Plates {
	return Plates{root: o.Root(), ns: o.ns}
}
