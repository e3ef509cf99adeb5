package omexml

import (
	"fmt"
	"strconv"

	"github.com/openmicro/omexml/core"
)

// Image represents the OME/Image element: one image series with its
// acquisition date, references and Pixels block.
type Image struct {
	doc  *OMEXML
	node core.Node
}

// Node returns the underlying element handle.
func (img *Image) Node() core.Node { return img.node }

// ID returns the image's LSID, or "" when absent.
func (img *Image) ID() string { return img.node.AttrString("ID") }

// SetID sets the image's LSID. The value must match the Image LSID
// pattern ("Image:…" or the urn:lsid form).
func (img *Image) SetID(id string) error {
	if err := checkLSID("Image", id); err != nil {
		return err
	}
	img.node.SetAttr("ID", id)
	return nil
}

// Name returns the image name, or "" when absent.
func (img *Image) Name() string { return img.node.AttrString("Name") }

// SetName sets the image name.
func (img *Image) SetName(v string) { img.node.SetAttr("Name", v) }

// AcquisitionDate returns the acquisition date in ISO-8601 form, or ""
// when the element is absent.
func (img *Image) AcquisitionDate() string {
	v, _ := img.node.TextChild(img.doc.ns.OME, "AcquisitionDate")
	return v
}

// SetAcquisitionDate sets the acquisition date, creating the element if
// needed. The value is written verbatim; use xsd:dateTime form.
func (img *Image) SetAcquisitionDate(date string) {
	img.node.SetTextChild(img.doc.ns.OME, "AcquisitionDate", date)
}

// Description returns the image description text, or "" when absent.
func (img *Image) Description() string {
	v, _ := img.node.TextChild(img.doc.ns.OME, "Description")
	return v
}

// SetDescription sets the image description, creating the element if
// needed.
func (img *Image) SetDescription(text string) {
	img.node.SetTextChild(img.doc.ns.OME, "Description", text)
}

// reference reads the ID of a reference child element, or "" when absent.
func (img *Image) reference(local string) string {
	return img.node.Child(img.doc.ns.OME, local).AttrString("ID")
}

// setReference validates id against the restriction's LSID pattern and
// writes it onto the (lazily created) reference child.
func (img *Image) setReference(local, restriction, id string) error {
	if err := checkLSID(restriction, id); err != nil {
		return err
	}
	img.node.EnsureChild(img.doc.ns.OME, local).SetAttr("ID", id)
	return nil
}

// ExperimenterRef returns the referenced experimenter's ID, or "".
func (img *Image) ExperimenterRef() string { return img.reference("ExperimenterRef") }

// SetExperimenterRef points the image at an experimenter by ID.
func (img *Image) SetExperimenterRef(id string) error {
	return img.setReference("ExperimenterRef", "Experimenter", id)
}

// ExperimentRef returns the referenced experiment's ID, or "".
func (img *Image) ExperimentRef() string { return img.reference("ExperimentRef") }

// SetExperimentRef points the image at an experiment by ID.
func (img *Image) SetExperimentRef(id string) error {
	return img.setReference("ExperimentRef", "Experiment", id)
}

// ExperimenterGroupRef returns the referenced group's ID, or "".
func (img *Image) ExperimenterGroupRef() string { return img.reference("ExperimenterGroupRef") }

// SetExperimenterGroupRef points the image at an experimenter group by ID.
func (img *Image) SetExperimenterGroupRef(id string) error {
	return img.setReference("ExperimenterGroupRef", "ExperimenterGroup", id)
}

// InstrumentRef returns the referenced instrument's ID, or "".
func (img *Image) InstrumentRef() string { return img.reference("InstrumentRef") }

// SetInstrumentRef points the image at an instrument by ID.
func (img *Image) SetInstrumentRef(id string) error {
	return img.setReference("InstrumentRef", "Instrument", id)
}

// ObjectiveSettings returns the ID of the objective in use, or "".
func (img *Image) ObjectiveSettings() string { return img.reference("ObjectiveSettings") }

// SetObjectiveSettings points the image's ObjectiveSettings at an
// objective by ID.
func (img *Image) SetObjectiveSettings(id string) error {
	return img.setReference("ObjectiveSettings", "Objective", id)
}

// Pixels returns the image's Pixels block. The returned wrapper refers to
// no element when the image has none; create images through
// [OMEXML.SetImageCount] to get a populated Pixels block.
func (img *Image) Pixels() *Pixels {
	return &Pixels{node: img.node.Child(img.doc.ns.OME, "Pixels"), ns: img.doc.ns}
}

// roiRefs is the Image/ROIRef collection. ROIRef IDs pair with the
// document-level ROI entities of the same index.
func (img *Image) roiRefs() core.Seq {
	return core.Seq{Parent: img.node, URI: img.doc.ns.OME, Local: "ROIRef", Min: 1,
		Init: func(i int, n core.Node) {
			n.SetAttr("ID", "ROI:"+strconv.Itoa(i))
		}}
}

// ROIRefCount returns the number of ROIRef registrations on the image.
func (img *Image) ROIRefCount() int {
	return img.roiRefs().Len()
}

// SetROIRefCount adds or removes ROIRef registrations as needed. New
// entries get IDs "ROI:<index>". At least one registration must remain.
func (img *Image) SetROIRefCount(n int) error {
	return img.roiRefs().Resize(n)
}

// ROIRef returns the indexed ROIRef registration.
func (img *Image) ROIRef(i int) (*ROIRef, error) {
	n, err := img.roiRefs().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &ROIRef{node: n}, nil
}

// SetROICount ensures n ROI entities exist at the document level, each
// pre-populated with one Union child. The image must already carry at
// least n ROIRef registrations (see [Image.SetROIRefCount]); sizing the
// ROI collection without the matching references is a usage error.
func (img *Image) SetROICount(n int) error {
	if have := img.ROIRefCount(); have < n {
		return validationErr("ROI count", strconv.Itoa(n),
			fmt.Sprintf("only %d ROIRef registrations on the image; register ROIRefs first", have))
	}
	return img.doc.SetROICount(n)
}
