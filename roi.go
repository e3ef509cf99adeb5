package omexml

import (
	"fmt"
	"strconv"

	"github.com/openmicro/omexml/core"
	"github.com/openmicro/omexml/units"
)

// ROIRef represents an OME/Image/ROIRef element: the image-level
// registration pairing the image with a document-level ROI of the same
// ID.
type ROIRef struct {
	node core.Node
}

// ID returns the registration's ID ("ROI:<n>"), or "" when absent.
func (r *ROIRef) ID() string { return r.node.AttrString("ID") }

// SetID sets the registration's ID. The value must match the ROI LSID
// pattern and the ID of the ROI entity it pairs with.
func (r *ROIRef) SetID(id string) error {
	if err := checkLSID("ROI", id); err != nil {
		return err
	}
	r.node.SetAttr("ID", id)
	return nil
}

// ROI represents a document-level OME/ROI element. Every ROI contains
// exactly one Union holding its shapes.
type ROI struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (r *ROI) Node() core.Node { return r.node }

// ID returns the ROI's ID ("ROI:<n>"), or "" when absent.
func (r *ROI) ID() string { return r.node.AttrString("ID") }

// SetID sets the ROI's ID. The value must match the ROI LSID pattern and
// the corresponding ROIRef registration on the image.
func (r *ROI) SetID(id string) error {
	if err := checkLSID("ROI", id); err != nil {
		return err
	}
	r.node.SetAttr("ID", id)
	return nil
}

// Name returns the ROI's name, or "" when absent.
func (r *ROI) Name() string { return r.node.AttrString("Name") }

// SetName sets the ROI's name.
func (r *ROI) SetName(v string) { r.node.SetAttr("Name", v) }

// Union returns the ROI's Union container, creating it if absent (ROIs
// built through SetROICount always carry one).
func (r *ROI) Union() *Union {
	return &Union{node: r.node.EnsureChild(r.ns.OME, "Union"), ns: r.ns}
}

// Union represents the OME/ROI/Union element: the collection of shapes
// making up one region of interest. Only Rectangle shapes are supported.
type Union struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (u *Union) Node() core.Node { return u.node }

// Count returns the number of shapes in the union. A freshly created ROI
// has none until shapes are added.
func (u *Union) Count() int {
	return len(u.node.ChildElements())
}

// AddRectangle appends a Rectangle shape and returns it, populated with a
// generated shape ID, plane indices 0/0/0 and the default red stroke.
func (u *Union) AddRectangle() *Rectangle {
	n := u.node.CreateChild(u.ns.OME, "Rectangle")
	n.SetAttr("ID", newLSID("Shape"))
	n.SetIntAttr("TheZ", 0)
	n.SetIntAttr("TheC", 0)
	n.SetIntAttr("TheT", 0)
	n.SetAttr("StrokeColor", "-16776961") // red, signed 32-bit RGBA
	n.SetIntAttr("StrokeWidth", 20)
	return &Rectangle{node: n}
}

// Rectangle returns the i'th shape as a Rectangle. An index outside the
// current count is reported through ErrIndexOutOfRange; a shape of any
// other type at that index is a type mismatch, reported as a
// *ValidationError, never coerced.
func (u *Union) Rectangle(i int) (*Rectangle, error) {
	shapes := u.node.ChildElements()
	if i < 0 || i >= len(shapes) {
		return nil, fmt.Errorf("omexml: Shape[%d]: %w (have %d)", i, ErrIndexOutOfRange, len(shapes))
	}
	n := shapes[i]
	if n.Tag() != "Rectangle" {
		return nil, validationErr("Shape", n.Tag(), "not a Rectangle shape")
	}
	return &Rectangle{node: n}, nil
}

// Rectangle represents an OME/ROI/Union/Rectangle shape. X, Y, Width and
// Height are in pixel space; no unit attribute applies.
type Rectangle struct {
	node core.Node
}

// Node returns the underlying element handle.
func (rc *Rectangle) Node() core.Node { return rc.node }

// ID returns the shape's ID, or "" when absent.
func (rc *Rectangle) ID() string { return rc.node.AttrString("ID") }

// SetID sets the shape's ID. The value must match the Shape LSID pattern.
func (rc *Rectangle) SetID(id string) error {
	if err := checkLSID("Shape", id); err != nil {
		return err
	}
	rc.node.SetAttr("ID", id)
	return nil
}

// X returns the rectangle's left edge.
func (rc *Rectangle) X() (float64, bool) { return rc.node.FloatAttr("X") }

// SetX sets the rectangle's left edge.
func (rc *Rectangle) SetX(v float64) { rc.node.SetFloatAttr("X", v) }

// Y returns the rectangle's top edge.
func (rc *Rectangle) Y() (float64, bool) { return rc.node.FloatAttr("Y") }

// SetY sets the rectangle's top edge.
func (rc *Rectangle) SetY(v float64) { rc.node.SetFloatAttr("Y", v) }

// Width returns the rectangle's width.
func (rc *Rectangle) Width() (float64, bool) { return rc.node.FloatAttr("Width") }

// SetWidth sets the rectangle's width.
func (rc *Rectangle) SetWidth(v float64) { rc.node.SetFloatAttr("Width", v) }

// Height returns the rectangle's height.
func (rc *Rectangle) Height() (float64, bool) { return rc.node.FloatAttr("Height") }

// SetHeight sets the rectangle's height.
func (rc *Rectangle) SetHeight(v float64) { rc.node.SetFloatAttr("Height", v) }

// TheZ returns the Z index the shape applies to.
func (rc *Rectangle) TheZ() (int, bool) { return rc.node.IntAttr("TheZ") }

// SetTheZ sets the Z index the shape applies to.
func (rc *Rectangle) SetTheZ(v int) { rc.node.SetIntAttr("TheZ", v) }

// TheC returns the channel index the shape applies to.
func (rc *Rectangle) TheC() (int, bool) { return rc.node.IntAttr("TheC") }

// SetTheC sets the channel index the shape applies to.
func (rc *Rectangle) SetTheC(v int) { rc.node.SetIntAttr("TheC", v) }

// TheT returns the T index the shape applies to.
func (rc *Rectangle) TheT() (int, bool) { return rc.node.IntAttr("TheT") }

// SetTheT sets the T index the shape applies to.
func (rc *Rectangle) SetTheT(v int) { rc.node.SetIntAttr("TheT", v) }

// Text returns the shape's label text, or "".
func (rc *Rectangle) Text() string { return rc.node.AttrString("Text") }

// SetText sets the shape's label text.
func (rc *Rectangle) SetText(v string) { rc.node.SetAttr("Text", v) }

// StrokeColor returns the outline color as a signed 32-bit RGBA
// encoding.
func (rc *Rectangle) StrokeColor() (int, bool) { return rc.node.IntAttr("StrokeColor") }

// SetStrokeColor sets the outline color. The value must fit the schema's
// signed 32-bit RGBA encoding (Red=-16776961, Green=16711935,
// Blue=65535).
func (rc *Rectangle) SetStrokeColor(v int64) error {
	if !units.Color(v) {
		return validationErr("StrokeColor", strconv.FormatInt(v, 10), "must fit a signed 32-bit RGBA encoding")
	}
	rc.node.SetAttr("StrokeColor", strconv.FormatInt(v, 10))
	return nil
}

// FillColor returns the fill color as a signed 32-bit RGBA encoding.
func (rc *Rectangle) FillColor() (int, bool) { return rc.node.IntAttr("FillColor") }

// SetFillColor sets the fill color. The value must fit the schema's
// signed 32-bit RGBA encoding.
func (rc *Rectangle) SetFillColor(v int64) error {
	if !units.Color(v) {
		return validationErr("FillColor", strconv.FormatInt(v, 10), "must fit a signed 32-bit RGBA encoding")
	}
	rc.node.SetAttr("FillColor", strconv.FormatInt(v, 10))
	return nil
}

// StrokeWidth returns the outline width.
func (rc *Rectangle) StrokeWidth() (float64, bool) { return rc.node.FloatAttr("StrokeWidth") }

// SetStrokeWidth sets the outline width.
func (rc *Rectangle) SetStrokeWidth(v float64) { rc.node.SetFloatAttr("StrokeWidth", v) }
