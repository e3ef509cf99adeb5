package omexml

import (
	"fmt"
	"strconv"

	"github.com/openmicro/omexml/core"
	"github.com/openmicro/omexml/units"
)

var dimensionOrders = map[string]struct{}{
	DOXYZCT: {}, DOXYZTC: {}, DOXYCTZ: {}, DOXYCZT: {}, DOXYTCZ: {}, DOXYTZC: {},
}

var pixelTypes = map[string]struct{}{
	PTInt8: {}, PTInt16: {}, PTInt32: {},
	PTUint8: {}, PTUint16: {}, PTUint32: {},
	PTFloat: {}, PTBit: {}, PTDouble: {}, PTComplex: {}, PTDoubleComplex: {},
}

// Pixels represents the OME/Image/Pixels element: the X, Y, Z, C and T
// extents of the image, the channel interleaving and depth, and the
// Channel, Plane and TiffData collections.
type Pixels struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (p *Pixels) Node() core.Node { return p.node }

// Present reports whether the image actually carries a Pixels element.
func (p *Pixels) Present() bool { return p.node.Present() }

// ID returns the Pixels LSID, or "" when absent.
func (p *Pixels) ID() string { return p.node.AttrString("ID") }

// SetID sets the Pixels LSID. The value must match the Pixels LSID
// pattern.
func (p *Pixels) SetID(id string) error {
	if err := checkLSID("Pixels", id); err != nil {
		return err
	}
	p.node.SetAttr("ID", id)
	return nil
}

// DimensionOrder returns the plane ordering code (e.g. "XYCZT"), or "".
func (p *Pixels) DimensionOrder() string { return p.node.AttrString("DimensionOrder") }

// SetDimensionOrder sets the plane ordering. The value must be one of the
// six DO* orders.
func (p *Pixels) SetDimensionOrder(v string) error {
	if _, ok := dimensionOrders[v]; !ok {
		return validationErr("DimensionOrder", v, "must be one of the XY??? dimension orders")
	}
	p.node.SetAttr("DimensionOrder", v)
	return nil
}

// PixelType returns the pixel datatype (the Type attribute), e.g.
// PTUint8, or "".
func (p *Pixels) PixelType() string { return p.node.AttrString("Type") }

// SetPixelType sets the pixel datatype. The value must be one of the PT*
// types.
func (p *Pixels) SetPixelType(v string) error {
	if _, ok := pixelTypes[v]; !ok {
		return validationErr("Type", v, "must be one of the OME pixel types")
	}
	p.node.SetAttr("Type", v)
	return nil
}

// SizeX returns the image extent in X in pixels.
func (p *Pixels) SizeX() (int, bool) { return p.node.IntAttr("SizeX") }

// SetSizeX sets the image extent in X in pixels.
func (p *Pixels) SetSizeX(v int) { p.node.SetIntAttr("SizeX", v) }

// SizeY returns the image extent in Y in pixels.
func (p *Pixels) SizeY() (int, bool) { return p.node.IntAttr("SizeY") }

// SetSizeY sets the image extent in Y in pixels.
func (p *Pixels) SetSizeY(v int) { p.node.SetIntAttr("SizeY", v) }

// SizeZ returns the image extent in Z (focal planes).
func (p *Pixels) SizeZ() (int, bool) { return p.node.IntAttr("SizeZ") }

// SetSizeZ sets the image extent in Z.
func (p *Pixels) SetSizeZ(v int) { p.node.SetIntAttr("SizeZ", v) }

// SizeC returns the number of channels.
func (p *Pixels) SizeC() (int, bool) { return p.node.IntAttr("SizeC") }

// SetSizeC sets the number of channels.
func (p *Pixels) SetSizeC(v int) { p.node.SetIntAttr("SizeC", v) }

// SizeT returns the number of timepoints.
func (p *Pixels) SizeT() (int, bool) { return p.node.IntAttr("SizeT") }

// SetSizeT sets the number of timepoints.
func (p *Pixels) SetSizeT(v int) { p.node.SetIntAttr("SizeT", v) }

// PhysicalSizeX returns the length of a single pixel in X.
func (p *Pixels) PhysicalSizeX() (float64, bool) { return p.node.FloatAttr("PhysicalSizeX") }

// SetPhysicalSizeX sets the length of a single pixel in X. Units are set
// separately by SetPhysicalSizeXUnit; no default unit is injected.
func (p *Pixels) SetPhysicalSizeX(v float64) { p.node.SetFloatAttr("PhysicalSizeX", v) }

// PhysicalSizeXUnit returns the unit of PhysicalSizeX, or "".
func (p *Pixels) PhysicalSizeXUnit() string { return p.node.AttrString("PhysicalSizeXUnit") }

// SetPhysicalSizeXUnit sets the unit of PhysicalSizeX; the value must be
// an accepted length unit.
func (p *Pixels) SetPhysicalSizeXUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PhysicalSizeXUnit", u, "not an accepted length unit")
	}
	p.node.SetAttr("PhysicalSizeXUnit", u)
	return nil
}

// PhysicalSizeY returns the length of a single pixel in Y.
func (p *Pixels) PhysicalSizeY() (float64, bool) { return p.node.FloatAttr("PhysicalSizeY") }

// SetPhysicalSizeY sets the length of a single pixel in Y.
func (p *Pixels) SetPhysicalSizeY(v float64) { p.node.SetFloatAttr("PhysicalSizeY", v) }

// PhysicalSizeYUnit returns the unit of PhysicalSizeY, or "".
func (p *Pixels) PhysicalSizeYUnit() string { return p.node.AttrString("PhysicalSizeYUnit") }

// SetPhysicalSizeYUnit sets the unit of PhysicalSizeY; the value must be
// an accepted length unit.
func (p *Pixels) SetPhysicalSizeYUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PhysicalSizeYUnit", u, "not an accepted length unit")
	}
	p.node.SetAttr("PhysicalSizeYUnit", u)
	return nil
}

// PhysicalSizeZ returns the size of a voxel in Z, absent for 2D images.
func (p *Pixels) PhysicalSizeZ() (float64, bool) { return p.node.FloatAttr("PhysicalSizeZ") }

// SetPhysicalSizeZ sets the size of a voxel in Z.
func (p *Pixels) SetPhysicalSizeZ(v float64) { p.node.SetFloatAttr("PhysicalSizeZ", v) }

// PhysicalSizeZUnit returns the unit of PhysicalSizeZ, or "".
func (p *Pixels) PhysicalSizeZUnit() string { return p.node.AttrString("PhysicalSizeZUnit") }

// SetPhysicalSizeZUnit sets the unit of PhysicalSizeZ; the value must be
// an accepted length unit.
func (p *Pixels) SetPhysicalSizeZUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PhysicalSizeZUnit", u, "not an accepted length unit")
	}
	p.node.SetAttr("PhysicalSizeZUnit", u)
	return nil
}

// TimeIncrement returns the time between timepoints.
func (p *Pixels) TimeIncrement() (float64, bool) { return p.node.FloatAttr("TimeIncrement") }

// SetTimeIncrement sets the time between timepoints. If no
// TimeIncrementUnit is present yet, it defaults to seconds.
func (p *Pixels) SetTimeIncrement(v float64) {
	p.node.SetFloatAttr("TimeIncrement", v)
	if p.TimeIncrementUnit() == "" {
		p.node.SetAttr("TimeIncrementUnit", "s")
	}
}

// TimeIncrementUnit returns the unit of TimeIncrement, or "".
func (p *Pixels) TimeIncrementUnit() string { return p.node.AttrString("TimeIncrementUnit") }

// SetTimeIncrementUnit sets the unit of TimeIncrement; the value must be
// an accepted time unit.
func (p *Pixels) SetTimeIncrementUnit(u string) error {
	if !units.ValidTime(u) {
		return validationErr("TimeIncrementUnit", u, "not an accepted time unit")
	}
	p.node.SetAttr("TimeIncrementUnit", u)
	return nil
}

// channels is the Pixels/Channel collection. New channels get a generated
// LSID, the ID as their name, and SamplesPerPixel 1.
func (p *Pixels) channels() core.Seq {
	return core.Seq{Parent: p.node, URI: p.ns.OME, Local: "Channel", Min: 1,
		Init: func(i int, n core.Node) {
			id := newLSID("Channel")
			n.SetAttr("ID", id)
			n.SetAttr("Name", id)
			n.SetIntAttr("SamplesPerPixel", 1)
		}}
}

// ChannelCount returns the number of channels under the Pixels element.
func (p *Pixels) ChannelCount() int {
	return p.channels().Len()
}

// SetChannelCount adds or removes Channel nodes as needed. An image needs
// at least one channel, so n < 1 is rejected. Existing lower-indexed
// channels are never disturbed.
func (p *Pixels) SetChannelCount(n int) error {
	return p.channels().Resize(n)
}

// Channel returns the indexed channel.
func (p *Pixels) Channel(i int) (*Channel, error) {
	n, err := p.channels().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Channel{node: n, ns: p.ns}, nil
}

// planes is the Pixels/Plane collection. Planes are created bare; the
// caller assigns TheZ/TheC/TheT and the rest.
func (p *Pixels) planes() core.Seq {
	return core.Seq{Parent: p.node, URI: p.ns.OME, Local: "Plane"}
}

// PlaneCount returns the number of planes under the Pixels element. An
// image with a single interleaved plane will often have none.
func (p *Pixels) PlaneCount() int {
	return p.planes().Len()
}

// SetPlaneCount adds or removes Plane nodes as needed; zero is allowed.
func (p *Pixels) SetPlaneCount(n int) error {
	return p.planes().Resize(n)
}

// Plane returns the indexed plane.
func (p *Pixels) Plane(i int) (*Plane, error) {
	n, err := p.planes().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Plane{node: n, ns: p.ns}, nil
}

// tiffData is the Pixels/TiffData collection.
func (p *Pixels) tiffData() core.Seq {
	return core.Seq{Parent: p.node, URI: p.ns.OME, Local: "TiffData"}
}

// TiffDataCount returns the number of TiffData entries.
func (p *Pixels) TiffDataCount() int {
	return p.tiffData().Len()
}

// SetTiffDataCount rebuilds the explicit plane-to-IFD mapping: any
// existing TiffData entries are removed and n fresh ones are written,
// entry i carrying IFD=i and PlaneCount=1 (one TiffData per 2-dimensional
// plane). Callers may overwrite IFD and the First* indices on individual
// entries afterwards. With no TiffData entries at all, readers assume
// implicit plane ordering.
func (p *Pixels) SetTiffDataCount(n int) error {
	if n < 0 {
		return validationErr("TiffData count", strconv.Itoa(n), "must not be negative")
	}
	seq := p.tiffData()
	seq.RemoveAll()
	for i := 0; i < n; i++ {
		td := p.node.CreateChild(p.ns.OME, "TiffData")
		td.SetIntAttr("IFD", i)
		td.SetIntAttr("PlaneCount", 1)
	}
	return nil
}

// TiffData returns the indexed TiffData entry, in document (and
// therefore IFD-assignment) order.
func (p *Pixels) TiffData(i int) (*TiffData, error) {
	n, err := p.tiffData().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &TiffData{node: n, ns: p.ns}, nil
}
