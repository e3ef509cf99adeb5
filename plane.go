package omexml

import (
	"github.com/openmicro/omexml/core"
	"github.com/openmicro/omexml/units"
)

// Plane represents the OME/Image/Pixels/Plane element: one 2-dimensional
// image plane with its Z, C and T indices and, optionally, stage
// position, exposure time and a relative time delta.
type Plane struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (pl *Plane) Node() core.Node { return pl.node }

// TheZ returns the Z index of the plane.
func (pl *Plane) TheZ() (int, bool) { return pl.node.IntAttr("TheZ") }

// SetTheZ sets the Z index of the plane.
func (pl *Plane) SetTheZ(v int) { pl.node.SetIntAttr("TheZ", v) }

// TheC returns the channel index of the plane.
func (pl *Plane) TheC() (int, bool) { return pl.node.IntAttr("TheC") }

// SetTheC sets the channel index of the plane.
func (pl *Plane) SetTheC(v int) { pl.node.SetIntAttr("TheC", v) }

// TheT returns the T index of the plane.
func (pl *Plane) TheT() (int, bool) { return pl.node.IntAttr("TheT") }

// SetTheT sets the T index of the plane.
func (pl *Plane) SetTheT(v int) { pl.node.SetIntAttr("TheT", v) }

// DeltaT returns the time since the beginning of the experiment.
func (pl *Plane) DeltaT() (float64, bool) { return pl.node.FloatAttr("DeltaT") }

// SetDeltaT sets the time since the beginning of the experiment.
func (pl *Plane) SetDeltaT(v float64) { pl.node.SetFloatAttr("DeltaT", v) }

// DeltaTUnit returns the unit of DeltaT, or "".
func (pl *Plane) DeltaTUnit() string { return pl.node.AttrString("DeltaTUnit") }

// SetDeltaTUnit sets the unit of DeltaT; the value must be an accepted
// time unit.
func (pl *Plane) SetDeltaTUnit(u string) error {
	if !units.ValidTime(u) {
		return validationErr("DeltaTUnit", u, "not an accepted time unit")
	}
	pl.node.SetAttr("DeltaTUnit", u)
	return nil
}

// ExposureTime returns the plane's acquisition duration.
func (pl *Plane) ExposureTime() (float64, bool) { return pl.node.FloatAttr("ExposureTime") }

// SetExposureTime sets the plane's acquisition duration. Units are set
// separately by SetExposureTimeUnit.
func (pl *Plane) SetExposureTime(v float64) { pl.node.SetFloatAttr("ExposureTime", v) }

// ExposureTimeUnit returns the unit of the exposure time, or "".
func (pl *Plane) ExposureTimeUnit() string { return pl.node.AttrString("ExposureTimeUnit") }

// SetExposureTimeUnit sets the unit of the exposure time; the value must
// be an accepted time unit.
func (pl *Plane) SetExposureTimeUnit(u string) error {
	if !units.ValidTime(u) {
		return validationErr("ExposureTimeUnit", u, "not an accepted time unit")
	}
	pl.node.SetAttr("ExposureTimeUnit", u)
	return nil
}

// PositionX returns the X position of the stage.
func (pl *Plane) PositionX() (float64, bool) { return pl.node.FloatAttr("PositionX") }

// SetPositionX sets the X position of the stage. The unit is a separate,
// paired attribute; no default unit is injected, so set both to produce
// a namespace-compliant plane.
func (pl *Plane) SetPositionX(v float64) { pl.node.SetFloatAttr("PositionX", v) }

// PositionXUnit returns the unit of PositionX, or "".
func (pl *Plane) PositionXUnit() string { return pl.node.AttrString("PositionXUnit") }

// SetPositionXUnit sets the unit of PositionX; the value must be an
// accepted length unit.
func (pl *Plane) SetPositionXUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PositionXUnit", u, "not an accepted length unit")
	}
	pl.node.SetAttr("PositionXUnit", u)
	return nil
}

// PositionY returns the Y position of the stage.
func (pl *Plane) PositionY() (float64, bool) { return pl.node.FloatAttr("PositionY") }

// SetPositionY sets the Y position of the stage.
func (pl *Plane) SetPositionY(v float64) { pl.node.SetFloatAttr("PositionY", v) }

// PositionYUnit returns the unit of PositionY, or "".
func (pl *Plane) PositionYUnit() string { return pl.node.AttrString("PositionYUnit") }

// SetPositionYUnit sets the unit of PositionY; the value must be an
// accepted length unit.
func (pl *Plane) SetPositionYUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PositionYUnit", u, "not an accepted length unit")
	}
	pl.node.SetAttr("PositionYUnit", u)
	return nil
}

// PositionZ returns the Z position of the stage.
func (pl *Plane) PositionZ() (float64, bool) { return pl.node.FloatAttr("PositionZ") }

// SetPositionZ sets the Z position of the stage.
func (pl *Plane) SetPositionZ(v float64) { pl.node.SetFloatAttr("PositionZ", v) }

// PositionZUnit returns the unit of PositionZ, or "".
func (pl *Plane) PositionZUnit() string { return pl.node.AttrString("PositionZUnit") }

// SetPositionZUnit sets the unit of PositionZ; the value must be an
// accepted length unit.
func (pl *Plane) SetPositionZUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PositionZUnit", u, "not an accepted length unit")
	}
	pl.node.SetAttr("PositionZUnit", u)
	return nil
}

// TiffData represents the OME/Image/Pixels/TiffData element, mapping one
// plane to a specific IFD within the TIFF file:
//
//	<TiffData FirstC="0" FirstT="0" FirstZ="0" IFD="0" PlaneCount="1">
//	    <UUID FileName="img40_1.ome.tif">urn:uuid:ef8af211-…</UUID>
//	</TiffData>
type TiffData struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (td *TiffData) Node() core.Node { return td.node }

// FirstZ returns the Z index of the first plane in this entry.
func (td *TiffData) FirstZ() (int, bool) { return td.node.IntAttr("FirstZ") }

// SetFirstZ sets the Z index of the first plane in this entry.
func (td *TiffData) SetFirstZ(v int) { td.node.SetIntAttr("FirstZ", v) }

// FirstC returns the channel index of the first plane in this entry.
func (td *TiffData) FirstC() (int, bool) { return td.node.IntAttr("FirstC") }

// SetFirstC sets the channel index of the first plane in this entry.
func (td *TiffData) SetFirstC(v int) { td.node.SetIntAttr("FirstC", v) }

// FirstT returns the T index of the first plane in this entry.
func (td *TiffData) FirstT() (int, bool) { return td.node.IntAttr("FirstT") }

// SetFirstT sets the T index of the first plane in this entry.
func (td *TiffData) SetFirstT(v int) { td.node.SetIntAttr("FirstT", v) }

// IFD returns the plane's directory index within the TIFF file.
func (td *TiffData) IFD() (int, bool) { return td.node.IntAttr("IFD") }

// SetIFD sets the plane's directory index within the TIFF file.
func (td *TiffData) SetIFD(v int) { td.node.SetIntAttr("IFD", v) }

// PlaneCount returns the number of planes this entry covers; one per
// 2-dimensional plane in the layout this package writes.
func (td *TiffData) PlaneCount() (int, bool) { return td.node.IntAttr("PlaneCount") }

// SetPlaneCount sets the number of planes this entry covers.
func (td *TiffData) SetPlaneCount(v int) { td.node.SetIntAttr("PlaneCount", v) }

// UUID returns the urn:uuid text of the child UUID element and the
// FileName it carries, both "" when absent.
func (td *TiffData) UUID() (value, fileName string) {
	c := td.node.Child(td.ns.OME, "UUID")
	return c.Text(), c.AttrString("FileName")
}

// SetUUID sets the child UUID element's urn:uuid text and FileName,
// creating the element if absent.
func (td *TiffData) SetUUID(value, fileName string) {
	c := td.node.EnsureChild(td.ns.OME, "UUID")
	c.SetText(value)
	c.SetAttr("FileName", fileName)
}
