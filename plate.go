package omexml

import (
	"fmt"
	"strconv"

	"github.com/openmicro/omexml/core"
	"github.com/openmicro/omexml/units"
)

// Plates is the document's SPW Plate collection.
type Plates struct {
	root core.Node
	ns   core.NSSet
}

func (ps Plates) seq() core.Seq {
	return core.Seq{Parent: ps.root, URI: ps.ns.SPW, Local: "Plate"}
}

// Len returns the number of plates in the document.
func (ps Plates) Len() int {
	return ps.seq().Len()
}

// At returns the indexed plate.
func (ps Plates) At(i int) (*Plate, error) {
	n, err := ps.seq().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Plate{node: n, ns: ps.ns}, nil
}

// New appends a plate with the given name and a generated ID.
func (ps Plates) New(name string) *Plate {
	n := ps.root.CreateChild(ps.ns.SPW, "Plate")
	n.SetAttr("ID", newLSID("Plate"))
	n.SetAttr("Name", name)
	return &Plate{node: n, ns: ps.ns}
}

// Plate represents the SPW:Plate element.
type Plate struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (p *Plate) Node() core.Node { return p.node }

// ID returns the plate's LSID, or "" when absent.
func (p *Plate) ID() string { return p.node.AttrString("ID") }

// SetID sets the plate's LSID.
func (p *Plate) SetID(id string) error {
	if err := checkLSID("Plate", id); err != nil {
		return err
	}
	p.node.SetAttr("ID", id)
	return nil
}

// Name returns the plate's name, or "".
func (p *Plate) Name() string { return p.node.AttrString("Name") }

// SetName sets the plate's name.
func (p *Plate) SetName(v string) { p.node.SetAttr("Name", v) }

// Status returns the plate's status, or "".
func (p *Plate) Status() string { return p.node.AttrString("Status") }

// SetStatus sets the plate's status.
func (p *Plate) SetStatus(v string) { p.node.SetAttr("Status", v) }

// ExternalIdentifier returns the plate's external identifier, or "".
func (p *Plate) ExternalIdentifier() string { return p.node.AttrString("ExternalIdentifier") }

// SetExternalIdentifier sets the plate's external identifier.
func (p *Plate) SetExternalIdentifier(v string) { p.node.SetAttr("ExternalIdentifier", v) }

// RowNamingConvention returns the row naming convention, or "" (treated
// as NCLetter when deriving well names).
func (p *Plate) RowNamingConvention() string { return p.node.AttrString("RowNamingConvention") }

// SetRowNamingConvention sets the row naming convention to NCLetter or
// NCNumber.
func (p *Plate) SetRowNamingConvention(v string) error {
	if v != NCLetter && v != NCNumber {
		return validationErr("RowNamingConvention", v, "must be letter or number")
	}
	p.node.SetAttr("RowNamingConvention", v)
	return nil
}

// ColumnNamingConvention returns the column naming convention, or ""
// (treated as NCNumber when deriving well names).
func (p *Plate) ColumnNamingConvention() string {
	return p.node.AttrString("ColumnNamingConvention")
}

// SetColumnNamingConvention sets the column naming convention to
// NCLetter or NCNumber.
func (p *Plate) SetColumnNamingConvention(v string) error {
	if v != NCLetter && v != NCNumber {
		return validationErr("ColumnNamingConvention", v, "must be letter or number")
	}
	p.node.SetAttr("ColumnNamingConvention", v)
	return nil
}

// WellOriginX returns the X origin of the well grid.
func (p *Plate) WellOriginX() (float64, bool) { return p.node.FloatAttr("WellOriginX") }

// SetWellOriginX sets the X origin of the well grid.
func (p *Plate) SetWellOriginX(v float64) { p.node.SetFloatAttr("WellOriginX", v) }

// WellOriginY returns the Y origin of the well grid.
func (p *Plate) WellOriginY() (float64, bool) { return p.node.FloatAttr("WellOriginY") }

// SetWellOriginY sets the Y origin of the well grid.
func (p *Plate) SetWellOriginY(v float64) { p.node.SetFloatAttr("WellOriginY", v) }

// Rows returns the number of rows on the plate.
func (p *Plate) Rows() (int, bool) { return p.node.IntAttr("Rows") }

// SetRows sets the number of rows on the plate.
func (p *Plate) SetRows(v int) { p.node.SetIntAttr("Rows", v) }

// Columns returns the number of columns on the plate.
func (p *Plate) Columns() (int, bool) { return p.node.IntAttr("Columns") }

// SetColumns sets the number of columns on the plate.
func (p *Plate) SetColumns(v int) { p.node.SetIntAttr("Columns", v) }

// Description returns the plate description text, or "".
func (p *Plate) Description() string {
	v, _ := p.node.TextChild(p.ns.SPW, "Description")
	return v
}

// SetDescription sets the plate description, creating the element if
// needed.
func (p *Plate) SetDescription(text string) {
	p.node.SetTextChild(p.ns.SPW, "Description", text)
}

// Wells returns the plate's well collection.
func (p *Plate) Wells() Wells {
	return Wells{plate: p}
}

// WellName derives a well's display name from the plate's row and column
// conventions, e.g. "B03" for row 1, column 2 under the standard
// letter-row, number-column conventions.
func (p *Plate) WellName(w *Well) string {
	row, _ := w.Row()
	col, _ := w.Column()
	rc := p.RowNamingConvention()
	if rc == "" {
		rc = NCLetter
	}
	cc := p.ColumnNamingConvention()
	if cc == "" {
		cc = NCNumber
	}
	return wellIndexName(row, rc) + wellIndexName(col, cc)
}

func wellIndexName(i int, convention string) string {
	if convention == NCNumber {
		return fmt.Sprintf("%02d", i+1)
	}
	const letters = "ABCDEFGHIJKLMNOP"
	if i < 0 || i >= len(letters) {
		return "?"
	}
	return string(letters[i])
}

// Wells lets you retrieve and create the wells of one plate, by index,
// by derived name ("B03"), by row and column, or by ID.
type Wells struct {
	plate *Plate
}

func (ws Wells) seq() core.Seq {
	return core.Seq{Parent: ws.plate.node, URI: ws.plate.ns.SPW, Local: "Well"}
}

// Len returns the number of wells on the plate.
func (ws Wells) Len() int {
	return ws.seq().Len()
}

// At returns the indexed well as it appears in the XML.
func (ws Wells) At(i int) (*Well, error) {
	n, err := ws.seq().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Well{node: n, ns: ws.plate.ns}, nil
}

// ByRowColumn returns the well at the given row and column indices.
func (ws Wells) ByRowColumn(row, column int) (*Well, bool) {
	for _, n := range ws.plate.node.Children(ws.plate.ns.SPW, "Well") {
		w := &Well{node: n, ns: ws.plate.ns}
		r, _ := w.Row()
		c, _ := w.Column()
		if r == row && c == column {
			return w, true
		}
	}
	return nil, false
}

// ByName returns the well whose derived name (per the plate's naming
// conventions) or ID matches name.
func (ws Wells) ByName(name string) (*Well, bool) {
	for _, n := range ws.plate.node.Children(ws.plate.ns.SPW, "Well") {
		w := &Well{node: n, ns: ws.plate.ns}
		if ws.plate.WellName(w) == name || w.ID() == name {
			return w, true
		}
	}
	return nil, false
}

// New creates a well at the given row and column with a generated ID.
func (ws Wells) New(row, column int) *Well {
	n := ws.plate.node.CreateChild(ws.plate.ns.SPW, "Well")
	w := &Well{node: n, ns: ws.plate.ns}
	w.SetRow(row)
	w.SetColumn(column)
	n.SetAttr("ID", newLSID("Well"))
	return w
}

// Well represents the SPW:Well element: one location on a plate.
type Well struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (w *Well) Node() core.Node { return w.node }

// ID returns the well's LSID, or "" when absent.
func (w *Well) ID() string { return w.node.AttrString("ID") }

// SetID sets the well's LSID.
func (w *Well) SetID(id string) error {
	if err := checkLSID("Well", id); err != nil {
		return err
	}
	w.node.SetAttr("ID", id)
	return nil
}

// Row returns the well's row index.
func (w *Well) Row() (int, bool) { return w.node.IntAttr("Row") }

// SetRow sets the well's row index.
func (w *Well) SetRow(v int) { w.node.SetIntAttr("Row", v) }

// Column returns the well's column index.
func (w *Well) Column() (int, bool) { return w.node.IntAttr("Column") }

// SetColumn sets the well's column index.
func (w *Well) SetColumn(v int) { w.node.SetIntAttr("Column", v) }

// Color returns the well's display color as a signed 32-bit RGBA
// encoding.
func (w *Well) Color() (int, bool) { return w.node.IntAttr("Color") }

// SetColor sets the well's display color.
func (w *Well) SetColor(v int64) error {
	if !units.Color(v) {
		return validationErr("Color", strconv.FormatInt(v, 10), "must fit a signed 32-bit RGBA encoding")
	}
	w.node.SetAttr("Color", strconv.FormatInt(v, 10))
	return nil
}

// ExternalDescription returns the well's external description, or "".
func (w *Well) ExternalDescription() string { return w.node.AttrString("ExternalDescription") }

// SetExternalDescription sets the well's external description.
func (w *Well) SetExternalDescription(v string) { w.node.SetAttr("ExternalDescription", v) }

// ExternalIdentifier returns the well's external identifier, or "".
func (w *Well) ExternalIdentifier() string { return w.node.AttrString("ExternalIdentifier") }

// SetExternalIdentifier sets the well's external identifier.
func (w *Well) SetExternalIdentifier(v string) { w.node.SetAttr("ExternalIdentifier", v) }

// Samples returns the well's sample collection.
func (w *Well) Samples() WellSamples {
	return WellSamples{well: w}
}

// WellSamples lets you retrieve and create the imaged sites within one
// well.
type WellSamples struct {
	well *Well
}

func (ss WellSamples) seq() core.Seq {
	return core.Seq{Parent: ss.well.node, URI: ss.well.ns.SPW, Local: "WellSample"}
}

// Len returns the number of samples in the well.
func (ss WellSamples) Len() int {
	return ss.seq().Len()
}

// At returns the indexed sample.
func (ss WellSamples) At(i int) (*WellSample, error) {
	n, err := ss.seq().At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &WellSample{node: n, ns: ss.well.ns}, nil
}

// New creates a well sample with a generated ID and the next free Index
// (one past the largest in the well, starting at 0).
func (ss WellSamples) New() *WellSample {
	next := 0
	for _, n := range ss.well.node.Children(ss.well.ns.SPW, "WellSample") {
		if idx, ok := n.IntAttr("Index"); ok && idx+1 > next {
			next = idx + 1
		}
	}
	n := ss.well.node.CreateChild(ss.well.ns.SPW, "WellSample")
	n.SetAttr("ID", newLSID("WellSample"))
	n.SetIntAttr("Index", next)
	return &WellSample{node: n, ns: ss.well.ns}
}

// WellSample represents the SPW:WellSample element: one imaged location
// within a well.
type WellSample struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (s *WellSample) Node() core.Node { return s.node }

// ID returns the sample's LSID, or "" when absent.
func (s *WellSample) ID() string { return s.node.AttrString("ID") }

// SetID sets the sample's LSID.
func (s *WellSample) SetID(id string) error {
	if err := checkLSID("WellSample", id); err != nil {
		return err
	}
	s.node.SetAttr("ID", id)
	return nil
}

// Index returns the sample's acquisition index within the plate.
func (s *WellSample) Index() (int, bool) { return s.node.IntAttr("Index") }

// SetIndex sets the sample's acquisition index.
func (s *WellSample) SetIndex(v int) { s.node.SetIntAttr("Index", v) }

// PositionX returns the sample's X position within the well.
func (s *WellSample) PositionX() (float64, bool) { return s.node.FloatAttr("PositionX") }

// SetPositionX sets the sample's X position within the well.
func (s *WellSample) SetPositionX(v float64) { s.node.SetFloatAttr("PositionX", v) }

// PositionY returns the sample's Y position within the well.
func (s *WellSample) PositionY() (float64, bool) { return s.node.FloatAttr("PositionY") }

// SetPositionY sets the sample's Y position within the well.
func (s *WellSample) SetPositionY(v float64) { s.node.SetFloatAttr("PositionY", v) }

// Timepoint returns the sample's acquisition timepoint, or "".
func (s *WellSample) Timepoint() string { return s.node.AttrString("Timepoint") }

// SetTimepoint sets the sample's acquisition timepoint (xsd:dateTime
// form).
func (s *WellSample) SetTimepoint(v string) { s.node.SetAttr("Timepoint", v) }

// ImageRef returns the ID of the image acquired at this site, or "".
func (s *WellSample) ImageRef() string {
	return s.node.Child(s.ns.SPW, "ImageRef").AttrString("ID")
}

// SetImageRef points the sample at an image by ID.
func (s *WellSample) SetImageRef(id string) error {
	if err := checkLSID("Image", id); err != nil {
		return err
	}
	s.node.EnsureChild(s.ns.SPW, "ImageRef").SetAttr("ID", id)
	return nil
}
