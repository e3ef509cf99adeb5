package omexml

import (
	"errors"
	"strings"
	"testing"
)

func testPlate(t *testing.T) (*OMEXML, *Plate) {
	t.Helper()
	o := New()
	p := o.Plates().New("screen plate 1")
	return o, p
}

func TestPlatesNew(t *testing.T) {
	o := New()
	if got := o.Plates().Len(); got != 0 {
		t.Fatalf("fresh document plate count = %d, want 0", got)
	}
	p := o.Plates().New("screen plate 1")
	if got := o.Plates().Len(); got != 1 {
		t.Fatalf("plate count = %d, want 1", got)
	}
	if !strings.HasPrefix(p.ID(), "Plate:") {
		t.Errorf("ID = %q, want Plate: prefix", p.ID())
	}
	if got := p.Name(); got != "screen plate 1" {
		t.Errorf("Name = %q", got)
	}
	if _, err := o.Plates().At(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestPlateAttributes(t *testing.T) {
	_, p := testPlate(t)
	p.SetStatus("Screened")
	p.SetExternalIdentifier("barcode-0042")
	p.SetRows(8)
	p.SetColumns(12)
	p.SetWellOriginX(0.5)
	p.SetWellOriginY(1.5)
	p.SetDescription("test screen")

	if got := p.Status(); got != "Screened" {
		t.Errorf("Status = %q", got)
	}
	if r, _ := p.Rows(); r != 8 {
		t.Errorf("Rows = %d, want 8", r)
	}
	if c, _ := p.Columns(); c != 12 {
		t.Errorf("Columns = %d, want 12", c)
	}
	if x, _ := p.WellOriginX(); x != 0.5 {
		t.Errorf("WellOriginX = %g, want 0.5", x)
	}
	if got := p.Description(); got != "test screen" {
		t.Errorf("Description = %q", got)
	}
}

func TestPlateNamingConventions(t *testing.T) {
	_, p := testPlate(t)
	if err := p.SetRowNamingConvention(NCLetter); err != nil {
		t.Fatal(err)
	}
	if err := p.SetColumnNamingConvention(NCNumber); err != nil {
		t.Fatal(err)
	}
	var ve *ValidationError
	if err := p.SetRowNamingConvention("roman"); !errors.As(err, &ve) {
		t.Errorf("SetRowNamingConvention(roman) = %v, want *ValidationError", err)
	}
}

func TestWellNameDerivation(t *testing.T) {
	_, p := testPlate(t)
	w := p.Wells().New(1, 2)

	// defaults: letter rows, number columns
	if got := p.WellName(w); got != "B03" {
		t.Errorf("WellName = %q, want B03", got)
	}

	if err := p.SetRowNamingConvention(NCNumber); err != nil {
		t.Fatal(err)
	}
	if got := p.WellName(w); got != "0203" {
		t.Errorf("WellName with number rows = %q, want 0203", got)
	}

	if err := p.SetRowNamingConvention(NCLetter); err != nil {
		t.Fatal(err)
	}
	if err := p.SetColumnNamingConvention(NCLetter); err != nil {
		t.Fatal(err)
	}
	if got := p.WellName(w); got != "BC" {
		t.Errorf("WellName with letter columns = %q, want BC", got)
	}
}

func TestWellsLookup(t *testing.T) {
	_, p := testPlate(t)
	w1 := p.Wells().New(0, 0)
	w2 := p.Wells().New(1, 2)

	if got := p.Wells().Len(); got != 2 {
		t.Fatalf("well count = %d, want 2", got)
	}
	got, ok := p.Wells().ByRowColumn(1, 2)
	if !ok || got.ID() != w2.ID() {
		t.Errorf("ByRowColumn(1,2) found %v", got)
	}
	if _, ok := p.Wells().ByRowColumn(7, 7); ok {
		t.Error("ByRowColumn found a well that does not exist")
	}
	got, ok = p.Wells().ByName("A01")
	if !ok || got.ID() != w1.ID() {
		t.Errorf("ByName(A01) found %v", got)
	}
	// wells are also reachable by ID
	got, ok = p.Wells().ByName(w2.ID())
	if !ok || got.ID() != w2.ID() {
		t.Errorf("ByName(ID) found %v", got)
	}
}

func TestWellAttributes(t *testing.T) {
	_, p := testPlate(t)
	w := p.Wells().New(3, 5)
	if !strings.HasPrefix(w.ID(), "Well:") {
		t.Errorf("ID = %q, want Well: prefix", w.ID())
	}
	if r, _ := w.Row(); r != 3 {
		t.Errorf("Row = %d, want 3", r)
	}
	if c, _ := w.Column(); c != 5 {
		t.Errorf("Column = %d, want 5", c)
	}
	if err := w.SetColor(-16776961); err != nil {
		t.Fatal(err)
	}
	var ve *ValidationError
	if err := w.SetColor(1 << 40); !errors.As(err, &ve) {
		t.Errorf("SetColor(overflow) = %v, want *ValidationError", err)
	}
	w.SetExternalDescription("control well")
	w.SetExternalIdentifier("ext-7")
	if got := w.ExternalDescription(); got != "control well" {
		t.Errorf("ExternalDescription = %q", got)
	}
}

func TestWellSampleIndexAllocation(t *testing.T) {
	_, p := testPlate(t)
	w := p.Wells().New(0, 0)

	s0 := w.Samples().New()
	s1 := w.Samples().New()
	if i, _ := s0.Index(); i != 0 {
		t.Errorf("first sample Index = %d, want 0", i)
	}
	if i, _ := s1.Index(); i != 1 {
		t.Errorf("second sample Index = %d, want 1", i)
	}
	// allocation continues past a manually assigned index
	s1.SetIndex(9)
	s2 := w.Samples().New()
	if i, _ := s2.Index(); i != 10 {
		t.Errorf("third sample Index = %d, want 10", i)
	}
	if got := w.Samples().Len(); got != 3 {
		t.Errorf("sample count = %d, want 3", got)
	}
}

func TestWellSampleImageRef(t *testing.T) {
	o, p := testPlate(t)
	if err := o.SetImageCount(1); err != nil {
		t.Fatal(err)
	}
	img, _ := o.Image(0)

	s := p.Wells().New(0, 0).Samples().New()
	s.SetPositionX(12.5)
	s.SetPositionY(-3)
	s.SetTimepoint("2016-01-21T08:34:08")
	if err := s.SetImageRef(img.ID()); err != nil {
		t.Fatal(err)
	}
	if got := s.ImageRef(); got != img.ID() {
		t.Errorf("ImageRef = %q, want %q", got, img.ID())
	}
	var ve *ValidationError
	if err := s.SetImageRef("Plate:0"); !errors.As(err, &ve) {
		t.Errorf("SetImageRef(wrong restriction) = %v, want *ValidationError", err)
	}
}

func TestPlateRoundTrip(t *testing.T) {
	o, p := testPlate(t)
	p.SetRows(8)
	w := p.Wells().New(1, 2)
	w.Samples().New()

	xml, err := o.ToXML()
	if err != nil {
		t.Fatal(err)
	}
	// SPW elements carry their own namespace prefix
	if !strings.Contains(xml, "spw:Plate") {
		t.Errorf("serialized output missing spw:Plate: %s", xml)
	}
	back, err := Parse(xml)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := back.Plates().At(0)
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := p2.Rows(); r != 8 {
		t.Errorf("Rows after round trip = %d, want 8", r)
	}
	w2, ok := p2.Wells().ByRowColumn(1, 2)
	if !ok {
		t.Fatal("well lost in round trip")
	}
	if got := w2.Samples().Len(); got != 1 {
		t.Errorf("sample count after round trip = %d, want 1", got)
	}
}
