package omexml

import (
	"errors"
	"strings"
	"testing"
)

func testPixels(t *testing.T) (*OMEXML, *Pixels) {
	t.Helper()
	o := New()
	if err := o.SetImageCount(1); err != nil {
		t.Fatal(err)
	}
	img, err := o.Image(0)
	if err != nil {
		t.Fatal(err)
	}
	return o, img.Pixels()
}

func TestPixelsValidatedEnums(t *testing.T) {
	_, px := testPixels(t)
	if err := px.SetDimensionOrder(DOXYZCT); err != nil {
		t.Errorf("SetDimensionOrder(%q): %v", DOXYZCT, err)
	}
	var ve *ValidationError
	if err := px.SetDimensionOrder("ZYXCT"); !errors.As(err, &ve) {
		t.Errorf("SetDimensionOrder(bad) = %v, want *ValidationError", err)
	}
	if err := px.SetPixelType(PTUint16); err != nil {
		t.Errorf("SetPixelType(%q): %v", PTUint16, err)
	}
	if err := px.SetPixelType("uint64"); !errors.As(err, &ve) {
		t.Errorf("SetPixelType(bad) = %v, want *ValidationError", err)
	}
	// the failed call must not have touched the tree
	if got := px.PixelType(); got != PTUint16 {
		t.Errorf("PixelType after rejected set = %q, want %q", got, PTUint16)
	}
}

func TestPixelsPhysicalSizes(t *testing.T) {
	_, px := testPixels(t)
	if _, ok := px.PhysicalSizeX(); ok {
		t.Fatal("PhysicalSizeX present on a fresh image")
	}
	px.SetPhysicalSizeX(0.207)
	if v, ok := px.PhysicalSizeX(); !ok || v != 0.207 {
		t.Errorf("PhysicalSizeX = %g, %v", v, ok)
	}
	if err := px.SetPhysicalSizeXUnit("µm"); err != nil {
		t.Errorf("SetPhysicalSizeXUnit(µm): %v", err)
	}
	var ve *ValidationError
	if err := px.SetPhysicalSizeXUnit("furlong"); !errors.As(err, &ve) {
		t.Errorf("SetPhysicalSizeXUnit(furlong) = %v, want *ValidationError", err)
	}
}

func TestTimeIncrementDefaultsToSeconds(t *testing.T) {
	_, px := testPixels(t)
	px.SetTimeIncrement(0.25)
	if got := px.TimeIncrementUnit(); got != "s" {
		t.Errorf("TimeIncrementUnit = %q, want s", got)
	}
	// an explicit unit survives later value writes
	if err := px.SetTimeIncrementUnit("ms"); err != nil {
		t.Fatal(err)
	}
	px.SetTimeIncrement(250)
	if got := px.TimeIncrementUnit(); got != "ms" {
		t.Errorf("TimeIncrementUnit after rewrite = %q, want ms", got)
	}
}

func TestChannelCountSemantics(t *testing.T) {
	_, px := testPixels(t)
	if got := px.ChannelCount(); got != 1 {
		t.Fatalf("fresh image ChannelCount = %d, want 1", got)
	}
	if err := px.SetChannelCount(3); err != nil {
		t.Fatal(err)
	}
	ch, err := px.Channel(0)
	if err != nil {
		t.Fatal(err)
	}
	ch.SetName("DAPI")
	if err := px.SetChannelCount(2); err != nil {
		t.Fatal(err)
	}
	ch, err = px.Channel(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := ch.Name(); got != "DAPI" {
		t.Errorf("channel 0 Name after shrink = %q", got)
	}
	if err := px.SetChannelCount(0); !errors.Is(err, ErrCountTooSmall) {
		t.Errorf("SetChannelCount(0) = %v, want ErrCountTooSmall", err)
	}
	if _, err := px.Channel(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Channel(5) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestNewChannelsGetDefaults(t *testing.T) {
	_, px := testPixels(t)
	if err := px.SetChannelCount(2); err != nil {
		t.Fatal(err)
	}
	ch, err := px.Channel(1)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ch.ID(), "Channel:") {
		t.Errorf("ID = %q, want Channel: prefix", ch.ID())
	}
	if got := ch.Name(); got != ch.ID() {
		t.Errorf("Name = %q, want the ID %q", got, ch.ID())
	}
	if spp, _ := ch.SamplesPerPixel(); spp != 1 {
		t.Errorf("SamplesPerPixel = %d, want 1", spp)
	}
}

func TestPlaneCountAllowsZero(t *testing.T) {
	_, px := testPixels(t)
	if got := px.PlaneCount(); got != 0 {
		t.Fatalf("fresh image PlaneCount = %d, want 0", got)
	}
	if err := px.SetPlaneCount(4); err != nil {
		t.Fatal(err)
	}
	if got := px.PlaneCount(); got != 4 {
		t.Errorf("PlaneCount = %d, want 4", got)
	}
	if err := px.SetPlaneCount(0); err != nil {
		t.Errorf("SetPlaneCount(0): %v", err)
	}
}

func TestSetTiffDataCountAssignsContiguousIFDs(t *testing.T) {
	_, px := testPixels(t)
	if err := px.SetTiffDataCount(5); err != nil {
		t.Fatal(err)
	}
	if got := px.TiffDataCount(); got != 5 {
		t.Fatalf("TiffDataCount = %d, want 5", got)
	}
	for i := 0; i < 5; i++ {
		td, err := px.TiffData(i)
		if err != nil {
			t.Fatal(err)
		}
		if ifd, _ := td.IFD(); ifd != i {
			t.Errorf("TiffData(%d).IFD = %d, want %d", i, ifd, i)
		}
		if pc, _ := td.PlaneCount(); pc != 1 {
			t.Errorf("TiffData(%d).PlaneCount = %d, want 1", i, pc)
		}
	}
}

func TestSetTiffDataCountRebuilds(t *testing.T) {
	_, px := testPixels(t)
	if err := px.SetTiffDataCount(3); err != nil {
		t.Fatal(err)
	}
	td, _ := px.TiffData(0)
	td.SetFirstZ(7)
	// a second call starts over; stale entries do not leak through
	if err := px.SetTiffDataCount(2); err != nil {
		t.Fatal(err)
	}
	td, _ = px.TiffData(0)
	if _, ok := td.FirstZ(); ok {
		t.Error("rebuilt TiffData carries stale FirstZ")
	}
	var ve *ValidationError
	if err := px.SetTiffDataCount(-1); !errors.As(err, &ve) {
		t.Errorf("SetTiffDataCount(-1) = %v, want *ValidationError", err)
	}
}

func TestTiffDataUUID(t *testing.T) {
	_, px := testPixels(t)
	if err := px.SetTiffDataCount(1); err != nil {
		t.Fatal(err)
	}
	td, _ := px.TiffData(0)
	if v, f := td.UUID(); v != "" || f != "" {
		t.Fatalf("fresh TiffData UUID = %q, %q", v, f)
	}
	td.SetUUID("urn:uuid:ef8af211-b6c1-44d4-97de-daca46f16346", "img40_1.ome.tif")
	v, f := td.UUID()
	if v != "urn:uuid:ef8af211-b6c1-44d4-97de-daca46f16346" || f != "img40_1.ome.tif" {
		t.Errorf("UUID = %q, %q", v, f)
	}
}

func TestAbsentPixels(t *testing.T) {
	o, err := Parse(`<OME xmlns="` + NSOME + `"><Image ID="Image:0"/></OME>`)
	if err != nil {
		t.Fatal(err)
	}
	img, err := o.Image(0)
	if err != nil {
		t.Fatal(err)
	}
	px := img.Pixels()
	if px.Present() {
		t.Fatal("Pixels reported present on an image without one")
	}
	if _, ok := px.SizeX(); ok {
		t.Error("SizeX present on absent Pixels")
	}
	if got := px.ChannelCount(); got != 0 {
		t.Errorf("ChannelCount on absent Pixels = %d, want 0", got)
	}
}
