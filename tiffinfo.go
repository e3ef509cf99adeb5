package omexml

import (
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/tiff"
)

// ReadGeometry reads the header of a TIFF stream and copies its geometry
// onto the Pixels element: SizeX and SizeY from the first directory's
// extents, and the pixel Type from the sample depth (16-bit samples map
// to PTUint16, everything else to PTUint8). Only the header is decoded;
// pixel data is not read.
func (p *Pixels) ReadGeometry(r io.Reader) error {
	cfg, err := tiff.DecodeConfig(r)
	if err != nil {
		return &ParseError{Err: fmt.Errorf("reading tiff header: %w", err)}
	}
	p.SetSizeX(cfg.Width)
	p.SetSizeY(cfg.Height)
	switch cfg.ColorModel {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model:
		return p.SetPixelType(PTUint16)
	default:
		return p.SetPixelType(PTUint8)
	}
}
