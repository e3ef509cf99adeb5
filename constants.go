package omexml

import "fmt"

// Namespace URIs written into documents built from scratch. Parsed
// documents keep whatever OME schema namespaces they declare; these are
// the compatibility constants downstream tools (Bio-Formats and friends)
// expect for newly assembled metadata.
const (
	NSOME = "http://www.openmicroscopy.org/Schemas/OME/2013-06"
	NSSA  = "http://www.openmicroscopy.org/Schemas/SA/2013-06"
	NSSPW = "http://www.openmicroscopy.org/Schemas/SPW/2013-06"

	// NSOriginalMetadata qualifies the key/value OriginalMetadata
	// elements carried inside XMLAnnotation values.
	NSOriginalMetadata = "openmicroscopy.org/OriginalMetadata"
)

// DimensionOrder values: the ordering of image planes in the file, from
// most rapidly varying to least.
const (
	DOXYZCT = "XYZCT"
	DOXYZTC = "XYZTC"
	DOXYCTZ = "XYCTZ"
	DOXYCZT = "XYCZT"
	DOXYTCZ = "XYTCZ"
	DOXYTZC = "XYTZC"
)

// Pixels Type values: the datatype used to encode pixels in the image
// data.
const (
	PTInt8          = "int8"
	PTInt16         = "int16"
	PTInt32         = "int32"
	PTUint8         = "uint8"
	PTUint16        = "uint16"
	PTUint32        = "uint32"
	PTFloat         = "float"
	PTBit           = "bit"
	PTDouble        = "double"
	PTComplex       = "complex"
	PTDoubleComplex = "double-complex"
)

// Plate row/column naming conventions.
const (
	NCLetter = "letter"
	NCNumber = "number"
)

// Original metadata keys for TIFF tag values that have no direct OME-XML
// representation.
const (
	OMSamplesPerPixel           = "SamplesPerPixel"
	OMBitsPerSample             = "BitsPerSample"
	OMPhotometricInterpretation = "PhotometricInterpretation"
	OMCompression               = "Compression"
	OMMinSampleValue            = "MinSampleValue"
	OMMaxSampleValue            = "MaxSampleValue"
	OMOrientation               = "Orientation"
	OMFillOrder                 = "FillOrder"
	OMSampleFormat              = "SampleFormat"
	OMPlanarConfiguration       = "PlanarConfiguration"
	OMXResolution               = "XResolution"
	OMYResolution               = "YResolution"
	OMResolutionUnit            = "ResolutionUnit"
	OMSoftware                  = "Software"
	OMDateTime                  = "DateTime"
	OMArtist                    = "Artist"
	OMImageDescription          = "ImageDescription"
	OMPredictor                 = "Predictor"
	OMWhitePoint                = "WhitePoint"
	OMPrimaryChromaticities     = "PrimaryChromaticities"
)

// PageNameOriginalMetadata returns the original-metadata key carrying the
// page name of the indexed TIFF page (IFD tag 285), zero-based.
func PageNameOriginalMetadata(index int) string {
	return fmt.Sprintf("PageName #%d", index)
}
