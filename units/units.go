// Package units provides the enumerated unit and simple-type vocabularies
// of the OME schema. Schema wrappers consult these before writing a unit
// attribute; a value outside its set is rejected rather than silently
// written.
package units

import "regexp"

// Length holds the accepted length unit symbols (SI, imperial and the
// abstract "pixel" and "reference frame" units).
var Length = set(
	"Ym", "Zm", "Em", "Pm", "Tm", "Gm", "Mm", "km", "hm", "dam",
	"m", "dm", "cm", "mm", "µm", "nm", "pm", "fm", "am", "zm", "ym",
	"Å", "thou", "li", "in", "ft", "yd", "mi", "ua", "ly", "pc", "pt",
	"pixel", "reference frame",
)

// Time holds the accepted time unit symbols.
var Time = set(
	"Ys", "Zs", "Es", "Ps", "Ts", "Gs", "Ms", "ks", "hs", "das",
	"s", "ds", "cs", "ms", "µs", "ns", "ps", "fs", "as", "zs", "ys",
	"min", "h", "d",
)

// Frequency holds the accepted frequency unit symbols.
var Frequency = set(
	"YHz", "ZHz", "EHz", "PHz", "THz", "GHz", "MHz", "kHz", "hHz", "daHz",
	"Hz", "dHz", "cHz", "mHz", "µHz", "nHz", "pHz", "fHz", "aHz", "zHz", "yHz",
)

// ElectricPotential holds the accepted electric potential unit symbols.
var ElectricPotential = set(
	"YV", "ZV", "EV", "PV", "TV", "GV", "MV", "kV", "hV", "daV",
	"V", "dV", "cV", "mV", "µV", "nV", "pV", "fV", "aV", "zV", "yV",
)

// Angle holds the accepted angle unit symbols.
var Angle = set("deg", "rad", "gon")

// Temperature holds the accepted temperature unit symbols.
var Temperature = set("°C", "°F", "K", "°R")

// FontFamily holds the generic font families a shape label may use.
var FontFamily = set("serif", "sans-serif", "cursive", "fantasy", "monospace")

// FontStyle holds the accepted font styles.
var FontStyle = set("Bold", "BoldItalic", "Italic", "Normal")

// FillRule holds the accepted shape fill rules.
var FillRule = set("EvenOdd", "NonZero")

// Marker holds the accepted line marker types.
var Marker = set("Arrow")

func set(vals ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}

// ValidLength reports whether v is an accepted length unit.
func ValidLength(v string) bool { _, ok := Length[v]; return ok }

// ValidTime reports whether v is an accepted time unit.
func ValidTime(v string) bool { _, ok := Time[v]; return ok }

// ValidFrequency reports whether v is an accepted frequency unit.
func ValidFrequency(v string) bool { _, ok := Frequency[v]; return ok }

// ValidElectricPotential reports whether v is an accepted electric
// potential unit.
func ValidElectricPotential(v string) bool { _, ok := ElectricPotential[v]; return ok }

// ValidAngle reports whether v is an accepted angle unit.
func ValidAngle(v string) bool { _, ok := Angle[v]; return ok }

// ValidTemperature reports whether v is an accepted temperature unit.
func ValidTemperature(v string) bool { _, ok := Temperature[v]; return ok }

// ValidFontFamily reports whether v is an accepted font family.
func ValidFontFamily(v string) bool { _, ok := FontFamily[v]; return ok }

// ValidFontStyle reports whether v is an accepted font style.
func ValidFontStyle(v string) bool { _, ok := FontStyle[v]; return ok }

// ValidFillRule reports whether v is an accepted fill rule.
func ValidFillRule(v string) bool { _, ok := FillRule[v]; return ok }

// ValidMarker reports whether v is an accepted marker type.
func ValidMarker(v string) bool { _, ok := Marker[v]; return ok }

// PercentFraction reports whether v lies in [0, 1].
func PercentFraction(v float64) bool {
	return v >= 0.0 && v <= 1.0
}

// Color reports whether v fits the schema's Color type: a signed 32-bit
// RGBA encoding ("-1" is solid white).
func Color(v int64) bool {
	return v >= -2147483648 && v <= 2147483647
}

var binningRE = regexp.MustCompile(`^\d+x\d+$`)

// ValidBinning reports whether v is in the "8x8" binning form.
func ValidBinning(v string) bool {
	return binningRE.MatchString(v)
}
