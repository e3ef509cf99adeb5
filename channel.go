package omexml

import (
	"strconv"

	"github.com/openmicro/omexml/core"
	"github.com/openmicro/omexml/units"
)

// Channel represents the OME/Image/Pixels/Channel element.
type Channel struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (c *Channel) Node() core.Node { return c.node }

// ID returns the channel's LSID, or "" when absent.
func (c *Channel) ID() string { return c.node.AttrString("ID") }

// SetID sets the channel's LSID. The value must match the Channel LSID
// pattern.
func (c *Channel) SetID(id string) error {
	if err := checkLSID("Channel", id); err != nil {
		return err
	}
	c.node.SetAttr("ID", id)
	return nil
}

// Name returns the channel name, or "" when absent.
func (c *Channel) Name() string { return c.node.AttrString("Name") }

// SetName sets the channel name.
func (c *Channel) SetName(v string) { c.node.SetAttr("Name", v) }

// SamplesPerPixel returns the number of samples per pixel.
func (c *Channel) SamplesPerPixel() (int, bool) { return c.node.IntAttr("SamplesPerPixel") }

// SetSamplesPerPixel sets the number of samples per pixel.
func (c *Channel) SetSamplesPerPixel(v int) { c.node.SetIntAttr("SamplesPerPixel", v) }

// IlluminationType returns the method of illumination used to capture
// the channel, or "".
func (c *Channel) IlluminationType() string { return c.node.AttrString("IlluminationType") }

// SetIlluminationType sets the method of illumination.
func (c *Channel) SetIlluminationType(v string) { c.node.SetAttr("IlluminationType", v) }

// AcquisitionMode returns the acquisition mode, or "".
func (c *Channel) AcquisitionMode() string { return c.node.AttrString("AcquisitionMode") }

// SetAcquisitionMode sets the acquisition mode.
func (c *Channel) SetAcquisitionMode(v string) { c.node.SetAttr("AcquisitionMode", v) }

// ContrastMethod returns the contrast method, or "".
func (c *Channel) ContrastMethod() string { return c.node.AttrString("ContrastMethod") }

// SetContrastMethod sets the contrast method.
func (c *Channel) SetContrastMethod(v string) { c.node.SetAttr("ContrastMethod", v) }

// PinholeSize returns the confocal pinhole diameter.
func (c *Channel) PinholeSize() (float64, bool) { return c.node.FloatAttr("PinholeSize") }

// SetPinholeSize sets the adjustable pinhole diameter for confocal
// microscopes. The value must be positive. If no PinholeSizeUnit is
// present yet, it defaults to micrometres.
func (c *Channel) SetPinholeSize(v float64) error {
	if v <= 0 {
		return validationErr("PinholeSize", formatFloat(v), "must be a positive number")
	}
	c.node.SetFloatAttr("PinholeSize", v)
	if c.PinholeSizeUnit() == "" {
		c.node.SetAttr("PinholeSizeUnit", "µm")
	}
	return nil
}

// PinholeSizeUnit returns the unit of the pinhole diameter, or "".
func (c *Channel) PinholeSizeUnit() string { return c.node.AttrString("PinholeSizeUnit") }

// SetPinholeSizeUnit sets the unit of the pinhole diameter; the value
// must be an accepted length unit.
func (c *Channel) SetPinholeSizeUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("PinholeSizeUnit", u, "not an accepted length unit")
	}
	c.node.SetAttr("PinholeSizeUnit", u)
	return nil
}

// ExcitationWavelength returns the excitation wavelength.
func (c *Channel) ExcitationWavelength() (float64, bool) {
	return c.node.FloatAttr("ExcitationWavelength")
}

// SetExcitationWavelength sets the excitation wavelength. The value must
// be positive. If no ExcitationWavelengthUnit is present yet, it defaults
// to nanometres.
func (c *Channel) SetExcitationWavelength(v float64) error {
	if v <= 0 {
		return validationErr("ExcitationWavelength", formatFloat(v), "must be a positive number")
	}
	c.node.SetFloatAttr("ExcitationWavelength", v)
	if c.ExcitationWavelengthUnit() == "" {
		c.node.SetAttr("ExcitationWavelengthUnit", "nm")
	}
	return nil
}

// ExcitationWavelengthUnit returns the unit of the excitation
// wavelength, or "".
func (c *Channel) ExcitationWavelengthUnit() string {
	return c.node.AttrString("ExcitationWavelengthUnit")
}

// SetExcitationWavelengthUnit sets the unit of the excitation
// wavelength; the value must be an accepted length unit.
func (c *Channel) SetExcitationWavelengthUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("ExcitationWavelengthUnit", u, "not an accepted length unit")
	}
	c.node.SetAttr("ExcitationWavelengthUnit", u)
	return nil
}

// EmissionWavelength returns the emission wavelength.
func (c *Channel) EmissionWavelength() (float64, bool) {
	return c.node.FloatAttr("EmissionWavelength")
}

// SetEmissionWavelength sets the emission wavelength. The value must be
// positive. If no EmissionWavelengthUnit is present yet, it defaults to
// nanometres.
func (c *Channel) SetEmissionWavelength(v float64) error {
	if v <= 0 {
		return validationErr("EmissionWavelength", formatFloat(v), "must be a positive number")
	}
	c.node.SetFloatAttr("EmissionWavelength", v)
	if c.EmissionWavelengthUnit() == "" {
		c.node.SetAttr("EmissionWavelengthUnit", "nm")
	}
	return nil
}

// EmissionWavelengthUnit returns the unit of the emission wavelength,
// or "".
func (c *Channel) EmissionWavelengthUnit() string {
	return c.node.AttrString("EmissionWavelengthUnit")
}

// SetEmissionWavelengthUnit sets the unit of the emission wavelength;
// the value must be an accepted length unit.
func (c *Channel) SetEmissionWavelengthUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("EmissionWavelengthUnit", u, "not an accepted length unit")
	}
	c.node.SetAttr("EmissionWavelengthUnit", u)
	return nil
}

// Fluor returns the name of the fluorophore used to produce this
// channel, or "".
func (c *Channel) Fluor() string { return c.node.AttrString("Fluor") }

// SetFluor sets the fluorophore name for fluorescence images.
func (c *Channel) SetFluor(v string) { c.node.SetAttr("Fluor", v) }

// NDFilter returns the combined transmittance of the neutral density
// filters in use.
func (c *Channel) NDFilter() (float64, bool) { return c.node.FloatAttr("NDFilter") }

// SetNDFilter sets the combined effect of any neutral density filters:
// the fraction of light transmitted at maximum, 0.0 to 1.0.
func (c *Channel) SetNDFilter(v float64) error {
	if !units.PercentFraction(v) {
		return validationErr("NDFilter", formatFloat(v), "must be between 0.0 and 1.0")
	}
	c.node.SetFloatAttr("NDFilter", v)
	return nil
}

// PockelCellSetting returns the Pockels cell setting: the amount the
// polarization of the beam is rotated by.
func (c *Channel) PockelCellSetting() (int, bool) { return c.node.IntAttr("PockelCellSetting") }

// SetPockelCellSetting sets the Pockels cell setting.
func (c *Channel) SetPockelCellSetting(v int) { c.node.SetIntAttr("PockelCellSetting", v) }

// Color returns the channel's display color as a signed 32-bit RGBA
// encoding.
func (c *Channel) Color() (int, bool) { return c.node.IntAttr("Color") }

// SetColor sets the channel's display color. The value must fit the
// schema's signed 32-bit RGBA encoding ("-1" is solid white).
func (c *Channel) SetColor(v int64) error {
	if !units.Color(v) {
		return validationErr("Color", strconv.FormatInt(v, 10), "must fit a signed 32-bit RGBA encoding")
	}
	c.node.SetAttr("Color", strconv.FormatInt(v, 10))
	return nil
}

// ExposureTime returns the channel's exposure time.
func (c *Channel) ExposureTime() (float64, bool) { return c.node.FloatAttr("ExposureTime") }

// SetExposureTime sets the channel's exposure time. Units are set
// separately by SetExposureTimeUnit.
func (c *Channel) SetExposureTime(v float64) { c.node.SetFloatAttr("ExposureTime", v) }

// ExposureTimeUnit returns the unit of the exposure time, or "".
func (c *Channel) ExposureTimeUnit() string { return c.node.AttrString("ExposureTimeUnit") }

// SetExposureTimeUnit sets the unit of the exposure time; the value must
// be an accepted time unit.
func (c *Channel) SetExposureTimeUnit(u string) error {
	if !units.ValidTime(u) {
		return validationErr("ExposureTimeUnit", u, "not an accepted time unit")
	}
	c.node.SetAttr("ExposureTimeUnit", u)
	return nil
}

// LightSourceSettings returns the channel's LightSourceSettings,
// creating the element if absent.
func (c *Channel) LightSourceSettings() *LightSourceSettings {
	return &LightSourceSettings{node: c.node.EnsureChild(c.ns.OME, "LightSourceSettings")}
}

// DetectorSettings returns the channel's DetectorSettings, creating the
// element if absent.
func (c *Channel) DetectorSettings() *DetectorSettings {
	return &DetectorSettings{node: c.node.EnsureChild(c.ns.OME, "DetectorSettings")}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
