package omexml

import (
	"fmt"
	"strconv"

	"github.com/openmicro/omexml/core"
	"github.com/openmicro/omexml/units"
)

// ManufacturerSpec carries the manufacturer fields shared by instrument
// components (microscope, detector, objective, filters).
type ManufacturerSpec struct {
	node core.Node
}

// Node returns the underlying element handle.
func (m ManufacturerSpec) Node() core.Node { return m.node }

// Manufacturer returns the component's manufacturer, or "".
func (m ManufacturerSpec) Manufacturer() string { return m.node.AttrString("Manufacturer") }

// SetManufacturer sets the component's manufacturer.
func (m ManufacturerSpec) SetManufacturer(v string) { m.node.SetAttr("Manufacturer", v) }

// Model returns the component's model, or "".
func (m ManufacturerSpec) Model() string { return m.node.AttrString("Model") }

// SetModel sets the component's model.
func (m ManufacturerSpec) SetModel(v string) { m.node.SetAttr("Model", v) }

// SerialNumber returns the component's serial number, or "".
func (m ManufacturerSpec) SerialNumber() string { return m.node.AttrString("SerialNumber") }

// SetSerialNumber sets the component's serial number.
func (m ManufacturerSpec) SetSerialNumber(v string) { m.node.SetAttr("SerialNumber", v) }

// LotNumber returns the component's lot number, or "".
func (m ManufacturerSpec) LotNumber() string { return m.node.AttrString("LotNumber") }

// SetLotNumber sets the component's lot number.
func (m ManufacturerSpec) SetLotNumber(v string) { m.node.SetAttr("LotNumber", v) }

// Instrument represents the OME/Instrument element: the microscope and
// the detectors, objectives and filters attached to it.
type Instrument struct {
	node core.Node
	ns   core.NSSet
}

// Node returns the underlying element handle.
func (in *Instrument) Node() core.Node { return in.node }

// ID returns the instrument's LSID, or "" when absent.
func (in *Instrument) ID() string { return in.node.AttrString("ID") }

// SetID sets the instrument's LSID.
func (in *Instrument) SetID(id string) error {
	if err := checkLSID("Instrument", id); err != nil {
		return err
	}
	in.node.SetAttr("ID", id)
	return nil
}

// Microscope returns the instrument's Microscope element, creating it if
// absent.
func (in *Instrument) Microscope() *Microscope {
	n := in.node.EnsureChild(in.ns.OME, "Microscope")
	return &Microscope{ManufacturerSpec{node: n}}
}

func (in *Instrument) components(local, restriction string) core.Seq {
	return core.Seq{Parent: in.node, URI: in.ns.OME, Local: local,
		Init: func(i int, n core.Node) {
			n.SetAttr("ID", newLSID(restriction))
		}}
}

// DetectorCount returns the number of detectors on the instrument.
func (in *Instrument) DetectorCount() int { return in.components("Detector", "Detector").Len() }

// SetDetectorCount adds or removes Detector nodes as needed.
func (in *Instrument) SetDetectorCount(n int) error {
	return in.components("Detector", "Detector").Resize(n)
}

// Detector returns the indexed detector.
func (in *Instrument) Detector(i int) (*Detector, error) {
	n, err := in.components("Detector", "Detector").At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Detector{ManufacturerSpec: ManufacturerSpec{node: n}}, nil
}

// ObjectiveCount returns the number of objectives on the instrument.
func (in *Instrument) ObjectiveCount() int { return in.components("Objective", "Objective").Len() }

// SetObjectiveCount adds or removes Objective nodes as needed.
func (in *Instrument) SetObjectiveCount(n int) error {
	return in.components("Objective", "Objective").Resize(n)
}

// Objective returns the indexed objective.
func (in *Instrument) Objective(i int) (*Objective, error) {
	n, err := in.components("Objective", "Objective").At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Objective{ManufacturerSpec: ManufacturerSpec{node: n}}, nil
}

// FilterSetCount returns the number of filter sets on the instrument.
func (in *Instrument) FilterSetCount() int { return in.components("FilterSet", "FilterSet").Len() }

// SetFilterSetCount adds or removes FilterSet nodes as needed.
func (in *Instrument) SetFilterSetCount(n int) error {
	return in.components("FilterSet", "FilterSet").Resize(n)
}

// FilterSet returns the indexed filter set.
func (in *Instrument) FilterSet(i int) (*FilterSet, error) {
	n, err := in.components("FilterSet", "FilterSet").At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &FilterSet{ManufacturerSpec{node: n}}, nil
}

// FilterCount returns the number of filters on the instrument.
func (in *Instrument) FilterCount() int { return in.components("Filter", "Filter").Len() }

// SetFilterCount adds or removes Filter nodes as needed.
func (in *Instrument) SetFilterCount(n int) error {
	return in.components("Filter", "Filter").Resize(n)
}

// Filter returns the indexed filter.
func (in *Instrument) Filter(i int) (*Filter, error) {
	n, err := in.components("Filter", "Filter").At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Filter{ManufacturerSpec{node: n}}, nil
}

// DichroicCount returns the number of dichroics on the instrument.
func (in *Instrument) DichroicCount() int { return in.components("Dichroic", "Dichroic").Len() }

// SetDichroicCount adds or removes Dichroic nodes as needed.
func (in *Instrument) SetDichroicCount(n int) error {
	return in.components("Dichroic", "Dichroic").Resize(n)
}

// Dichroic returns the indexed dichroic.
func (in *Instrument) Dichroic(i int) (*Dichroic, error) {
	n, err := in.components("Dichroic", "Dichroic").At(i)
	if err != nil {
		return nil, fmt.Errorf("omexml: %w", err)
	}
	return &Dichroic{ManufacturerSpec{node: n}}, nil
}

// Microscope represents the OME/Instrument/Microscope element.
type Microscope struct {
	ManufacturerSpec
}

// Type returns the microscope type, or "".
func (m *Microscope) Type() string { return m.node.AttrString("Type") }

// SetType sets the microscope type.
func (m *Microscope) SetType(v string) { m.node.SetAttr("Type", v) }

// Detector represents the OME/Instrument/Detector element.
type Detector struct {
	ManufacturerSpec
}

// ID returns the detector's LSID, or "" when absent.
func (d *Detector) ID() string { return d.node.AttrString("ID") }

// SetID sets the detector's LSID.
func (d *Detector) SetID(id string) error {
	if err := checkLSID("Detector", id); err != nil {
		return err
	}
	d.node.SetAttr("ID", id)
	return nil
}

// Type returns the detector type (CCD, EMCCD, PMT, ...), or "".
func (d *Detector) Type() string { return d.node.AttrString("Type") }

// SetType sets the detector type.
func (d *Detector) SetType(v string) { d.node.SetAttr("Type", v) }

// Gain returns the detector gain.
func (d *Detector) Gain() (float64, bool) { return d.node.FloatAttr("Gain") }

// SetGain sets the detector gain.
func (d *Detector) SetGain(v float64) { d.node.SetFloatAttr("Gain", v) }

// Voltage returns the detector voltage.
func (d *Detector) Voltage() (float64, bool) { return d.node.FloatAttr("Voltage") }

// SetVoltage sets the detector voltage.
func (d *Detector) SetVoltage(v float64) { d.node.SetFloatAttr("Voltage", v) }

// VoltageUnit returns the unit of the detector voltage, or "".
func (d *Detector) VoltageUnit() string { return d.node.AttrString("VoltageUnit") }

// SetVoltageUnit sets the unit of the detector voltage; the value must
// be an accepted electric potential unit.
func (d *Detector) SetVoltageUnit(u string) error {
	if !units.ValidElectricPotential(u) {
		return validationErr("VoltageUnit", u, "not an accepted electric potential unit")
	}
	d.node.SetAttr("VoltageUnit", u)
	return nil
}

// Objective represents the OME/Instrument/Objective element.
type Objective struct {
	ManufacturerSpec
}

// ID returns the objective's LSID, or "" when absent.
func (ob *Objective) ID() string { return ob.node.AttrString("ID") }

// SetID sets the objective's LSID.
func (ob *Objective) SetID(id string) error {
	if err := checkLSID("Objective", id); err != nil {
		return err
	}
	ob.node.SetAttr("ID", id)
	return nil
}

// LensNA returns the numerical aperture of the lens.
func (ob *Objective) LensNA() (float64, bool) { return ob.node.FloatAttr("LensNA") }

// SetLensNA sets the numerical aperture of the lens.
func (ob *Objective) SetLensNA(v float64) { ob.node.SetFloatAttr("LensNA", v) }

// NominalMagnification returns the magnification printed on the
// objective.
func (ob *Objective) NominalMagnification() (float64, bool) {
	return ob.node.FloatAttr("NominalMagnification")
}

// SetNominalMagnification sets the magnification printed on the
// objective.
func (ob *Objective) SetNominalMagnification(v float64) {
	ob.node.SetFloatAttr("NominalMagnification", v)
}

// CalibratedMagnification returns the measured magnification.
func (ob *Objective) CalibratedMagnification() (float64, bool) {
	return ob.node.FloatAttr("CalibratedMagnification")
}

// SetCalibratedMagnification sets the measured magnification.
func (ob *Objective) SetCalibratedMagnification(v float64) {
	ob.node.SetFloatAttr("CalibratedMagnification", v)
}

// WorkingDistance returns the objective's working distance.
func (ob *Objective) WorkingDistance() (float64, bool) {
	return ob.node.FloatAttr("WorkingDistance")
}

// SetWorkingDistance sets the objective's working distance.
func (ob *Objective) SetWorkingDistance(v float64) {
	ob.node.SetFloatAttr("WorkingDistance", v)
}

// WorkingDistanceUnit returns the unit of the working distance, or "".
func (ob *Objective) WorkingDistanceUnit() string {
	return ob.node.AttrString("WorkingDistanceUnit")
}

// SetWorkingDistanceUnit sets the unit of the working distance; the
// value must be an accepted length unit.
func (ob *Objective) SetWorkingDistanceUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("WorkingDistanceUnit", u, "not an accepted length unit")
	}
	ob.node.SetAttr("WorkingDistanceUnit", u)
	return nil
}

// FilterSet represents the OME/Instrument/FilterSet element.
type FilterSet struct {
	ManufacturerSpec
}

// ID returns the filter set's LSID, or "" when absent.
func (fs *FilterSet) ID() string { return fs.node.AttrString("ID") }

// SetID sets the filter set's LSID.
func (fs *FilterSet) SetID(id string) error {
	if err := checkLSID("FilterSet", id); err != nil {
		return err
	}
	fs.node.SetAttr("ID", id)
	return nil
}

// Filter represents the OME/Instrument/Filter element.
type Filter struct {
	ManufacturerSpec
}

// ID returns the filter's LSID, or "" when absent.
func (f *Filter) ID() string { return f.node.AttrString("ID") }

// SetID sets the filter's LSID.
func (f *Filter) SetID(id string) error {
	if err := checkLSID("Filter", id); err != nil {
		return err
	}
	f.node.SetAttr("ID", id)
	return nil
}

// Type returns the filter type, or "".
func (f *Filter) Type() string { return f.node.AttrString("Type") }

// SetType sets the filter type.
func (f *Filter) SetType(v string) { f.node.SetAttr("Type", v) }

// FilterWheel returns the name of the filter wheel the filter sits in,
// or "".
func (f *Filter) FilterWheel() string { return f.node.AttrString("FilterWheel") }

// SetFilterWheel sets the name of the filter wheel.
func (f *Filter) SetFilterWheel(v string) { f.node.SetAttr("FilterWheel", v) }

// Dichroic represents the OME/Instrument/Dichroic element.
type Dichroic struct {
	ManufacturerSpec
}

// ID returns the dichroic's LSID, or "" when absent.
func (d *Dichroic) ID() string { return d.node.AttrString("ID") }

// SetID sets the dichroic's LSID.
func (d *Dichroic) SetID(id string) error {
	if err := checkLSID("Dichroic", id); err != nil {
		return err
	}
	d.node.SetAttr("ID", id)
	return nil
}

// LightSourceSettings represents a channel's LightSourceSettings
// element: the light source in use and how hard it is driven.
type LightSourceSettings struct {
	node core.Node
}

// Node returns the underlying element handle.
func (ls *LightSourceSettings) Node() core.Node { return ls.node }

// ID returns the referenced light source's LSID, or "".
func (ls *LightSourceSettings) ID() string { return ls.node.AttrString("ID") }

// SetID points the settings at a light source by LSID.
func (ls *LightSourceSettings) SetID(id string) error {
	if err := checkLSID("LightSource", id); err != nil {
		return err
	}
	ls.node.SetAttr("ID", id)
	return nil
}

// Attenuation returns the attenuation of the light source.
func (ls *LightSourceSettings) Attenuation() (float64, bool) {
	return ls.node.FloatAttr("Attenuation")
}

// SetAttenuation sets the attenuation of the light source: a fraction
// from 0.0 to 1.0.
func (ls *LightSourceSettings) SetAttenuation(v float64) error {
	if !units.PercentFraction(v) {
		return validationErr("Attenuation", formatFloat(v), "must be between 0.0 and 1.0")
	}
	ls.node.SetFloatAttr("Attenuation", v)
	return nil
}

// Wavelength returns the wavelength of the light source.
func (ls *LightSourceSettings) Wavelength() (float64, bool) {
	return ls.node.FloatAttr("Wavelength")
}

// SetWavelength sets the wavelength of the light source. The value must
// be positive. If no WavelengthUnit is present yet, it defaults to
// nanometres.
func (ls *LightSourceSettings) SetWavelength(v float64) error {
	if v <= 0 {
		return validationErr("Wavelength", formatFloat(v), "must be a positive number")
	}
	ls.node.SetFloatAttr("Wavelength", v)
	if ls.WavelengthUnit() == "" {
		ls.node.SetAttr("WavelengthUnit", "nm")
	}
	return nil
}

// WavelengthUnit returns the unit of the wavelength, or "".
func (ls *LightSourceSettings) WavelengthUnit() string {
	return ls.node.AttrString("WavelengthUnit")
}

// SetWavelengthUnit sets the unit of the wavelength; the value must be
// an accepted length unit.
func (ls *LightSourceSettings) SetWavelengthUnit(u string) error {
	if !units.ValidLength(u) {
		return validationErr("WavelengthUnit", u, "not an accepted length unit")
	}
	ls.node.SetAttr("WavelengthUnit", u)
	return nil
}

// DetectorSettings represents a channel's DetectorSettings element: the
// detector in use and its per-channel configuration.
type DetectorSettings struct {
	node core.Node
}

// Node returns the underlying element handle.
func (ds *DetectorSettings) Node() core.Node { return ds.node }

// ID returns the referenced detector's LSID, or "".
func (ds *DetectorSettings) ID() string { return ds.node.AttrString("ID") }

// SetID points the settings at a detector by LSID.
func (ds *DetectorSettings) SetID(id string) error {
	if err := checkLSID("Detector", id); err != nil {
		return err
	}
	ds.node.SetAttr("ID", id)
	return nil
}

// Gain returns the detector gain for this channel.
func (ds *DetectorSettings) Gain() (float64, bool) { return ds.node.FloatAttr("Gain") }

// SetGain sets the detector gain for this channel.
func (ds *DetectorSettings) SetGain(v float64) { ds.node.SetFloatAttr("Gain", v) }

// Voltage returns the detector voltage for this channel.
func (ds *DetectorSettings) Voltage() (float64, bool) { return ds.node.FloatAttr("Voltage") }

// SetVoltage sets the detector voltage for this channel.
func (ds *DetectorSettings) SetVoltage(v float64) { ds.node.SetFloatAttr("Voltage", v) }

// VoltageUnit returns the unit of the voltage, or "".
func (ds *DetectorSettings) VoltageUnit() string { return ds.node.AttrString("VoltageUnit") }

// SetVoltageUnit sets the unit of the voltage; the value must be an
// accepted electric potential unit.
func (ds *DetectorSettings) SetVoltageUnit(u string) error {
	if !units.ValidElectricPotential(u) {
		return validationErr("VoltageUnit", u, "not an accepted electric potential unit")
	}
	ds.node.SetAttr("VoltageUnit", u)
	return nil
}

// Zoom returns the detector zoom.
func (ds *DetectorSettings) Zoom() (float64, bool) { return ds.node.FloatAttr("Zoom") }

// SetZoom sets the detector zoom.
func (ds *DetectorSettings) SetZoom(v float64) { ds.node.SetFloatAttr("Zoom", v) }

// ReadOutRate returns the speed at which the detector reads pixels, like
// a baud rate. {used: CCD, EMCCD}
func (ds *DetectorSettings) ReadOutRate() (float64, bool) {
	return ds.node.FloatAttr("ReadOutRate")
}

// SetReadOutRate sets the detector readout rate. The value must be
// positive. If no ReadOutRateUnit is present yet, it defaults to MHz.
func (ds *DetectorSettings) SetReadOutRate(v float64) error {
	if v <= 0 {
		return validationErr("ReadOutRate", formatFloat(v), "must be a positive number")
	}
	ds.node.SetFloatAttr("ReadOutRate", v)
	if ds.ReadOutRateUnit() == "" {
		ds.node.SetAttr("ReadOutRateUnit", "MHz")
	}
	return nil
}

// ReadOutRateUnit returns the unit of the readout rate, or "".
func (ds *DetectorSettings) ReadOutRateUnit() string {
	return ds.node.AttrString("ReadOutRateUnit")
}

// SetReadOutRateUnit sets the unit of the readout rate; the value must
// be an accepted frequency unit.
func (ds *DetectorSettings) SetReadOutRateUnit(u string) error {
	if !units.ValidFrequency(u) {
		return validationErr("ReadOutRateUnit", u, "not an accepted frequency unit")
	}
	ds.node.SetAttr("ReadOutRateUnit", u)
	return nil
}

// Binning returns the binning in "8x8" form, or "".
func (ds *DetectorSettings) Binning() string { return ds.node.AttrString("Binning") }

// SetBinning sets the binning. The value must be in the "8x8" form; use
// [DetectorSettings.SetBinningN] for the square case.
func (ds *DetectorSettings) SetBinning(v string) error {
	if !units.ValidBinning(v) {
		return validationErr("Binning", v, `must be in the "8x8" form`)
	}
	ds.node.SetAttr("Binning", v)
	return nil
}

// SetBinningN sets square binning of n by n pixels.
func (ds *DetectorSettings) SetBinningN(n int) error {
	if n < 1 {
		return validationErr("Binning", strconv.Itoa(n), "must be a positive integer")
	}
	ds.node.SetAttr("Binning", fmt.Sprintf("%dx%d", n, n))
	return nil
}

// Integration returns the number of sequential frames averaged to
// improve the signal-to-noise ratio.
func (ds *DetectorSettings) Integration() (int, bool) { return ds.node.IntAttr("Integration") }

// SetIntegration sets the number of sequential frames averaged. The
// value must be at least 1.
func (ds *DetectorSettings) SetIntegration(v int) error {
	if v < 1 {
		return validationErr("Integration", strconv.Itoa(v), "must be a positive integer")
	}
	ds.node.SetIntAttr("Integration", v)
	return nil
}
