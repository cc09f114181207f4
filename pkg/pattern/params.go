package pattern

import (
	"math"

	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
)

// Default parameter values, in millimetres and degrees.
const (
	DefaultRadius     = 2.5
	DefaultLength     = 27.0
	DefaultAngle      = 40.0
	DefaultBeamCount  = 2
	DefaultPanelGap   = 1.2
	DefaultBeamGap    = 2.33
	DefaultBeamLength = 6.33
	DefaultBeamWidth  = 4.83
	DefaultRatio      = 0.88
	DefaultMargin     = 0.67
)

// Params is the pattern configuration shared by all generators in a run.
type Params struct {
	// Radius is the hub radius: branches start this far from the hub center.
	Radius float64 `toml:"radius" json:"radius"`

	// Length is the nominal branch length between hub edges.
	Length float64 `toml:"length" json:"length"`

	// Angle is the fold angle θ in degrees, strictly between 0 and 90.
	Angle float64 `toml:"angle" json:"angle"`

	// BeamCount is the number of beam units per branch side.
	BeamCount int `toml:"beam_count" json:"beam_count"`

	// PanelGap is the kerf between the two panels meeting at a branch.
	PanelGap float64 `toml:"panel_gap" json:"panel_gap"`

	// BeamGap is the axial spacing between consecutive beams.
	BeamGap float64 `toml:"beam_gap" json:"beam_gap"`

	// BeamLength is the axial length of one beam.
	BeamLength float64 `toml:"beam_length" json:"beam_length"`

	// BeamWidth is the transverse width of one beam.
	BeamWidth float64 `toml:"beam_width" json:"beam_width"`

	// Ratio is the shim-to-panel width ratio (shim only).
	Ratio float64 `toml:"ratio" json:"ratio"`

	// Margin is the clip overlap margin (shim only).
	Margin float64 `toml:"margin" json:"margin"`
}

// Defaults returns the reference plastic-sheet configuration.
func Defaults() Params {
	return Params{
		Radius:     DefaultRadius,
		Length:     DefaultLength,
		Angle:      DefaultAngle,
		BeamCount:  DefaultBeamCount,
		PanelGap:   DefaultPanelGap,
		BeamGap:    DefaultBeamGap,
		BeamLength: DefaultBeamLength,
		BeamWidth:  DefaultBeamWidth,
		Ratio:      DefaultRatio,
		Margin:     DefaultMargin,
	}
}

// Scaled returns p with every length multiplied by k. Angle, beam count and
// ratio are unchanged.
func (p Params) Scaled(k float64) Params {
	p.Radius *= k
	p.Length *= k
	p.PanelGap *= k
	p.BeamGap *= k
	p.BeamLength *= k
	p.BeamWidth *= k
	p.Margin *= k
	return p
}

// ShimWidth is the width of a shim tab or separator: beam_width / ratio.
func (p Params) ShimWidth() float64 {
	return p.BeamWidth / p.Ratio
}

// RoleLength returns the branch length for a direction role. Spines and
// perpendiculars are projected so that hubs of the tiling meet exactly.
func (p Params) RoleLength(role Role) float64 {
	span := p.Length + 2*p.Radius
	switch role {
	case Spine:
		return 2*math.Cos(geom.Radians(p.Angle))*span - 2*p.Radius
	case Perpendicular:
		return 2*math.Sin(geom.Radians(p.Angle))*span - 2*p.Radius
	default:
		return p.Length
	}
}

// Dims describes the beam layout of one branch.
type Dims struct {
	Length    float64
	BeamCount int
	BeamGap   float64
}

// Dims returns the branch dimensions for a role on the given hub. Octagonal
// hubs rescale the beam gap of spines and perpendiculars and double the
// perpendicular beam count; hexagonal hubs keep the nominal beam layout.
func (p Params) Dims(hub Hub, role Role) Dims {
	length := p.RoleLength(role)
	d := Dims{Length: length, BeamCount: p.BeamCount, BeamGap: p.BeamGap}
	if hub != Octagonal {
		return d
	}
	switch role {
	case Spine:
		d.BeamGap = p.BeamGap * 3 / 2 * length / p.Length
	case Perpendicular:
		d.BeamCount = 2 * p.BeamCount
		d.BeamGap = p.BeamGap * length / (2 * p.Length)
	}
	return d
}

// Extremity returns the straight lead-in length on each end of a branch:
// (length − beam_length·n − beam_gap·(n−1)) / 2.
func (d Dims) Extremity(beamLength float64) float64 {
	n := float64(d.BeamCount)
	return (d.Length - beamLength*n - d.BeamGap*(n-1)) / 2
}

// ShimExtremity is [Dims.Extremity] with the clip margin taken off.
func (d Dims) ShimExtremity(beamLength, margin float64) float64 {
	return d.Extremity(beamLength) - margin/2
}

// Validate checks p for the cut sheet of the given hub. Every role used by
// the hub must leave a non-negative extremity.
func (p Params) Validate(hub Hub) error {
	if err := p.validateBase(); err != nil {
		return err
	}
	for _, role := range hub.Roles() {
		d := p.Dims(hub, role)
		if d.Length <= 0 {
			return errors.New(errors.ErrCodeInfeasibleBranch,
				"%s branch length %.4g is not positive for angle %g", role, d.Length, p.Angle)
		}
		if ext := d.Extremity(p.BeamLength); ext < 0 {
			return errors.New(errors.ErrCodeInfeasibleBranch,
				"%s branch of length %.4g cannot hold %d beams (extremity %.4g)", role, d.Length, d.BeamCount, ext)
		}
	}
	return nil
}

// ValidateShim checks p for the shim sheet of the given hub. It implies
// [Params.Validate].
func (p Params) ValidateShim(hub Hub) error {
	if err := p.Validate(hub); err != nil {
		return err
	}
	if p.Ratio <= 0 || p.Ratio > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "ratio must be in (0, 1], got %g", p.Ratio)
	}
	if p.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin must be >= 0, got %g", p.Margin)
	}
	for _, role := range hub.Roles() {
		d := p.Dims(hub, role)
		if d.BeamCount > 1 && p.Margin > d.BeamGap {
			return errors.New(errors.ErrCodeInvalidConfig,
				"margin %g exceeds the %s beam gap %.4g", p.Margin, role, d.BeamGap)
		}
		if ext := d.ShimExtremity(p.BeamLength, p.Margin); ext < 0 {
			return errors.New(errors.ErrCodeInfeasibleBranch,
				"%s shim branch of length %.4g leaves no lead-in (extremity %.4g)", role, d.Length, ext)
		}
	}
	return nil
}

func (p Params) validateBase() error {
	if p.BeamCount < 1 {
		return errors.New(errors.ErrCodeInvalidBeamCount, "beam_count must be >= 1, got %d", p.BeamCount)
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"radius", p.Radius},
		{"length", p.Length},
		{"beam_length", p.BeamLength},
		{"beam_width", p.BeamWidth},
	}
	for _, f := range positive {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be > 0, got %g", f.name, f.value)
		}
	}
	if p.PanelGap < 0 || p.BeamGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "panel_gap and beam_gap must be >= 0")
	}
	if p.PanelGap >= p.BeamWidth {
		return errors.New(errors.ErrCodeInvalidConfig,
			"panel_gap %g must be smaller than beam_width %g", p.PanelGap, p.BeamWidth)
	}
	if !(p.Angle > 0 && p.Angle < 90) {
		return errors.New(errors.ErrCodeInvalidConfig, "angle must be in (0, 90) degrees, got %g", p.Angle)
	}
	return nil
}
