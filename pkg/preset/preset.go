// Package preset loads named pattern configurations from TOML.
//
// A preset file looks like:
//
//	name = "plastic"
//	description = "0.5 mm PETG sheet"
//	family = "tessellation"
//	hub = "hex"
//	rows = 3
//	cols = 3
//	origin = [0.0, 0.0]
//
//	[params]
//	radius = 2.5
//	length = 27.0
//	angle = 40.0
//	beam_count = 2
//
// Keys missing from [params] keep the values of [pattern.Defaults]. Unknown
// keys are rejected so typos do not silently fall back to defaults.
package preset

import (
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/pattern"
)

// Preset is a complete, named generation setup.
type Preset struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description,omitempty"`
	Family      string         `toml:"family"`
	Hub         string         `toml:"hub"`
	Rows        int            `toml:"rows"`
	Cols        int            `toml:"cols"`
	Origin      [2]float64     `toml:"origin"`
	Params      pattern.Params `toml:"params"`
}

func base() Preset {
	return Preset{
		Family: "tessellation",
		Hub:    pattern.HubHex,
		Rows:   3,
		Cols:   3,
		Params: pattern.Defaults(),
	}
}

// Parse decodes a preset from TOML text.
func Parse(data string) (Preset, error) {
	p := base()
	md, err := toml.Decode(data, &p)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse preset")
	}
	if err := checkUndecoded(md); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Load decodes a preset file.
func Load(path string) (Preset, error) {
	p := base()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load preset %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return Preset{}, err
	}
	if p.Name == "" {
		p.Name = path
	}
	return p, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return errors.New(errors.ErrCodeInvalidConfig, "unknown preset keys: %s", strings.Join(names, ", "))
}

// Encode writes p as TOML.
func (p Preset) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

var builtins = map[string]func() Preset{
	"reference": func() Preset {
		p := base()
		p.Name = "reference"
		p.Description = "r 2, L 25, θ 60: the isolated-block reference"
		p.Params.Radius = 2
		p.Params.Length = 25
		p.Params.Angle = 60
		return p
	},
	"plastic": func() Preset {
		p := base()
		p.Name = "plastic"
		p.Description = "plastic sheet, r 2.5, L 27, θ 40"
		return p
	},
	"plastic-tape": func() Preset {
		p := base()
		p.Name = "plastic-tape"
		p.Description = "plastic sheet with full-width tape slots"
		p.Family = "tape"
		return p
	},
	"extended": func() Preset {
		p := base()
		p.Name = "extended"
		p.Description = "octagonal hub at 1.5 scale, L 42, θ 45"
		p.Hub = pattern.HubOct
		gap := p.Params.PanelGap
		p.Params = pattern.Defaults().Scaled(1.5)
		p.Params.PanelGap = gap
		p.Params.Radius = 3
		p.Params.Length = 42
		p.Params.Angle = 45
		p.Params.BeamGap = 6
		return p
	},
	"shim": func() Preset {
		p := base()
		p.Name = "shim"
		p.Description = "spacer sheet, r 2.5, L 35, θ 45"
		p.Family = "shim"
		p.Params.Length = 35
		p.Params.Angle = 45
		return p
	},
}

// Names returns the built-in preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builtin returns every built-in preset, sorted by name.
func Builtin() []Preset {
	names := Names()
	out := make([]Preset, len(names))
	for i, n := range names {
		out[i] = builtins[n]()
	}
	return out
}

// Lookup returns the built-in preset called name.
func Lookup(name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}
	mk, ok := builtins[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound,
			"unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}
