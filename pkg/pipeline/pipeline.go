// Package pipeline turns a pattern configuration into cut files.
//
// A run has two stages:
//
//  1. Generate: validate the configuration and draw the selected pattern
//     family into an in-memory recorder.
//  2. Write: encode the recorded primitives once per requested format and
//     persist each artifact at <output>.<format>.
//
// Validation happens before any geometry is emitted and encoding only starts
// once generation succeeded, so an invalid configuration never leaves a
// partial file behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Family:  pipeline.FamilyTessellation,
//	    Rows:    3,
//	    Cols:    3,
//	    Params:  pattern.Defaults(),
//	    Formats: []string{"dxf", "svg"},
//	    Output:  "out/plastic",
//	})
//
// The family helpers ([Tessellation], [Tape], [Shim], [Extended],
// [ExtendedShim], [Block], [ShimBlock]) wrap Execute for the common case of
// one DXF file.
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/foldcut/pkg/cache"
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// Pattern families.
const (
	FamilyTessellation = "tessellation"
	FamilyTape         = "tape"
	FamilyShim         = "shim"
	FamilyBlock        = "block"
	FamilyShimBlock    = "shim-block"
)

// ValidFamilies is the set of supported pattern families.
var ValidFamilies = map[string]bool{
	FamilyTessellation: true,
	FamilyTape:         true,
	FamilyShim:         true,
	FamilyBlock:        true,
	FamilyShimBlock:    true,
}

// Defaults shared by the CLI and the family helpers.
const (
	DefaultFamily = FamilyTessellation
	DefaultHub    = pattern.HubHex
	DefaultRows   = 3
	DefaultCols   = 3
	DefaultFormat = sink.FormatDXF
	DefaultOutput = "pattern"
)

// Options configures one pipeline run.
type Options struct {
	Family string         `json:"family"`
	Hub    string         `json:"hub,omitempty"`
	Rows   int            `json:"rows"`
	Cols   int            `json:"cols"`
	Origin [2]float64     `json:"origin"`
	Params pattern.Params `json:"params"`

	Formats []string `json:"formats,omitempty"`
	// Output is the artifact base path; each format appends its extension.
	Output string `json:"output"`

	Logger *log.Logger `json:"-"`

	hub       pattern.Hub
	validated bool
}

// Result describes a finished run.
type Result struct {
	RunID uuid.UUID

	// Primitives is the generated geometry in emission order.
	Primitives []sink.Primitive
	// Flushes counts the flush calls made while generating.
	Flushes int

	// Artifacts maps each format to the file written for it.
	Artifacts map[string]string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats summarises a run.
type Stats struct {
	Cells        int
	Lines        int
	Polylines    int
	Bounds       geom.Rect
	GenerateTime time.Duration
	WriteTime    time.Duration
}

// CacheInfo lists the formats served from the artifact cache.
type CacheInfo struct {
	Hits []string
}

// ValidateFormats checks every entry against [sink.ValidFormats].
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, sink.ValidFormats); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFamily checks that family is known.
func ValidateFamily(family string) error {
	if !ValidFamilies[family] {
		return errors.New(errors.ErrCodeInvalidFamily,
			"invalid family: %q (must be one of: tessellation, tape, shim, block, shim-block)", family)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and checks the whole configuration,
// geometry included. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Family == "" {
		o.Family = DefaultFamily
	}
	if o.Hub == "" {
		o.Hub = DefaultHub
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Params == (pattern.Params{}) {
		o.Params = pattern.Defaults()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFamily(o.Family); err != nil {
		return err
	}
	hub, err := pattern.ParseHub(o.Hub)
	if err != nil {
		return err
	}
	o.hub = hub
	o.Hub = hub.String()

	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if err := o.validateGeometry(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

func (o *Options) validateGeometry() error {
	switch o.Family {
	case FamilyBlock:
		return o.Params.Validate(o.hub)
	case FamilyShimBlock:
		if err := o.Params.Validate(o.hub); err != nil {
			return err
		}
		return o.Params.ValidateShim(o.hub)
	case FamilyShim:
		return o.grid().ValidateShim()
	default:
		return o.grid().Validate()
	}
}

// KeyOpts returns the cache key inputs of o.
func (o *Options) KeyOpts() cache.PatternKeyOpts {
	return cache.PatternKeyOpts{
		Family: o.Family,
		Hub:    o.Hub,
		Rows:   o.Rows,
		Cols:   o.Cols,
		Origin: o.Origin,
		Params: o.Params,
	}
}

// Path returns the artifact path for format.
func (o *Options) Path(format string) string {
	return o.Output + "." + format
}

// IsGrid reports whether the family lays out a rows × cols grid.
func (o *Options) IsGrid() bool {
	return o.Family != FamilyBlock && o.Family != FamilyShimBlock
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
