package pipeline

import (
	"testing"

	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/pattern"
)

func TestValidateFamily(t *testing.T) {
	tests := []struct {
		family  string
		wantErr bool
	}{
		{"tessellation", false},
		{"tape", false},
		{"shim", false},
		{"block", false},
		{"shim-block", false},
		{"Tessellation", true},
		{"miura", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFamily(tt.family)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFamily(%q) error = %v, wantErr %v", tt.family, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFamily) {
			t.Errorf("ValidateFamily(%q) code = %v", tt.family, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"dxf", "svg", "pdf", "json"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"dxf", "png"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("png should fail with %v, got %v", errors.ErrCodeInvalidFormat, err)
	}
	if err := ValidateFormats([]string{"DXF"}); err == nil {
		t.Error("formats are case-sensitive")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	o := Options{Hub: "octagonal", Formats: []string{"svg", "dxf", "svg"}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if o.Family != DefaultFamily {
		t.Errorf("Family = %q, want %q", o.Family, DefaultFamily)
	}
	if o.Hub != pattern.HubOct {
		t.Errorf("Hub = %q, want %q", o.Hub, pattern.HubOct)
	}
	if len(o.Formats) != 2 || o.Formats[0] != "svg" || o.Formats[1] != "dxf" {
		t.Errorf("Formats = %v, want [svg dxf]", o.Formats)
	}
	if o.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", o.Output, DefaultOutput)
	}
	if o.Params != pattern.Defaults() {
		t.Errorf("Params = %+v, want defaults", o.Params)
	}
	if o.Logger == nil {
		t.Error("Logger should be defaulted")
	}

	// Idempotent.
	before := o
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults() error: %v", err)
	}
	if o.Hub != before.Hub || o.Output != before.Output || len(o.Formats) != len(before.Formats) {
		t.Error("ValidateAndSetDefaults should be idempotent")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	zeroBeams := pattern.Defaults()
	zeroBeams.BeamCount = 0

	crowded := pattern.Defaults()
	crowded.BeamCount = 10

	badRatio := pattern.Defaults()
	badRatio.Ratio = 1.5

	tests := []struct {
		name string
		opts Options
		want errors.Code
	}{
		{"family", Options{Family: "origami"}, errors.ErrCodeInvalidFamily},
		{"hub", Options{Hub: "hept"}, errors.ErrCodeInvalidConfig},
		{"format", Options{Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
		{"output", Options{Output: "out/"}, errors.ErrCodeInvalidPath},
		{"grid", Options{Rows: -1, Cols: 2}, errors.ErrCodeInvalidGrid},
		{"beam count", Options{Rows: 1, Cols: 1, Params: zeroBeams}, errors.ErrCodeInvalidBeamCount},
		{"extremity", Options{Rows: 1, Cols: 1, Params: crowded}, errors.ErrCodeInfeasibleBranch},
		{"block extremity", Options{Family: FamilyBlock, Params: crowded}, errors.ErrCodeInfeasibleBranch},
		{"shim ratio", Options{Family: FamilyShim, Rows: 1, Cols: 1, Params: badRatio}, errors.ErrCodeInvalidConfig},
		{"shim block ratio", Options{Family: FamilyShimBlock, Params: badRatio}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateAndSetDefaults() = %v, want code %v", err, tt.want)
			}
		})
	}
}

func TestTapeIgnoresShimParams(t *testing.T) {
	p := pattern.Defaults()
	p.Ratio = 0
	o := Options{Family: FamilyTape, Rows: 1, Cols: 1, Params: p}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("tape sheet should not validate shim params: %v", err)
	}
}

func TestOptionsPath(t *testing.T) {
	o := Options{Output: "out/plastic"}
	if got := o.Path("dxf"); got != "out/plastic.dxf" {
		t.Errorf("Path() = %q, want out/plastic.dxf", got)
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		opts Options
		want int
	}{
		{Options{Family: FamilyTessellation, Rows: 3, Cols: 4}, 12},
		{Options{Family: FamilyShim, Rows: 2, Cols: 2}, 4},
		{Options{Family: FamilyTape, Rows: 0, Cols: 5}, 0},
		{Options{Family: FamilyBlock, Rows: 3, Cols: 3}, 1},
		{Options{Family: FamilyShimBlock}, 1},
	}
	for _, tt := range tests {
		if got := tt.opts.Cells(); got != tt.want {
			t.Errorf("%s %dx%d: Cells() = %d, want %d", tt.opts.Family, tt.opts.Rows, tt.opts.Cols, got, tt.want)
		}
	}
}

func TestKeyOptsTracksParams(t *testing.T) {
	a := Options{Family: FamilyShim, Hub: "hex", Rows: 2, Cols: 2, Params: pattern.Defaults()}
	b := a
	b.Params.Margin = 0.5
	if a.KeyOpts() == b.KeyOpts() {
		t.Error("KeyOpts should change with params")
	}
}
