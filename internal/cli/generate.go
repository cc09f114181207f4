package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/pipeline"
	"github.com/matzehuels/foldcut/pkg/preset"
)

// family describes one generation subcommand.
type family struct {
	name  string
	short string
	grid  bool
}

var families = []family{
	{pipeline.FamilyTessellation, "Generate a panel sheet with cut-style hinge branches", true},
	{pipeline.FamilyTape, "Generate a panel sheet with tape-style slots", true},
	{pipeline.FamilyShim, "Generate the shim sheet matching a panel sheet", true},
	{pipeline.FamilyBlock, "Generate one isolated building block", false},
	{pipeline.FamilyShimBlock, "Generate one isolated shim building block", false},
}

// genOpts holds the flags shared by the family commands.
type genOpts struct {
	preset   string
	config   string
	rows     int
	cols     int
	hub      string
	originX  float64
	originY  float64
	params   pattern.Params
	output   string
	formats  string
	useCache bool
}

func defaultGenOpts() genOpts {
	return genOpts{
		rows:   pipeline.DefaultRows,
		cols:   pipeline.DefaultCols,
		hub:    pipeline.DefaultHub,
		params: pattern.Defaults(),
	}
}

func (c *CLI) familyCommand(f family) *cobra.Command {
	opts := defaultGenOpts()

	cmd := &cobra.Command{
		Use:   f.name,
		Short: f.short,
		Args:  cobra.NoArgs,
		Example: fmt.Sprintf(`  %[1]s %[2]s
  %[1]s %[2]s --preset plastic -f dxf,svg -o out/plastic
  %[1]s %[2]s --config sheet.toml --hub oct --angle 45`, appName, f.name),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := opts.options(cmd, f.name)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), o, opts.useCache)
		},
	}

	opts.bind(cmd, f.grid)
	return cmd
}

// bind registers the generation flags on cmd. Grid flags are only added for
// families that lay out a grid.
func (g *genOpts) bind(cmd *cobra.Command, grid bool) {
	fl := cmd.Flags()
	fl.StringVar(&g.preset, "preset", "", "start from a built-in preset (see 'foldcut presets')")
	fl.StringVar(&g.config, "config", "", "start from a TOML preset file")
	cmd.MarkFlagsMutuallyExclusive("preset", "config")
	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	if grid {
		fl.IntVar(&g.rows, "rows", g.rows, "grid rows")
		fl.IntVar(&g.cols, "cols", g.cols, "grid columns")
	}
	fl.StringVar(&g.hub, "hub", g.hub, "hub layout: hex or oct")
	fl.Float64Var(&g.originX, "origin-x", 0, "x of the first hub center (mm)")
	fl.Float64Var(&g.originY, "origin-y", 0, "y of the first hub center (mm)")

	p := &g.params
	fl.Float64Var(&p.Radius, "radius", p.Radius, "hub radius r (mm)")
	fl.Float64Var(&p.Length, "length", p.Length, "nominal branch length L (mm)")
	fl.Float64Var(&p.Angle, "angle", p.Angle, "fold angle θ in degrees, 0 < θ < 90")
	fl.IntVar(&p.BeamCount, "beam-count", p.BeamCount, "hinge beams per branch")
	fl.Float64Var(&p.PanelGap, "panel-gap", p.PanelGap, "gap between the two halves of a branch (mm)")
	fl.Float64Var(&p.BeamGap, "beam-gap", p.BeamGap, "gap between consecutive beams (mm)")
	fl.Float64Var(&p.BeamLength, "beam-length", p.BeamLength, "beam length along the branch (mm)")
	fl.Float64Var(&p.BeamWidth, "beam-width", p.BeamWidth, "beam width across the branch (mm)")
	fl.Float64Var(&p.Ratio, "ratio", p.Ratio, "shim ratio; shim width is beam-width / ratio")
	fl.Float64Var(&p.Margin, "margin", p.Margin, "shim clearance margin (mm)")

	fl.StringVarP(&g.output, "output", "o", "", "output base path; each format adds its extension (default: preset or family name)")
	fl.StringVarP(&g.formats, "format", "f", "", "output format(s): dxf (default), svg, pdf, json (comma-separated)")
	fl.BoolVar(&g.useCache, "cache", false, "reuse previously written artifacts")
}

// options resolves defaults, the optional preset and explicitly set flags,
// in that order of precedence.
func (g genOpts) options(cmd *cobra.Command, family string) (pipeline.Options, error) {
	changed := cmd.Flags().Changed

	o := pipeline.Options{
		Family: family,
		Hub:    g.hub,
		Rows:   g.rows,
		Cols:   g.cols,
		Params: g.params,
		Output: family,
	}

	var src *preset.Preset
	switch {
	case g.preset != "":
		p, err := preset.Lookup(g.preset)
		if err != nil {
			return o, err
		}
		src = &p
	case g.config != "":
		p, err := preset.Load(g.config)
		if err != nil {
			return o, err
		}
		p.Name = strings.TrimSuffix(filepath.Base(g.config), filepath.Ext(g.config))
		src = &p
	}
	if src != nil {
		o.Hub, o.Rows, o.Cols, o.Origin, o.Params = src.Hub, src.Rows, src.Cols, src.Origin, src.Params
		o.Output = src.Name
		if src.Family != family {
			loggerFromContext(cmd.Context()).Debug("preset family overridden by command",
				"preset", src.Name, "preset_family", src.Family, "family", family)
		}
	}

	overrides := []struct {
		flag  string
		apply func()
	}{
		{"rows", func() { o.Rows = g.rows }},
		{"cols", func() { o.Cols = g.cols }},
		{"hub", func() { o.Hub = g.hub }},
		{"origin-x", func() { o.Origin[0] = g.originX }},
		{"origin-y", func() { o.Origin[1] = g.originY }},
		{"radius", func() { o.Params.Radius = g.params.Radius }},
		{"length", func() { o.Params.Length = g.params.Length }},
		{"angle", func() { o.Params.Angle = g.params.Angle }},
		{"beam-count", func() { o.Params.BeamCount = g.params.BeamCount }},
		{"panel-gap", func() { o.Params.PanelGap = g.params.PanelGap }},
		{"beam-gap", func() { o.Params.BeamGap = g.params.BeamGap }},
		{"beam-length", func() { o.Params.BeamLength = g.params.BeamLength }},
		{"beam-width", func() { o.Params.BeamWidth = g.params.BeamWidth }},
		{"ratio", func() { o.Params.Ratio = g.params.Ratio }},
		{"margin", func() { o.Params.Margin = g.params.Margin }},
		{"output", func() { o.Output = g.output }},
	}
	for _, ov := range overrides {
		if changed(ov.flag) {
			ov.apply()
		}
	}
	o.Formats = parseFormats(g.formats)
	return o, nil
}

func (c *CLI) runGenerate(ctx context.Context, o pipeline.Options, useCache bool) error {
	logger := loggerFromContext(ctx)
	runner, err := c.newRunner(useCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	o.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s...", o.Family))
	spinner.Start()

	res, err := runner.Execute(ctx, o)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return err
		}
		spinner.StopWithError(fmt.Sprintf("Generating %s failed", o.Family))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated %s", o.Family))

	printSuccess("Generated %s sheet", o.Family)
	printStats(res)
	for _, format := range o.Formats {
		if path, ok := res.Artifacts[format]; ok {
			printFile(path)
		}
	}
	return nil
}
