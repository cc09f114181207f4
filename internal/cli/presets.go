package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/foldcut/pkg/preset"
)

func (c *CLI) presetsCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := preset.Builtin()
			if !pick {
				fmt.Println(presetTable(presets, -1))
				printNextStep("Generate one", fmt.Sprintf("%s tessellation --preset %s", appName, presets[0].Name))
				return nil
			}
			return runPresetPicker(presets)
		},
	}
	cmd.Flags().BoolVar(&pick, "pick", false, "choose a preset interactively")

	cmd.AddCommand(c.presetsShowCommand())
	return cmd
}

func (c *CLI) presetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a built-in preset as TOML, ready to edit and pass to --config",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return preset.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := preset.Lookup(args[0])
			if err != nil {
				return err
			}
			return p.Encode(cmd.OutOrStdout())
		},
	}
}

func runPresetPicker(presets []preset.Preset) error {
	final, err := tea.NewProgram(NewPresetListModel(presets), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return fmt.Errorf("preset picker: %w", err)
	}
	m, ok := final.(PresetListModel)
	if !ok || m.Selected == nil {
		printInfo("No preset selected")
		return nil
	}

	p := m.Selected
	printSuccess("Selected %s", StyleTitle.Render(p.Name))
	printKeyValue("family", p.Family)
	printKeyValue("hub", p.Hub)
	printKeyValue("grid", fmt.Sprintf("%d × %d", p.Rows, p.Cols))
	printKeyValue("radius", StyleNumber.Render(fmt.Sprintf("%g mm", p.Params.Radius)))
	printKeyValue("length", StyleNumber.Render(fmt.Sprintf("%g mm", p.Params.Length)))
	printKeyValue("angle", StyleNumber.Render(fmt.Sprintf("%g°", p.Params.Angle)))
	printNextStep("Generate it", fmt.Sprintf("%s %s --preset %s", appName, p.Family, p.Name))
	return nil
}
