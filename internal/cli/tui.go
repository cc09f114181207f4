package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/foldcut/pkg/preset"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// presetTable renders presets as a bordered table. A cursor >= 0 marks the
// highlighted row.
func presetTable(presets []preset.Preset, cursor int) string {
	rows := make([][]string, len(presets))
	for i, p := range presets {
		mark := "  "
		if i == cursor {
			mark = "▸ "
		}
		grid := fmt.Sprintf("%d×%d", p.Rows, p.Cols)
		rows[i] = []string{
			mark,
			p.Name,
			p.Family,
			p.Hub,
			grid,
			fmt.Sprintf("%g", p.Params.Radius),
			fmt.Sprintf("%g", p.Params.Length),
			fmt.Sprintf("%g°", p.Params.Angle),
			p.Description,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Family", "Hub", "Grid", "r", "L", "θ", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return headerStyle
			case row == cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col >= 5 && col <= 7:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 8:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// PresetListModel is the bubbletea model for picking a built-in preset.
type PresetListModel struct {
	Presets  []preset.Preset
	Cursor   int
	Selected *preset.Preset
}

// NewPresetListModel returns a picker over presets.
func NewPresetListModel(presets []preset.Preset) PresetListModel {
	return PresetListModel{Presets: presets}
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Presets)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Presets) == 0 {
			return m, tea.Quit
		}
		p := m.Presets[m.Cursor]
		m.Selected = &p
		return m, tea.Quit
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")
	b.WriteString(presetTable(m.Presets, m.Cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Presets))))
	return b.String()
}
