// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/engine"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
	"github.com/katalvlaran/energyflow/internal/ui"
	"github.com/katalvlaran/energyflow/view"
)

const barWidth = 30

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleBar      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleTrack    = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	categoryCycle = append([]category.Category{category.All}, category.Concrete()...)
)

type browseKeys struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Category key.Binding
	Quit     key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/close")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "overview")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is a bubbletea model navigating overview and detail views.
type browseModel struct {
	eng    *engine.Engine
	input  engine.Input
	nav    *view.Navigator
	keys   browseKeys
	out    engine.Output
	cursor int
	err    error
}

func newBrowseModel(eng *engine.Engine, input engine.Input) browseModel {
	levels, _ := hierarchy.Sort(input.Levels)
	m := browseModel{
		eng:   eng,
		input: input,
		nav:   view.NewNavigator(levels),
		keys:  newBrowseKeys(),
	}
	if input.Selected != "" {
		// seed the navigator through the regular click path
		m.input.Selected = ""
		m.rebuild()
		for _, n := range m.nodes() {
			if n.ID == input.Selected {
				m.err = m.nav.Click(n)
				break
			}
		}
	}
	m.rebuild()

	return m
}

func (m *browseModel) rebuild() {
	m.input.Selected = m.nav.Selected()
	m.out = m.eng.Rebuild(m.input)
	if m.out.Selected != m.nav.Selected() {
		m.nav.Reset()
	}
	if n := len(m.nodes()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m browseModel) nodes() []flowgraph.Node {
	if m.out.Graph == nil {
		return nil
	}
	return m.out.Graph.Nodes
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(kmsg, m.keys.Down):
		if m.cursor < len(m.nodes())-1 {
			m.cursor++
		}
	case key.Matches(kmsg, m.keys.Open):
		if nodes := m.nodes(); m.cursor < len(nodes) {
			m.err = m.nav.Click(nodes[m.cursor])
			m.cursor = 0
			m.rebuild()
		}
	case key.Matches(kmsg, m.keys.Back):
		m.nav.Reset()
		m.cursor = 0
		m.rebuild()
	case key.Matches(kmsg, m.keys.Category):
		m.input.Category = nextCategory(m.input.Category)
		m.rebuild()
	}

	return m, nil
}

func nextCategory(c category.Category) category.Category {
	for i, cc := range categoryCycle {
		if cc == c {
			return categoryCycle[(i+1)%len(categoryCycle)]
		}
	}
	return category.All
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(ui.Bolt+" "+strings.Join(m.nav.Breadcrumb(), " › ")) + "\n")
	b.WriteString(styleSubtle.Render(fmt.Sprintf("category %s · %s", m.input.Category, m.out.Status)) + "\n\n")

	switch {
	case m.out.Graph == nil:
		b.WriteString(styleWarn.Render("  levels are still loading") + "\n")
	case !m.out.HasDataForPeriod:
		b.WriteString(styleWarn.Render("  no data for the selected period") + "\n")
	}

	nodes := m.nodes()
	peak := 0.0
	for _, n := range nodes {
		peak = math.Max(peak, math.Abs(n.Value))
	}
	for i, n := range nodes {
		filled := 0
		if peak > 0 {
			filled = int(math.Round(math.Abs(n.Value) / peak * barWidth))
		}
		bar := styleBar.Render(strings.Repeat("█", filled)) + styleTrack.Render(strings.Repeat("░", barWidth-filled))
		label := fmt.Sprintf("%-24s %10s", n.Name, ui.Number(n.Value))
		prefix := "  "
		if i == m.cursor {
			prefix = styleCursor.Render("▸ ")
			label = styleCursor.Render(label)
		}
		b.WriteString(prefix + label + " " + bar + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + styleWarn.Render(m.err.Error()) + "\n")
	}
	help := []string{}
	for _, k := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Back, m.keys.Category, m.keys.Quit} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n" + styleSubtle.Render(strings.Join(help, " · ")) + "\n")

	return b.String()
}

func browseCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively navigate the overview and detail views",
		Long: `Open an interactive navigator over a snapshot. Enter on a workshop opens
its detail view, enter on the selected node or esc returns to the overview,
c cycles through the energy categories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := in.load(a, cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(a.newEngine(), s.Input),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(a.out))
			_, err = p.Run()
			return err
		},
	}
	in.register(cmd, true)

	return cmd
}
