package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/accesskit-go/capture"
	"github.com/wippyai/accesskit-go/tree"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	listStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			PaddingRight(1)
)

const listWidth = 28

func newBrowseCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <capture-file>",
		Short: "Step through a capture file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("browse needs an interactive terminal; use dump or diff instead")
			}
			records, err := capture.ReadFile(args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(args[0], capture.Replay(records)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

type pane int

const (
	paneTree pane = iota
	paneUpdate
)

type browseModel struct {
	filename string
	steps    []capture.Step
	selected int
	pane     pane
	viewport viewport.Model
	ready    bool
	height   int
}

func newBrowseModel(filename string, steps []capture.Step) *browseModel {
	return &browseModel{filename: filename, steps: steps}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.steps)-1 {
				m.selected++
				m.refresh()
			}
			return m, nil
		case "tab":
			m.pane = (m.pane + 1) % 2
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height - 3
		w := max(msg.Width-listWidth-3, 10)
		if !m.ready {
			m.viewport = viewport.New(w, m.height)
			m.ready = true
		} else {
			m.viewport.Width = w
			m.viewport.Height = m.height
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *browseModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.detail())
	m.viewport.GotoTop()
}

// detail renders the selected record: its delta followed by either the
// resulting tree outline or the raw update.
func (m *browseModel) detail() string {
	if len(m.steps) == 0 {
		return "capture file is empty"
	}
	step := m.steps[m.selected]

	var b strings.Builder
	if step.Delta.Empty() {
		b.WriteString(helpStyle.Render("no change") + "\n")
	}
	for _, id := range step.Delta.Added {
		b.WriteString(addedStyle.Render(fmt.Sprintf("+ node %d", id)) + "\n")
	}
	for _, id := range step.Delta.Removed {
		b.WriteString(removedStyle.Render(fmt.Sprintf("- node %d", id)) + "\n")
	}
	for _, c := range step.Delta.Changed {
		fmt.Fprintf(&b, "~ node %d: %s\n", c.ID, strings.Join(c.Properties, ", "))
	}
	b.WriteString("\n")

	switch m.pane {
	case paneTree:
		b.WriteString(outline(step.State))
	case paneUpdate:
		s, err := tree.Debug(step.Record.Update)
		if err != nil {
			s = err.Error()
		}
		b.WriteString(s)
	}
	return b.String()
}

func outline(s *tree.State) string {
	var b strings.Builder
	s.Walk(func(id tree.NodeID, depth int, n *tree.Node) bool {
		line := strings.Repeat("  ", depth) + describeNode(id, n)
		if id == s.Focus() {
			line = focusStyle.Render(line + " (focus)")
		}
		b.WriteString(line + "\n")
		return true
	})
	if b.Len() == 0 {
		return helpStyle.Render("no tree yet") + "\n"
	}
	return b.String()
}

func (m *browseModel) recordLabel(i int) string {
	d := m.steps[i].Delta
	return fmt.Sprintf("#%-3d +%d -%d ~%d", i+1, len(d.Added), len(d.Removed), len(d.Changed))
}

func (m *browseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var list strings.Builder
	first := 0
	if m.height > 0 && m.selected >= m.height {
		first = m.selected - m.height + 1
	}
	for i := first; i < len(m.steps) && i < first+max(m.height, 1); i++ {
		label := m.recordLabel(i)
		if i == m.selected {
			list.WriteString(selectedStyle.Render("> "+label) + "\n")
		} else {
			list.WriteString("  " + label + "\n")
		}
	}

	view := "tree"
	if m.pane == paneUpdate {
		view = "update"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("AccessKit capture"))
	b.WriteString(" " + m.filename + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Width(listWidth).Render(list.String()),
		m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("↑/↓ record • tab %s/update • pgup/pgdn scroll • q quit", view)))
	return b.String()
}
