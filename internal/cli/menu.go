package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/response"
)

// Menu styles
var (
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	menuNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	menuDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	menuErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// menuAction is one entry of the interactive menu.
type menuAction struct {
	title   string
	prompts []string
	run     func(ctx context.Context, sys *response.System, in []string) ([]string, error)
}

var menuActions = []menuAction{
	{
		title:   "Add affected area",
		prompts: []string{"Enter area name"},
		run: func(_ context.Context, sys *response.System, in []string) ([]string, error) {
			if err := sys.AddArea(in[0]); err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("Area %s added!", strings.TrimSpace(in[0]))}, nil
		},
	},
	{
		title: "Display affected areas",
		run: func(_ context.Context, sys *response.System, _ []string) ([]string, error) {
			return []string{"Affected Areas (In-order): " + strings.Join(sys.Areas(), " ")}, nil
		},
	},
	{
		title:   "Add route",
		prompts: []string{"Enter starting area", "Enter destination area", "Enter distance"},
		run: func(_ context.Context, sys *response.System, in []string) ([]string, error) {
			d, err := strconv.ParseInt(strings.TrimSpace(in[2]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("distance %q is not a whole number", in[2])
			}
			if err := sys.AddRoute(in[0], in[1], d); err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("Route %s -> %s with distance %d added!",
				strings.TrimSpace(in[0]), strings.TrimSpace(in[1]), d)}, nil
		},
	},
	{
		title:   "BFS path",
		prompts: []string{"Enter starting area"},
		run: func(ctx context.Context, sys *response.System, in []string) ([]string, error) {
			order, err := sys.BFSPath(ctx, in[0])
			if err != nil {
				return nil, err
			}
			return []string{"BFS Path: " + strings.Join(order, " ")}, nil
		},
	},
	{
		title:   "Shortest paths",
		prompts: []string{"Enter starting area"},
		run: func(_ context.Context, sys *response.System, in []string) ([]string, error) {
			rows, err := sys.ShortestPaths(in[0])
			if err != nil {
				return nil, err
			}
			lines := []string{"Shortest paths:"}
			for _, r := range rows {
				if r.Reachable {
					lines = append(lines, fmt.Sprintf("To %s: %d", r.Area, r.Distance))
				} else {
					lines = append(lines, fmt.Sprintf("To %s: unreachable", r.Area))
				}
			}
			return lines, nil
		},
	},
	{title: "Exit"},
}

// exitAction is the index of the Exit entry.
var exitAction = len(menuActions) - 1

// =============================================================================
// MenuModel - Interactive disaster-response menu
// =============================================================================

// MenuModel is the bubbletea model for the interactive menu.
type MenuModel struct {
	ctx context.Context
	sys *response.System

	Cursor int
	active int      // index into menuActions while prompting, -1 otherwise
	values []string // answers collected for the active action
	input  string
	Output []string
	Err    error
	Done   bool
}

// NewMenuModel creates a menu operating on sys.
func NewMenuModel(ctx context.Context, sys *response.System) MenuModel {
	return MenuModel{ctx: ctx, sys: sys, active: -1}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.Done = true
		return m, tea.Quit
	}
	if m.active >= 0 {
		return m.updatePrompt(key)
	}

	switch key.String() {
	case "q", "esc":
		m.Done = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(menuActions)-1 {
			m.Cursor++
		}
	case "enter":
		return m.choose(m.Cursor)
	default:
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(menuActions) {
			m.Cursor = n - 1
			return m.choose(n - 1)
		}
	}
	return m, nil
}

// updatePrompt edits the current answer and submits it on enter.
func (m MenuModel) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.active, m.values, m.input = -1, nil, ""
	case tea.KeyEnter:
		m.values = append(m.values, m.input)
		m.input = ""
		if len(m.values) == len(menuActions[m.active].prompts) {
			m.execute()
		}
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

// choose starts action i: exit quits, actions without prompts run at once.
func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	if i == exitAction {
		m.Done = true
		return m, tea.Quit
	}
	m.active, m.values, m.input = i, nil, ""
	m.Output, m.Err = nil, nil
	if len(menuActions[i].prompts) == 0 {
		m.execute()
	}
	return m, nil
}

func (m *MenuModel) execute() {
	m.Output, m.Err = menuActions[m.active].run(m.ctx, m.sys, m.values)
	m.active, m.values = -1, nil
}

func (m MenuModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Disaster Response"))
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("↑/↓ navigate  ⏎ select  1-6 shortcut  q quit"))
	b.WriteString("\n\n")

	for i, a := range menuActions {
		line := fmt.Sprintf("%d. %s", i+1, a.title)
		if i == m.Cursor {
			b.WriteString(menuSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(menuNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.active >= 0 {
		prompt := menuActions[m.active].prompts[len(m.values)]
		b.WriteString("\n")
		b.WriteString(StyleValue.Render(prompt+": ") + m.input + menuDimStyle.Render("▏"))
		b.WriteString("\n")
		b.WriteString(menuDimStyle.Render("esc cancel"))
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(menuErrorStyle.Render(iconError + " " + m.Err.Error()))
		b.WriteString("\n")
	}
	if len(m.Output) > 0 {
		b.WriteString("\n")
		for _, l := range m.Output {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// menuCommand runs the interactive menu against the loaded session.
func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive disaster-response menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Info records would interleave with the redrawn menu.
			prev := c.Logger.GetLevel()
			if prev < log.WarnLevel {
				c.Logger.SetLevel(log.WarnLevel)
			}
			defer c.Logger.SetLevel(prev)

			ctx := cmd.Context()
			p := tea.NewProgram(
				NewMenuModel(ctx, c.system()),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(MenuModel); ok {
				sum := m.sys.Summary()
				printSuccess(cmd.OutOrStdout(), "Session %s: %d areas, %d roads", sum.Session, sum.Areas, sum.Roads)
			}
			return nil
		},
	}
}
