// Package prompt provides a Bubble Tea decision surface for permission
// requests, used by the CLI.
package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/logging"
)

// TerminalPrompter presents permission prompts in the terminal. It implements
// port.PermissionPrompter; each prompt runs its own Bubble Tea program and
// reports the outcome exactly once.
type TerminalPrompter struct{}

// New creates a terminal prompter.
func New() *TerminalPrompter {
	return &TerminalPrompter{}
}

// ShowPermissionPrompt presents the prompt and invokes respond with the
// user's choice. Quitting the prompt without a choice reports a dismissal.
func (p *TerminalPrompter) ShowPermissionPrompt(
	ctx context.Context,
	origin entity.Origin,
	displayName string,
	respond func(outcome port.PromptOutcome),
) {
	log := logging.FromContext(ctx)

	m := newModel(origin, displayName)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		log.Warn().Err(err).Msg("permission prompt aborted, treating as dismissal")
		respond(port.PromptDismissed)
		return
	}

	result, ok := final.(model)
	if !ok {
		respond(port.PromptDismissed)
		return
	}
	respond(result.outcome)
}

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Allow   key.Binding
	Block   key.Binding
	Dismiss key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Allow, k.Block, k.Dismiss}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select},
		{k.Allow, k.Block, k.Dismiss},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Allow: key.NewBinding(
			key.WithKeys("a", "y"),
			key.WithHelp("a", "allow"),
		),
		Block: key.NewBinding(
			key.WithKeys("b", "n"),
			key.WithHelp("b", "block"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

var choices = []struct {
	label   string
	outcome port.PromptOutcome
}{
	{label: "Allow", outcome: port.PromptAccepted},
	{label: "Block", outcome: port.PromptDenied},
	{label: "Not now", outcome: port.PromptDismissed},
}

type model struct {
	origin      entity.Origin
	displayName string
	keys        keyMap
	help        help.Model

	selected int
	outcome  port.PromptOutcome
	done     bool
}

func newModel(origin entity.Origin, displayName string) model {
	return model{
		origin:      origin,
		displayName: displayName,
		keys:        defaultKeyMap(),
		help:        help.New(),
		outcome:     port.PromptDismissed,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.selected < len(choices)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.outcome = choices[m.selected].outcome
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Allow):
		m.outcome = port.PromptAccepted
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Block):
		m.outcome = port.PromptDenied
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Dismiss):
		m.outcome = port.PromptDismissed
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	originStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
	choiceStyle = lipgloss.NewStyle().
			Padding(0, 2)
	selectedChoiceStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Reverse(true).
				Bold(true)
)

func (m model) View() string {
	if m.done {
		return ""
	}

	header := titleStyle.Render("Notification permission request")
	question := fmt.Sprintf("%s wants to show desktop notifications.", originStyle.Render(m.displayName))

	row := make([]string, len(choices))
	for i, c := range choices {
		if i == m.selected {
			row[i] = selectedChoiceStyle.Render(c.label)
		} else {
			row[i] = choiceStyle.Render(c.label)
		}
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, row...)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		question,
		fmt.Sprintf("Origin: %s", m.origin),
		"",
		buttons,
	)

	return boxStyle.Render(body) + "\n" + m.help.View(m.keys) + "\n"
}

var _ port.PermissionPrompter = (*TerminalPrompter)(nil)
