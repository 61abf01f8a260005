package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"courseta/internal/domain"
)

// AnswerPort is the TUI-facing subset of the engine.
type AnswerPort interface {
	AnswerQuestion(question string, hasImage bool) domain.Response
}

// Model is the Bubble Tea model for the interactive Q&A console.
type Model struct {
	engine   AnswerPort
	input    textinput.Model
	viewport viewport.Model
	response *domain.Response
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(engine AnswerPort, corpusSize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a course question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := fmt.Sprintf("Loaded %d corpus items. Type to ask.", corpusSize)
	return Model{engine: engine, input: ti, viewport: vp, status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around answer and question boxes
		_, rh := answerBoxStyle.GetFrameSize()
		_, qh := questionBoxStyle.GetFrameSize()
		totalHeaderLines := 1
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResponse())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				resp := m.engine.AnswerQuestion(q, false)
				m.response = &resp
				m.status = fmt.Sprintf("Answered %q with %d reference(s)", q, len(resp.Links))
				m.viewport.SetContent(m.renderResponse())
				m.input.SetValue("")
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the console layout and the current response.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Course TA")
	input := questionBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	body := answerBoxStyle.Render(m.viewport.View())
	return header + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderResponse() string {
	if m.response == nil {
		return "No answer yet."
	}
	out := answerStyle.Render(m.response.Answer)
	if len(m.response.Links) > 0 {
		var b strings.Builder
		b.WriteString("\n\nReferences:\n")
		for _, l := range m.response.Links {
			b.WriteString(fmt.Sprintf("  %s\n  %s\n", l.Text, linkStyle.Render(l.URL)))
		}
		out += b.String()
	}
	return out
}

var (
	answerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	answerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	linkStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Underline(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
