package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/diogo/msgboard/internal/api"
	"github.com/diogo/msgboard/internal/board"
	"github.com/diogo/msgboard/internal/config"
	"github.com/diogo/msgboard/internal/models"
	"github.com/diogo/msgboard/internal/render"
)

// Message types for the TUI
type (
	loadedMsg struct {
		messages []models.Message
		err      error
	}
	submittedMsg struct {
		message models.Message
		err     error
	}
)

// Model represents the board TUI. The Update loop is the only writer of
// state; requests run as commands and report back through loadedMsg and
// submittedMsg.
type Model struct {
	client api.MessageClientInterface
	logger *zap.Logger
	cfg    config.Config

	state     board.State
	formatter models.TimeFormatter
	copyText  func(string) error

	// UI components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	feedback string
	ready    bool

	// Dimensions
	width  int
	height int
}

// NewBoardModel creates the board model. The initial load is already
// started, so the first frame shows the loading state.
func NewBoardModel(client api.MessageClientInterface, cfg config.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TUITheme != "" && render.SetPalette(cfg.TUITheme) {
		UpdateTheme()
	}

	ti := textinput.New()
	ti.Placeholder = board.Placeholder
	ti.CharLimit = 0
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorTextDim)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	vp := viewport.New(0, 0)
	vp.KeyMap = scrollKeys()

	state := board.New()
	state.BeginLoad()

	return Model{
		client:    client,
		logger:    logger,
		cfg:       cfg,
		state:     state,
		formatter: models.NewTimeFormatter(cfg.TimeFormat),
		copyText:  clipboard.WriteAll,
		input:     ti,
		viewport:  vp,
		spinner:   s,
	}
}

// scrollKeys limits the viewport to keys that cannot be typed into a draft
func scrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

// State returns the current board state
func (m Model) State() board.State {
	return m.state
}

// Init issues the initial fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchMessages(),
		m.spinner.Tick,
	)
}

func (m Model) fetchMessages() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		messages, err := client.ListMessages(context.Background())
		return loadedMsg{messages: messages, err: err}
	}
}

func (m Model) createMessage(content string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreateMessage(context.Background(), content)
		return submittedMsg{message: created, err: err}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		bannerHeight := 2
		inputHeight := 5
		statusHeight := 1

		vpHeight := m.height - headerHeight - bannerHeight - inputHeight - statusHeight - 2
		if vpHeight < 3 {
			vpHeight = 3
		}
		contentWidth := m.contentWidth()

		m.viewport.Width = contentWidth - 4
		m.viewport.Height = vpHeight
		m.input.Width = contentWidth - 20
		m.ready = true
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			content, ok := m.state.BeginSubmit()
			if !ok {
				return m, nil
			}
			m.input.Blur()
			m.updateViewport()
			return m, tea.Batch(m.createMessage(content), m.spinner.Tick)

		case "ctrl+r":
			if !m.state.BeginLoad() {
				return m, nil
			}
			m.input.Blur()
			m.updateViewport()
			return m, tea.Batch(m.fetchMessages(), m.spinner.Tick)

		case "ctrl+y":
			m.copyLatest()
			return m, clearFeedback(2 * time.Second)
		}

		if !m.state.Busy {
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			m.state.SetDraft(m.input.Value())
		}

	case loadedMsg:
		if err := m.state.FinishLoad(msg.messages, msg.err); err != nil {
			board.LogFailure(m.logger, board.FlowLoad, err)
		} else {
			m.logger.Debug("messages loaded", zap.Int("count", len(m.state.Messages)))
		}
		cmds = append(cmds, m.afterRequest())
		m.viewport.GotoBottom()

	case submittedMsg:
		if err := m.state.FinishSubmit(msg.message, msg.err); err != nil {
			board.LogFailure(m.logger, board.FlowSubmit, err)
		} else {
			m.logger.Debug("message created", zap.Stringer("id", msg.message.ID))
		}
		cmds = append(cmds, m.afterRequest())
		m.viewport.GotoBottom()

	case feedbackClearMsg:
		m.feedback = ""

	case spinner.TickMsg:
		if m.state.Busy {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.updateViewport()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// afterRequest syncs the input with the draft and re-enables it
func (m *Model) afterRequest() tea.Cmd {
	m.input.SetValue(m.state.Draft)
	m.input.CursorEnd()
	m.updateViewport()
	return m.input.Focus()
}

func (m *Model) copyLatest() {
	if len(m.state.Messages) == 0 {
		m.feedback = "Nothing to copy"
		return
	}
	if !m.cfg.CopyToClipboard {
		m.feedback = "Clipboard copy is disabled in config"
		return
	}
	latest := m.state.Messages[len(m.state.Messages)-1]
	if err := m.copyText(latest.Content); err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(err))
		m.feedback = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.feedback = "Copied latest message"
}

func (m Model) contentWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

// updateViewport refreshes the message list from the current screen
func (m *Model) updateViewport() {
	screen := board.Render(m.state, m.formatter.Format)
	m.viewport.SetContent(m.renderList(screen))
}

func (m Model) renderList(screen board.Screen) string {
	switch screen.List {
	case board.ListLoading:
		return loadingStyle.Render(m.spinner.View() + " " + board.TextLoading)
	case board.ListEmpty:
		return emptyStyle.Render(board.TextEmpty)
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 76
	}
	opts := render.OptionsFromConfig(m.cfg, width)

	var content strings.Builder
	for i, item := range screen.Items {
		if i > 0 {
			content.WriteString("\n\n")
		}
		body := item.Content
		if m.cfg.RenderMarkdown {
			body = render.MessageBody(item.Content, opts)
		}
		content.WriteString(messageStyle.Width(width).Render(body))
		meta := messageKeyStyle.Render("#" + item.Key)
		if item.Time != "" {
			meta += "  " + messageTimeStyle.Render(item.Time)
		}
		content.WriteString("\n" + meta)
	}
	return content.String()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	screen := board.Render(m.state, m.formatter.Format)
	contentWidth := m.contentWidth()
	var sections []string

	// Header
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("✉ "+board.TextTitle),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.BaseURL()),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(header))

	// Error banner
	if screen.ShowBanner {
		sections = append(sections, bannerStyle.Width(contentWidth).Render(screen.Banner))
	}

	// Compose
	button := buttonStyle.Render(screen.SubmitLabel)
	panel := inputPanelStyle
	if screen.SubmitDisabled {
		button = buttonBusyStyle.Render(screen.SubmitLabel)
	}
	if screen.InputDisabled {
		panel = inputDisabledStyle
	}
	compose := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render(board.TextAddHeader),
		lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", button),
	)
	sections = append(sections, panel.Width(contentWidth).Render(compose))

	// Messages
	list := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render(board.TextListHeader),
		m.viewport.View(),
	)
	sections = append(sections, messagesAreaStyle.Width(contentWidth).Render(list))

	// Status bar
	status := renderShortcuts([]shortcut{
		{"Enter", "Send"},
		{"Ctrl+R", "Reload"},
		{"Ctrl+Y", "Copy latest"},
		{"↑↓", "Scroll"},
		{"Esc", "Quit"},
	})
	if m.feedback != "" {
		status += "  " + feedbackStyle.Render(m.feedback)
	}
	sections = append(sections, statusBarStyle.Width(contentWidth).Render(status))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RunBoard starts the board TUI
func RunBoard(client api.MessageClientInterface, cfg config.Config, logger *zap.Logger) error {
	m := NewBoardModel(client, cfg, logger)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
