package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/msgboard/internal/config"
	"github.com/diogo/msgboard/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewThemeSelect
	viewTimeFormatSelect
	viewMarkdownStyleSelect
)

// Menu item indices for main view
const (
	menuTUITheme = iota
	menuTimeFormat
	menuRenderMarkdown
	menuMarkdownStyle
	menuCopyToClipboard
	menuExit
	menuItemCount
)

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// saveFunc persists settings; replaced in tests
type saveFunc func(config.Config) error

// ConfigModel represents the config TUI state
type ConfigModel struct {
	config    config.Config
	configDir string
	logPath   string
	save      saveFunc

	// Navigation
	view      configView
	cursor    int
	subCursor int

	// Feedback
	feedback        string
	feedbackTimeout time.Duration

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewConfigModel creates a new config TUI model
func NewConfigModel() ConfigModel {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	configDir, _ := config.GetConfigDir()
	logPath, _ := config.GetLogPath()

	if cfg.TUITheme != "" && render.SetPalette(cfg.TUITheme) {
		UpdateTheme()
	}

	return ConfigModel{
		config:          cfg,
		configDir:       configDir,
		logPath:         logPath,
		save:            config.SaveConfig,
		view:            viewMain,
		feedbackTimeout: 2 * time.Second,
	}
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// choices returns the options of a selection sub-view and the current value
func (m ConfigModel) choices(view configView) ([]string, string) {
	switch view {
	case viewThemeSelect:
		return render.PaletteNames(), m.config.TUITheme
	case viewTimeFormatSelect:
		return config.TimeFormats(), m.config.TimeFormat
	case viewMarkdownStyleSelect:
		return config.MarkdownStyles(), m.config.MarkdownStyle
	}
	return nil, ""
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.view != viewMain {
				m.view = viewMain
			} else {
				return m, tea.Quit
			}

		case "up", "k":
			m.move(-1)

		case "down", "j":
			m.move(1)

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

// move shifts the active cursor with wrap-around
func (m *ConfigModel) move(delta int) {
	if m.view == viewMain {
		m.cursor = (m.cursor + delta + menuItemCount) % menuItemCount
		return
	}
	options, _ := m.choices(m.view)
	if len(options) == 0 {
		return
	}
	m.subCursor = (m.subCursor + delta + len(options)) % len(options)
}

// openChoice enters a selection sub-view with the cursor on the current value
func (m ConfigModel) openChoice(view configView) ConfigModel {
	m.view = view
	m.subCursor = 0
	options, current := m.choices(view)
	for i, o := range options {
		if o == current {
			m.subCursor = i
			break
		}
	}
	return m
}

// persist saves settings and sets the feedback line
func (m ConfigModel) persist(success string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
	} else {
		m.feedback = success
	}
	return m, clearFeedback(m.feedbackTimeout)
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.view != viewMain {
		options, _ := m.choices(m.view)
		selected := options[m.subCursor]
		view := m.view
		m.view = viewMain

		switch view {
		case viewThemeSelect:
			m.config.TUITheme = selected
			render.SetPalette(selected)
			UpdateTheme()
			return m.persist(fmt.Sprintf("TUI theme set to %s", selected))
		case viewTimeFormatSelect:
			m.config.TimeFormat = selected
			return m.persist(fmt.Sprintf("Time format set to %s", selected))
		case viewMarkdownStyleSelect:
			m.config.MarkdownStyle = selected
			return m.persist(fmt.Sprintf("Markdown style set to %s", selected))
		}
		return m, nil
	}

	switch m.cursor {
	case menuTUITheme:
		return m.openChoice(viewThemeSelect), nil
	case menuTimeFormat:
		return m.openChoice(viewTimeFormatSelect), nil
	case menuMarkdownStyle:
		return m.openChoice(viewMarkdownStyleSelect), nil

	case menuRenderMarkdown:
		m.config.RenderMarkdown = !m.config.RenderMarkdown
		return m.persist(fmt.Sprintf("Markdown rendering %s", enabledWord(m.config.RenderMarkdown)))

	case menuCopyToClipboard:
		m.config.CopyToClipboard = !m.config.CopyToClipboard
		return m.persist(fmt.Sprintf("Copy to clipboard %s", enabledWord(m.config.CopyToClipboard)))

	case menuExit:
		return m, tea.Quit
	}

	return m, nil
}

func enabledWord(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	header := configHeaderStyle.Width(contentWidth).Render(configTitleStyle.Render("✦ Configuration"))
	sections = append(sections, header)

	paths := lipgloss.JoinVertical(lipgloss.Left,
		configSectionTitleStyle.Render("Paths"),
		fmt.Sprintf("   Config: %s", configPathStyle.Render(m.configDir+"/config.json")),
		fmt.Sprintf("   Log:    %s", configPathStyle.Render(m.logPath)),
	)
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(paths))

	var settings string
	if m.view == viewMain {
		settings = m.renderMainMenu()
	} else {
		settings = m.renderChoice()
	}
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(settings))

	if m.feedback != "" {
		sections = append(sections, feedbackStyle.Render("✓ "+m.feedback))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func menuLine(selected bool, label, value string) string {
	cursor := "  "
	style := configMenuItemStyle
	if selected {
		cursor = configCursorStyle.Render("▸ ")
		style = configMenuSelectedStyle
	}
	if value == "" {
		return cursor + style.Render(label)
	}
	pad := 20 - len(label)
	if pad < 1 {
		pad = 1
	}
	return cursor + style.Render(label) + strings.Repeat(" ", pad) + value
}

// renderMainMenu renders the main settings menu
func (m ConfigModel) renderMainMenu() string {
	items := []string{
		configSectionTitleStyle.Render("⚙ Settings"),
		"",
		menuLine(m.cursor == menuTUITheme, "TUI Theme", configValueStyle.Render(m.config.TUITheme)),
		menuLine(m.cursor == menuTimeFormat, "Time Format", configValueStyle.Render(m.config.TimeFormat)),
		menuLine(m.cursor == menuRenderMarkdown, "Render Markdown", m.renderBoolValue(m.config.RenderMarkdown)),
		menuLine(m.cursor == menuMarkdownStyle, "Markdown Style", configValueStyle.Render(m.config.MarkdownStyle)),
		menuLine(m.cursor == menuCopyToClipboard, "Copy to Clipboard", m.renderBoolValue(m.config.CopyToClipboard)),
		"",
		menuLine(m.cursor == menuExit, "Exit", ""),
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderChoice renders the active selection sub-menu
func (m ConfigModel) renderChoice() string {
	titles := map[configView]string{
		viewThemeSelect:         "Select TUI Theme",
		viewTimeFormatSelect:    "Select Time Format",
		viewMarkdownStyleSelect: "Select Markdown Style",
	}

	options, current := m.choices(m.view)
	items := []string{configSectionTitleStyle.Render(titles[m.view]), ""}
	for i, option := range options {
		label := option
		if m.view == viewThemeSelect {
			if p, ok := render.PaletteByName(option); ok {
				label = fmt.Sprintf("%s - %s", p.Name, p.Description)
			}
		}
		if m.view == viewTimeFormatSelect {
			label = fmt.Sprintf("%s  (%s)", option, sampleTime.Format(option))
		}
		line := menuLine(m.subCursor == i, label, "")
		if option == current {
			line += configCurrentStyle.Render(" (current)")
		}
		items = append(items, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

var sampleTime = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

// renderBoolValue renders a boolean value with appropriate styling
func (m ConfigModel) renderBoolValue(value bool) string {
	if value {
		return configEnabledStyle.Render("enabled")
	}
	return configDisabledStyle.Render("disabled")
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view != viewMain {
		back = "Back"
	}
	bar := renderShortcuts([]shortcut{
		{"↑↓", "Navigate"},
		{"Enter", "Select"},
		{"Esc", back},
	})
	return configStatusBarStyle.Width(width).Render(bar)
}

// RunConfig starts the config TUI
func RunConfig() error {
	m := NewConfigModel()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
