package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/msgboard/internal/config"
	"github.com/diogo/msgboard/internal/render"
)

func newTestConfigModel(t *testing.T) (ConfigModel, *[]config.Config) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	m := NewConfigModel()
	saved := &[]config.Config{}
	m.save = func(cfg config.Config) error {
		*saved = append(*saved, cfg)
		return nil
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(ConfigModel), saved
}

func press(m ConfigModel, k tea.KeyMsg) (ConfigModel, tea.Cmd) {
	updated, cmd := m.Update(k)
	return updated.(ConfigModel), cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewConfigModel(t *testing.T) {
	m, _ := newTestConfigModel(t)

	if m.configDir == "" || m.logPath == "" {
		t.Error("paths should be resolved")
	}
	if m.view != viewMain || m.cursor != 0 {
		t.Errorf("unexpected initial navigation: view=%v cursor=%d", m.view, m.cursor)
	}
	if m.feedbackTimeout != 2*time.Second {
		t.Errorf("feedbackTimeout = %v", m.feedbackTimeout)
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestConfigModel_CursorWraps(t *testing.T) {
	m, _ := newTestConfigModel(t)

	m, _ = press(m, keyUp)
	if m.cursor != menuItemCount-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, menuItemCount-1)
	}
	m, _ = press(m, keyDown)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestConfigModel_ToggleMarkdown(t *testing.T) {
	m, saved := newTestConfigModel(t)
	m.cursor = menuRenderMarkdown

	m, cmd := press(m, keyEnter)
	if cmd == nil {
		t.Error("expected feedback clear command")
	}
	if !m.config.RenderMarkdown {
		t.Error("RenderMarkdown should be toggled on")
	}
	if len(*saved) != 1 || !(*saved)[0].RenderMarkdown {
		t.Errorf("config not saved: %+v", *saved)
	}
	if !strings.Contains(m.feedback, "enabled") {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_ToggleClipboard(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuCopyToClipboard
	before := m.config.CopyToClipboard

	m, _ = press(m, keyEnter)
	if m.config.CopyToClipboard == before {
		t.Error("CopyToClipboard should be toggled")
	}
}

func TestConfigModel_SaveError(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.save = func(config.Config) error { return errors.New("disk full") }
	m.cursor = menuRenderMarkdown

	m, _ = press(m, keyEnter)
	if !strings.Contains(m.feedback, "disk full") {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_SelectTheme(t *testing.T) {
	defer func() {
		render.SetPalette("tokyonight")
		UpdateTheme()
	}()

	m, saved := newTestConfigModel(t)
	m.cursor = menuTUITheme

	m, _ = press(m, keyEnter)
	if m.view != viewThemeSelect {
		t.Fatalf("view = %v, want theme select", m.view)
	}
	if m.subCursor != 0 {
		t.Errorf("subCursor should start on the current theme, got %d", m.subCursor)
	}
	if !strings.Contains(m.View(), "Select TUI Theme") {
		t.Error("expected theme selector view")
	}

	m, _ = press(m, keyDown)
	m, _ = press(m, keyEnter)

	want := render.PaletteNames()[1]
	if m.view != viewMain || m.config.TUITheme != want {
		t.Errorf("theme = %s view = %v", m.config.TUITheme, m.view)
	}
	if render.CurrentPalette().Name != want {
		t.Error("palette should be applied immediately")
	}
	if len(*saved) != 1 {
		t.Error("theme change should be saved")
	}
}

func TestConfigModel_SelectTimeFormat(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuTimeFormat

	m, _ = press(m, keyEnter)
	if m.view != viewTimeFormatSelect {
		t.Fatalf("view = %v", m.view)
	}
	m, _ = press(m, keyUp)
	m, _ = press(m, keyEnter)

	formats := config.TimeFormats()
	if m.config.TimeFormat != formats[len(formats)-1] {
		t.Errorf("TimeFormat = %q", m.config.TimeFormat)
	}
}

func TestConfigModel_SelectMarkdownStyle(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuMarkdownStyle

	m, _ = press(m, keyEnter)
	m, _ = press(m, keyDown)
	m, _ = press(m, keyEnter)

	if m.config.MarkdownStyle != "light" {
		t.Errorf("MarkdownStyle = %q, want light", m.config.MarkdownStyle)
	}
}

func TestConfigModel_Escape(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuTimeFormat
	m, _ = press(m, keyEnter)

	m, cmd := press(m, keyEsc)
	if m.view != viewMain || cmd != nil {
		t.Error("esc in a sub-view should return to the main menu")
	}

	_, cmd = press(m, keyEsc)
	if cmd == nil {
		t.Fatal("esc on main menu should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestConfigModel_Exit(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.cursor = menuExit

	_, cmd := press(m, keyEnter)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestConfigModel_FeedbackClear(t *testing.T) {
	m, _ := newTestConfigModel(t)
	m.feedback = "saved"

	updated, _ := m.Update(feedbackClearMsg{})
	if updated.(ConfigModel).feedback != "" {
		t.Error("feedback should be cleared")
	}
}

func TestConfigModel_View(t *testing.T) {
	m := NewConfigModel()
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("expected initializing view before size is known")
	}

	m, _ = newTestConfigModel(t)
	view := m.View()
	for _, want := range []string{"Configuration", "TUI Theme", "Time Format", "Render Markdown", "config.json", "msgboard.log"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestClearFeedback(t *testing.T) {
	cmd := clearFeedback(time.Millisecond)
	if cmd == nil {
		t.Fatal("clearFeedback should return a command")
	}
	if _, ok := cmd().(feedbackClearMsg); !ok {
		t.Error("expected feedbackClearMsg")
	}
}
