// Package tui provides the terminal user interface for msgboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/msgboard/internal/errors"
	"github.com/diogo/msgboard/internal/render"
)

// Color variables (updated from palette)
var (
	colorBorder   lipgloss.Color
	colorTitle    lipgloss.Color
	colorAccent   lipgloss.Color
	colorSuccess  lipgloss.Color
	colorError    lipgloss.Color
	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorDisabled lipgloss.Color
)

// Style variables (rebuilt when the palette changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	// Error banner
	bannerStyle lipgloss.Style

	// Compose section
	sectionTitleStyle  lipgloss.Style
	inputPanelStyle    lipgloss.Style
	inputDisabledStyle lipgloss.Style
	buttonStyle        lipgloss.Style
	buttonBusyStyle    lipgloss.Style

	// Message list
	messagesAreaStyle lipgloss.Style
	messageStyle      lipgloss.Style
	messageKeyStyle   lipgloss.Style
	messageTimeStyle  lipgloss.Style
	emptyStyle        lipgloss.Style
	loadingStyle      lipgloss.Style

	// Status bar
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	feedbackStyle   lipgloss.Style

	// Config menu styles
	configHeaderStyle       lipgloss.Style
	configTitleStyle        lipgloss.Style
	configPanelStyle        lipgloss.Style
	configSectionTitleStyle lipgloss.Style
	configMenuItemStyle     lipgloss.Style
	configMenuSelectedStyle lipgloss.Style
	configCursorStyle       lipgloss.Style
	configValueStyle        lipgloss.Style
	configEnabledStyle      lipgloss.Style
	configDisabledStyle     lipgloss.Style
	configPathStyle         lipgloss.Style
	configCurrentStyle      lipgloss.Style
	configStatusBarStyle    lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current palette
func UpdateTheme() {
	p := render.CurrentPalette()

	colorBorder = p.Border
	colorTitle = p.Title
	colorAccent = p.Accent
	colorSuccess = p.Success
	colorError = p.Error
	colorText = p.Text
	colorTextDim = p.TextDim
	colorDisabled = p.Disabled

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorTitle).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorDisabled).
		Italic(true)

	bannerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(colorError).
		Foreground(colorError).
		Bold(true).
		PaddingLeft(1)

	sectionTitleStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	inputDisabledStyle = inputPanelStyle.
		BorderForeground(colorDisabled).
		Foreground(colorTextDim)

	buttonStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorTitle).
		Bold(true).
		Padding(0, 2)

	buttonBusyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Background(colorDisabled).
		Padding(0, 2)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
		Foreground(colorText)

	messageKeyStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	messageTimeStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	emptyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorDisabled)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorDisabled)

	feedbackStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Italic(true)

	configHeaderStyle = lipgloss.NewStyle().
		Foreground(colorTitle).
		Bold(true).
		MarginBottom(1).
		Align(lipgloss.Center)

	configTitleStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		PaddingLeft(1)

	configPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	configSectionTitleStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	configMenuItemStyle = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingLeft(2)

	configMenuSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	configCursorStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	configValueStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	configEnabledStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	configDisabledStyle = lipgloss.NewStyle().
		Foreground(colorError)

	configPathStyle = lipgloss.NewStyle().
		Foreground(colorDisabled).
		Italic(true)

	configCurrentStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	configStatusBarStyle = lipgloss.NewStyle().
		Foreground(colorDisabled).
		MarginTop(1).
		Align(lipgloss.Center)
}

// FormatError returns a styled error message with the detail carried by
// structured errors.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}
	if endpoint := errors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case errors.IsTimeoutError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The server did not answer in time. Try again"))
	case errors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the server is running and --api-url is correct"))
	case errors.IsServerError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The server failed; see its logs"))
	}

	return sb.String()
}

// shortcut is one key hint in a status bar
type shortcut struct {
	key  string
	desc string
}

func renderShortcuts(shortcuts []shortcut) string {
	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	return strings.Join(items, statusDescStyle.Render("  │  "))
}
