package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Palette is the color scheme of the board screen
type Palette struct {
	Name        string
	Description string

	Border   lipgloss.Color
	Title    lipgloss.Color
	Accent   lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	Disabled lipgloss.Color
}

var palettes = []Palette{
	{
		Name:        "tokyonight",
		Description: "Tokyo Night, dark with blue accents",
		Border:      "#414868",
		Title:       "#7aa2f7",
		Accent:      "#bb9af7",
		Success:     "#9ece6a",
		Error:       "#f7768e",
		Text:        "#c0caf5",
		TextDim:     "#565f89",
		Disabled:    "#3b4261",
	},
	{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha, warm pastels",
		Border:      "#45475a",
		Title:       "#89b4fa",
		Accent:      "#cba6f7",
		Success:     "#a6e3a1",
		Error:       "#f38ba8",
		Text:        "#cdd6f4",
		TextDim:     "#6c7086",
		Disabled:    "#45475a",
	},
	{
		Name:        "nord",
		Description: "Nord, cool arctic tones",
		Border:      "#4c566a",
		Title:       "#88c0d0",
		Accent:      "#b48ead",
		Success:     "#a3be8c",
		Error:       "#bf616a",
		Text:        "#eceff4",
		TextDim:     "#7b88a1",
		Disabled:    "#4c566a",
	},
	{
		Name:        "dracula",
		Description: "Dracula, vibrant on dark",
		Border:      "#6272a4",
		Title:       "#8be9fd",
		Accent:      "#ff79c6",
		Success:     "#50fa7b",
		Error:       "#ff5555",
		Text:        "#f8f8f2",
		TextDim:     "#6272a4",
		Disabled:    "#44475a",
	},
}

var (
	paletteMu sync.RWMutex
	current   = palettes[0]
)

// CurrentPalette returns the active palette
func CurrentPalette() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return current
}

// SetPalette activates the named palette; unknown names are rejected
func SetPalette(name string) bool {
	p, ok := PaletteByName(name)
	if !ok {
		return false
	}
	paletteMu.Lock()
	current = p
	paletteMu.Unlock()
	return true
}

// PaletteByName looks up a built-in palette
func PaletteByName(name string) (Palette, bool) {
	return lo.Find(palettes, func(p Palette) bool { return p.Name == name })
}

// PaletteNames lists the built-in palettes in display order
func PaletteNames() []string {
	return lo.Map(palettes, func(p Palette, _ int) string { return p.Name })
}
