package render

import (
	"os"
	"strings"

	"github.com/diogo/msgboard/internal/config"
)

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// MarkdownWithWidth renders with default options at the given width.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

// MessageBody renders one message's content. Rendering failures fall back
// to the raw text so a message is never hidden.
func MessageBody(content string, opts Options) string {
	out, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}

// OptionsFromConfig builds render options from user settings.
// GLAMOUR_STYLE takes precedence over the configured style.
func OptionsFromConfig(cfg config.Config, width int) Options {
	opts := DefaultOptions().WithWidth(width)
	if cfg.MarkdownStyle != "" {
		opts.Style = cfg.MarkdownStyle
	}
	if style := os.Getenv("GLAMOUR_STYLE"); IsStandardStyle(style) {
		opts.Style = style
	}
	return opts
}
