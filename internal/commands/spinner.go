package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/diogo/msgboard/internal/render"
)

// spinner is the loading indicator of one-shot commands. It only animates
// when its writer is a terminal.
type spinner struct {
	w       io.Writer
	message string
	enabled bool
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	started bool
	stopped bool // Flag to prevent double-close
}

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{
		w:       w,
		message: message,
		enabled: isTerminal(w),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *spinner) start() {
	if !s.enabled {
		return
	}
	s.started = true

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(s.w, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(s.w, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

func (s *spinner) render() {
	p := render.CurrentPalette()
	char := lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(spinnerFrames[s.frame%len(spinnerFrames)])
	msg := lipgloss.NewStyle().Foreground(p.Text).Render(s.message)
	dots := strings.Repeat(".", (s.frame/4)%4)
	fmt.Fprintf(s.w, "\r\033[K%s %s%s", char, msg, dots)
}

func (s *spinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

func (s *spinner) wait() {
	s.stopOnce()
	if s.started {
		<-s.done
	}
}

// stopWithSuccess stops the spinner and shows success message
func (s *spinner) stopWithSuccess(message string) {
	s.wait()
	if !s.enabled {
		return
	}
	p := render.CurrentPalette()
	checkmark := lipgloss.NewStyle().Foreground(p.Success).Bold(true).Render("✓")
	fmt.Fprintf(s.w, "%s %s\n", checkmark, lipgloss.NewStyle().Foreground(p.Success).Render(message))
}

// stopWithError stops the spinner and leaves the line clear
func (s *spinner) stopWithError() {
	s.wait()
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// getTerminalWidth returns the width of w, or 80 when it is not a terminal
func getTerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
