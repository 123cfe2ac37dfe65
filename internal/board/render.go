package board

import (
	"github.com/samber/lo"

	"github.com/diogo/msgboard/internal/models"
)

// ListKind selects what the message area shows
type ListKind int

const (
	ListLoading ListKind = iota
	ListEmpty
	ListItems
)

// Labels shown by the board
const (
	LabelSend      = "Send"
	LabelSending   = "Sending..."
	TextLoading    = "Loading..."
	TextEmpty      = "No messages yet."
	TextTitle      = "Message Board"
	TextAddHeader  = "Add Message"
	TextListHeader = "Messages"
	Placeholder    = "Enter message..."
)

// Item is one rendered message
type Item struct {
	Key     string
	Content string
	Time    string
}

// Screen is everything the view draws, derived from State alone
type Screen struct {
	Draft          string
	InputDisabled  bool
	SubmitDisabled bool
	SubmitLabel    string
	ShowBanner     bool
	Banner         string
	List           ListKind
	Items          []Item
}

// TimeFunc renders a createdAt value; nil means absent
type TimeFunc func(createdAt *string) string

// Render derives the screen from state. It has no side effects, so equal
// states give equal screens.
func Render(s State, formatTime TimeFunc) Screen {
	if formatTime == nil {
		formatTime = models.NewTimeFormatter("").Format
	}

	screen := Screen{
		Draft:          s.Draft,
		InputDisabled:  s.Busy,
		SubmitDisabled: s.Busy,
		SubmitLabel:    LabelSend,
		ShowBanner:     s.LastError != "",
		Banner:         s.LastError,
	}
	if s.Busy {
		screen.SubmitLabel = LabelSending
	}

	switch {
	case s.Busy && len(s.Messages) == 0:
		screen.List = ListLoading
	case len(s.Messages) == 0:
		screen.List = ListEmpty
	default:
		screen.List = ListItems
		screen.Items = lo.Map(s.Messages, func(m models.Message, _ int) Item {
			return Item{
				Key:     m.ID.String(),
				Content: m.Content,
				Time:    formatTime(m.CreatedAt),
			}
		})
	}

	return screen
}
