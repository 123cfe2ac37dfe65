// Package board holds the message board UI state and its two request flows.
//
// State changes happen only through Begin*/Finish* pairs, so the busy flag
// is raised for exactly the span between a request starting and resolving.
// Busy is the only guard: a second Begin while one request is outstanding
// is refused.
package board

import (
	"context"

	apierrors "github.com/diogo/msgboard/internal/errors"
	"github.com/diogo/msgboard/internal/models"
)

// Flow identifies the request currently outstanding
type Flow int

const (
	FlowNone Flow = iota
	FlowLoad
	FlowSubmit
)

func (f Flow) String() string {
	switch f {
	case FlowLoad:
		return "load"
	case FlowSubmit:
		return "submit"
	default:
		return "none"
	}
}

// Backend is the pair of calls the flows need
type Backend interface {
	ListMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, content string) (models.Message, error)
}

// State is the board's local, non-persisted state
type State struct {
	// Messages only ever holds server records: the initial list or echoed creations.
	Messages  []models.Message
	Draft     string
	Busy      bool
	LastError string

	inFlight Flow
}

// New returns the initial state: no messages, empty draft, idle
func New() State {
	return State{Messages: []models.Message{}}
}

// InFlight returns the outstanding flow
func (s State) InFlight() Flow {
	return s.inFlight
}

// SetDraft updates the compose text. Edits are ignored while busy since the
// input is disabled.
func (s *State) SetDraft(text string) bool {
	if s.Busy {
		return false
	}
	s.Draft = text
	return true
}

// BeginLoad marks the start of a fetch. It returns false when another
// request is outstanding.
func (s *State) BeginLoad() bool {
	if s.Busy {
		return false
	}
	s.Busy = true
	s.LastError = ""
	s.inFlight = FlowLoad
	return true
}

// FinishLoad applies the fetch result. On success the list is replaced
// wholesale; on failure it is left as it was. The returned error is the
// LoadFailure shown to the user, or nil.
func (s *State) FinishLoad(messages []models.Message, err error) error {
	if s.inFlight != FlowLoad {
		return nil
	}
	defer s.idle()

	if err != nil {
		failure := &apierrors.LoadFailure{Err: err}
		s.LastError = failure.Error()
		return failure
	}

	s.Messages = append(make([]models.Message, 0, len(messages)), messages...)
	return nil
}

// BeginSubmit marks the start of a submission and returns the content to
// send. It is a no-op returning false when the trimmed draft is empty or a
// request is outstanding.
func (s *State) BeginSubmit() (string, bool) {
	if s.Busy || models.IsBlank(s.Draft) {
		return "", false
	}
	s.Busy = true
	s.LastError = ""
	s.inFlight = FlowSubmit
	return s.Draft, true
}

// FinishSubmit applies the submission result. On success the echoed record
// is appended and the draft cleared; on failure draft and list are kept so
// the text can be resubmitted.
func (s *State) FinishSubmit(created models.Message, err error) error {
	if s.inFlight != FlowSubmit {
		return nil
	}
	defer s.idle()

	if err != nil {
		failure := &apierrors.SubmitFailure{Err: err}
		s.LastError = failure.Error()
		return failure
	}

	s.Messages = append(s.Messages, created)
	s.Draft = ""
	return nil
}

func (s *State) idle() {
	s.Busy = false
	s.inFlight = FlowNone
}

// Load runs the load flow synchronously
func (s *State) Load(ctx context.Context, backend Backend) error {
	if !s.BeginLoad() {
		return apierrors.ErrBusy
	}
	messages, err := backend.ListMessages(ctx)
	return s.FinishLoad(messages, err)
}

// Submit runs the submit flow synchronously. started is false when the
// draft was blank or a request was outstanding; nothing is sent then.
func (s *State) Submit(ctx context.Context, backend Backend) (started bool, err error) {
	content, ok := s.BeginSubmit()
	if !ok {
		return false, nil
	}
	created, err := backend.CreateMessage(ctx, content)
	return true, s.FinishSubmit(created, err)
}
