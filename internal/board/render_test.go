package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diogo/msgboard/internal/models"
)

func fixedTime(createdAt *string) string {
	if createdAt == nil {
		return ""
	}
	return "T(" + *createdAt + ")"
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		state State
		check func(t *testing.T, s Screen)
	}{
		{
			name:  "initial loading",
			state: State{Messages: []models.Message{}, Busy: true, inFlight: FlowLoad},
			check: func(t *testing.T, s Screen) {
				assert.Equal(t, ListLoading, s.List)
				assert.True(t, s.InputDisabled)
				assert.True(t, s.SubmitDisabled)
				assert.Equal(t, LabelSending, s.SubmitLabel)
				assert.False(t, s.ShowBanner)
			},
		},
		{
			name:  "idle and empty",
			state: New(),
			check: func(t *testing.T, s Screen) {
				assert.Equal(t, ListEmpty, s.List)
				assert.Empty(t, s.Items)
				assert.False(t, s.InputDisabled)
				assert.Equal(t, LabelSend, s.SubmitLabel)
			},
		},
		{
			name: "messages keep order and keys",
			state: State{Messages: []models.Message{
				{ID: models.NumericID(1), Content: "hi", CreatedAt: strPtr("2024-01-01T00:00:00Z")},
				{ID: models.StringID("b"), Content: "world"},
			}},
			check: func(t *testing.T, s Screen) {
				assert.Equal(t, ListItems, s.List)
				assert.Equal(t, []Item{
					{Key: "1", Content: "hi", Time: "T(2024-01-01T00:00:00Z)"},
					{Key: "b", Content: "world", Time: ""},
				}, s.Items)
			},
		},
		{
			name: "busy with messages still shows the list",
			state: State{
				Messages: []models.Message{{ID: models.NumericID(1), Content: "hi"}},
				Draft:    "world",
				Busy:     true,
				inFlight: FlowSubmit,
			},
			check: func(t *testing.T, s Screen) {
				assert.Equal(t, ListItems, s.List)
				assert.Equal(t, "world", s.Draft)
				assert.Equal(t, LabelSending, s.SubmitLabel)
			},
		},
		{
			name:  "error banner",
			state: State{Messages: []models.Message{}, LastError: "Failed to fetch messages: timeout of 10s exceeded"},
			check: func(t *testing.T, s Screen) {
				assert.True(t, s.ShowBanner)
				assert.Equal(t, "Failed to fetch messages: timeout of 10s exceeded", s.Banner)
				assert.Equal(t, ListEmpty, s.List)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Render(tt.state, fixedTime))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	state := State{
		Messages:  []models.Message{{ID: models.NumericID(1), Content: "hi", CreatedAt: strPtr("2024-01-01T00:00:00Z")}},
		Draft:     "draft",
		LastError: "oops",
	}
	assert.Equal(t, Render(state, nil), Render(state, nil))
}

func TestRender_DefaultFormatterHandlesAbsentTime(t *testing.T) {
	state := State{Messages: []models.Message{{ID: models.NumericID(1), Content: "hi"}}}
	screen := Render(state, nil)
	assert.Equal(t, "", screen.Items[0].Time)
}
