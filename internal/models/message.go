package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "github.com/diogo/msgboard/internal/errors"
)

// ID is an opaque backend identifier. It keeps the literal JSON form so a
// numeric id is re-emitted as a number and a string id as a string.
type ID struct {
	raw    string
	quoted bool
}

// NumericID builds an ID from an integer
func NumericID(n int64) ID {
	return ID{raw: strconv.FormatInt(n, 10)}
}

// StringID builds an ID from a string
func StringID(s string) ID {
	return ID{raw: s, quoted: true}
}

// String returns the id text without quotes
func (id ID) String() string {
	return id.raw
}

// IsZero reports whether the id was absent
func (id ID) IsZero() bool {
	return id.raw == "" && !id.quoted
}

// MarshalJSON re-emits the id in the form it was received
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.quoted {
		return json.Marshal(id.raw)
	}
	return []byte(id.raw), nil
}

// UnmarshalJSON accepts a JSON number, string or null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*id = ID{raw: n.String()}
	return nil
}

// Message is a record held by the backend
type Message struct {
	ID        ID      `json:"id"`
	Content   string  `json:"content"`
	CreatedAt *string `json:"createdAt,omitempty"`
}

// CreatedAtValue returns the raw timestamp, or "" if absent
func (m Message) CreatedAtValue() string {
	if m.CreatedAt == nil {
		return ""
	}
	return *m.CreatedAt
}

// CreateMessageRequest is the POST body for a new message
type CreateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

var validate = validator.New()

// NewCreateMessageRequest validates content and builds the request body.
// The content is sent untrimmed; only blank input is rejected.
func NewCreateMessageRequest(content string) (CreateMessageRequest, error) {
	req := CreateMessageRequest{Content: content}
	if strings.TrimSpace(content) == "" {
		return req, apierrors.NewValidationError("content", "must not be blank")
	}
	if err := validate.Struct(req); err != nil {
		return req, apierrors.NewValidationError("content", err.Error())
	}
	return req, nil
}

// IsBlank reports whether draft would be rejected for submission
func IsBlank(draft string) bool {
	return strings.TrimSpace(draft) == ""
}
