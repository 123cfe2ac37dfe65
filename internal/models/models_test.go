package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	apierrors "github.com/diogo/msgboard/internal/errors"
)

func TestMessageDecode(t *testing.T) {
	body := `[{"id":1,"content":"hi","createdAt":"2024-01-01T00:00:00Z"},{"id":"b7","content":"there"},{"id":3,"content":"x","createdAt":null}]`

	var msgs []Message
	if err := json.Unmarshal([]byte(body), &msgs); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}

	if msgs[0].ID.String() != "1" || msgs[0].Content != "hi" {
		t.Errorf("first message = %+v", msgs[0])
	}
	if msgs[0].CreatedAtValue() != "2024-01-01T00:00:00Z" {
		t.Errorf("createdAt = %q", msgs[0].CreatedAtValue())
	}
	if msgs[1].ID != StringID("b7") {
		t.Errorf("string id = %+v", msgs[1].ID)
	}
	if msgs[1].CreatedAt != nil {
		t.Error("missing createdAt should decode as nil")
	}
	if msgs[2].CreatedAt != nil {
		t.Error("null createdAt should decode as nil")
	}
}

func TestIDRoundTripKeepsForm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`1`, `1`},
		{`"abc"`, `"abc"`},
		{`12345678901234567890`, `12345678901234567890`},
		{`null`, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			out, err := json.Marshal(id)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("got %s, want %s", out, tt.want)
			}
		})
	}
}

func TestIDRejectsObjects(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Error("expected error for object id")
	}
}

func TestNewCreateMessageRequest(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain", "hello", false},
		{"surrounding whitespace kept", "  hello  ", false},
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewCreateMessageRequest(tt.content)
			if tt.wantErr {
				if !errors.Is(err, apierrors.ErrEmptyContent) {
					t.Errorf("expected ErrEmptyContent, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Content != tt.content {
				t.Errorf("Content = %q, want %q", req.Content, tt.content)
			}
		})
	}
}

func TestCreateMessageRequestBody(t *testing.T) {
	req, err := NewCreateMessageRequest("world")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(req)
	if string(data) != `{"content":"world"}` {
		t.Errorf("body = %s", data)
	}
}

func TestTimeFormatter(t *testing.T) {
	f := TimeFormatter{Layout: time.RFC3339, Location: time.UTC}
	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"nil", nil, ""},
		{"empty", str(""), ""},
		{"rfc3339", str("2024-01-01T00:00:00Z"), "2024-01-01T00:00:00Z"},
		{"offset converted", str("2024-01-01T02:00:00+02:00"), "2024-01-01T00:00:00Z"},
		{"zone-less", str("2024-03-05T10:20:30"), "2024-03-05T10:20:30Z"},
		{"zone-less fractional", str("2024-03-05T10:20:30.123456"), "2024-03-05T10:20:30Z"},
		{"garbage shown verbatim", str("yesterday"), "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Format(tt.in); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultTimeLayout(t *testing.T) {
	f := TimeFormatter{Location: time.UTC}
	s := "2024-01-01T15:04:05Z"
	if got := f.Format(&s); got != "1/1/2024, 3:04:05 PM" {
		t.Errorf("Format() = %q", got)
	}
}
