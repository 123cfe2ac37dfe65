package models

import (
	"strings"
	"time"
)

// zoned layouts carry an offset; local layouts are read in the local zone
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// ParseCreatedAt parses a backend timestamp into local time
func ParseCreatedAt(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimeFormatter renders createdAt values for display
type TimeFormatter struct {
	Layout   string
	Location *time.Location
}

// NewTimeFormatter returns a formatter for the local zone
func NewTimeFormatter(layout string) TimeFormatter {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return TimeFormatter{Layout: layout, Location: time.Local}
}

// Format returns "" for nil, the formatted local time when parseable,
// and the raw value otherwise.
func (f TimeFormatter) Format(createdAt *string) string {
	if createdAt == nil || *createdAt == "" {
		return ""
	}
	t, ok := ParseCreatedAt(*createdAt, f.Location)
	if !ok {
		return *createdAt
	}
	layout := f.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return t.Format(layout)
}
