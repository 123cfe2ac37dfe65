package models

// HealthReport is the decoded /health or /health/db response
type HealthReport struct {
	Status       string
	Timestamp    string
	Database     string
	MessageCount int64
	Error        string
}

// OK reports whether the backend said it is healthy
func (h HealthReport) OK() bool {
	return h.Status == "OK"
}
