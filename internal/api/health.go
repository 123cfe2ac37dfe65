package api

import (
	"context"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	"github.com/diogo/msgboard/internal/models"
)

// Health queries GET {base}/health
func (c *MessageClient) Health(ctx context.Context) (models.HealthReport, error) {
	return c.health(ctx, models.PathHealth)
}

// DatabaseHealth queries GET {base}/health/db. On 503 the backend still
// sends a report, which is returned alongside the error.
func (c *MessageClient) DatabaseHealth(ctx context.Context) (models.HealthReport, error) {
	return c.health(ctx, models.PathHealthDB)
}

func (c *MessageClient) health(ctx context.Context, path string) (models.HealthReport, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	return parseHealth(data), err
}

func parseHealth(data []byte) models.HealthReport {
	if len(data) == 0 || !gjson.ValidBytes(data) {
		return models.HealthReport{}
	}
	r := gjson.ParseBytes(data)
	return models.HealthReport{
		Status:       r.Get("status").String(),
		Timestamp:    r.Get("timestamp").String(),
		Database:     r.Get("database").String(),
		MessageCount: r.Get("message_count").Int(),
		Error:        r.Get("error").String(),
	}
}
