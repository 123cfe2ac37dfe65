package api

import (
	"context"
	"encoding/json"
	"fmt"

	http "github.com/bogdanfinn/fhttp"
	"go.uber.org/zap"

	apierrors "github.com/diogo/msgboard/internal/errors"
	"github.com/diogo/msgboard/internal/models"
)

// ListMessages fetches GET {base}/messages. The server order is kept.
func (c *MessageClient) ListMessages(ctx context.Context) ([]models.Message, error) {
	data, err := c.do(ctx, http.MethodGet, models.PathMessages, nil)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		c.logger.Error("failed to decode message list", zap.Error(err))
		return nil, apierrors.NewParseError(fmt.Sprintf("expected a list of messages: %v", err), c.baseURL+models.PathMessages)
	}
	if messages == nil {
		messages = []models.Message{}
	}

	c.logger.Info("fetched messages", zap.Int("count", len(messages)))
	return messages, nil
}

// CreateMessage sends POST {base}/messages with {"content": content} and
// returns the record the server created. Blank content is rejected without
// issuing a request.
func (c *MessageClient) CreateMessage(ctx context.Context, content string) (models.Message, error) {
	body, err := models.NewCreateMessageRequest(content)
	if err != nil {
		return models.Message{}, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to encode message: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, models.PathMessages, payload)
	if err != nil {
		return models.Message{}, err
	}

	var created models.Message
	if err := json.Unmarshal(data, &created); err != nil {
		c.logger.Error("failed to decode created message", zap.Error(err))
		return models.Message{}, apierrors.NewParseError(fmt.Sprintf("expected a message object: %v", err), c.baseURL+models.PathMessages)
	}

	c.logger.Info("created message", zap.String("id", created.ID.String()))
	return created, nil
}
