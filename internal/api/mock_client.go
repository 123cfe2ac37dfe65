package api

import (
	"context"
	"sync"

	"github.com/diogo/msgboard/internal/models"
)

// MessageClientInterface is what the UI and commands need from the backend
type MessageClientInterface interface {
	BaseURL() string
	ListMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, content string) (models.Message, error)
	Health(ctx context.Context) (models.HealthReport, error)
	DatabaseHealth(ctx context.Context) (models.HealthReport, error)
}

// Ensure MessageClient implements MessageClientInterface
var _ MessageClientInterface = (*MessageClient)(nil)

// MockMessageClient is a mock implementation of MessageClientInterface for testing
type MockMessageClient struct {
	// Mock return values
	BaseURLVal        string
	ListMessagesVal   []models.Message
	ListMessagesErr   error
	CreateMessageVal  models.Message
	CreateMessageErr  error
	HealthVal         models.HealthReport
	HealthErr         error
	DatabaseHealthVal models.HealthReport
	DatabaseHealthErr error

	// Call counters/recorders
	mu                  sync.Mutex
	ListCalls           int
	CreateCalls         int
	CreatedContents     []string
	HealthCalls         int
	DatabaseHealthCalls int
}

// Ensure MockMessageClient implements MessageClientInterface
var _ MessageClientInterface = (*MockMessageClient)(nil)

func (m *MockMessageClient) BaseURL() string {
	return m.BaseURLVal
}

func (m *MockMessageClient) ListMessages(ctx context.Context) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListMessagesErr != nil {
		return nil, m.ListMessagesErr
	}
	out := make([]models.Message, len(m.ListMessagesVal))
	copy(out, m.ListMessagesVal)
	return out, nil
}

func (m *MockMessageClient) CreateMessage(ctx context.Context, content string) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	m.CreatedContents = append(m.CreatedContents, content)
	if m.CreateMessageErr != nil {
		return models.Message{}, m.CreateMessageErr
	}
	return m.CreateMessageVal, nil
}

func (m *MockMessageClient) Health(ctx context.Context) (models.HealthReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HealthCalls++
	return m.HealthVal, m.HealthErr
}

func (m *MockMessageClient) DatabaseHealth(ctx context.Context) (models.HealthReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DatabaseHealthCalls++
	return m.DatabaseHealthVal, m.DatabaseHealthErr
}

// Calls returns the list and create call counts
func (m *MockMessageClient) Calls() (list, create int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCalls, m.CreateCalls
}
