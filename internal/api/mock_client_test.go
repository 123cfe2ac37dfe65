package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/diogo/msgboard/internal/api"
	"github.com/diogo/msgboard/internal/models"
)

func TestMockMessageClient(t *testing.T) {
	mock := &api.MockMessageClient{
		BaseURLVal:       "http://localhost:8080/api",
		ListMessagesVal:  []models.Message{{ID: models.NumericID(1), Content: "hi"}},
		CreateMessageVal: models.Message{ID: models.NumericID(2), Content: "world"},
	}

	// Verify interface compliance
	var client api.MessageClientInterface = mock

	msgs, err := client.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "hi" {
		t.Errorf("unexpected messages: %+v", msgs)
	}

	// Mutating the returned slice must not affect the mock
	msgs[0].Content = "changed"
	again, _ := client.ListMessages(context.Background())
	if again[0].Content != "hi" {
		t.Error("mock returned shared slice")
	}

	created, err := client.CreateMessage(context.Background(), "world")
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if created.ID.String() != "2" {
		t.Errorf("created id = %s", created.ID)
	}

	list, create := mock.Calls()
	if list != 2 || create != 1 {
		t.Errorf("calls = (%d, %d), want (2, 1)", list, create)
	}
	if len(mock.CreatedContents) != 1 || mock.CreatedContents[0] != "world" {
		t.Errorf("CreatedContents = %v", mock.CreatedContents)
	}
}

func TestMockMessageClient_Errors(t *testing.T) {
	mock := &api.MockMessageClient{
		ListMessagesErr:   errors.New("list failed"),
		CreateMessageErr:  errors.New("create failed"),
		DatabaseHealthErr: errors.New("db failed"),
	}

	if _, err := mock.ListMessages(context.Background()); err == nil {
		t.Error("expected list error")
	}
	if _, err := mock.CreateMessage(context.Background(), "x"); err == nil {
		t.Error("expected create error")
	}
	if _, err := mock.DatabaseHealth(context.Background()); err == nil {
		t.Error("expected db health error")
	}
	if _, err := mock.Health(context.Background()); err != nil {
		t.Errorf("unexpected health error: %v", err)
	}
	if mock.HealthCalls != 1 || mock.DatabaseHealthCalls != 1 {
		t.Error("health calls not counted")
	}
}
