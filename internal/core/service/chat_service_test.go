package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

var testSender = domain.User{ID: "client-1", Name: "Анна Клиент", Role: domain.RoleClient}

// ---------------------------------------------------------------------------
// Send / Messages
// ---------------------------------------------------------------------------

func TestChatService_Send_FillsSenderSnapshot(t *testing.T) {
	store := newStubStore()
	svc := NewChatService(store, 0, discardLogger)

	msg, err := svc.Send(context.Background(), ports.SendMessageInput{
		OrderID: "ord-1",
		Sender:  testSender,
		Text:    "Добрый день!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.SenderID != "client-1" || msg.SenderName != "Анна Клиент" {
		t.Errorf("sender snapshot wrong: %q / %q", msg.SenderID, msg.SenderName)
	}
	if msg.IsRead {
		t.Error("new messages start unread")
	}
	if msg.ID == "" || msg.Timestamp == 0 {
		t.Error("generated fields missing")
	}
}

func TestChatService_Messages_Delegates(t *testing.T) {
	store := newStubStore()
	store.messages = []domain.Message{
		{ID: "msg-1", OrderID: "ord-1", Text: "a"},
		{ID: "msg-2", OrderID: "ord-2", Text: "b"},
	}
	svc := NewChatService(store, 0, discardLogger)

	thread, err := svc.Messages(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(thread) != 1 || thread[0].ID != "msg-1" {
		t.Errorf("unexpected thread: %+v", thread)
	}
}

// ---------------------------------------------------------------------------
// Watch
// ---------------------------------------------------------------------------

func TestChatService_Watch_DeliversImmediatelyThenPolls(t *testing.T) {
	store := newStubStore()
	store.messages = []domain.Message{{ID: "msg-1", OrderID: "ord-1", Text: "привет"}}
	svc := NewChatService(store, 5*time.Millisecond, discardLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := make(chan int, 16)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, "ord-1", func(msgs []domain.Message) {
			select {
			case snapshots <- len(msgs):
			default:
			}
		})
	}()

	// First snapshot arrives without waiting for a tick.
	select {
	case n := <-snapshots:
		if n != 1 {
			t.Errorf("first snapshot: expected 1 message, got %d", n)
		}
	case <-time.After(time.Second):
		t.Fatal("no immediate snapshot")
	}

	// At least one more snapshot from the ticker.
	select {
	case <-snapshots:
	case <-time.After(time.Second):
		t.Fatal("no polled snapshot")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestChatService_Watch_SurvivesReadErrors(t *testing.T) {
	store := newStubStore()
	store.failWith = errors.New("substrate unavailable")
	svc := NewChatService(store, 5*time.Millisecond, discardLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	delivered := 0
	err := svc.Watch(ctx, "ord-1", func([]domain.Message) { delivered++ })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if delivered != 0 {
		t.Errorf("failed reads must not invoke the callback, got %d calls", delivered)
	}
	// The poll loop kept retrying instead of giving up on the first error.
	if store.messagesCalls < 2 {
		t.Errorf("expected repeated polls despite errors, got %d", store.messagesCalls)
	}
}

func TestChatService_DefaultInterval(t *testing.T) {
	svc := NewChatService(newStubStore(), 0, discardLogger)
	if svc.interval != defaultPollInterval {
		t.Errorf("expected default interval %v, got %v", defaultPollInterval, svc.interval)
	}
}
