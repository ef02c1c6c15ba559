package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/api/metrics"
	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// defaultPollInterval matches the chat view refresh of the original dashboard.
const defaultPollInterval = 3 * time.Second

// ChatService handles order threads. Real-time delivery is approximated by
// polling: Watch re-reads the thread on a fixed interval for as long as the
// watching context lives. This must stay a poll — upgrading it to push
// delivery would change observable timing.
type ChatService struct {
	store    ports.MessageStore
	interval time.Duration
	log      zerolog.Logger
}

func NewChatService(store ports.MessageStore, interval time.Duration, log zerolog.Logger) *ChatService {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &ChatService{store: store, interval: interval, log: log}
}

var _ ports.ChatService = (*ChatService)(nil)

func (s *ChatService) Messages(ctx context.Context, orderID string) ([]domain.Message, error) {
	return s.store.MessagesForOrder(ctx, orderID)
}

func (s *ChatService) Send(ctx context.Context, input ports.SendMessageInput) (*domain.Message, error) {
	msg, err := s.store.SendMessage(ctx, domain.Message{
		OrderID:    input.OrderID,
		SenderID:   input.Sender.ID,
		SenderName: input.Sender.Name,
		Text:       input.Text,
	})
	if err != nil {
		return nil, err
	}
	metrics.MessagesSentTotal.Inc()
	return &msg, nil
}

// Watch delivers one immediate snapshot of the thread, then re-reads it every
// poll interval until ctx is cancelled. The ticker is stopped on return, so a
// closed chat view never leaks a timer.
func (s *ChatService) Watch(ctx context.Context, orderID string, fn func([]domain.Message)) error {
	deliver := func() {
		msgs, err := s.store.MessagesForOrder(ctx, orderID)
		if err != nil {
			s.log.Warn().Err(err).Str("order_id", orderID).Msg("chat poll failed")
			return
		}
		fn(msgs)
	}

	deliver()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			deliver()
		}
	}
}
