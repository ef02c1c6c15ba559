package ports

import (
	"context"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// SendMessageInput carries what the sender controls; id, timestamp and the
// read flag are generated downstream.
type SendMessageInput struct {
	OrderID string
	Sender  domain.User
	Text    string
}

type ChatService interface {
	Messages(ctx context.Context, orderID string) ([]domain.Message, error)
	Send(ctx context.Context, input SendMessageInput) (*domain.Message, error)
	// Watch re-reads the order's thread on a fixed interval and invokes fn
	// with each snapshot, starting with one immediate read. It blocks until
	// ctx is cancelled; the ticker is torn down deterministically.
	Watch(ctx context.Context, orderID string, fn func([]domain.Message)) error
}
