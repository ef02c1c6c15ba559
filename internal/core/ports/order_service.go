package ports

import (
	"context"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// PlaceOrderInput is a standard order against a catalog service. The service
// title and price are snapshotted from the catalog at placement time.
type PlaceOrderInput struct {
	ServiceID string
	Contact   string
	Viewer    domain.User
}

// PlaceCustomOrderInput is an individual request with no catalog service
// behind it. Amount is recorded as 0, signalling "requires individual
// pricing". The description gates submission but is not persisted on the
// order record.
type PlaceCustomOrderInput struct {
	Category    string
	Description string
	Contact     string
	Viewer      domain.User
}

type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	PlaceCustom(ctx context.Context, input PlaceCustomOrderInput) (*domain.Order, error)
	List(ctx context.Context, viewer *domain.User) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	AssignOperator(ctx context.Context, orderID, operatorID string) error
	// Delete exists for completeness; no API route is wired to it.
	Delete(ctx context.Context, orderID string) error
}
