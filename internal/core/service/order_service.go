package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/api/metrics"
	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// OrderService builds fully-formed order records before handing them to the
// store: the store itself performs no defaulting, so id, timestamps and the
// snapshot fields are all assembled here.
type OrderService struct {
	orders  ports.OrderStore
	catalog ports.CatalogStore
	log     zerolog.Logger
}

func NewOrderService(orders ports.OrderStore, catalog ports.CatalogStore, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, catalog: catalog, log: log}
}

var _ ports.OrderService = (*OrderService)(nil)

// Place books a catalog service. Title and price are snapshotted from the
// catalog at placement time and never re-joined.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	services, err := s.catalog.Services(ctx)
	if err != nil {
		return nil, err
	}
	var selected *domain.Service
	for i := range services {
		if services[i].ID == input.ServiceID {
			selected = &services[i]
			break
		}
	}
	if selected == nil {
		return nil, domain.ErrServiceNotFound
	}

	now := time.Now()
	order := domain.Order{
		ID:            domain.NewID("ord"),
		ClientID:      input.Viewer.ID,
		ServiceID:     selected.ID,
		ServiceTitle:  selected.Title,
		ClientName:    input.Viewer.Name,
		ClientContact: input.Contact,
		Date:          now.UTC().Format(time.RFC3339),
		Status:        domain.StatusPending,
		Amount:        selected.Price,
		CreatedAt:     now.UnixMilli(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues("standard").Inc()
	s.log.Info().Str("order_id", order.ID).Str("service_id", order.ServiceID).Msg("order placed")
	return &order, nil
}

// PlaceCustom books an individual request with no catalog service behind it.
// The synthetic service id marks it as custom and amount 0 signals that the
// price is negotiated by a manager.
func (s *OrderService) PlaceCustom(ctx context.Context, input ports.PlaceCustomOrderInput) (*domain.Order, error) {
	now := time.Now()
	order := domain.Order{
		ID:            domain.NewID("ord"),
		ClientID:      input.Viewer.ID,
		ServiceID:     domain.NewID("custom"),
		ServiceTitle:  "Индивидуальный заказ: " + input.Category,
		ClientName:    input.Viewer.Name,
		ClientContact: input.Contact,
		Date:          now.UTC().Format(time.RFC3339),
		Status:        domain.StatusPending,
		Amount:        0,
		CreatedAt:     now.UnixMilli(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to create custom order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues("custom").Inc()
	s.log.Info().Str("order_id", order.ID).Str("category", input.Category).Msg("custom order placed")
	return &order, nil
}

func (s *OrderService) List(ctx context.Context, viewer *domain.User) ([]domain.Order, error) {
	return s.orders.Orders(ctx, viewer)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	return nil
}

func (s *OrderService) AssignOperator(ctx context.Context, orderID, operatorID string) error {
	if err := s.orders.AssignOperator(ctx, orderID, operatorID); err != nil {
		return err
	}
	s.log.Info().Str("order_id", orderID).Str("operator_id", operatorID).Msg("operator assignment updated")
	return nil
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	return s.orders.DeleteOrder(ctx, orderID)
}
