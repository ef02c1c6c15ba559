package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

type stubOrderService struct {
	placeFn       func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error)
	placeCustomFn func(ctx context.Context, input ports.PlaceCustomOrderInput) (*domain.Order, error)
	listFn        func(ctx context.Context, viewer *domain.User) ([]domain.Order, error)
	statusFn      func(ctx context.Context, orderID string, status domain.OrderStatus) error
	assignFn      func(ctx context.Context, orderID, operatorID string) error
}

func (s *stubOrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, input)
}

func (s *stubOrderService) PlaceCustom(ctx context.Context, input ports.PlaceCustomOrderInput) (*domain.Order, error) {
	return s.placeCustomFn(ctx, input)
}

func (s *stubOrderService) List(ctx context.Context, viewer *domain.User) ([]domain.Order, error) {
	return s.listFn(ctx, viewer)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return s.statusFn(ctx, orderID, status)
}

func (s *stubOrderService) AssignOperator(ctx context.Context, orderID, operatorID string) error {
	return s.assignFn(ctx, orderID, operatorID)
}

func (s *stubOrderService) Delete(context.Context, string) error { return nil }

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestOrderHandler_List_BuildsViewerFromClaims(t *testing.T) {
	var gotViewer *domain.User
	stub := &stubOrderService{
		listFn: func(_ context.Context, viewer *domain.User) ([]domain.Order, error) {
			gotViewer = viewer
			return []domain.Order{{ID: "ord-1", ClientID: viewer.ID}}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/orders", "")
	c.Set("user_id", "client-1")
	c.Set("name", "Анна Клиент")
	c.Set("role", "CLIENT")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotViewer == nil || gotViewer.ID != "client-1" || gotViewer.Role != domain.RoleClient {
		t.Errorf("viewer not rebuilt from claims: %+v", gotViewer)
	}
}

func TestOrderHandler_List_NoClaims(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/orders", "")
	if code := httpStatus(t, h.List(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", code)
	}
}

// ---------------------------------------------------------------------------
// Place / PlaceCustom
// ---------------------------------------------------------------------------

func TestOrderHandler_Place_Success(t *testing.T) {
	stub := &stubOrderService{
		placeFn: func(_ context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			if input.ServiceID != "5" || input.Viewer.ID != "client-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Order{ID: "ord-new", ServiceID: input.ServiceID, Status: domain.StatusPending}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/orders",
		`{"service_id":"5","contact":"+7 (900) 000-00-00"}`)
	c.Set("user_id", "client-1")
	c.Set("name", "Анна Клиент")
	c.Set("role", "CLIENT")

	if err := h.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var order map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &order)
	if order["id"] != "ord-new" {
		t.Errorf("unexpected body: %v", order)
	}
}

func TestOrderHandler_Place_UnknownServicePropagates(t *testing.T) {
	stub := &stubOrderService{
		placeFn: func(context.Context, ports.PlaceOrderInput) (*domain.Order, error) {
			return nil, domain.ErrServiceNotFound
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/orders", `{"service_id":"999","contact":"x"}`)
	c.Set("user_id", "client-1")
	c.Set("role", "CLIENT")

	if err := h.Place(c); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestOrderHandler_Place_MissingContact(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/orders", `{"service_id":"5"}`)
	c.Set("user_id", "client-1")
	c.Set("role", "CLIENT")

	if code := httpStatus(t, h.Place(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestOrderHandler_PlaceCustom_RequiresDescription(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	// Description gates submission even though it is not persisted.
	c, _ := newTestContext(t, http.MethodPost, "/v1/orders/custom",
		`{"category":"Аэросъемка","contact":"x"}`)
	c.Set("user_id", "client-1")
	c.Set("role", "CLIENT")

	if code := httpStatus(t, h.PlaceCustom(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus / AssignOperator
// ---------------------------------------------------------------------------

func TestOrderHandler_UpdateStatus_AcceptsKnownStatus(t *testing.T) {
	var gotStatus domain.OrderStatus
	stub := &stubOrderService{
		statusFn: func(_ context.Context, orderID string, status domain.OrderStatus) error {
			if orderID != "ord-1" {
				t.Fatalf("unexpected order id %q", orderID)
			}
			gotStatus = status
			return nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"В работе"}`)
	c.SetParamNames("id")
	c.SetParamValues("ord-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotStatus != domain.StatusAccepted {
		t.Errorf("expected %q, got %q", domain.StatusAccepted, gotStatus)
	}
}

func TestOrderHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	stub := &stubOrderService{
		statusFn: func(context.Context, string, domain.OrderStatus) error {
			t.Fatal("service must not be called with an unknown status")
			return nil
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"DONE"}`)
	c.SetParamNames("id")
	c.SetParamValues("ord-1")

	if code := httpStatus(t, h.UpdateStatus(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestOrderHandler_AssignOperator_EmptyIDClears(t *testing.T) {
	var gotOperator string
	stub := &stubOrderService{
		assignFn: func(_ context.Context, orderID, operatorID string) error {
			gotOperator = operatorID
			return nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/orders/ord-1/operator", `{"operator_id":""}`)
	c.SetParamNames("id")
	c.SetParamValues("ord-1")

	if err := h.AssignOperator(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotOperator != "" {
		t.Errorf("empty operator id must pass through as empty, got %q", gotOperator)
	}
}
