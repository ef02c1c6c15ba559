package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// stubStore is an in-memory DataStore double shared by the service tests. It
// mirrors the store contracts closely enough for the services not to notice:
// silent no-ops on unknown ids, sanitized sessions, generated message fields.
type stubStore struct {
	users    []domain.User
	services []domain.Service
	orders   []domain.Order
	messages []domain.Message
	session  *domain.User

	failWith error // if set, every call returns this error

	messagesCalls int // number of MessagesForOrder invocations
}

func newStubStore() *stubStore {
	return &stubStore{}
}

// ── UserStore ───────────────────────────────────────────────────────────────

func (s *stubStore) Users(_ context.Context) ([]domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.users, nil
}

func (s *stubStore) Operators(_ context.Context) ([]domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var operators []domain.User
	for _, u := range s.users {
		if u.Role == domain.RoleOperator {
			operators = append(operators, u)
		}
	}
	return operators, nil
}

func (s *stubStore) Register(_ context.Context, candidate domain.User) (domain.User, error) {
	if s.failWith != nil {
		return domain.User{}, s.failWith
	}
	for _, u := range s.users {
		if u.Email == candidate.Email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}
	s.users = append(s.users, candidate)
	session := candidate.Sanitized()
	s.session = &session
	return session, nil
}

func (s *stubStore) Login(_ context.Context, email, password string) (domain.User, error) {
	if s.failWith != nil {
		return domain.User{}, s.failWith
	}
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			session := u.Sanitized()
			s.session = &session
			return session, nil
		}
	}
	return domain.User{}, domain.ErrInvalidCredentials
}

func (s *stubStore) Logout(_ context.Context) error {
	s.session = nil
	return nil
}

func (s *stubStore) CurrentUser(_ context.Context) (*domain.User, error) {
	return s.session, nil
}

func (s *stubStore) ChangeRole(_ context.Context, userID string, role domain.Role) error {
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].Role = role
		}
	}
	return nil
}

// ── CatalogStore ────────────────────────────────────────────────────────────

func (s *stubStore) Services(_ context.Context) ([]domain.Service, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.services, nil
}

func (s *stubStore) Categories(_ context.Context) ([]string, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var categories []string
	seen := make(map[string]struct{})
	for _, svc := range s.services {
		if _, ok := seen[svc.Category]; !ok {
			seen[svc.Category] = struct{}{}
			categories = append(categories, svc.Category)
		}
	}
	return categories, nil
}

func (s *stubStore) AddService(_ context.Context, svc domain.Service) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.services = append(s.services, svc)
	return nil
}

// ── OrderStore ──────────────────────────────────────────────────────────────

func (s *stubStore) Orders(_ context.Context, viewer *domain.User) ([]domain.Order, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if viewer == nil {
		return []domain.Order{}, nil
	}
	if viewer.Role == domain.RoleClient {
		var own []domain.Order
		for _, o := range s.orders {
			if o.ClientID == viewer.ID {
				own = append(own, o)
			}
		}
		return own, nil
	}
	return s.orders, nil
}

func (s *stubStore) CreateOrder(_ context.Context, order domain.Order) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubStore) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
		}
	}
	return nil
}

func (s *stubStore) AssignOperator(_ context.Context, orderID, operatorID string) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].OperatorID = operatorID
		}
	}
	return nil
}

func (s *stubStore) DeleteOrder(_ context.Context, orderID string) error {
	if s.failWith != nil {
		return s.failWith
	}
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	return nil
}

// ── MessageStore ────────────────────────────────────────────────────────────

func (s *stubStore) MessagesForOrder(_ context.Context, orderID string) ([]domain.Message, error) {
	s.messagesCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	var thread []domain.Message
	for _, m := range s.messages {
		if m.OrderID == orderID {
			thread = append(thread, m)
		}
	}
	return thread, nil
}

func (s *stubStore) SendMessage(_ context.Context, msg domain.Message) (domain.Message, error) {
	if s.failWith != nil {
		return domain.Message{}, s.failWith
	}
	msg.ID = fmt.Sprintf("msg-%d", len(s.messages)+1)
	msg.Timestamp = int64(len(s.messages) + 1)
	msg.IsRead = false
	s.messages = append(s.messages, msg)
	return msg, nil
}
