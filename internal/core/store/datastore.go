// Package store implements the DataStore: all reads and writes of the four
// record collections (users, services, orders, messages) plus the session
// pointer, against an injected key-value substrate.
//
// Every read deserializes the full collection from the substrate; every
// mutation reads the current collection, applies the change and writes the
// whole collection back. There is no in-memory cache and no concurrency
// check: two racing writers on the same collection are last-write-wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// Substrate keys. Each collection lives under its own key; the session entry
// holds a single sanitized user record.
const (
	keyServices = "services"
	keyOrders   = "orders"
	keyUsers    = "users"
	keySession  = "session"
	keyMessages = "messages"
)

type DataStore struct {
	storage ports.Storage
	log     zerolog.Logger
}

var _ ports.DataStore = (*DataStore)(nil)

func New(storage ports.Storage, log zerolog.Logger) *DataStore {
	return &DataStore{storage: storage, log: log}
}

// save marshals a value and writes it under key.
func (ds *DataStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := ds.storage.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// loadUsers returns the users collection, seeding it when the key has never
// been written. An emptied-but-present collection is never re-seeded.
func (ds *DataStore) loadUsers(ctx context.Context) ([]domain.User, error) {
	raw, ok, err := ds.storage.Get(ctx, keyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		users := seedUsers()
		if err := ds.save(ctx, keyUsers, users); err != nil {
			return nil, err
		}
		ds.log.Info().Int("count", len(users)).Msg("seeded users collection")
		return users, nil
	}
	var users []domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (ds *DataStore) loadServices(ctx context.Context) ([]domain.Service, error) {
	raw, ok, err := ds.storage.Get(ctx, keyServices)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	if !ok {
		services := seedServices()
		if err := ds.save(ctx, keyServices, services); err != nil {
			return nil, err
		}
		ds.log.Info().Int("count", len(services)).Msg("seeded services collection")
		return services, nil
	}
	var services []domain.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (ds *DataStore) loadOrders(ctx context.Context) ([]domain.Order, error) {
	raw, ok, err := ds.storage.Get(ctx, keyOrders)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !ok {
		orders := seedOrders(time.Now())
		if err := ds.save(ctx, keyOrders, orders); err != nil {
			return nil, err
		}
		ds.log.Info().Int("count", len(orders)).Msg("seeded orders collection")
		return orders, nil
	}
	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (ds *DataStore) loadMessages(ctx context.Context) ([]domain.Message, error) {
	raw, ok, err := ds.storage.Get(ctx, keyMessages)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if !ok {
		messages := seedMessages(time.Now())
		if err := ds.save(ctx, keyMessages, messages); err != nil {
			return nil, err
		}
		ds.log.Info().Int("count", len(messages)).Msg("seeded messages collection")
		return messages, nil
	}
	var messages []domain.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

// ── Users / session ─────────────────────────────────────────────────────────

func (ds *DataStore) Users(ctx context.Context) ([]domain.User, error) {
	return ds.loadUsers(ctx)
}

func (ds *DataStore) Operators(ctx context.Context) ([]domain.User, error) {
	users, err := ds.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	var operators []domain.User
	for _, u := range users {
		if u.Role == domain.RoleOperator {
			operators = append(operators, u)
		}
	}
	return operators, nil
}

func (ds *DataStore) Register(ctx context.Context, candidate domain.User) (domain.User, error) {
	users, err := ds.loadUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Email == candidate.Email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}
	users = append(users, candidate)
	if err := ds.save(ctx, keyUsers, users); err != nil {
		return domain.User{}, err
	}

	// Auto login after register.
	session := candidate.Sanitized()
	if err := ds.save(ctx, keySession, session); err != nil {
		return domain.User{}, err
	}
	ds.log.Info().Str("user_id", candidate.ID).Msg("user registered")
	return session, nil
}

func (ds *DataStore) Login(ctx context.Context, email, password string) (domain.User, error) {
	users, err := ds.loadUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			session := u.Sanitized()
			if err := ds.save(ctx, keySession, session); err != nil {
				return domain.User{}, err
			}
			return session, nil
		}
	}
	// Unknown email and wrong password are indistinguishable on purpose.
	return domain.User{}, domain.ErrInvalidCredentials
}

func (ds *DataStore) Logout(ctx context.Context) error {
	if err := ds.storage.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (ds *DataStore) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, ok, err := ds.storage.Get(ctx, keySession)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &user, nil
}

func (ds *DataStore) ChangeRole(ctx context.Context, userID string, role domain.Role) error {
	users, err := ds.loadUsers(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, u := range users {
		if u.ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		ds.log.Debug().Str("user_id", userID).Msg("role change for unknown user ignored")
		return nil
	}
	users[idx].Role = role
	if err := ds.save(ctx, keyUsers, users); err != nil {
		return err
	}

	// Keep the session snapshot in step when the holder changed their own role.
	current, err := ds.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.ID == userID {
		if err := ds.save(ctx, keySession, users[idx].Sanitized()); err != nil {
			return err
		}
	}
	return nil
}

// ── Services ────────────────────────────────────────────────────────────────

func (ds *DataStore) Services(ctx context.Context) ([]domain.Service, error) {
	return ds.loadServices(ctx)
}

func (ds *DataStore) Categories(ctx context.Context) ([]string, error) {
	services, err := ds.loadServices(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(services))
	var categories []string
	for _, s := range services {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		categories = append(categories, s.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (ds *DataStore) AddService(ctx context.Context, svc domain.Service) error {
	services, err := ds.loadServices(ctx)
	if err != nil {
		return err
	}
	services = append(services, svc)
	return ds.save(ctx, keyServices, services)
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (ds *DataStore) Orders(ctx context.Context, viewer *domain.User) ([]domain.Order, error) {
	all, err := ds.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return []domain.Order{}, nil
	}
	if viewer.Role == domain.RoleClient {
		own := []domain.Order{}
		for _, o := range all {
			if o.ClientID == viewer.ID {
				own = append(own, o)
			}
		}
		return own, nil
	}
	// Managers and operators see everything; narrowing an operator to their
	// assigned orders is downstream business, not a store guarantee.
	return all, nil
}

func (ds *DataStore) CreateOrder(ctx context.Context, order domain.Order) error {
	orders, err := ds.loadOrders(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return ds.save(ctx, keyOrders, orders)
}

// mutateOrders loads the raw orders collection without seeding, applies fn and
// writes the result back. When the key has never been written the mutation is
// a no-op: only reads and CreateOrder seed.
func (ds *DataStore) mutateOrders(ctx context.Context, fn func([]domain.Order) []domain.Order) error {
	raw, ok, err := ds.storage.Get(ctx, keyOrders)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	if !ok {
		return nil
	}
	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return fmt.Errorf("decode orders: %w", err)
	}
	return ds.save(ctx, keyOrders, fn(orders))
}

func (ds *DataStore) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return ds.mutateOrders(ctx, func(orders []domain.Order) []domain.Order {
		for i := range orders {
			if orders[i].ID == orderID {
				orders[i].Status = status
				return orders
			}
		}
		ds.log.Debug().Str("order_id", orderID).Msg("status update for unknown order ignored")
		return orders
	})
}

func (ds *DataStore) AssignOperator(ctx context.Context, orderID, operatorID string) error {
	return ds.mutateOrders(ctx, func(orders []domain.Order) []domain.Order {
		idx := -1
		for i := range orders {
			if orders[i].ID == orderID {
				idx = i
				break
			}
		}
		if idx == -1 {
			ds.log.Debug().Str("order_id", orderID).Msg("assignment for unknown order ignored")
			return orders
		}

		// Snapshot the operator's current name. The two reads are independent:
		// a rename between them is accepted behavior.
		var operatorName string
		if operatorID != "" {
			users, err := ds.loadUsers(ctx)
			if err != nil {
				ds.log.Warn().Err(err).Msg("operator lookup failed, clearing name")
			} else {
				for _, u := range users {
					if u.ID == operatorID {
						operatorName = u.Name
						break
					}
				}
			}
		}
		orders[idx].OperatorID = operatorID
		orders[idx].OperatorName = operatorName
		return orders
	})
}

func (ds *DataStore) DeleteOrder(ctx context.Context, orderID string) error {
	return ds.mutateOrders(ctx, func(orders []domain.Order) []domain.Order {
		kept := orders[:0]
		for _, o := range orders {
			if o.ID != orderID {
				kept = append(kept, o)
			}
		}
		return kept
	})
}

// ── Messages ────────────────────────────────────────────────────────────────

func (ds *DataStore) MessagesForOrder(ctx context.Context, orderID string) ([]domain.Message, error) {
	messages, err := ds.loadMessages(ctx)
	if err != nil {
		return nil, err
	}
	thread := []domain.Message{}
	for _, m := range messages {
		if m.OrderID == orderID {
			thread = append(thread, m)
		}
	}
	// Stable so equal timestamps keep insertion order.
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].Timestamp < thread[j].Timestamp
	})
	return thread, nil
}

func (ds *DataStore) SendMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	messages, err := ds.loadMessages(ctx)
	if err != nil {
		return domain.Message{}, err
	}
	msg.ID = domain.NewID("msg")
	msg.Timestamp = time.Now().UnixMilli()
	msg.IsRead = false
	messages = append(messages, msg)
	if err := ds.save(ctx, keyMessages, messages); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}
