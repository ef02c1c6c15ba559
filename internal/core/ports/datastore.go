package ports

import (
	"context"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// UserStore owns the users collection and the session pointer.
type UserStore interface {
	// Users returns every user, seeding the collection on first access.
	Users(ctx context.Context) ([]domain.User, error)
	// Operators returns users with the OPERATOR role.
	Operators(ctx context.Context) ([]domain.User, error)
	// Register appends the candidate and establishes a session for it.
	// Fails with domain.ErrDuplicateEmail on an exact email collision.
	Register(ctx context.Context, candidate domain.User) (domain.User, error)
	// Login matches email+password exactly and persists a sanitized session.
	// Unknown email and wrong password both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (domain.User, error)
	// Logout clears the session pointer. The users collection is untouched.
	Logout(ctx context.Context) error
	// CurrentUser returns the session user, or nil when no session exists.
	CurrentUser(ctx context.Context) (*domain.User, error)
	// ChangeRole mutates the user's role in place. Unknown ids are a silent
	// no-op. When the target is the session holder the session is refreshed.
	ChangeRole(ctx context.Context, userID string, role domain.Role) error
}

// CatalogStore owns the services collection.
type CatalogStore interface {
	Services(ctx context.Context) ([]domain.Service, error)
	// Categories returns distinct category labels, alphabetically sorted.
	Categories(ctx context.Context) ([]string, error)
	AddService(ctx context.Context, svc domain.Service) error
}

// OrderStore owns the orders collection.
type OrderStore interface {
	// Orders applies role-based narrowing: nil viewer sees nothing, a CLIENT
	// sees only their own orders, OPERATOR and MANAGER see everything.
	// Operators are intentionally NOT narrowed to their assignments here;
	// that is the caller's business.
	Orders(ctx context.Context, viewer *domain.User) ([]domain.Order, error)
	// CreateOrder appends a fully-formed order. The caller supplies id,
	// timestamps and snapshot fields; no defaulting happens here.
	CreateOrder(ctx context.Context, order domain.Order) error
	// UpdateStatus overwrites the status. Any status may follow any status;
	// unknown ids are a silent no-op.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	// AssignOperator sets the operator id and snapshots the operator's
	// current name. An empty operatorID clears both fields.
	AssignOperator(ctx context.Context, orderID, operatorID string) error
	// DeleteOrder removes the order. Present-but-dormant: no route calls it.
	DeleteOrder(ctx context.Context, orderID string) error
}

// MessageStore owns the messages collection.
type MessageStore interface {
	// MessagesForOrder returns the order's thread in ascending timestamp
	// order, stable for equal timestamps.
	MessagesForOrder(ctx context.Context, orderID string) ([]domain.Message, error)
	// SendMessage fills in id, timestamp and isRead=false, appends the
	// message and returns the constructed record.
	SendMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
}

// DataStore is the full surface the rest of the system may call. The UI layer
// never touches the substrate directly.
type DataStore interface {
	UserStore
	CatalogStore
	OrderStore
	MessageStore
}
