package domain

// OrderStatus is the lifecycle state of an order. The values are the
// human-readable labels persisted in the orders collection, so they double as
// display strings.
type OrderStatus string

const (
	StatusPending   OrderStatus = "В обработке"
	StatusAccepted  OrderStatus = "В работе"
	StatusCompleted OrderStatus = "Выполнен"
	StatusCancelled OrderStatus = "Отменен"
)

// Valid reports whether s is one of the four known statuses. Note that any
// valid status may follow any other: there is deliberately no transition
// table, and callers must not add one.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is a client's request for a service. ServiceTitle, ClientName and
// OperatorName are snapshots taken at write time, never live joins: renaming a
// user or service later must not rewrite history.
type Order struct {
	ID            string      `json:"id"`
	ClientID      string      `json:"clientId"`
	ServiceID     string      `json:"serviceId"` // "custom-..." marks an individual request
	ServiceTitle  string      `json:"serviceTitle"`
	ClientName    string      `json:"clientName"`
	ClientContact string      `json:"clientContact"`
	Date          string      `json:"date"` // ISO 8601
	Status        OrderStatus `json:"status"`
	Amount        int         `json:"amount"` // rubles; 0 means "requires individual pricing"
	CreatedAt     int64       `json:"createdAt"` // unix milliseconds
	OperatorID    string      `json:"operatorId,omitempty"`
	OperatorName  string      `json:"operatorName,omitempty"`
}
