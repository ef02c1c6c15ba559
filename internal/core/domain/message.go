package domain

// Message is a single chat line attached to one order. Messages are
// append-only: never edited, never deleted. IsRead is set false on creation
// and no consumer ever flips it back.
type Message struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"` // snapshot, not a join
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"` // unix milliseconds
	IsRead     bool   `json:"isRead"`
}
