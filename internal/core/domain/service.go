package domain

// Service is a sellable catalog item. Services are created by seed data or a
// manager adding a new one; there is no edit or delete operation.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // rubles
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Details     []string `json:"details,omitempty"`
}
