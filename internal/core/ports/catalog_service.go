package ports

import (
	"context"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// AddServiceInput is a manager adding a catalog item. Only title and price are
// required; there is no uniqueness check.
type AddServiceInput struct {
	Title       string
	Description string
	Price       int
	Category    string
	Details     []string
}

type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)
	Categories(ctx context.Context) ([]string, error)
	Add(ctx context.Context, input AddServiceInput) (*domain.Service, error)
}
