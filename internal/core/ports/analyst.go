package ports

import (
	"context"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// BusinessSnapshot is the data handed to the external analyst: aggregate
// figures plus the tail of the order log.
type BusinessSnapshot struct {
	TotalOrders   int            `json:"totalOrders"`
	TotalRevenue  int            `json:"totalRevenue"`
	RecentOrders  []domain.Order `json:"recentOrders"`
	ServiceTitles []string       `json:"serviceList"`
}

// Analyst is the optional external analysis collaborator. Implementations
// return domain.ErrAnalysisNotConfigured when no credentials are present and
// wrap any upstream fault in domain.ErrAnalysisFailed.
type Analyst interface {
	Analyze(ctx context.Context, snapshot BusinessSnapshot) (string, error)
}
