package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/api/metrics"
	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// Fixed user-facing strings for the degraded paths. The analysis integration
// is best effort: no error ever propagates past this service.
const (
	msgAnalystNotConfigured = "API Key not configured."
	msgAnalysisFailed       = "Произошла ошибка при анализе данных. Проверьте API ключ."
)

// recentOrderWindow is how many of the newest orders are shared with the analyst.
const recentOrderWindow = 10

// AnalysisService assembles a business snapshot from the full orders and
// services collections and forwards it to the external analyst.
type AnalysisService struct {
	orders  ports.OrderStore
	catalog ports.CatalogStore
	analyst ports.Analyst
	log     zerolog.Logger
}

func NewAnalysisService(orders ports.OrderStore, catalog ports.CatalogStore, analyst ports.Analyst, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{orders: orders, catalog: catalog, analyst: analyst, log: log}
}

var _ ports.AnalysisService = (*AnalysisService)(nil)

func (s *AnalysisService) Analyze(ctx context.Context) string {
	orders, err := s.orders.Orders(ctx, &domain.User{Role: domain.RoleManager})
	if err != nil {
		s.log.Error().Err(err).Msg("analysis: loading orders failed")
		metrics.AnalysisRequestsTotal.WithLabelValues("error").Inc()
		return msgAnalysisFailed
	}
	services, err := s.catalog.Services(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("analysis: loading services failed")
		metrics.AnalysisRequestsTotal.WithLabelValues("error").Inc()
		return msgAnalysisFailed
	}

	snapshot := ports.BusinessSnapshot{
		TotalOrders:  len(orders),
		RecentOrders: orders,
	}
	for _, o := range orders {
		snapshot.TotalRevenue += o.Amount
	}
	if len(orders) > recentOrderWindow {
		snapshot.RecentOrders = orders[len(orders)-recentOrderWindow:]
	}
	for _, svc := range services {
		snapshot.ServiceTitles = append(snapshot.ServiceTitles, svc.Title)
	}

	summary, err := s.analyst.Analyze(ctx, snapshot)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotConfigured) {
			metrics.AnalysisRequestsTotal.WithLabelValues("not_configured").Inc()
			return msgAnalystNotConfigured
		}
		s.log.Error().Err(err).Msg("analysis request failed")
		metrics.AnalysisRequestsTotal.WithLabelValues("error").Inc()
		return msgAnalysisFailed
	}

	metrics.AnalysisRequestsTotal.WithLabelValues("success").Inc()
	return summary
}
