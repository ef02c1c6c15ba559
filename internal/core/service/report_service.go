package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// ReportService computes the manager revenue summary from the full orders
// collection. Orders are read with a synthetic manager viewer so the store
// applies no narrowing.
type ReportService struct {
	orders ports.OrderStore
	log    zerolog.Logger
}

func NewReportService(orders ports.OrderStore, log zerolog.Logger) *ReportService {
	return &ReportService{orders: orders, log: log}
}

var _ ports.ReportService = (*ReportService)(nil)

func (s *ReportService) Summary(ctx context.Context) (*ports.ReportData, error) {
	orders, err := s.orders.Orders(ctx, &domain.User{Role: domain.RoleManager})
	if err != nil {
		return nil, err
	}

	report := &ports.ReportData{TotalOrders: len(orders)}
	byService := make(map[string]int)
	for _, o := range orders {
		report.TotalRevenue += o.Amount
		if o.Status == domain.StatusCompleted {
			report.CompletedOrders++
		}
		byService[o.ServiceTitle] += o.Amount
	}

	report.RevenueByService = make([]ports.RevenueByService, 0, len(byService))
	for name, value := range byService {
		report.RevenueByService = append(report.RevenueByService, ports.RevenueByService{Name: name, Value: value})
	}
	// Largest earners first; map iteration order is not stable.
	sort.Slice(report.RevenueByService, func(i, j int) bool {
		if report.RevenueByService[i].Value != report.RevenueByService[j].Value {
			return report.RevenueByService[i].Value > report.RevenueByService[j].Value
		}
		return report.RevenueByService[i].Name < report.RevenueByService[j].Name
	})

	return report, nil
}
