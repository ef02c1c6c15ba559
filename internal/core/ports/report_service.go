package ports

import "context"

// RevenueByService is one aggregation bucket in the revenue report, keyed by
// the order's snapshotted service title.
type RevenueByService struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ReportData is the manager dashboard summary.
type ReportData struct {
	TotalRevenue     int                `json:"total_revenue"`
	TotalOrders      int                `json:"total_orders"`
	CompletedOrders  int                `json:"completed_orders"`
	RevenueByService []RevenueByService `json:"revenue_by_service"`
}

type ReportService interface {
	Summary(ctx context.Context) (*ReportData, error)
}

// AnalysisService produces a free-text business summary via the external
// analyst. It never fails: missing configuration and upstream faults both
// degrade to fixed user-facing strings.
type AnalysisService interface {
	Analyze(ctx context.Context) string
}
