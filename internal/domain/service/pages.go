package service

import (
	"context"
	"io"

	"GodSignal/internal/domain/models"
)

// Pages assembles one snapshot per dashboard page. Implementations never fail;
// degraded upstreams surface as fallback content.
type Pages interface {
	Dashboard(ctx context.Context) models.DashboardPage
	Signals(ctx context.Context, req models.SignalsRequest) models.SignalsPage
	Whales(ctx context.Context, req models.WhalesRequest) models.WhalesPage
	Analytics(ctx context.Context) models.AnalyticsPage
	// ExportSignals writes the filtered signals as CSV and returns the row count.
	ExportSignals(ctx context.Context, req models.SignalsRequest, w io.Writer) (int, error)
}
