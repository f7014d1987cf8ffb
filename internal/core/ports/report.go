package ports

import (
	"context"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

// ReportRepository defines the persistence interface for weekly reports.
type ReportRepository interface {
	ListByUser(ctx context.Context, userEmail string) ([]domain.Report, error)
	// Upsert replaces the user's report for (calendarWeek, year) or creates it.
	Upsert(ctx context.Context, report *domain.Report) (*domain.Report, error)
}

// ReportService manages a user's weekly check-ins.
type ReportService interface {
	List(ctx context.Context, userEmail string) ([]domain.Report, error)
	Submit(ctx context.Context, report *domain.Report) (*domain.Report, error)
}
