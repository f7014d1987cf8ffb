package service

import (
	"context"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

// ReportService manages weekly check-ins. Submitting a report for a week that
// already has one replaces it.
type ReportService struct {
	repo ports.ReportRepository
}

func NewReportService(repo ports.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) List(ctx context.Context, userEmail string) ([]domain.Report, error) {
	return s.repo.ListByUser(ctx, userEmail)
}

func (s *ReportService) Submit(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	if report.CalendarWeek < 1 || report.CalendarWeek > 53 || report.Year < 2000 {
		return nil, domain.ErrInvalidReport
	}
	if len(report.Scores) == 0 {
		return nil, domain.ErrInvalidReport
	}
	for _, score := range report.Scores {
		if !domain.ValidScore(score) {
			return nil, domain.ErrInvalidReport
		}
	}
	return s.repo.Upsert(ctx, report)
}
