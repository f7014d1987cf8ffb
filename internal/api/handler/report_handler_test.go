package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

type stubReportService struct {
	listFn   func(ctx context.Context, userEmail string) ([]domain.Report, error)
	submitFn func(ctx context.Context, report *domain.Report) (*domain.Report, error)
}

func (s *stubReportService) List(ctx context.Context, userEmail string) ([]domain.Report, error) {
	return s.listFn(ctx, userEmail)
}

func (s *stubReportService) Submit(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	return s.submitFn(ctx, report)
}

func TestReportHandler_List(t *testing.T) {
	stub := &stubReportService{
		listFn: func(_ context.Context, userEmail string) ([]domain.Report, error) {
			if userEmail != "alice@example.com" {
				t.Fatalf("list must be scoped to the principal, got %q", userEmail)
			}
			return []domain.Report{{ID: "1", CalendarWeek: 12, Year: 2025, Scores: map[string]float64{"Finances": 7}}}, nil
		},
	}
	handler := NewReportHandler(stub)

	c, rec := authenticatedContext(t, "alice@example.com", http.MethodGet, "/reports", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var reports []domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(reports) != 1 || reports[0].CalendarWeek != 12 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
}

func TestReportHandler_Submit(t *testing.T) {
	stub := &stubReportService{
		submitFn: func(_ context.Context, report *domain.Report) (*domain.Report, error) {
			if report.UserEmail != "alice@example.com" {
				t.Fatalf("submit must carry the principal, got %q", report.UserEmail)
			}
			if report.CalendarWeek != 12 || report.Year != 2025 {
				t.Fatalf("unexpected week/year: %d/%d", report.CalendarWeek, report.Year)
			}
			report.ID = "1"
			return report, nil
		},
	}
	handler := NewReportHandler(stub)

	body := `{"calendarWeek":12,"year":2025,"scores":{"Finances":7.5},"notes":"steady week"}`
	c, rec := authenticatedContext(t, "alice@example.com", http.MethodPost, "/reports", body)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.ID != "1" || report.Notes != "steady week" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestReportHandler_Submit_InvalidWeek(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		submitFn: func(_ context.Context, _ *domain.Report) (*domain.Report, error) {
			t.Fatalf("service must not be called for an invalid week")
			return nil, nil
		},
	})

	c, rec := authenticatedContext(t, "alice@example.com", http.MethodPost, "/reports", `{"calendarWeek":54,"year":2025,"scores":{"Finances":7}}`)
	_ = handler.Submit(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Submit_Anonymous(t *testing.T) {
	handler := NewReportHandler(&stubReportService{})

	c, _ := newAuthContext(t, http.MethodPost, "/reports", `{"calendarWeek":12,"year":2025,"scores":{"Finances":7}}`)
	err := handler.Submit(c)
	if err == nil {
		t.Fatal("expected an error for an anonymous request")
	}
}
