package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type submitReportRequest struct {
	CalendarWeek int                `json:"calendarWeek" validate:"required,min=1,max=53"`
	Year         int                `json:"year" validate:"required,min=2000"`
	Scores       map[string]float64 `json:"scores" validate:"required"`
	Notes        string             `json:"notes"`
}

// List returns the authenticated user's weekly reports.
//
// @Summary      List reports
// @Tags         reports
// @Produce      json
// @Success      200  {array}  domain.Report
// @Router       /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	reports, err := h.reportService.List(c.Request().Context(), principal.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// Submit creates or replaces the authenticated user's report for a week.
//
// @Summary      Submit a weekly report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      submitReportRequest  true  "Report"
// @Success      200   {object}  domain.Report
// @Failure      400   {object}  map[string]string
// @Router       /reports [post]
func (h *ReportHandler) Submit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req submitReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	report, err := h.reportService.Submit(c.Request().Context(), &domain.Report{
		CalendarWeek: req.CalendarWeek,
		Year:         req.Year,
		Scores:       req.Scores,
		Notes:        req.Notes,
		UserEmail:    principal.Subject,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
