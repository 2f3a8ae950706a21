package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pigeonpulse/loft-api/internal/api/metrics"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// ReportHandler handles HTTP requests for loft statistics and exports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Statistics returns aggregate counts for the target loft.
//
// @Summary      Loft statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        loft_id  query  string  false  "Target loft (defaults to the token's loft)"
// @Success      200  {object}  statisticsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/reports/statistics [get]
func (h *ReportHandler) Statistics(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Statistics(c.Request().Context(), p.User.ID, targetLoftID(c, p))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statisticsResponse{
		Total:    stats.Total,
		Racing:   stats.Racing,
		Breeding: stats.Breeding,
		Other:    stats.Other,
		BySex:    stats.BySex,
		ByLine:   stats.ByLine,
	})
}

// Census streams the loft census as a PDF document.
//
// @Summary      Loft census PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        loft_id  query  string  false  "Target loft (defaults to the token's loft)"
// @Param        status   query  string  false  "Filter by status"
// @Param        sex      query  string  false  "Filter by sex"
// @Param        line     query  string  false  "Filter by bloodline"
// @Success      200  {file}  file
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/reports/census [get]
func (h *ReportHandler) Census(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	doc, err := h.service.CensusPDF(c.Request().Context(), ports.CensusInput{
		UserID: p.User.ID,
		LoftID: targetLoftID(c, p),
		Status: c.QueryParam("status"),
		Sex:    c.QueryParam("sex"),
		Line:   c.QueryParam("line"),
	})
	if err != nil {
		return err
	}

	metrics.CensusExportsTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="census.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", doc)
}
