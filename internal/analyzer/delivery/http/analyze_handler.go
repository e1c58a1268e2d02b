package http

import (
	"errors"
	"fmt"
	"net/http"

	"golang-company-analyzer/internal/analyzer/dto"
	"golang-company-analyzer/internal/analyzer/service"
	"golang-company-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalyzeHandler handles HTTP requests for company analysis.
type AnalyzeHandler struct {
	analyzeService service.AnalyzeService
	logger         *logger.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzeService service.AnalyzeService, logger *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{analyzeService: analyzeService, logger: logger}
}

// RegisterRoutes registers the analyze routes to the Echo group.
func (h *AnalyzeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/analyze", h.Analyze)
}

// Analyze godoc
// @Summary Analyze a company
// @Description Resolve the company's ticker, then return its financial snapshot and related news
// @Tags analyze
// @Produce  json
// @Param   company_name  query    string  true  "Company name, e.g. Apple"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze [get]
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	ctx := c.Request().Context()
	companyName := c.QueryParam("company_name")

	response, err := h.analyzeService.Analyze(ctx, companyName)
	if err != nil {
		status, detail := errorResponse(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "Failed to analyze company", logger.ErrorField(err), logger.StringField("company_name", companyName))
		} else {
			h.logger.InfoContext(ctx, "Analyze request rejected", logger.ErrorField(err), logger.IntField("status", status))
		}
		return c.JSON(status, dto.ErrorResponse{Detail: detail})
	}

	return c.JSON(http.StatusOK, response)
}

func errorResponse(err error) (int, string) {
	var analyzeErr *service.AnalyzeError
	if !errors.As(err, &analyzeErr) {
		return http.StatusInternalServerError, "Internal server error."
	}

	switch {
	case errors.Is(analyzeErr, service.ErrEmptyCompanyName):
		return http.StatusBadRequest, "Company name cannot be empty."
	case errors.Is(analyzeErr, service.ErrTickerNotFound):
		return http.StatusNotFound, fmt.Sprintf("Could not find a stock ticker for '%s'.", analyzeErr.CompanyName)
	case errors.Is(analyzeErr, service.ErrDataUnavailable):
		return http.StatusNotFound, fmt.Sprintf("Could not retrieve financial data for ticker '%s'. The company might be delisted or data is unavailable.", analyzeErr.Ticker)
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}
