package dto

import (
	"golang-company-analyzer/internal/entity"
)

// AnalyzeResponse is the envelope returned by GET /api/analyze. RecentNews is set when
// site-scoped articles are enabled, News when categorised web search is enabled.
type AnalyzeResponse struct {
	Query         string                               `json:"query"`
	FinancialData *entity.FinancialSnapshot            `json:"financial_data"`
	RecentNews    *[]entity.SearchResultItem           `json:"recent_news,omitempty"`
	News          map[string][]entity.SearchResultItem `json:"news,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
