package repository

import (
	"net/http"
	"time"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/pkg/common"
	pkgconfig "golang-company-analyzer/pkg/config"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		HTTPClient: pkgconfig.HTTPClient{
			Timeout:   2 * time.Second,
			UserAgent: common.DefaultUserAgent,
		},
		YahooFinance: config.YahooFinance{
			BaseURL:         baseURL,
			SearchURL:       baseURL + "/v1/finance/search",
			SessionURL:      baseURL + "/session",
			CrumbTTL:        time.Minute,
			HistoryRange:    "1y",
			HistoryInterval: "1d",
		},
		News: config.News{
			Mode:       common.NewsModeBoth,
			MaxResults: 5,
			Articles:   config.Articles{Source: common.ArticleSourceHTML},
			GoogleNews: config.GoogleNews{
				BaseURL: baseURL,
				HL:      "en-IN",
				GL:      "IN",
				CEID:    "IN:en",
			},
			WebSearch: config.WebSearch{BaseURL: baseURL + "/html/"},
		},
	}
}

func newTestClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}
