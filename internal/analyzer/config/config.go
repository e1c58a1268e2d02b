package config

import (
	"fmt"
	"time"

	"golang-company-analyzer/pkg/common"
	"golang-company-analyzer/pkg/config"
)

// YahooFinance holds the configuration for the Yahoo Finance endpoints.
type YahooFinance struct {
	BaseURL             string        `mapstructure:"base_url"`
	SearchURL           string        `mapstructure:"search_url"`
	SessionURL          string        `mapstructure:"session_url"`
	CrumbTTL            time.Duration `mapstructure:"crumb_ttl"`
	HistoryRange        string        `mapstructure:"history_range"`
	HistoryInterval     string        `mapstructure:"history_interval"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// GoogleNews holds the configuration for the site-scoped article search.
type GoogleNews struct {
	BaseURL string `mapstructure:"base_url"`
	HL      string `mapstructure:"hl"`
	GL      string `mapstructure:"gl"`
	CEID    string `mapstructure:"ceid"`
}

// WebSearch holds the configuration for the general web search surface.
type WebSearch struct {
	BaseURL string `mapstructure:"base_url"`
}

// Articles selects where site-scoped articles come from ("html" or "rss").
type Articles struct {
	Source string `mapstructure:"source"`
}

// News holds configuration for the news aggregator.
type News struct {
	Mode                string     `mapstructure:"mode"`
	MaxResults          int        `mapstructure:"max_results"`
	MaxRequestPerMinute int        `mapstructure:"max_request_per_minute"`
	Articles            Articles   `mapstructure:"articles"`
	GoogleNews          GoogleNews `mapstructure:"google_news"`
	WebSearch           WebSearch  `mapstructure:"web_search"`
}

// Ticker holds ticker resolution settings.
type Ticker struct {
	MatchCutoff float64 `mapstructure:"match_cutoff"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App          config.App        `mapstructure:"app"`
	Logger       config.Logger     `mapstructure:"logger"`
	API          config.API        `mapstructure:"api"`
	HTTPClient   config.HTTPClient `mapstructure:"http_client"`
	YahooFinance YahooFinance      `mapstructure:"yahoo_finance"`
	News         News              `mapstructure:"news"`
	Ticker       Ticker            `mapstructure:"ticker"`
}

// Defaults returns the values used when neither the config file nor the environment
// sets a key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":                 "company-analyzer",
		"app.env":                  "development",
		"app.version":              "1.0.0",
		"logger.level":             "info",
		"logger.encoding":          "json",
		"api.host":                 "0.0.0.0",
		"api.port":                 8000,
		"api.cors_allowed_origins": []string{"*"},
		"http_client.timeout":      "10s",
		"http_client.user_agent":   common.DefaultUserAgent,

		"yahoo_finance.base_url":               "https://query2.finance.yahoo.com",
		"yahoo_finance.search_url":             "https://query2.finance.yahoo.com/v1/finance/search",
		"yahoo_finance.session_url":            "https://fc.yahoo.com",
		"yahoo_finance.crumb_ttl":              "30m",
		"yahoo_finance.history_range":          "1y",
		"yahoo_finance.history_interval":       "1d",
		"yahoo_finance.max_request_per_minute": 0,

		"news.mode":                   common.NewsModeCategories,
		"news.max_results":            common.DefaultMaxResults,
		"news.max_request_per_minute": 0,
		"news.articles.source":        common.ArticleSourceHTML,
		"news.google_news.base_url":   "https://news.google.com",
		"news.google_news.hl":         "en-IN",
		"news.google_news.gl":         "IN",
		"news.google_news.ceid":       "IN:en",
		"news.web_search.base_url":    "https://html.duckduckgo.com/html/",

		"ticker.match_cutoff": common.DefaultMatchCutoff,
	}
}

// Load loads the analyzer configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, Defaults()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects enum values that would otherwise silently disable a feature.
func (c *Config) Validate() error {
	switch c.News.Mode {
	case common.NewsModeArticles, common.NewsModeCategories, common.NewsModeBoth:
	default:
		return fmt.Errorf("unknown news mode %q", c.News.Mode)
	}

	switch c.News.Articles.Source {
	case common.ArticleSourceHTML, common.ArticleSourceRSS:
	default:
		return fmt.Errorf("unknown article source %q", c.News.Articles.Source)
	}
	return nil
}
