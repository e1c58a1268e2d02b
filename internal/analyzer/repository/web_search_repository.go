package repository

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/entity"
	"golang-company-analyzer/pkg/logger"
	"golang-company-analyzer/pkg/utils"

	"github.com/PuerkitoBio/goquery"
)

const (
	webResultSelector        = ".result"
	webResultTitleSelector   = "a.result__a"
	webResultSnippetSelector = ".result__snippet"

	redirectTargetParam = "uddg"
)

// WebSearchRepository runs free-text queries against a general web search page.
type WebSearchRepository interface {
	Search(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error)
}

type webSearchRepository struct {
	cfg *config.Config
	log *logger.Logger
	req *requester
}

// NewWebSearchRepository scrapes the DuckDuckGo HTML results page.
func NewWebSearchRepository(cfg *config.Config, log *logger.Logger, client *http.Client) WebSearchRepository {
	return &webSearchRepository{
		cfg: cfg,
		log: log,
		req: newNewsRequester("web_search", cfg, log, client),
	}
}

func (r *webSearchRepository) Search(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error) {
	base := r.cfg.News.WebSearch.BaseURL
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	endpoint := base + sep + "q=" + url.QueryEscape(query)

	body, err := r.req.get(ctx, endpoint, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse search page", logger.ErrorField(err), logger.StringField("query", query))
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	return ParseWebResults(doc, limit), nil
}

// ParseWebResults collects up to limit results that have a title, a link and a
// snippet, in page order. Redirect-wrapped links are unwrapped.
func ParseWebResults(doc *goquery.Document, limit int) []entity.SearchResultItem {
	items := make([]entity.SearchResultItem, 0, limit)

	doc.Find(webResultSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(items) >= limit {
			return false
		}

		anchor := s.Find(webResultTitleSelector).First()
		title := utils.CleanText(anchor.Text())
		href, _ := anchor.Attr("href")
		snippet := utils.CleanText(s.Find(webResultSnippetSelector).First().Text())
		if title == "" || href == "" || snippet == "" {
			return true
		}

		link, err := UnwrapRedirectLink(href)
		if err != nil || link == "" {
			return true
		}

		items = append(items, entity.SearchResultItem{
			Title:   title,
			Link:    link,
			Snippet: snippet,
		})
		return true
	})

	return items
}

// UnwrapRedirectLink extracts the destination from links of the form
// //duckduckgo.com/l/?uddg=<percent-encoded target>&rut=<tracking>. Links without the
// parameter are returned as absolute https URLs.
func UnwrapRedirectLink(href string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("invalid result link %q: %w", href, err)
	}

	if target := u.Query().Get(redirectTargetParam); target != "" {
		return target, nil
	}

	if u.Host == "" {
		return "", fmt.Errorf("result link %q has no host", href)
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	return u.String(), nil
}
