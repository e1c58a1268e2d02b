package service

import (
	"context"
	"strconv"
	"strings"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/analyzer/dto"
	"golang-company-analyzer/internal/analyzer/repository"
	"golang-company-analyzer/internal/entity"
	"golang-company-analyzer/pkg/common"
	"golang-company-analyzer/pkg/logger"
	"golang-company-analyzer/pkg/utils"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// FinancialDataFetcher builds a FinancialSnapshot for a ticker.
type FinancialDataFetcher interface {
	Fetch(ctx context.Context, ticker string) (*entity.FinancialSnapshot, error)
}

type financialDataFetcher struct {
	cfg   *config.Config
	log   *logger.Logger
	yahoo repository.YahooFinanceRepository
}

func NewFinancialDataFetcher(cfg *config.Config, log *logger.Logger, yahoo repository.YahooFinanceRepository) FinancialDataFetcher {
	return &financialDataFetcher{
		cfg:   cfg,
		log:   log,
		yahoo: yahoo,
	}
}

// Fetch returns ErrDataUnavailable when the metadata is empty, lacks a trailing P/E,
// or any upstream call fails.
func (f *financialDataFetcher) Fetch(ctx context.Context, ticker string) (*entity.FinancialSnapshot, error) {
	info, err := f.yahoo.GetQuoteSummary(ctx, ticker)
	if err != nil {
		f.log.ErrorContext(ctx, "Error fetching data for ticker", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, ErrDataUnavailable
	}
	if info == nil || info.IsEmpty() || !info.TrailingPE.Valid {
		f.log.InfoContext(ctx, "Ticker metadata is incomplete", logger.StringField("ticker", ticker))
		return nil, ErrDataUnavailable
	}

	chart, err := f.yahoo.GetChart(ctx, ticker, f.cfg.YahooFinance.HistoryRange, f.cfg.YahooFinance.HistoryInterval)
	if err != nil {
		f.log.ErrorContext(ctx, "Error fetching price history", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, ErrDataUnavailable
	}

	return &entity.FinancialSnapshot{
		Ticker:            ticker,
		CompanyName:       stringOrNA(info.LongName),
		Exchange:          stringOrNA(info.Exchange),
		Sector:            stringOrNA(info.Sector),
		Industry:          stringOrNA(info.Industry),
		Summary:           stringOrNA(info.LongBusinessSummary),
		CurrentPrice:      info.CurrentPrice,
		MarketCap:         info.MarketCap,
		FiftyTwoWeekRange: FormatFiftyTwoWeekRange(info.FiftyTwoWeekLow, info.FiftyTwoWeekHigh),
		PERatio:           info.TrailingPE,
		EPS:               info.TrailingEPS,
		DividendYield:     info.DividendYield,
		Recommendation:    NormalizeRecommendation(info.RecommendationKey),
		TargetMeanPrice:   info.TargetMeanPrice,
		HistoricalPrices:  ProjectHistory(chart),
	}, nil
}

// NormalizeRecommendation turns "strong_buy" into "Strong Buy"; absent keys become "N/A".
func NormalizeRecommendation(key null.String) string {
	if !key.Valid || key.String == "" {
		return common.NotAvailable
	}
	return utils.TitleCase(strings.ReplaceAll(key.String, "_", " "))
}

// FormatFiftyTwoWeekRange renders "low - high", printing "N/A" for a missing side.
func FormatFiftyTwoWeekRange(low, high null.Float) string {
	return formatNullFloat(low) + " - " + formatNullFloat(high)
}

// ProjectHistory converts chart bars into one (date, close) per trading day in source
// order. Bars without a close are dropped; when two bars fall on the same day the
// later one wins.
func ProjectHistory(chart *dto.ChartData) []entity.PricePoint {
	if chart == nil {
		return []entity.PricePoint{}
	}

	points := make([]entity.PricePoint, 0, len(chart.Bars))
	for _, bar := range chart.Bars {
		if bar.Close == nil {
			continue
		}
		point := entity.PricePoint{
			Date:  utils.ISODateAtOffset(bar.Timestamp, chart.GMTOffset),
			Close: roundPrice(*bar.Close),
		}
		if n := len(points); n > 0 && points[n-1].Date == point.Date {
			points[n-1] = point
			continue
		}
		points = append(points, point)
	}
	return points
}

func stringOrNA(s null.String) string {
	if !s.Valid || s.String == "" {
		return common.NotAvailable
	}
	return s.String
}

func formatNullFloat(f null.Float) string {
	if !f.Valid {
		return common.NotAvailable
	}
	return decimal.NewFromFloat(f.Float64).String()
}

// roundPrice rounds the exact binary value to 2 decimals, ties to even, so 2.675
// (stored as 2.67499...) becomes 2.67.
func roundPrice(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
