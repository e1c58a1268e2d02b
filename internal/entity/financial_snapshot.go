package entity

import (
	"github.com/guregu/null/v6"
)

// FinancialSnapshot is the projection of a ticker's metadata and price history.
// String fields carry "N/A" when the source omits them; numeric fields are null.
type FinancialSnapshot struct {
	Ticker            string       `json:"ticker"`
	CompanyName       string       `json:"company_name"`
	Exchange          string       `json:"exchange"`
	Sector            string       `json:"sector"`
	Industry          string       `json:"industry"`
	Summary           string       `json:"summary"`
	CurrentPrice      null.Float   `json:"current_price" swaggertype:"number"`
	MarketCap         null.Int     `json:"market_cap" swaggertype:"integer"`
	FiftyTwoWeekRange string       `json:"fifty_two_week_range"`
	PERatio           null.Float   `json:"pe_ratio" swaggertype:"number"`
	EPS               null.Float   `json:"eps" swaggertype:"number"`
	DividendYield     null.Float   `json:"dividend_yield" swaggertype:"number"`
	Recommendation    string       `json:"recommendation"`
	TargetMeanPrice   null.Float   `json:"target_mean_price" swaggertype:"number"`
	HistoricalPrices  []PricePoint `json:"historical_prices"`
}

// PricePoint is one trading day's close.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}
