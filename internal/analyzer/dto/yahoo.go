package dto

import (
	"github.com/guregu/null/v6"
)

// YahooSearchResponse is the body of the ticker search endpoint.
type YahooSearchResponse struct {
	Quotes []YahooSearchQuote `json:"quotes"`
}

type YahooSearchQuote struct {
	Symbol    string `json:"symbol"`
	LongName  string `json:"longname"`
	ShortName string `json:"shortname"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}

// YahooError is the error object Yahoo embeds in otherwise successful bodies.
type YahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RawValue is Yahoo's {"raw": 1.23, "fmt": "1.23"} number wrapper. Missing values
// arrive as {} or are omitted.
type RawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

func (v *RawValue) Float() null.Float {
	if v == nil || v.Raw == nil {
		return null.Float{}
	}
	return null.FloatFrom(*v.Raw)
}

func (v *RawValue) Int() null.Int {
	if v == nil || v.Raw == nil {
		return null.Int{}
	}
	return null.IntFrom(int64(*v.Raw))
}

// YahooQuoteSummaryResponse is the body of /v10/finance/quoteSummary.
type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []YahooQuoteSummaryResult `json:"result"`
		Error  *YahooError               `json:"error"`
	} `json:"quoteSummary"`
}

type YahooQuoteSummaryResult struct {
	Price *struct {
		LongName           string    `json:"longName"`
		ShortName          string    `json:"shortName"`
		Exchange           string    `json:"exchange"`
		RegularMarketPrice *RawValue `json:"regularMarketPrice"`
		MarketCap          *RawValue `json:"marketCap"`
	} `json:"price"`
	SummaryDetail *struct {
		TrailingPE       *RawValue `json:"trailingPE"`
		DividendYield    *RawValue `json:"dividendYield"`
		FiftyTwoWeekLow  *RawValue `json:"fiftyTwoWeekLow"`
		FiftyTwoWeekHigh *RawValue `json:"fiftyTwoWeekHigh"`
		MarketCap        *RawValue `json:"marketCap"`
	} `json:"summaryDetail"`
	SummaryProfile *struct {
		Sector              string `json:"sector"`
		Industry            string `json:"industry"`
		LongBusinessSummary string `json:"longBusinessSummary"`
	} `json:"summaryProfile"`
	FinancialData *struct {
		CurrentPrice      *RawValue `json:"currentPrice"`
		TargetMeanPrice   *RawValue `json:"targetMeanPrice"`
		RecommendationKey string    `json:"recommendationKey"`
	} `json:"financialData"`
	DefaultKeyStatistics *struct {
		TrailingEps *RawValue `json:"trailingEps"`
	} `json:"defaultKeyStatistics"`
	QuoteType *struct {
		Exchange string `json:"exchange"`
		LongName string `json:"longName"`
	} `json:"quoteType"`
}

// YahooInfo is the flattened metadata of a ticker. Every member is nullable because
// Yahoo omits whatever it does not know about a security.
type YahooInfo struct {
	LongName            null.String
	Exchange            null.String
	Sector              null.String
	Industry            null.String
	LongBusinessSummary null.String
	CurrentPrice        null.Float
	MarketCap           null.Int
	FiftyTwoWeekLow     null.Float
	FiftyTwoWeekHigh    null.Float
	TrailingPE          null.Float
	TrailingEPS         null.Float
	DividendYield       null.Float
	RecommendationKey   null.String
	TargetMeanPrice     null.Float
}

// IsEmpty reports whether no field at all was populated.
func (i YahooInfo) IsEmpty() bool {
	return i == YahooInfo{}
}

// Info flattens the module objects into a YahooInfo.
func (r YahooQuoteSummaryResult) Info() YahooInfo {
	var info YahooInfo

	if r.QuoteType != nil {
		info.LongName = nonEmpty(r.QuoteType.LongName)
		info.Exchange = nonEmpty(r.QuoteType.Exchange)
	}
	if r.Price != nil {
		if !info.LongName.Valid {
			info.LongName = nonEmpty(r.Price.LongName)
		}
		if !info.Exchange.Valid {
			info.Exchange = nonEmpty(r.Price.Exchange)
		}
		info.CurrentPrice = r.Price.RegularMarketPrice.Float()
		info.MarketCap = r.Price.MarketCap.Int()
	}
	if r.SummaryDetail != nil {
		info.TrailingPE = r.SummaryDetail.TrailingPE.Float()
		info.DividendYield = r.SummaryDetail.DividendYield.Float()
		info.FiftyTwoWeekLow = r.SummaryDetail.FiftyTwoWeekLow.Float()
		info.FiftyTwoWeekHigh = r.SummaryDetail.FiftyTwoWeekHigh.Float()
		if !info.MarketCap.Valid {
			info.MarketCap = r.SummaryDetail.MarketCap.Int()
		}
	}
	if r.SummaryProfile != nil {
		info.Sector = nonEmpty(r.SummaryProfile.Sector)
		info.Industry = nonEmpty(r.SummaryProfile.Industry)
		info.LongBusinessSummary = nonEmpty(r.SummaryProfile.LongBusinessSummary)
	}
	if r.FinancialData != nil {
		// financialData carries the live price; the price module is the fallback.
		if current := r.FinancialData.CurrentPrice.Float(); current.Valid {
			info.CurrentPrice = current
		}
		info.TargetMeanPrice = r.FinancialData.TargetMeanPrice.Float()
		info.RecommendationKey = nonEmpty(r.FinancialData.RecommendationKey)
	}
	if r.DefaultKeyStatistics != nil {
		info.TrailingEPS = r.DefaultKeyStatistics.TrailingEps.Float()
	}

	return info
}

func nonEmpty(s string) null.String {
	return null.NewString(s, s != "")
}

// YahooChartResponse is the body of /v8/finance/chart.
type YahooChartResponse struct {
	Chart struct {
		Result []YahooChartResult `json:"result"`
		Error  *YahooError        `json:"error"`
	} `json:"chart"`
}

type YahooChartResult struct {
	Meta struct {
		Symbol               string `json:"symbol"`
		GMTOffset            int    `json:"gmtoffset"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// ChartBar is a single (timestamp, close) sample. Close is nil for halted sessions.
type ChartBar struct {
	Timestamp int64
	Close     *float64
}

// ChartData is the decoded price series of one symbol.
type ChartData struct {
	Symbol    string
	GMTOffset int
	Bars      []ChartBar
}
