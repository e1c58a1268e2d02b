package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"golang-company-analyzer/internal/analyzer/dto"
	"golang-company-analyzer/pkg/logger"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appleChart() *dto.ChartData {
	return &dto.ChartData{
		Symbol:    "AAPL",
		GMTOffset: -18000,
		Bars: []dto.ChartBar{
			{Timestamp: 1704205800, Close: floatPtr(185.63999938964844)},
			{Timestamp: 1704292200, Close: nil},
			{Timestamp: 1704378600, Close: floatPtr(181.91000366210938)},
			{Timestamp: 1704465000, Close: floatPtr(181.185)},
		},
	}
}

func TestFinancialDataFetcher_Fetch(t *testing.T) {
	yahoo := &fakeYahoo{info: appleInfo(), chart: appleChart()}
	fetcher := NewFinancialDataFetcher(testConfig(), logger.NewNop(), yahoo)

	snapshot, err := fetcher.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "1y", yahoo.chartRange)
	assert.Equal(t, "AAPL", snapshot.Ticker)
	assert.Equal(t, "Apple Inc.", snapshot.CompanyName)
	assert.Equal(t, "Technology", snapshot.Sector)
	assert.Equal(t, "N/A", snapshot.Industry)
	assert.Equal(t, "N/A", snapshot.Summary)
	assert.Equal(t, "164.08 - 199.62", snapshot.FiftyTwoWeekRange)
	assert.Equal(t, "Strong Buy", snapshot.Recommendation)
	assert.InDelta(t, 29.4, snapshot.PERatio.Float64, 1e-9)
	assert.False(t, snapshot.EPS.Valid)
	assert.False(t, snapshot.DividendYield.Valid)
	assert.False(t, snapshot.TargetMeanPrice.Valid)

	require.Len(t, snapshot.HistoricalPrices, 3)
	assert.Equal(t, "2024-01-02", snapshot.HistoricalPrices[0].Date)
	assert.Equal(t, 185.64, snapshot.HistoricalPrices[0].Close)
	assert.Equal(t, "2024-01-04", snapshot.HistoricalPrices[1].Date)
	assert.Equal(t, 181.91, snapshot.HistoricalPrices[1].Close)
	assert.Equal(t, 181.19, snapshot.HistoricalPrices[2].Close)
}

func TestFinancialDataFetcher_NullFieldsSerializeAsNull(t *testing.T) {
	yahoo := &fakeYahoo{info: &dto.YahooInfo{TrailingPE: null.FloatFrom(12)}, chart: &dto.ChartData{}}
	fetcher := NewFinancialDataFetcher(testConfig(), logger.NewNop(), yahoo)

	snapshot, err := fetcher.Fetch(context.Background(), "XYZ")
	require.NoError(t, err)

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["current_price"])
	assert.Nil(t, decoded["market_cap"])
	assert.Equal(t, "N/A", decoded["company_name"])
	assert.Equal(t, "N/A", decoded["recommendation"])
	assert.Equal(t, "N/A - N/A", decoded["fifty_two_week_range"])
	assert.Equal(t, []interface{}{}, decoded["historical_prices"])
}

func TestFinancialDataFetcher_Unavailable(t *testing.T) {
	withoutPE := appleInfo()
	withoutPE.TrailingPE = null.Float{}

	tests := []struct {
		name  string
		yahoo *fakeYahoo
	}{
		{name: "summary request fails", yahoo: &fakeYahoo{infoErr: errUpstream}},
		{name: "empty metadata", yahoo: &fakeYahoo{info: &dto.YahooInfo{}, chart: appleChart()}},
		{name: "missing trailing pe", yahoo: &fakeYahoo{info: withoutPE, chart: appleChart()}},
		{name: "history request fails", yahoo: &fakeYahoo{info: appleInfo(), chartErr: errUpstream}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := NewFinancialDataFetcher(testConfig(), logger.NewNop(), tt.yahoo)
			snapshot, err := fetcher.Fetch(context.Background(), "AAPL")
			assert.ErrorIs(t, err, ErrDataUnavailable)
			assert.Nil(t, snapshot)
		})
	}
}

func TestNormalizeRecommendation(t *testing.T) {
	assert.Equal(t, "Strong Buy", NormalizeRecommendation(null.StringFrom("strong_buy")))
	assert.Equal(t, "Underperform", NormalizeRecommendation(null.StringFrom("underperform")))
	assert.Equal(t, "Hold", NormalizeRecommendation(null.StringFrom("hold")))
	assert.Equal(t, "N/A", NormalizeRecommendation(null.String{}))
	assert.Equal(t, "N/A", NormalizeRecommendation(null.StringFrom("")))
}

func TestFormatFiftyTwoWeekRange(t *testing.T) {
	assert.Equal(t, "164.08 - 199.62", FormatFiftyTwoWeekRange(null.FloatFrom(164.08), null.FloatFrom(199.62)))
	assert.Equal(t, "N/A - 200", FormatFiftyTwoWeekRange(null.Float{}, null.FloatFrom(200)))
}

func TestProjectHistory(t *testing.T) {
	chart := &dto.ChartData{
		GMTOffset: -18000,
		Bars: []dto.ChartBar{
			{Timestamp: 1704205800, Close: floatPtr(10.005)},
			{Timestamp: 1704292200, Close: floatPtr(11.1234)},
			// Live bar on the same trading day as the previous one.
			{Timestamp: 1704315600, Close: floatPtr(11.5)},
			{Timestamp: 1704378600, Close: floatPtr(12)},
		},
	}

	points := ProjectHistory(chart)
	require.Len(t, points, 3)
	assert.Equal(t, 10.01, points[0].Close)
	assert.Equal(t, 11.5, points[1].Close)
	assert.Equal(t, 12.0, points[2].Close)

	var prev time.Time
	for _, p := range points {
		day, err := time.Parse(time.DateOnly, p.Date)
		require.NoError(t, err, p.Date)
		assert.False(t, day.Before(prev), "dates must not decrease")
		prev = day
	}

	assert.Empty(t, ProjectHistory(nil))
}

func TestProjectHistory_RoundsBinaryValue(t *testing.T) {
	tests := []struct {
		close float64
		want  float64
	}{
		{close: 2.675, want: 2.67},
		{close: 1.005, want: 1.0},
		{close: 0.125, want: 0.12},
		{close: 181.185, want: 181.19},
		{close: 185.63999938964844, want: 185.64},
	}

	for _, tt := range tests {
		chart := &dto.ChartData{Bars: []dto.ChartBar{{Timestamp: 1704205800, Close: floatPtr(tt.close)}}}
		points := ProjectHistory(chart)
		require.Len(t, points, 1)
		assert.Equal(t, tt.want, points[0].Close, "close %v", tt.close)
	}
}
