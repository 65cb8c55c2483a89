package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
	domrepo "github.com/Dhruvg12/financial-app/internal/domain/repository"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client implements the History provider gateway backed by the Yahoo Finance
// chart API.
type Client struct {
	baseURL   string
	userAgent string
	http      *xhttp.Client
}

// New creates a Yahoo Finance history client.
func New(baseURL string, timeout time.Duration, userAgent string) domrepo.History {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// chartResponse is the response structure of the Yahoo Finance chart API.
// Quote arrays carry null entries for non-trading days and data gaps, so
// they decode into pointers.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchPeriod requests a relative window such as "6mo"; the period string is
// passed through to the provider unchanged.
func (c *Client) FetchPeriod(ctx context.Context, symbol, period string, interval domrepo.Interval) (*models.RawSeries, error) {
	return c.fetchChart(ctx, symbol, map[string][]string{
		"range":    {period},
		"interval": {string(interval)},
	})
}

// FetchRange requests the half-open window [start, end).
func (c *Client) FetchRange(ctx context.Context, symbol string, start, end time.Time, interval domrepo.Interval) (*models.RawSeries, error) {
	return c.fetchChart(ctx, symbol, map[string][]string{
		"period1":  {strconv.FormatInt(start.Unix(), 10)},
		"period2":  {strconv.FormatInt(end.Unix(), 10)},
		"interval": {string(interval)},
	})
}

func (c *Client) fetchChart(ctx context.Context, symbol string, params map[string][]string) (*models.RawSeries, error) {
	var resp chartResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol)),
		Headers:     map[string]string{"User-Agent": c.userAgent},
		QueryParams: params,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error for %s: %s (%s)",
			symbol, resp.Chart.Error.Description, resp.Chart.Error.Code)
	}

	// The quote columns of the upstream frame for a single-symbol request
	// come back keyed (metric, symbol); preserve that shape and leave the
	// reshaping to the normalizer.
	series := &models.RawSeries{Columns: columns(symbol)}
	if len(resp.Chart.Result) == 0 {
		return series, nil
	}
	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return series, nil
	}
	quote := result.Indicators.Quote[0]

	rows := make([]models.RawRow, 0, len(result.Timestamp))
	seen := make(map[int64]bool, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if seen[ts] {
			continue
		}
		seen[ts] = true
		rows = append(rows, models.RawRow{
			Time: time.Unix(ts, 0).UTC(),
			Cells: []interface{}{
				floatCell(quote.Open, i),
				floatCell(quote.High, i),
				floatCell(quote.Low, i),
				floatCell(quote.Close, i),
				intCell(quote.Volume, i),
			},
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Time.Before(rows[j].Time) })

	series.Rows = rows
	return series, nil
}

func columns(symbol string) []models.Label {
	return []models.Label{
		{Name: "Open", Sub: symbol},
		{Name: "High", Sub: symbol},
		{Name: "Low", Sub: symbol},
		{Name: "Close", Sub: symbol},
		{Name: "Volume", Sub: symbol},
	}
}

func floatCell(vals []*float64, i int) interface{} {
	if i >= len(vals) || vals[i] == nil {
		return nil
	}
	return *vals[i]
}

func intCell(vals []*int64, i int) interface{} {
	if i >= len(vals) || vals[i] == nil {
		return nil
	}
	return *vals[i]
}
