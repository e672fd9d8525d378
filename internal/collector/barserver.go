package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SaurabhMV/price-tracking/internal/model"
)

// BarServerFetcher implements Fetcher against a self-hosted bars REST API,
// for deployments that cache market data behind their own service instead of
// hitting Yahoo directly.
type BarServerFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewBarServerFetcher creates a new fetcher with optional proxy support.
func NewBarServerFetcher(baseURL, apiKey, proxyURL string) *BarServerFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BarServerFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *BarServerFetcher) Name() string { return "barserver" }

// serverBar is the expected JSON shape from the bars API.
type serverBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// FetchBars requests bars for the symbol at the given interval. Servers that
// only store daily bars may reject "1wk"; in that case the daily history is
// fetched and aggregated to ISO weeks locally.
func (f *BarServerFetcher) FetchBars(symbol, interval, period string) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&interval=%s&period=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(interval), url.QueryEscape(period))
	bars, err := f.fetchBars(endpoint)
	if err != nil && interval == "1wk" {
		daily, dailyErr := f.fetchBars(fmt.Sprintf("%s/api/v1/bars?symbol=%s&interval=1d&period=%s",
			f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(period)))
		if dailyErr != nil {
			return nil, fmt.Errorf("weekly fetch failed: %w; daily fallback also failed: %w", err, dailyErr)
		}
		return aggregateDailyToWeekly(daily), nil
	}
	return bars, err
}

// FetchCurrentPrice returns the latest quote for the symbol.
func (f *BarServerFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quote?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return 0, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch current price: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch current price: status %d", resp.StatusCode)
	}
	var result struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode price: %w", err)
	}
	return result.Price, nil
}

func (f *BarServerFetcher) fetchBars(endpoint string) ([]model.OHLCV, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var serverBars []serverBar
	if err := json.NewDecoder(resp.Body).Decode(&serverBars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, len(serverBars))
	for i, sb := range serverBars {
		bars[i] = model.OHLCV{
			Time:   time.Unix(sb.Timestamp, 0),
			Open:   sb.Open,
			High:   sb.High,
			Low:    sb.Low,
			Close:  sb.Close,
			Volume: sb.Volume,
		}
	}
	return bars, nil
}

// aggregateDailyToWeekly converts daily bars into ISO-week bars.
func aggregateDailyToWeekly(daily []model.OHLCV) []model.OHLCV {
	if len(daily) == 0 {
		return nil
	}
	var weekly []model.OHLCV
	var week model.OHLCV
	var weekStarted bool

	for _, d := range daily {
		year, isoWeek := d.Time.ISOWeek()
		weekKey := year*100 + isoWeek

		if !weekStarted {
			week = d
			weekStarted = true
			continue
		}

		cy, cw := week.Time.ISOWeek()
		if weekKey != cy*100+cw {
			weekly = append(weekly, week)
			week = d
			continue
		}
		if d.High > week.High {
			week.High = d.High
		}
		if d.Low < week.Low {
			week.Low = d.Low
		}
		week.Close = d.Close
		week.Volume += d.Volume
	}
	if weekStarted {
		weekly = append(weekly, week)
	}
	return weekly
}
