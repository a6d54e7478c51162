// Package weather implements the weather client port against the public
// forecast API. The downstream serves one JSON document with an entry per
// calendar day; today's entry is selected client-side.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/platform/httpclient"
	"github.com/hyeonlog/taskhub/internal/ports"
)

const forecastPath = "/f-api/weather.json"

// dateLayout matches the downstream's month-day date format.
const dateLayout = "01-02"

// Compile-time check that Client implements ports.WeatherClient.
var _ ports.WeatherClient = (*Client)(nil)

// forecast is one per-day entry in the downstream document.
type forecast struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// Client fetches today's weather through the instrumented HTTP client.
type Client struct {
	client *httpclient.Client
	logger *slog.Logger
	now    func() time.Time
}

// New creates a weather client backed by the given HTTP client.
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// TodayWeather returns today's weather description. A failing downstream or
// a document without an entry for today maps to domain.ErrUnavailable.
func (c *Client) TodayWeather(ctx context.Context) (string, error) {
	url := c.client.BaseURL() + forecastPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating weather request: %w", err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			c.closeBody(ctx, resp)
		}
		c.logger.ErrorContext(ctx, "weather request failed",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("weather api: %w", domain.ErrUnavailable)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "unexpected weather status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return "", fmt.Errorf("weather api status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	var forecasts []forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecasts); err != nil {
		return "", fmt.Errorf("decoding weather response: %w", domain.ErrUnavailable)
	}
	if len(forecasts) == 0 {
		return "", fmt.Errorf("empty weather document: %w", domain.ErrUnavailable)
	}

	today := c.now().Format(dateLayout)
	for _, f := range forecasts {
		if f.Date == today {
			return f.Weather, nil
		}
	}

	return "", fmt.Errorf("no forecast for today (%s): %w", today, domain.ErrUnavailable)
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
