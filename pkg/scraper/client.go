// Package scraper is the client for the upstream Centris scraping service.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"alexsimon-listings/internal/models"
	"alexsimon-listings/pkg/metrics"
)

// ListingFetcher is the one capability ingestion needs from the upstream
// service; tests substitute a fake.
type ListingFetcher interface {
	FetchListings(ctx context.Context, realtorName string) (*models.ScrapeResult, error)
}

// Client calls the scraping service over HTTP. One blocking attempt per
// call, no internal retry; retry/backoff across invocations belongs to the
// scheduler.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type scrapeRequest struct {
	RealtorName string `json:"realtorName"`
	Detailed    bool   `json:"detailed"`
}

// FetchListings requests detailed listings for one realtor.
func (c *Client) FetchListings(ctx context.Context, realtorName string) (*models.ScrapeResult, error) {
	body, err := json.Marshal(scrapeRequest{RealtorName: realtorName, Detailed: true})
	if err != nil {
		return nil, fmt.Errorf("scraper request failed: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("scraper request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamScrapeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("scraper request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scraper returned %d: %s", resp.StatusCode, resp.Status)
	}

	var result models.ScrapeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("scraper returned an unreadable response: %v", err)
	}
	return &result, nil
}
