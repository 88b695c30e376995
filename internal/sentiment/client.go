// Package sentiment talks to an external review-labeling service. Labels are
// an optional enrichment; the core never depends on them for correctness.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/filmshelf/filmshelf/internal/domain"
)

// ErrUnavailable is returned when the labeler cannot serve the request.
var ErrUnavailable = errors.New("sentiment: labeler unavailable")

// Client defines the contract for labeling review text.
type Client interface {
	Label(ctx context.Context, text string) (domain.Sentiment, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTPClient constructs a new HTTP-backed sentiment client.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *log.Logger) (*HTTPClient, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse sentiment url: %w", err)
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

type labelRequest struct {
	Text string `json:"text"`
}

type labelResponse struct {
	Label string `json:"label"`
}

// Label classifies the given text as POSITIVE, NEUTRAL, or NEGATIVE.
func (c *HTTPClient) Label(ctx context.Context, text string) (domain.Sentiment, error) {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: "/label"})

	payload, err := json.Marshal(labelRequest{Text: text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body labelResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return "", fmt.Errorf("decode sentiment response: %w", err)
		}
		return NormalizeLabel(body.Label), nil
	case http.StatusServiceUnavailable, http.StatusTooManyRequests:
		return "", ErrUnavailable
	default:
		c.logger.Printf("sentiment: unexpected status %d", resp.StatusCode)
		return "", fmt.Errorf("sentiment: upstream returned %d", resp.StatusCode)
	}
}

// NormalizeLabel maps an upstream label onto the three known sentiments.
// Anything unrecognized counts as NEUTRAL.
func NormalizeLabel(label string) domain.Sentiment {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case string(domain.SentimentPositive):
		return domain.SentimentPositive
	case string(domain.SentimentNegative):
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
