package gender

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// GenderizeBaseURL is the genderize.io API endpoint.
	GenderizeBaseURL = "https://api.genderize.io"

	// genderizeTimeout bounds a single lookup.
	genderizeTimeout = 15 * time.Second

	// genderizeRateLimit keeps well under the free-tier daily quota when
	// processing a year of papers in one run.
	genderizeRateLimit = 2.0
)

// GenderizeClient is a rate-limited client for the genderize.io name
// inference API. It implements Oracle.
type GenderizeClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
}

// GenderizeOption configures a GenderizeClient.
type GenderizeOption func(*GenderizeClient)

// WithGenderizeBaseURL overrides the API endpoint (for testing).
func WithGenderizeBaseURL(u string) GenderizeOption {
	return func(c *GenderizeClient) { c.baseURL = u }
}

// WithGenderizeAPIKey sets the API key for paid-tier requests.
func WithGenderizeAPIKey(key string) GenderizeOption {
	return func(c *GenderizeClient) { c.apiKey = key }
}

// WithGenderizeHTTPClient sets a custom HTTP client.
func WithGenderizeHTTPClient(hc *http.Client) GenderizeOption {
	return func(c *GenderizeClient) { c.httpClient = hc }
}

// NewGenderizeClient creates a genderize.io client.
func NewGenderizeClient(opts ...GenderizeOption) *GenderizeClient {
	c := &GenderizeClient{
		httpClient: &http.Client{Timeout: genderizeTimeout},
		limiter:    rate.NewLimiter(rate.Limit(genderizeRateLimit), 1),
		baseURL:    GenderizeBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// genderizeResponse is the API's answer for one name.
type genderizeResponse struct {
	Name        string  `json:"name"`
	Gender      string  `json:"gender"` // "male", "female", or null
	Probability float64 `json:"probability"`
	Count       int     `json:"count"`
}

// ResolveGender looks up a name. It returns Unknown with a nil error when
// the service has no answer; transport and API errors are returned so the
// caller's fallback chain can treat them as a miss.
func (c *GenderizeClient) ResolveGender(ctx context.Context, name string) (Gender, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Unknown, err
	}

	q := url.Values{"name": {name}}
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return Unknown, fmt.Errorf("building genderize request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Unknown, fmt.Errorf("calling genderize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Unknown, fmt.Errorf("genderize returned status %d", resp.StatusCode)
	}

	var gr genderizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return Unknown, fmt.Errorf("decoding genderize response: %w", err)
	}

	switch gr.Gender {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	default:
		return Unknown, nil
	}
}
