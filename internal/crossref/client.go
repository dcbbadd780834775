// Package crossref is a client for the Crossref REST API. The pipeline
// uses it to resolve DOIs into author metadata and to enumerate a
// journal's DOIs for a publication year.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us inside the Crossref polite-pool allowance.
	RateLimit = 2.0

	// DefaultPageRows is the page size for cursor-paginated listings.
	DefaultPageRows = 200
)

// Author is one author on a Crossref work record.
type Author struct {
	Given    string `json:"given"`
	Family   string `json:"family"`
	Sequence string `json:"sequence"` // "first" or "additional"
}

// Work is the subset of a Crossref work record the pipeline consumes.
type Work struct {
	DOI     string
	Title   string
	Authors []Author
}

// FirstAuthor returns the author marked sequence=first, falling back to
// the first listed author.
func (w Work) FirstAuthor() (Author, bool) {
	for _, a := range w.Authors {
		if a.Sequence == "first" {
			return a, true
		}
	}
	if len(w.Authors) > 0 {
		return w.Authors[0], true
	}
	return Author{}, false
}

// LastAuthor returns the final listed author.
func (w Work) LastAuthor() (Author, bool) {
	if len(w.Authors) == 0 {
		return Author{}, false
	}
	return w.Authors[len(w.Authors)-1], true
}

// Client is a rate-limited HTTP client for the Crossref REST API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithMailto sets the polite-pool contact address sent with every request.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Crossref API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if mailto := os.Getenv("CROSSREF_MAILTO"); mailto != "" {
		c.mailto = mailto
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a rate-limited GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if c.mailto != "" {
		query.Set("mailto", c.mailto)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == 404 {
		return ErrNotFound
	}
	if resp.StatusCode == 429 {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	return nil
}

// workMessage mirrors the fields we read from /works/{doi}.
type workMessage struct {
	DOI    string   `json:"DOI"`
	Title  []string `json:"title"`
	Author []Author `json:"author"`
}

func (m workMessage) work() Work {
	w := Work{DOI: m.DOI, Authors: m.Author}
	if len(m.Title) > 0 {
		w.Title = m.Title[0]
	}
	return w
}

// WorkByDOI fetches the work record for a DOI.
func (c *Client) WorkByDOI(ctx context.Context, doi string) (Work, error) {
	var body struct {
		Message workMessage `json:"message"`
	}
	path := "/works/" + url.PathEscape(doi)
	if err := c.get(ctx, path, url.Values{}, &body); err != nil {
		return Work{}, fmt.Errorf("fetching work %s: %w", doi, err)
	}
	if body.Message.DOI == "" {
		return Work{}, fmt.Errorf("fetching work %s: %w", doi, ErrNotFound)
	}
	return body.Message.work(), nil
}

// DOIsByYear lists every DOI the journal with the given ISSN published
// in year, following Crossref cursor pagination to the end.
func (c *Client) DOIsByYear(ctx context.Context, issn string, year int) ([]string, error) {
	var dois []string
	cursor := "*"

	for {
		query := url.Values{}
		query.Set("filter", fmt.Sprintf("from-pub-date:%d-01-01,until-pub-date:%d-12-31", year, year))
		query.Set("select", "DOI")
		query.Set("rows", fmt.Sprint(DefaultPageRows))
		query.Set("cursor", cursor)

		var body struct {
			Message struct {
				NextCursor string `json:"next-cursor"`
				Items      []struct {
					DOI string `json:"DOI"`
				} `json:"items"`
			} `json:"message"`
		}
		path := "/journals/" + url.PathEscape(issn) + "/works"
		if err := c.get(ctx, path, query, &body); err != nil {
			return nil, fmt.Errorf("listing DOIs for %s in %d: %w", issn, year, err)
		}

		if len(body.Message.Items) == 0 {
			return dois, nil
		}
		for _, item := range body.Message.Items {
			dois = append(dois, item.DOI)
		}
		cursor = body.Message.NextCursor
		if cursor == "" {
			return dois, nil
		}
	}
}
