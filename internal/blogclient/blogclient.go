package blogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"paceflow/blog-gateway/models"
)

// ErrMissingSummary is returned when the summarization service responds
// without a summary field. Callers surface a generic failure message rather
// than rendering empty text.
var ErrMissingSummary = errors.New("summarize response missing summary field")

// Client wraps HTTP access to the blog generation service. All calls share
// one base URL; see config.GetBlogAPIBaseURL.
type Client struct {
	baseURL string
	http    *http.Client
	// streamHTTP carries no timeout: generation streams are long-lived and
	// the controller defines no intrinsic timeout.
	streamHTTP *http.Client
}

// NewClient creates a Client for the generation service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: 15 * time.Second},
		streamHTTP: &http.Client{},
	}
}

// ListPosts fetches every previously generated article. The service returns
// them oldest-first; ordering policy is applied by the store, not here.
func (c *Client) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/blogs", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("BlogClient: ListPosts request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blog service returned status %d for /blogs", resp.StatusCode)
	}

	var posts []models.BlogPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decoding /blogs response: %w", err)
	}
	return posts, nil
}

type summarizeRequest struct {
	Content string `json:"content"`
	Style   string `json:"style"`
}

type summarizeResponse struct {
	Summary *string `json:"summary"`
}

// Summarize sends normalized article text to the summarization endpoint with
// a style tag ("linkedin" is the only supported style today) and returns the
// summary string.
func (c *Client) Summarize(ctx context.Context, content, style string) (string, error) {
	body, err := json.Marshal(summarizeRequest{Content: content, Style: style})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summarize", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("BlogClient: Summarize request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarize service returned status %d", resp.StatusCode)
	}

	var sr summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("decoding summarize response: %w", err)
	}
	if sr.Summary == nil {
		return "", ErrMissingSummary
	}
	return *sr.Summary, nil
}
