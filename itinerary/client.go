package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	// ErrModelUnavailable is returned without a network call once the
	// breaker has tripped.
	ErrModelUnavailable = errors.New("generation model unavailable")
	// ErrGenerationFailed covers a single call's transport or server error.
	ErrGenerationFailed = errors.New("generation failed")
)

// Breaker is the process-wide sticky unavailability flag. Once tripped it
// stays tripped for the process lifetime; a stale read under concurrency
// costs at most one extra failed call.
type Breaker struct {
	mu      sync.Mutex
	tripped bool
}

func (b *Breaker) Trip() {
	b.mu.Lock()
	b.tripped = true
	b.mu.Unlock()
}

func (b *Breaker) Tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tripped
}

// Client calls the generative model. One request, no retries; the only
// cross-call state is the breaker.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
	Breaker *Breaker
}

// NewClient builds a client from the environment. A missing API key is a
// configuration error the caller treats as fatal.
func NewClient() (*Client, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, errors.New("GEMINI_API_KEY missing")
	}
	base := os.Getenv("GEMINI_BASE_URL")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{
		BaseURL: base,
		APIKey:  key,
		Model:   model,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		Breaker: &Breaker{},
	}, nil
}

// Request/response types
type generateReq struct {
	Contents []content `json:"contents"`
}
type content struct {
	Parts []part `json:"parts"`
}
type part struct {
	Text string `json:"text"`
}
type generateResp struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate performs one model call and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.Breaker.Tripped() {
		return "", ErrModelUnavailable
	}

	payload := generateReq{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	b, _ := json.Marshal(payload)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		// A 404-class response means a decommissioned or misconfigured
		// endpoint; stop paying for calls that can never succeed.
		if res.StatusCode == http.StatusNotFound || strings.Contains(strings.ToLower(string(body)), "not found") {
			c.Breaker.Trip()
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, res.StatusCode, body)
	}

	var out generateResp
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
