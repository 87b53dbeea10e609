// Package newsapi fetches the top-headlines feed from the news provider.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"headlines/internal/config"
	"headlines/internal/models"
	"headlines/pkg/utils"
)

// Provider errors. All of them mean no articles for this run.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrProviderError        = errors.New("provider returned an error")
)

const headlinesPath = "/v2/top-headlines"

// Client calls the top-headlines endpoint.
type Client struct {
	httpClient *http.Client
	headers    http.Header
	baseURL    string
	country    string
	apiKey     string
}

// NewClient creates a client from provider settings and a credential.
func NewClient(cfg config.ProviderConfig, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		headers: utils.NewHTTPHelper().BuildHeaders(nil),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		country: cfg.Country,
		apiKey:  apiKey,
	}
}

// NewClientWithHTTP creates a client with an injected HTTP client.
func NewClientWithHTTP(httpClient *http.Client, baseURL, country, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		headers:    utils.NewHTTPHelper().BuildHeaders(nil),
		baseURL:    strings.TrimRight(baseURL, "/"),
		country:    country,
		apiKey:     apiKey,
	}
}

// Name identifies the provider in logs.
func (c *Client) Name() string {
	return "newsapi"
}

// RequestURL builds the headlines URL for an optional keyword.
func (c *Client) RequestURL(keyword string) string {
	params := url.Values{}
	params.Set("country", c.country)
	params.Set("apiKey", c.apiKey)

	if keyword != "" {
		params.Set("q", keyword)
	}

	return c.baseURL + headlinesPath + "?" + params.Encode()
}

// FetchHeadlines returns the raw article records for the configured country.
func (c *Client) FetchHeadlines(ctx context.Context, keyword string) ([]models.RawArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(keyword), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = c.headers.Clone()

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed after %v: %w", time.Since(start).Round(time.Millisecond), redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	var payload models.HeadlinesResponse

	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && payload.Message != "" {
			return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, resp.StatusCode, payload.Message)
		}

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if payload.Status == "error" {
		return nil, fmt.Errorf("%w: %s: %s", ErrProviderError, payload.Code, payload.Message)
	}

	return payload.Articles, nil
}

// redactKey keeps the credential out of logged transport errors,
// which embed the request URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}

	return &redactedError{msg: strings.ReplaceAll(err.Error(), key, "REDACTED"), err: err}
}

type redactedError struct {
	err error
	msg string
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
