package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

// Client talks to the listings backend. Reads are anonymous; mutations carry
// the admin token as a bearer credential. The client does not retry and does
// not patch anything locally — after a successful mutation the caller
// reloads the catalog store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// doRequest builds and executes one backend request, propagating the trace
// id and attaching the bearer token when one is given.
func (c *Client) doRequest(ctx context.Context, method, url, token string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

func (c *Client) FetchListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "MarketApiClient",
		"method":    "FetchListings",
	})

	params := url.Values{}
	if query.IsSold != nil {
		params.Set("isSold", strconv.FormatBool(*query.IsSold))
	}
	if query.IsFeatured != nil {
		params.Set("isFeatured", strconv.FormatBool(*query.IsFeatured))
	}

	endpoint := c.baseURL + "/api/domains"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	clientLogger.Debug("Sending request to listings backend", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to listings backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := readError(resp, "failed to fetch domains")
		clientLogger.Error("Received error response from listings backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var raws []RawListing
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		clientLogger.Error("Failed to decode response from listings backend", err, nil)
		return nil, err
	}

	// Map wire records into the canonical domain shape. This is the only
	// place the dual naming conventions are allowed to exist.
	listings := make([]domain.Listing, len(raws))
	for i, raw := range raws {
		listings[i] = Normalize(raw)
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"listings_count": len(listings)})
	return listings, nil
}

func (c *Client) FetchListingBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "MarketApiClient",
		"method":    "FetchListingBySlug",
		"slug":      slug,
	})

	// The slug is opaque and may be an unescaped domain name; escape it only
	// here, when it becomes a path segment of the outbound request.
	endpoint := fmt.Sprintf("%s/api/domain/%s", c.baseURL, url.PathEscape(slug))
	clientLogger.Debug("Sending request to listings backend", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to listings backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := readError(resp, "failed to fetch domain")
		clientLogger.Error("Received error response from listings backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var raw RawListing
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		clientLogger.Error("Failed to decode response from listings backend", err, nil)
		return nil, err
	}

	listing := Normalize(raw)
	return &listing, nil
}

func (c *Client) CreateListing(ctx context.Context, token string, fields domain.ListingFields) (*domain.Listing, error) {
	return c.sendListing(ctx, http.MethodPost, c.baseURL+"/api/admin/domain", token, fields, "failed to create domain")
}

func (c *Client) UpdateListing(ctx context.Context, token string, id int64, fields domain.ListingFields) (*domain.Listing, error) {
	endpoint := fmt.Sprintf("%s/api/admin/domain/%d", c.baseURL, id)
	return c.sendListing(ctx, http.MethodPut, endpoint, token, fields, "failed to update domain")
}

// sendListing shares the create/update path: marshal the fields, send them
// with the bearer token, surface the backend error message on failure and
// normalize the returned record on success.
func (c *Client) sendListing(ctx context.Context, method, endpoint, token string, fields domain.ListingFields, fallbackMsg string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "MarketApiClient",
		"method":    method,
		"url":       endpoint,
	})

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing fields: %w", err)
	}

	resp, err := c.doRequest(ctx, method, endpoint, token, bytes.NewReader(body))
	if err != nil {
		clientLogger.Error("Failed to perform request to listings backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := readError(resp, fallbackMsg)
		clientLogger.Error("Mutation rejected by listings backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var raw RawListing
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		clientLogger.Error("Failed to decode response from listings backend", err, nil)
		return nil, err
	}

	listing := Normalize(raw)
	clientLogger.Info("Mutation accepted", port.Fields{"id": listing.ID})
	return &listing, nil
}

func (c *Client) DeleteListing(ctx context.Context, token string, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "MarketApiClient",
		"method":    "DeleteListing",
		"id":        id,
	})

	endpoint := fmt.Sprintf("%s/api/admin/domain/%d", c.baseURL, id)
	resp, err := c.doRequest(ctx, http.MethodDelete, endpoint, token, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to listings backend", err, nil)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := readError(resp, "failed to delete domain")
		clientLogger.Error("Mutation rejected by listings backend", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Listing deleted", nil)
	return nil
}

func (c *Client) RecalculateBRL(ctx context.Context, token string) (*domain.RecalculationResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "MarketApiClient",
		"method":    "RecalculateBRL",
	})

	endpoint := c.baseURL + "/api/admin/recalculate-brl"
	resp, err := c.doRequest(ctx, http.MethodPost, endpoint, token, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to listings backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := readError(resp, "failed to recalculate BRL prices")
		clientLogger.Error("Recalculation rejected by listings backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var result recalculationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		clientLogger.Error("Failed to decode response from listings backend", err, nil)
		return nil, err
	}

	clientLogger.Info("Recalculation accepted", port.Fields{"updated": result.Updated})
	return &domain.RecalculationResult{Updated: result.Updated}, nil
}

// readError turns a non-2xx response into a RequestFailedError. The backend
// usually attaches {"error": "..."}; when the body is missing or not JSON
// the fallback message applies instead of failing the caller twice.
func readError(resp *http.Response, fallback string) error {
	message := fallback
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &domain.RequestFailedError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
