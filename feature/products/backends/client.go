package backends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"product-builder/core/reconcile"
	"product-builder/core/utils"

	"golang.org/x/time/rate"
)

// maxBodyBytes caps how much of a response body is decoded.
const maxBodyBytes = 1 << 20

// FieldMap names the response keys holding each product field.
// An empty key means the backend never supplies that field.
type FieldMap struct {
	Title string
	Desc  string
	Brand string
}

// Product maps a decoded response object onto a product for code.
func (f FieldMap) Product(code string, data map[string]any) reconcile.Product {
	return reconcile.Product{
		Code:  code,
		Title: utils.StringField(data, f.Title),
		Desc:  utils.StringField(data, f.Desc),
		Brand: utils.StringField(data, f.Brand),
	}
}

// httpClient performs rate limited JSON GET requests for one backend.
type httpClient struct {
	name        string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
}

func newHTTPClient(name string, timeout time.Duration, perSecond float64, burst int, userAgent string) *httpClient {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}

	return &httpClient{
		name: name,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(limit, burst),
		userAgent:   userAgent,
	}
}

// getJSON fetches reqURL and decodes the body as a JSON object whatever the status code,
// since backends describe "not found" and errors in the body.
func (c *httpClient) getJSON(ctx context.Context, reqURL string, header http.Header) (map[string]any, int, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, 0, c.fail("rate limiter: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, c.fail("failed to create request: %v", err)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, c.fail("%v", err)
	}
	defer resp.Body.Close()

	var data map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&data); err != nil {
		return nil, resp.StatusCode, c.fail("undecodable response (status %d): %v", resp.StatusCode, err)
	}
	if data == nil {
		return nil, resp.StatusCode, c.fail("empty response (status %d)", resp.StatusCode)
	}

	return data, resp.StatusCode, nil
}

func (c *httpClient) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", reconcile.ErrBackendFailure, c.name, fmt.Sprintf(format, args...))
}
