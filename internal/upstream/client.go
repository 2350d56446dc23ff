// Package upstream is the HTTP client for the vignette API. It is the only
// place where transport, status and payload errors are classified into
// domain.Failure; callers receive domain.Result values and never inspect raw
// transport errors.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/wire"
)

const (
	catalogPath = "/v1/highway/info"
	vehiclePath = "/v1/highway/vehicle"
	orderPath   = "/v1/highway/order"

	// maxErrorBody bounds how much of an error response is kept as detail.
	maxErrorBody = 4 << 10
)

// Client talks to the upstream vignette API.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

// NewClient returns a Client for baseURL. A nil httpClient gets a client with
// the given timeout; a nil logger uses slog.Default.
func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: httpClient, log: logger}
}

// FetchCatalog loads the vignette tiers, vehicle categories and regions.
func (c *Client) FetchCatalog(ctx context.Context) domain.Result[domain.Catalog] {
	var resp wire.APIResponse[wire.HighwayInfoPayload]
	if f := c.do(ctx, http.MethodGet, catalogPath, nil, &resp); f != nil {
		return domain.Fail[domain.Catalog](f)
	}
	cat, skipped := wire.ToCatalog(resp)
	if !skipped.Empty() {
		c.log.WarnContext(ctx, "catalog contained unsupported codes",
			"tier_codes", skipped.TierCodes,
			"region_codes", skipped.RegionCodes,
		)
	}
	return domain.Success(cat)
}

// FetchVehicle loads the user's vehicle.
func (c *Client) FetchVehicle(ctx context.Context) domain.Result[domain.Vehicle] {
	var resp wire.VehicleInfo
	if f := c.do(ctx, http.MethodGet, vehiclePath, nil, &resp); f != nil {
		return domain.Fail[domain.Vehicle](f)
	}
	return domain.Success(wire.ToVehicle(resp))
}

// SubmitOrder posts an order and returns the upstream confirmation.
func (c *Client) SubmitOrder(ctx context.Context, order domain.Order) domain.Result[domain.OrderConfirmation] {
	var resp wire.HighwayOrderResponse
	if f := c.do(ctx, http.MethodPost, orderPath, wire.FromOrder(order), &resp); f != nil {
		return domain.Fail[domain.OrderConfirmation](f)
	}
	return domain.Success(wire.ToConfirmation(resp))
}

// do performs one JSON round trip. Every failure path returns a classified
// Failure and logs it.
func (c *Client) do(ctx context.Context, method, path string, body, out any) *domain.Failure {
	f := c.roundTrip(ctx, method, path, body, out)
	if f != nil {
		attrs := []any{"method", method, "path", path, "kind", f.Kind.String(), "status", f.Status, "detail", f.Detail}
		if f.Cause != nil {
			attrs = append(attrs, "error", f.Cause)
		}
		c.log.ErrorContext(ctx, "upstream request failed", attrs...)
	}
	return f
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) *domain.Failure {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &domain.Failure{Kind: domain.FailureUnknown, Detail: "encode request", Cause: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &domain.Failure{Kind: domain.FailureUnknown, Detail: "build request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The error body is best-effort detail; a failed read leaves it empty.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return classifyDecode(resp.StatusCode, err)
	}
	return nil
}
