// File: services/rentalapi/client.go
package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"snapvroom/models"
	"snapvroom/utils"

	"go.uber.org/zap"
)

// Client is a stateless client for the upstream rental booking API. Every
// operation is exactly one round-trip: no retries, no caching.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient validates the base URL up front and returns a ready client.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: utils.GetLogger(),
	}, nil
}

// do performs one request and decodes the JSON response into out. The path
// elements are joined onto the base URL, so a base URL carrying a path prefix
// is preserved; dynamic segments must already be path-escaped.
func (c *Client) do(ctx context.Context, method string, body, out any, elem ...string) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rentalapi: failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	u := c.baseURL.JoinPath(elem...)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("rentalapi: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Rental API request", zap.String("method", method), zap.String("url", u.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rentalapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rentalapi: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Rental API error response",
			zap.Int("status", resp.StatusCode), zap.String("body", string(data)))
		return &HTTPError{Status: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// CreateBooking issues the creation call; the server assigns id, category and
// initial status.
func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, req, &booking, "api", "booking"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBooking fetches the full booking by id.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var booking models.Booking
	if err := c.do(ctx, http.MethodGet, nil, &booking, "api", "booking", url.PathEscape(bookingID)); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetAvailableVehicles fetches the vehicle deals for a booking.
func (c *Client) GetAvailableVehicles(ctx context.Context, bookingID string) (*models.VehicleDealsResponse, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var deals models.VehicleDealsResponse
	if err := c.do(ctx, http.MethodGet, nil, &deals, "api", "booking", url.PathEscape(bookingID), "vehicles"); err != nil {
		return nil, err
	}
	return &deals, nil
}

// GetProtectionPackages fetches the protections catalog for a booking.
func (c *Client) GetProtectionPackages(ctx context.Context, bookingID string) (*models.ProtectionPackagesResponse, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var protections models.ProtectionPackagesResponse
	if err := c.do(ctx, http.MethodGet, nil, &protections, "api", "booking", url.PathEscape(bookingID), "protections"); err != nil {
		return nil, err
	}
	return &protections, nil
}

// GetAddons fetches the addon catalog for a booking.
func (c *Client) GetAddons(ctx context.Context, bookingID string) (*models.AddonsResponse, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var addons models.AddonsResponse
	if err := c.do(ctx, http.MethodGet, nil, &addons, "api", "booking", url.PathEscape(bookingID), "addons"); err != nil {
		return nil, err
	}
	return &addons, nil
}

// AssignVehicle assigns a vehicle and returns the server's view of the booking.
func (c *Client) AssignVehicle(ctx context.Context, bookingID, vehicleID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var booking models.Booking
	err := c.do(ctx, http.MethodPost, nil, &booking,
		"api", "booking", url.PathEscape(bookingID), "vehicles", url.PathEscape(vehicleID))
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// AssignProtectionPackage assigns a protection package and returns the updated booking.
func (c *Client) AssignProtectionPackage(ctx context.Context, bookingID, packageID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var booking models.Booking
	err := c.do(ctx, http.MethodPost, nil, &booking,
		"api", "booking", url.PathEscape(bookingID), "protections", url.PathEscape(packageID))
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// AssignAddon assigns amount units of an addon. The server's view of addons in
// the returned booking is not authoritative; the session keeps its own list.
func (c *Client) AssignAddon(ctx context.Context, bookingID, addonID string, amount int) (*models.Booking, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var booking models.Booking
	err := c.do(ctx, http.MethodPost, nil, &booking,
		"api", "booking", url.PathEscape(bookingID), "addons", url.PathEscape(addonID), "amount", strconv.Itoa(amount))
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CompleteBooking transitions the booking to its terminal status.
func (c *Client) CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, ErrMissingBookingID
	}
	var booking models.Booking
	err := c.do(ctx, http.MethodPost, nil, &booking,
		"api", "booking", url.PathEscape(bookingID), "complete")
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
