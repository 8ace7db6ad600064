// Package api is the HTTP client for the eatgo customer and login APIs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eatgo/internal/model"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL      = "https://eatgo-customer-api.ahastudio.com"
	DefaultLoginBaseURL = "https://eatgo-login-api.ahastudio.com"
	DefaultTimeout      = 5 * time.Second
)

// ErrRequestFailed wraps every failure returned by the client. Callers do
// not distinguish transport errors from error statuses.
var ErrRequestFailed = errors.New("request failed")

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL      string
	LoginBaseURL string
	HTTPClient   *http.Client
	// RequestsPerSecond throttles outgoing requests; zero disables it.
	RequestsPerSecond float64
	Logger            *slog.Logger
}

// Client wraps the eatgo REST APIs.
type Client struct {
	baseURL      string
	loginBaseURL string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *slog.Logger
}

// NewClient creates a new eatgo API client.
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:      opts.BaseURL,
		loginBaseURL: opts.LoginBaseURL,
		httpClient:   opts.HTTPClient,
		limiter:      rate.NewLimiter(rate.Inf, 0),
		logger:       opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.loginBaseURL == "" {
		c.loginBaseURL = DefaultLoginBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// FetchRegions lists every region.
func (c *Client) FetchRegions(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/regions", "", nil, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// FetchCategories lists every category.
func (c *Client) FetchCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FetchRestaurants lists the restaurants of a region and category.
func (c *Client) FetchRestaurants(ctx context.Context, regionName string, categoryID int64) ([]model.RestaurantSummary, error) {
	params := url.Values{}
	params.Set("region", regionName)
	params.Set("category", strconv.FormatInt(categoryID, 10))

	reqURL := fmt.Sprintf("%s/restaurants?%s", c.baseURL, params.Encode())

	var restaurants []model.RestaurantSummary
	if err := c.do(ctx, http.MethodGet, reqURL, "", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FetchRestaurant fetches a restaurant with its menu and reviews.
func (c *Client) FetchRestaurant(ctx context.Context, restaurantID int64) (model.RestaurantDetail, error) {
	reqURL := fmt.Sprintf("%s/restaurants/%d", c.baseURL, restaurantID)

	var detail model.RestaurantDetail
	if err := c.do(ctx, http.MethodGet, reqURL, "", nil, &detail); err != nil {
		return model.RestaurantDetail{}, err
	}
	return detail, nil
}

// PostLogin exchanges credentials for an access token.
func (c *Client) PostLogin(ctx context.Context, email, password string) (string, error) {
	body := loginRequest{Email: email, Password: password}

	var result loginResponse
	if err := c.do(ctx, http.MethodPost, c.loginBaseURL+"/session", "", body, &result); err != nil {
		return "", err
	}
	return result.AccessToken, nil
}

// PostReview submits a review as the user owning accessToken.
func (c *Client) PostReview(ctx context.Context, accessToken string, restaurantID int64, score, description string) error {
	reqURL := fmt.Sprintf("%s/restaurants/%d/reviews", c.baseURL, restaurantID)
	body := reviewRequest{Score: score, Description: description}

	return c.do(ctx, http.MethodPost, reqURL, accessToken, body, nil)
}

// do sends one JSON request and decodes the response into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, reqURL, accessToken string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", ErrRequestFailed, err)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: JSON encode error: %w", ErrRequestFailed, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%w: request creation failed: %w", ErrRequestFailed, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("url", reqURL),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: network error: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("API request completed",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("url", reqURL),
		slog.Int("http_status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	// Non-2xx response
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: API error: status %d", ErrRequestFailed, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: JSON decode error: %w", ErrRequestFailed, err)
	}
	return nil
}

// API request/response types

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type reviewRequest struct {
	Score       string `json:"score"`
	Description string `json:"description"`
}
