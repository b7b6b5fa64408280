// Package api is a gym.Source backed by the gym's REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const classesCacheKey = "gymdesk:classes"

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: http %d", e.Method, e.Path, e.Code)
}

// Options configures a Client.
type Options struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	Logger        zerolog.Logger
}

// Client talks to the backend's /api endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger

	redis    *redis.Client
	cacheTTL time.Duration
}

var _ gym.Source = (*Client)(nil)

// NewClient constructs a client for the backend at opts.BaseURL.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		log:        opts.Logger,
	}
}

// UseRedisCache configures optional Redis caching for the class list and
// member bookings.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// ListClasses fetches GET /api/classes.
func (c *Client) ListClasses(ctx context.Context) ([]gym.Class, error) {
	var classes []gym.Class
	if c.readCache(ctx, classesCacheKey, &classes) {
		return classes, nil
	}
	if err := c.do(ctx, http.MethodGet, "/api/classes", nil, &classes); err != nil {
		return nil, err
	}
	c.writeCache(ctx, classesCacheKey, classes)
	return classes, nil
}

// ListBookings fetches GET /api/bookings/member/:id.
func (c *Client) ListBookings(ctx context.Context, memberID string) ([]gym.Booking, error) {
	key := bookingsCacheKey(memberID)
	var bookings []gym.Booking
	if c.readCache(ctx, key, &bookings) {
		return bookings, nil
	}
	path := "/api/bookings/member/" + url.PathEscape(memberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	c.writeCache(ctx, key, bookings)
	return bookings, nil
}

// CreateBooking posts to /api/bookings and returns the stored booking.
func (c *Client) CreateBooking(ctx context.Context, b gym.Booking) (gym.Booking, error) {
	var created gym.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", b, &created); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			return gym.Booking{}, fmt.Errorf("%w: %s", gym.ErrAlreadyBooked, se.Message)
		}
		return gym.Booking{}, err
	}
	c.invalidate(ctx, bookingsCacheKey(b.MemberID))
	return created, nil
}

// CancelBooking deletes /api/bookings/:id.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/api/bookings/"+url.PathEscape(id), nil, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return fmt.Errorf("%w: '%s'", gym.ErrBookingNotFound, id)
	}
	if err != nil {
		return err
	}
	c.invalidatePrefix(ctx, "gymdesk:bookings:")
	return nil
}

func bookingsCacheKey(memberID string) string {
	return "gymdesk:bookings:" + memberID
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode >= 300 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} or {"message": "..."} from a
// failed response body.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	c.log.Debug().Str("key", key).Msg("cache hit")
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *Client) invalidate(ctx context.Context, key string) {
	if c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, key).Err()
}

func (c *Client) invalidatePrefix(ctx context.Context, prefix string) {
	if c.redis == nil {
		return
	}
	iter := c.redis.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		_ = c.redis.Del(ctx, iter.Val()).Err()
	}
}
