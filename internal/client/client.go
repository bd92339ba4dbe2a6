// Package client is the Go client for the ceylon_stays API. It owns the
// network half of the browser front end's contract: typed operations,
// client-side rate limiting, retries with backoff for idempotent calls, and
// context cancellation throughout.
package client

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"ceylon_stays/internal/app"
	"ceylon_stays/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter

	mu    sync.RWMutex
	token string
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// SetToken installs the bearer token used for authenticated requests. An
// empty token clears it.
func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ---- Public API ----

func (c *Client) Login(ctx context.Context, email, password string) (app.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out app.AuthResult
	if err := c.post(ctx, "/api/auth/login", body, &out); err != nil {
		// a login 401 means the credentials themselves were rejected
		if errors.Is(err, domain.ErrUnauthorized) {
			return app.AuthResult{}, domain.ErrInvalidCredentials
		}
		return app.AuthResult{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in app.RegisterInput) (app.AuthResult, error) {
	var out app.AuthResult
	if err := c.post(ctx, "/api/auth/register", in, &out); err != nil {
		return app.AuthResult{}, err
	}
	return out, nil
}

func (c *Client) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	return out, c.get(ctx, "/api/hotels", &out)
}

// GetHotel returns nil with ErrNotFound for an unknown id; callers render a
// not-found fallback rather than treating it as a failure.
func (c *Client) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	var out domain.Hotel
	if err := c.get(ctx, "/api/hotels/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchHotels encodes the landing view's query-string contract:
// location, checkIn, checkOut, guests.
func (c *Client) SearchHotels(ctx context.Context, p domain.SearchParams) ([]domain.Hotel, error) {
	q := url.Values{}
	q.Set("location", p.Location)
	if p.CheckIn != "" {
		q.Set("checkIn", p.CheckIn)
	}
	if p.CheckOut != "" {
		q.Set("checkOut", p.CheckOut)
	}
	if p.Guests > 0 {
		q.Set("guests", strconv.Itoa(p.Guests))
	}
	var out []domain.Hotel
	return out, c.get(ctx, "/api/hotels/search?"+q.Encode(), &out)
}

func (c *Client) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var out []domain.Room
	return out, c.get(ctx, "/api/hotels/"+url.PathEscape(hotelID)+"/rooms", &out)
}

func (c *Client) CreateBooking(ctx context.Context, in app.CreateBookingInput) (domain.Booking, error) {
	var out domain.Booking
	if err := c.post(ctx, "/api/bookings", in, &out); err != nil {
		return domain.Booking{}, err
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	return out, c.get(ctx, "/api/users/me", &out)
}

// ---- Internals ----

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// statusErr maps an HTTP status onto the domain error taxonomy.
func statusErr(status int, p problem) error {
	var base error
	switch status {
	case http.StatusBadRequest:
		base = domain.ErrValidation
	case http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case http.StatusNotFound:
		base = domain.ErrNotFound
	case http.StatusConflict:
		base = domain.ErrEmailTaken
	default:
		return fmt.Errorf("remote %d: %s", status, p.Title)
	}
	if p.Detail != "" {
		return fmt.Errorf("%s: %w", p.Detail, base)
	}
	return base
}

// get performs a rate-limited GET with retries on 429 and transient 5xx,
// honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
		if err != nil {
			return err
		}
		c.decorate(req)

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		done, err := c.consume(resp, out)
		if done {
			return err
		}
		// retryable status
		lastErr = err
		wait := retryAfter(resp)
		if wait == 0 {
			wait = backoff(i)
		}
		if i < 3 && sleepCtx(ctx, wait) {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return lastErr
	}
	return lastErr
}

// post performs a rate-limited POST. Posts are not retried: a duplicate
// booking is worse than a surfaced network error.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.decorate(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	_, err = c.consume(resp, out)
	return err
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ceylon-stays-client/1.0")
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

// consume decodes a response. The bool result is false when the status is
// retryable (429/5xx); the caller decides whether to try again.
func (c *Client) consume(resp *http.Response, out any) (bool, error) {
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return true, nil
		}
		return true, json.NewDecoder(resp.Body).Decode(out)

	case http.StatusNoContent:
		_, _ = io.Copy(io.Discard, resp.Body)
		return true, nil

	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return false, fmt.Errorf("remote %d", resp.StatusCode)

	default:
		var p problem
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&p)
		return true, statusErr(resp.StatusCode, p)
	}
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms,
// 800ms...), with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
