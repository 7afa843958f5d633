// Package api is the HTTP client for the remote bid-tracking store. The
// store is the source of truth shared across sessions and devices; every
// call here is a narrow request/response operation scoped to the
// authenticated account, never a "save whole list".
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/narabid/bidassist/internal/domain"
)

// TokenSource supplies the stored access credential. An empty token means
// the session is unauthenticated; requests are then sent without an
// Authorization header and the server answers 401.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-string TokenSource for tests and one-shot commands.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client is the remote-store contract consumed by the services.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	FetchWishlist(ctx context.Context) ([]domain.WishlistItem, error)
	UpdateWishlistStage(ctx context.Context, wishlistID int64, stage domain.BidStage) error
	DeleteWishlist(ctx context.Context, wishlistID int64) error
	AddWishlist(ctx context.Context, bidID int64) error
	ListBids(ctx context.Context, keyword string) ([]domain.Bid, error)
	ListNotices(ctx context.Context) ([]domain.Notice, error)
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	tokens   TokenSource
	observer Observer
}

// NewClient creates a Client against cfg.Endpoint. tokens may not be nil;
// use StaticToken("") for an unauthenticated client.
func NewClient(cfg Config, tokens TokenSource, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens:   tokens,
		observer: observer,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type stageRequest struct {
	Stage domain.BidStage `json:"stage"`
}

type addWishlistRequest struct {
	BidID int64 `json:"bidId"`
}

func (c *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.call(ctx, "login", http.MethodPost, "/auth/login",
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *httpClient) FetchWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := c.call(ctx, "wishlist_list", http.MethodGet, "/wishlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *httpClient) UpdateWishlistStage(ctx context.Context, wishlistID int64, stage domain.BidStage) error {
	path := fmt.Sprintf("/wishlist/%d/stage", wishlistID)
	return c.call(ctx, "wishlist_stage", http.MethodPatch, path, stageRequest{Stage: stage}, nil)
}

func (c *httpClient) DeleteWishlist(ctx context.Context, wishlistID int64) error {
	path := fmt.Sprintf("/wishlist/%d", wishlistID)
	return c.call(ctx, "wishlist_delete", http.MethodDelete, path, nil, nil)
}

func (c *httpClient) AddWishlist(ctx context.Context, bidID int64) error {
	return c.call(ctx, "wishlist_add", http.MethodPost, "/wishlist", addWishlistRequest{BidID: bidID}, nil)
}

func (c *httpClient) ListBids(ctx context.Context, keyword string) ([]domain.Bid, error) {
	path := "/bids"
	if keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}
	var bids []domain.Bid
	if err := c.call(ctx, "bids_list", http.MethodGet, path, nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (c *httpClient) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	var notices []domain.Notice
	if err := c.call(ctx, "notices_list", http.MethodGet, "/notices", nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// call runs one request/response exchange with the per-call timeout and
// maps transport failures onto the package sentinels. GET requests are
// retried up to MaxRetries extra times; mutations are never retried, so a
// failed stage change or delete is applied at most once.
func (c *httpClient) call(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	attempts := 1
	if method == http.MethodGet {
		attempts += c.cfg.MaxRetries
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = c.doRequest(ctx, method, path, body, out)
		if lastErr == nil {
			c.observe(op, method, start, nil)
			return nil
		}
		if ctx.Err() != nil || errors.Is(lastErr, ErrUnauthorized) || errors.Is(lastErr, ErrRemote) {
			break
		}
	}

	err := c.mapError(ctx, lastErr)
	c.observe(op, method, start, err)
	return err
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: status %d: %s", ErrRemote, resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrRemote, err)
		}
	}
	return nil
}

func (c *httpClient) mapError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrRemote):
		return err
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
}

func (c *httpClient) observe(op, method string, start time.Time, err error) {
	c.observer.OnCallComplete(CallEvent{
		Op:        op,
		Method:    method,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
