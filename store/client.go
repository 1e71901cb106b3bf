// Package store talks to the remote journal API. It is the only fallible
// layer: aggregation operates on the in-memory snapshot and is re-invoked
// after the snapshot is updated post-acknowledgement from here.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"tradebook/journal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSessionExpired signals a 401 from the store: the cookie credential is
// no longer accepted. The caller must re-authenticate, not retry.
var ErrSessionExpired = errors.New("session expired, sign in again")

// CookieName is the cookie carrying the bearer credential.
const CookieName = "token"

// Client is a journal API client. Requests carry the auth cookie; all
// calls take a context and return wrapped errors.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the journal API rooted at baseURL
// (trailing slash tolerated), authenticated with the given cookie token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TradeDocument is the wire form of a journal entry. The store assigns
// _id; pnl and the legacy profitLoss alias are both accepted on read.
type TradeDocument struct {
	ExternalID  string   `json:"_id,omitempty"`
	Date        string   `json:"date"`
	PnL         *float64 `json:"pnl,omitempty"`
	ProfitLoss  *float64 `json:"profitLoss,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Photo       string   `json:"photo,omitempty"`
	TradeResult string   `json:"tradeResult,omitempty"`
}

type capitalDocument struct {
	InitialCapital float64 `json:"initialCapital"`
}

// apiError is the store's error payload; msg takes precedence over error.
type apiError struct {
	Msg string `json:"msg"`
	Err string `json:"error"`
}

func (e apiError) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Err
}

// ToEntry converts a wire document to a journal entry. The local id is
// left unset; sessions assign it. An unparseable date is mapped to the
// zero date, which matches no period.
func (d TradeDocument) ToEntry() journal.Entry {
	date, _ := journal.ParseDate(d.Date)
	return journal.Entry{
		ExternalID: d.ExternalID,
		Date:       date,
		PnL:        journal.ResolvePnL(d.PnL, d.ProfitLoss),
		Notes:      d.Notes,
		Photo:      d.Photo,
		Result:     journal.Result(d.TradeResult),
	}
}

func toDocument(e journal.Entry) TradeDocument {
	pnl := e.PnL
	return TradeDocument{
		Date:        journal.FormatDate(e.Date),
		PnL:         &pnl,
		Notes:       e.Notes,
		Photo:       e.Photo,
		TradeResult: string(e.Result),
	}
}

// ListTrades fetches the full trade list.
func (c *Client) ListTrades(ctx context.Context) ([]journal.Entry, error) {
	var docs []TradeDocument
	if err := c.do(ctx, http.MethodGet, "/trades", nil, &docs); err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}

	entries := make([]journal.Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.ToEntry())
	}
	return entries, nil
}

// CreateTrade persists a new entry and returns the store-assigned
// identifier.
func (c *Client) CreateTrade(ctx context.Context, e journal.Entry) (string, error) {
	var saved TradeDocument
	if err := c.do(ctx, http.MethodPost, "/trades", toDocument(e), &saved); err != nil {
		return "", fmt.Errorf("create trade: %w", err)
	}
	return saved.ExternalID, nil
}

// UpdateTrade replaces the stored fields of an entry, addressed by its
// store identifier.
func (c *Client) UpdateTrade(ctx context.Context, e journal.Entry) error {
	if e.ExternalID == "" {
		return fmt.Errorf("update trade: missing store id")
	}
	var saved TradeDocument
	if err := c.do(ctx, http.MethodPut, "/trades/"+e.ExternalID, toDocument(e), &saved); err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	return nil
}

// DeleteTrade removes an entry from the store.
func (c *Client) DeleteTrade(ctx context.Context, externalID string) error {
	if externalID == "" {
		return fmt.Errorf("delete trade: missing store id")
	}
	if err := c.do(ctx, http.MethodDelete, "/trades/"+externalID, nil, nil); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return nil
}

// InitialCapital fetches the committed capital baseline.
func (c *Client) InitialCapital(ctx context.Context) (float64, error) {
	var doc capitalDocument
	if err := c.do(ctx, http.MethodGet, "/capital/initial", nil, &doc); err != nil {
		return 0, fmt.Errorf("get capital: %w", err)
	}
	return doc.InitialCapital, nil
}

// SetInitialCapital saves a new baseline and returns the value the store
// committed. The store is the source of truth: callers must adopt the
// returned value, not the one they staged.
func (c *Client) SetInitialCapital(ctx context.Context, v float64) (float64, error) {
	var doc capitalDocument
	if err := c.do(ctx, http.MethodPut, "/capital/initial", capitalDocument{InitialCapital: v}, &doc); err != nil {
		return 0, fmt.Errorf("set capital: %w", err)
	}
	return doc.InitialCapital, nil
}

// do issues one request against the /api-prefixed resource path, decoding
// the response into out when non-nil. A 401 maps to ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: CookieName, Value: c.token})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		var e apiError
		if err := json.Unmarshal(data, &e); err == nil && e.message() != "" {
			return fmt.Errorf("store error (status %d): %s", resp.StatusCode, e.message())
		}
		return fmt.Errorf("store error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
