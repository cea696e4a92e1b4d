package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"badgeview/internal/pages"
)

// Fetcher retrieves one cycle's worth of page data. Implemented by
// *Client and by test fakes.
type Fetcher interface {
	FetchAll(ctx context.Context) Outcome
}

var _ Fetcher = (*Client)(nil)

// Endpoint names under the hosting root, matching the files the data
// generation job publishes.
const (
	compactEndpoint = "badge_compact.json"
	simpleEndpoint  = "badge_simple.txt"
)

var pageEndpoints = map[pages.Page]string{
	pages.Overview:   "profile.json",
	pages.Statistics: "stats.json",
	pages.Activity:   "activity.json",
	pages.QRCode:     "qr.json",
}

const (
	defaultUserAgent  = "badgeview/0.1"
	defaultTimeout    = 10 * time.Second
	defaultRetries    = 3
	defaultRetryDelay = 2 * time.Second
)

// Options configure a Client.
type Options struct {
	// BaseURL is the hosting root the documents live under, e.g.
	// "https://user.github.io/repo/api".
	BaseURL string
	// Username is the fallback used to derive a QR target when no
	// document supplies a profile URL.
	Username string
	// Timeout bounds each individual request. Zero uses 10s.
	Timeout time.Duration
	// Retries is the number of attempts per endpoint. Zero uses 3.
	Retries int
	// RetryDelay is the pause between attempts. Zero uses 2s;
	// negative disables the pause.
	RetryDelay time.Duration
}

// Client fetches badge documents from the static hosting root.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	userAgent  string
	username   string
	retries    int
	retryDelay time.Duration
}

// NewClient builds a Client for the given hosting root.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := opts.Retries
	if retries <= 0 {
		retries = defaultRetries
	}
	retryDelay := opts.RetryDelay
	if retryDelay == 0 {
		retryDelay = defaultRetryDelay
	}
	if retryDelay < 0 {
		retryDelay = 0
	}
	return &Client{
		baseURL:    base,
		http:       &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
		username:   strings.TrimSpace(opts.Username),
		retries:    retries,
		retryDelay: retryDelay,
	}, nil
}

// FetchAll runs one fetch cycle. The combined compact document is tried
// first; pages it does not cover fall back to their per-page endpoints,
// each attempted independently so one endpoint's failure cannot block
// the others. Pages still missing after the JSON endpoints are given a
// last chance through the plain-text document. FetchAll never returns
// an error: the Outcome carries per-page and whole-cycle reasons.
func (c *Client) FetchAll(ctx context.Context) Outcome {
	out := newOutcome()
	if c == nil {
		out.Err = fmt.Errorf("feed: client is nil")
		return out
	}

	c.fetchCompact(ctx, &out)

	for _, page := range pages.All() {
		if _, ok := out.Payloads[page]; ok {
			continue
		}
		payload, err := c.fetchPage(ctx, page)
		if err != nil {
			out.Failed[page] = err
			continue
		}
		out.Payloads[page] = payload
		delete(out.Failed, page)
	}

	if len(out.Failed) > 0 {
		c.fetchSimple(ctx, &out)
	}

	if len(out.Payloads) == 0 {
		for _, page := range pages.All() {
			if err, ok := out.Failed[page]; ok {
				out.Err = err
				break
			}
		}
		if out.Err == nil {
			out.Err = ErrNetworkUnavailable
		}
	}
	return out
}

// fetchCompact fills the outcome from the combined document. Sub-documents
// the compact form omits or that fail validation are left for the
// per-page endpoints.
func (c *Client) fetchCompact(ctx context.Context, out *Outcome) {
	var doc Compact
	if err := c.withRetries(ctx, compactEndpoint, func() error {
		return c.getJSON(ctx, compactEndpoint, &doc)
	}); err != nil {
		return
	}

	if doc.Profile != nil && doc.Profile.UpdatedAt == "" {
		doc.Profile.UpdatedAt = doc.UpdatedAt
	}
	if doc.Stats != nil && doc.Stats.UpdatedAt == "" {
		doc.Stats.UpdatedAt = doc.UpdatedAt
	}
	if doc.Activity != nil && doc.Activity.UpdatedAt == "" {
		doc.Activity.UpdatedAt = doc.UpdatedAt
	}

	candidates := map[pages.Page]Payload{
		pages.Overview:   {Profile: doc.Profile},
		pages.Statistics: {Stats: doc.Stats},
		pages.Activity:   {Activity: doc.Activity},
		pages.QRCode:     {QR: c.qrTarget(doc.Profile)},
	}
	for page, payload := range candidates {
		if err := payload.Validate(page); err != nil {
			continue
		}
		out.Payloads[page] = payload
	}
}

// fetchPage retrieves and validates a single page's document.
func (c *Client) fetchPage(ctx context.Context, page pages.Page) (Payload, error) {
	endpoint := pageEndpoints[page]
	var payload Payload
	err := c.withRetries(ctx, endpoint, func() error {
		payload = Payload{}
		switch page {
		case pages.Overview:
			payload.Profile = &Profile{}
			if err := c.getJSON(ctx, endpoint, payload.Profile); err != nil {
				return err
			}
		case pages.Statistics:
			payload.Stats = &Stats{}
			if err := c.getJSON(ctx, endpoint, payload.Stats); err != nil {
				return err
			}
		case pages.Activity:
			payload.Activity = &Activity{}
			if err := c.getJSON(ctx, endpoint, payload.Activity); err != nil {
				return err
			}
		case pages.QRCode:
			payload.QR = &QRTarget{}
			if err := c.getJSON(ctx, endpoint, payload.QR); err != nil {
				return err
			}
		}
		return payload.Validate(page)
	})
	if err != nil {
		return Payload{}, err
	}
	return payload, nil
}

// fetchSimple is the last-resort plain-text document. It covers the
// overview, statistics, and QR pages only; on any parse failure the
// outcome keeps the reasons already recorded for the JSON endpoints.
func (c *Client) fetchSimple(ctx context.Context, out *Outcome) {
	text, err := c.getText(ctx, simpleEndpoint)
	if err != nil {
		return
	}
	payloads, err := parseSimple(text)
	if err != nil {
		return
	}
	for page, payload := range payloads {
		if _, ok := out.Payloads[page]; ok {
			continue
		}
		if err := payload.Validate(page); err != nil {
			continue
		}
		out.Payloads[page] = payload
		delete(out.Failed, page)
	}
}

// parseSimple decodes the newline-separated fallback document:
// username, name, repos, followers, following, stars, forks, top
// language, most starred repo, timestamp.
func parseSimple(text string) (map[pages.Page]Payload, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 10 {
		return nil, fmt.Errorf("feed: simple document has %d lines, want 10", len(lines))
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	ints := make([]int, 5)
	for i, idx := range []int{2, 3, 4, 5, 6} {
		n, err := strconv.Atoi(lines[idx])
		if err != nil {
			return nil, fmt.Errorf("feed: simple document line %d: %w", idx+1, err)
		}
		ints[i] = n
	}

	profile := &Profile{
		Username:    lines[0],
		DisplayName: lines[1],
		PublicRepos: ints[0],
		Followers:   ints[1],
		Following:   ints[2],
		ProfileURL:  "https://github.com/" + lines[0],
		UpdatedAt:   lines[9],
	}
	stats := &Stats{
		TotalStars:   ints[3],
		TotalForks:   ints[4],
		TopLanguages: []LanguageShare{},
		UpdatedAt:    lines[9],
	}
	if lines[7] != "" && lines[7] != "None" {
		stats.TopLanguages = append(stats.TopLanguages, LanguageShare{Name: lines[7], Percentage: 100})
	}
	if lines[8] != "" && lines[8] != "None" {
		stats.MostStarred = &RepoRef{Name: lines[8]}
	}

	return map[pages.Page]Payload{
		pages.Overview:   {Profile: profile},
		pages.Statistics: {Stats: stats},
		pages.QRCode:     {QR: &QRTarget{ProfileURL: profile.ProfileURL}},
	}, nil
}

// qrTarget derives the QR payload from the profile document, falling
// back to the configured username when the profile omits its URL.
func (c *Client) qrTarget(profile *Profile) *QRTarget {
	switch {
	case profile != nil && profile.ProfileURL != "":
		return &QRTarget{ProfileURL: profile.ProfileURL}
	case profile != nil && profile.Username != "":
		return &QRTarget{ProfileURL: "https://github.com/" + profile.Username}
	case c.username != "":
		return &QRTarget{ProfileURL: "https://github.com/" + c.username}
	}
	return nil
}

// withRetries runs fn up to the configured attempt count. Malformed
// documents are not retried: the hosting root serves static files, so a
// bad decode will not heal within a cycle.
func (c *Client) withRetries(ctx context.Context, endpoint string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 && c.retryDelay > 0 {
			select {
			case <-ctx.Done():
				return classifyTransport(ctx.Err())
			case <-time.After(c.retryDelay):
			}
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		var me *MalformedError
		if errors.As(err, &me) {
			return err
		}
		if ctx.Err() != nil {
			return classifyTransport(ctx.Err())
		}
	}
	return fmt.Errorf("%s after %d attempts: %w", endpoint, c.retries, lastErr)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	body, err := c.get(ctx, endpoint, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return malformed(endpointPage(endpoint), fmt.Sprintf("decode %s: %v", endpoint, err))
	}
	return nil
}

func (c *Client) getText(ctx context.Context, endpoint string) (string, error) {
	body, err := c.get(ctx, endpoint, "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint, accept string) ([]byte, error) {
	reqURL := c.baseURL.JoinPath(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{Status: resp.StatusCode, Endpoint: endpoint}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}
	return body, nil
}

// endpointPage maps a JSON endpoint back to the page it serves. The
// compact document reports against Overview since it is tried for every
// page at once.
func endpointPage(endpoint string) pages.Page {
	for page, name := range pageEndpoints {
		if name == endpoint {
			return page
		}
	}
	return pages.Overview
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("feed: base URL is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("feed: parse base URL %q: %w", raw, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
