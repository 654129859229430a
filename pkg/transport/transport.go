// Package transport wraps a single configured HTTP client used for all
// repository requests. It applies standard headers, credentials and proxy
// settings, and executes each request exactly once: retry policy belongs to
// callers, never to the transport.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/auth"
	"github.com/glorpus-work/artfetch/pkg/errors"
)

// DefaultUserAgent identifies artfetch to repository servers.
const DefaultUserAgent = "artfetch/0.1.0"

// Request describes a single HTTP exchange.
type Request struct {
	Method string
	URL    string
	// Body is the request body for uploads; streamed, not repeatable.
	Body io.Reader
	// ContentLength is the body length when known, 0 otherwise.
	ContentLength int64
	// ContentType is set on the request when non-empty.
	ContentType string
}

// Client executes HTTP requests against artifact repositories through one
// shared underlying client. It mutates shared proxy state per request and is
// not safe for concurrent use; callers serialize access.
type Client struct {
	httpClient *http.Client
	userAgent  string
	auth       auth.Authenticator
	proxies    ProxyResolver
	proxy      *Proxy // currently applied proxy; nil means direct
}

// Option configures a Client.
type Option func(*Client)

// WithAuth sets the authenticator applied to every request.
func WithAuth(a auth.Authenticator) Option {
	return func(c *Client) { c.auth = a }
}

// WithProxyResolver sets the per-host proxy resolver.
func WithProxyResolver(r ProxyResolver) Option {
	return func(c *Client) { c.proxies = r }
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a transport client. Timeout semantics are owned entirely
// by the underlying http.Client; no additional timeout layer is added.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		userAgent: DefaultUserAgent,
	}
	c.httpClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: c.proxyFunc,
			// Accept-Encoding is pinned to identity so sizes and checksums
			// refer to the stored bytes.
			DisableCompression: true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes the request once. The response body is the caller's to close.
// Any network-level failure is returned as a *errors.TransportError carrying
// the attempted verb and URL.
func (c *Client) Do(ctx context.Context, treq Request) (*http.Response, error) {
	parsed, err := url.Parse(treq.URL)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidURL, "%s", treq.URL)
	}
	c.applyProxy(parsed.Hostname())

	req, err := http.NewRequestWithContext(ctx, treq.Method, treq.URL, treq.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", "identity")
	if treq.ContentType != "" {
		req.Header.Set("Content-Type", treq.ContentType)
	}
	if treq.ContentLength > 0 {
		req.ContentLength = treq.ContentLength
	}
	if c.auth != nil {
		if err := c.auth.Apply(req); err != nil {
			return nil, errors.Wrap(err, "failed to apply credentials")
		}
	}

	logger.Debugf("Performing HTTP %s: %s", treq.Method, treq.URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.TransportError{Verb: treq.Method, URL: treq.URL, Err: err}
	}
	return resp, nil
}

// Proxy returns the currently applied proxy configuration, nil when direct.
func (c *Client) Proxy() *Proxy {
	return c.proxy
}

// proxyFunc feeds the applied proxy into the shared http.Transport.
func (c *Client) proxyFunc(*http.Request) (*url.URL, error) {
	if c.proxy == nil {
		return nil, nil
	}
	return c.proxy.URL(), nil
}

// applyProxy resolves proxy settings for the target host and applies them to
// the shared client state. A proxy is set at most once: if one is already
// configured it is left in place, and when no proxy applies to the host any
// previously configured proxy is cleared.
func (c *Client) applyProxy(host string) {
	if c.proxies == nil {
		return
	}
	p := c.proxies.ProxyFor(host)
	if p == nil {
		c.proxy = nil
		return
	}
	if c.proxy != nil {
		return
	}
	logger.Debug("Applying proxy", logger.Fields{"host": host, "proxy": p.Addr()})
	c.proxy = p
}
