package transport

import (
	"fmt"
	"net/url"
	"strings"
)

// Proxy holds the proxy configuration that applies to a target host.
type Proxy struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Addr returns the host:port address of the proxy.
func (p *Proxy) Addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// URL returns the proxy as an http URL, with credentials when configured.
func (p *Proxy) URL() *url.URL {
	u := &url.URL{Scheme: "http", Host: p.Addr()}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// ProxyResolver resolves whether a proxy applies to a target host. It is
// consulted once per request.
//
//go:generate mockgen -destination=./mocks/transport.go . ProxyResolver
type ProxyResolver interface {
	// ProxyFor returns the proxy for the given host, or nil for a direct
	// connection.
	ProxyFor(host string) *Proxy
}

// ResolverFunc adapts a function to the ProxyResolver interface.
type ResolverFunc func(host string) *Proxy

// ProxyFor calls f.
func (f ResolverFunc) ProxyFor(host string) *Proxy { return f(host) }

// StaticResolver applies one proxy to every host except those listed in
// NoProxy (exact match or ".suffix" domain match).
type StaticResolver struct {
	Proxy   *Proxy
	NoProxy []string
}

// ProxyFor returns the configured proxy unless the host is excluded.
func (r *StaticResolver) ProxyFor(host string) *Proxy {
	if r.Proxy == nil {
		return nil
	}
	for _, skip := range r.NoProxy {
		if skip == "" {
			continue
		}
		if strings.EqualFold(host, skip) {
			return nil
		}
		if strings.HasPrefix(skip, ".") && strings.HasSuffix(strings.ToLower(host), strings.ToLower(skip)) {
			return nil
		}
	}
	return r.Proxy
}
