package config

import "github.com/glorpus-work/artfetch/pkg/transport"

// ToResolver converts the proxy configuration to a transport.ProxyResolver.
// Returns nil when no proxy is configured, which means direct connections.
func (p *ProxyConfig) ToResolver() transport.ProxyResolver {
	if p == nil || p.Host == "" {
		return nil
	}
	return &transport.StaticResolver{
		Proxy: &transport.Proxy{
			Host:     p.Host,
			Port:     p.Port,
			Username: p.Username,
			Password: p.Password,
		},
		NoProxy: p.NoProxy,
	}
}
