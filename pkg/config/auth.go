package config

import (
	"net/url"
	"strings"

	"github.com/glorpus-work/artfetch/pkg/auth"
)

// AuthConfigContainer defines the interface for authentication configuration types that can be converted to an Authenticator.
type AuthConfigContainer interface {
	ToAuthenticator() auth.Authenticator
}

// AuthConfig holds various authentication configurations for a repository.
type AuthConfig struct {
	BasicAuth  *BasicAuth  `yaml:"basic,omitempty"`
	HeaderAuth *HeaderAuth `yaml:"header,omitempty"`
	BearerAuth *BearerAuth `yaml:"bearer,omitempty"`
}

// BasicAuth holds configuration for HTTP Basic Authentication.
type BasicAuth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// HeaderAuth holds configuration for custom header-based authentication.
type HeaderAuth struct {
	Headers map[string]string `yaml:"headers"`
}

// BearerAuth holds configuration for Bearer token authentication.
type BearerAuth struct {
	Token string `yaml:"token"`
}

// ToAuthenticator converts the BasicAuth configuration to an Authenticator.
func (b *BasicAuth) ToAuthenticator() auth.Authenticator {
	return &auth.BasicAuth{
		Username: b.Username,
		Password: b.Password,
	}
}

// ToAuthenticator converts the HeaderAuth configuration to an Authenticator.
func (h *HeaderAuth) ToAuthenticator() auth.Authenticator {
	return &auth.HeaderAuth{
		Headers: h.Headers,
	}
}

// ToAuthenticator converts the BearerAuth configuration to an Authenticator.
func (b *BearerAuth) ToAuthenticator() auth.Authenticator {
	return &auth.BearerAuth{
		Token: b.Token,
	}
}

// ToAuthenticator converts the repository auth block to an Authenticator.
// Returns nil when no scheme is configured.
func (a *AuthConfig) ToAuthenticator() auth.Authenticator {
	if a == nil {
		return nil
	}
	switch {
	case a.BasicAuth != nil:
		return a.BasicAuth.ToAuthenticator()
	case a.HeaderAuth != nil:
		return a.HeaderAuth.ToAuthenticator()
	case a.BearerAuth != nil:
		return a.BearerAuth.ToAuthenticator()
	default:
		return nil
	}
}

// ToAuthMap converts the repository authentication configurations to a map of repository names to Authenticators.
// Returns nil if no authentication configurations are found.
func (c *Config) ToAuthMap() map[string]auth.Authenticator {
	results := make(map[string]auth.Authenticator, len(c.Repositories))
	for _, repo := range c.Repositories {
		if authenticator := repo.Auth.ToAuthenticator(); authenticator != nil {
			results[repo.Name] = authenticator
		}
	}

	if len(results) == 0 {
		return nil
	}
	return results
}

// AuthenticatorFor returns the authenticator of the first repository whose
// URL is a prefix of rawURL, or nil when none matches.
func (c *Config) AuthenticatorFor(rawURL string) auth.Authenticator {
	for _, repo := range c.Repositories {
		base := strings.TrimSuffix(repo.URL, "/")
		if base == "" {
			continue
		}
		if rawURL == base || strings.HasPrefix(rawURL, base+"/") {
			return repo.Auth.ToAuthenticator()
		}
	}
	return nil
}

// GetURL parses and returns the repository URL.
func (rc *RepositoryConfig) GetURL() *url.URL {
	parse, err := url.Parse(rc.URL)
	if err != nil {
		return nil
	}
	return parse
}
