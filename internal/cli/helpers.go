// Package cli implements the artfetch command line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/cache"
	"github.com/glorpus-work/artfetch/pkg/config"
	"github.com/glorpus-work/artfetch/pkg/hook"
	"github.com/glorpus-work/artfetch/pkg/model"
	"github.com/glorpus-work/artfetch/pkg/resource"
	"github.com/glorpus-work/artfetch/pkg/transport"
)

// These variables will be set by the main package.
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

// loadConfig loads the configuration, honoring the global CLI flags.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, pathErr := config.GetDefaultConfigPath()
		if pathErr != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", pathErr)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))

	return cfg, nil
}

// newAccessor builds a resource accessor for the given target URL, wiring
// repository credentials, proxy rules, transfer hooks and any extra
// listeners from the configuration.
func newAccessor(cfg *config.Config, rawURL string, extra ...resource.TransferListener) (*resource.Accessor, error) {
	opts := []transport.Option{
		transport.WithProxyResolver(cfg.Proxy.ToResolver()),
	}
	if authenticator := cfg.AuthenticatorFor(rawURL); authenticator != nil {
		opts = append(opts, transport.WithAuth(authenticator))
	}
	if cfg.Settings.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(cfg.Settings.UserAgent))
	}

	client := transport.NewClient(cfg.Settings.HTTPTimeout, opts...)

	accessorOpts := make([]resource.AccessorOption, 0, len(extra)+1)
	for _, l := range extra {
		accessorOpts = append(accessorOpts, resource.WithListener(l))
	}

	if cfg.Settings.HookDir != "" {
		manager := hook.NewManager()
		if err := manager.LoadFromDir(cfg.Settings.HookDir); err != nil {
			return nil, fmt.Errorf("failed to load hooks from %s: %w", cfg.Settings.HookDir, err)
		}
		accessorOpts = append(accessorOpts, resource.WithListener(hook.NewListener(manager)))
	}

	return resource.NewAccessor(client, accessorOpts...), nil
}

// openStore opens the artifact cache store from the configuration.
func openStore(cfg *config.Config) (*cache.Store, error) {
	dir, err := cfg.GetCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine cache directory: %w", err)
	}
	store, err := cache.NewStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}
	return store, nil
}

// parseArtifactID parses a "group:name:version[:classifier]" coordinate.
// The group may be empty, as in ":tool:1.2.0".
func parseArtifactID(coordinate string) (model.ArtifactID, error) {
	parts := strings.Split(coordinate, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return model.ArtifactID{}, fmt.Errorf("invalid artifact coordinate %q, want group:name:version[:classifier]", coordinate)
	}

	id := model.ArtifactID{
		Group:   parts[0],
		Name:    parts[1],
		Version: parts[2],
	}
	if len(parts) == 4 {
		id.Classifier = parts[3]
	}
	if id.IsZero() {
		return model.ArtifactID{}, fmt.Errorf("invalid artifact coordinate %q, name and version cannot both be empty", coordinate)
	}
	return id, nil
}
