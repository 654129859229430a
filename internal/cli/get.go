package cli

import (
	"fmt"
	"net/url"
	"path"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/extract"
	"github.com/glorpus-work/artfetch/pkg/model"
	"github.com/glorpus-work/artfetch/pkg/resource"
)

// NewGetCmd creates the get command.
func NewGetCmd() *cobra.Command {
	var (
		output     string
		artifact   string
		extractDir string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Download a resource",
		Long: `Download a resource from a remote repository.

When an artifact coordinate is given, the local cache is consulted first:
if the remote checksum matches a cached copy, the download is skipped and
the cached bytes are used instead. Successful downloads are added to the
cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args[0], output, artifact, extractDir, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "O", "", "Destination path (defaults to the URL basename)")
	cmd.Flags().StringVarP(&artifact, "artifact", "a", "", "Artifact coordinate group:name:version[:classifier] for cache matching")
	cmd.Flags().StringVar(&extractDir, "extract", "", "Extract the downloaded archive into this directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip cache matching and always download")

	return cmd
}

func runGet(cmd *cobra.Command, source, output, artifact, extractDir string, noCache bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dest := output
	if dest == "" {
		dest, err = destFromURL(source)
		if err != nil {
			return err
		}
	}

	var id model.ArtifactID
	if artifact != "" {
		if id, err = parseArtifactID(artifact); err != nil {
			return err
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	accessor, err := newAccessor(cfg, source, newConsoleListener())
	if err != nil {
		return err
	}

	var candidateSource resource.CandidateSource
	if !noCache {
		candidateSource = store
	}

	res, err := accessor.ResolveFrom(cmd.Context(), model.Request{
		SourceURL:   source,
		Artifact:    id,
		ForDownload: true,
	}, candidateSource)
	if err != nil {
		return err
	}
	defer func() { _ = res.Close() }()

	if !res.Exists() {
		return fmt.Errorf("resource not found: %s", source)
	}

	if err := accessor.Download(cmd.Context(), res, dest); err != nil {
		return err
	}

	switch cached := res.(type) {
	case *resource.CachedResource:
		logger.Info("Served from cache", logger.Fields{"url": source, "sha1": cached.Candidate().SHA1})
	default:
		if !id.IsZero() {
			if _, err := store.Add(dest, id, ""); err != nil {
				logger.Warnf("Failed to add %s to cache: %v", dest, err)
			}
		}
	}

	logger.Success("Downloaded resource", logger.Fields{"url": source, "dest": dest})

	if extractDir != "" {
		if err := extract.ExtractAll(cmd.Context(), dest, extractDir); err != nil {
			return fmt.Errorf("failed to extract %s: %w", dest, err)
		}
		logger.Success("Extracted archive", logger.Fields{"dest": extractDir})
	}

	return nil
}

func destFromURL(source string) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", source, err)
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return "", fmt.Errorf("cannot derive a file name from %q, use --output", source)
	}
	return base, nil
}
