package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
		Long:  "Show information about and clean the local artifact cache",
	}

	cmd.AddCommand(
		newCacheInfoCmd(),
		newCacheCleanCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display the location and size of the artifact cache",
		RunE:  runCacheInfo,
	}
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean the artifact cache",
		Long:  "Remove cached artifacts to free up disk space",
		RunE:  runCacheClean,
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the artifact cache directory",
		RunE:  runCacheDir,
	}
}

func runCacheInfo(*cobra.Command, []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	info, err := store.GetInfo()
	if err != nil {
		return err
	}

	fmt.Printf("Cache Directory: %s\n", info.Directory)
	fmt.Printf("Total Size: %s\n", humanize.Bytes(uint64(info.TotalSize)))
	fmt.Printf("Files: %d\n", info.FileCount)
	return nil
}

func runCacheClean(*cobra.Command, []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	freed, err := store.Clean()
	if err != nil {
		return err
	}

	logger.Success("Cache cleaning completed", logger.Fields{"freed": humanize.Bytes(uint64(freed))})
	return nil
}

func runCacheDir(*cobra.Command, []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	fmt.Println(store.Directory())
	return nil
}

func loadStore() (*cache.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openStore(cfg)
}
