package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/artfetch/pkg/model"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var latest bool

	cmd := &cobra.Command{
		Use:   "list URL",
		Short: "List a repository directory",
		Long: `List the entries of a repository directory index.

Only entries below the given URL are reported; navigation and sort links
are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], latest)
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Print only the highest version among the entries")

	return cmd
}

func runList(cmd *cobra.Command, parent string, latest bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessor, err := newAccessor(cfg, parent)
	if err != nil {
		return err
	}

	entries, err := accessor.List(cmd.Context(), parent)
	if err != nil {
		return err
	}
	if entries == nil {
		return fmt.Errorf("directory not found or not listable: %s", parent)
	}

	if latest {
		version := model.LatestVersion(entries)
		if version == "" {
			return fmt.Errorf("no sortable versions found under %s", parent)
		}
		fmt.Println(version)
		return nil
	}

	for _, entry := range entries {
		fmt.Println(entry)
	}
	return nil
}
