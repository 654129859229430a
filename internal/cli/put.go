package cli

import (
	"github.com/spf13/cobra"

	"github.com/glorpus-work/artfetch/internal/logger"
)

// NewPutCmd creates the put command.
func NewPutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put FILE URL",
		Short: "Upload a file",
		Long:  "Upload a local file to a remote repository with a single streaming PUT request.",
		Args:  cobra.ExactArgs(2),
		RunE:  runPut,
	}

	return cmd
}

func runPut(cmd *cobra.Command, args []string) error {
	sourcePath, dest := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessor, err := newAccessor(cfg, dest, newConsoleListener())
	if err != nil {
		return err
	}

	if err := accessor.Put(cmd.Context(), sourcePath, dest); err != nil {
		return err
	}

	logger.Success("Uploaded resource", logger.Fields{"source": sourcePath, "dest": dest})
	return nil
}
