package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewHeadCmd creates the head command.
func NewHeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head URL",
		Short: "Check whether a resource exists",
		Long:  "Issue a HEAD request for a resource and report its existence and size without downloading it.",
		Args:  cobra.ExactArgs(1),
		RunE:  runHead,
	}

	return cmd
}

func runHead(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessor, err := newAccessor(cfg, source)
	if err != nil {
		return err
	}

	res, err := accessor.Head(cmd.Context(), source)
	if err != nil {
		return err
	}
	defer func() { _ = res.Close() }()

	if !res.Exists() {
		return fmt.Errorf("resource not found: %s", source)
	}

	if length := res.ContentLength(); length >= 0 {
		fmt.Printf("%s exists (%s)\n", source, humanize.Bytes(uint64(length)))
	} else {
		fmt.Printf("%s exists (unknown size)\n", source)
	}
	return nil
}
