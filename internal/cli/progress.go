package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/glorpus-work/artfetch/pkg/resource"
)

// consoleListener prints transfer lifecycle events for interactive use.
type consoleListener struct {
	out  io.Writer
	last int64
}

func newConsoleListener() *consoleListener {
	return &consoleListener{out: os.Stderr}
}

// TransferInitiated announces the transfer.
func (c *consoleListener) TransferInitiated(url string, direction resource.Direction) {
	c.last = 0
	verb := "Downloading"
	if direction == resource.DirectionPut {
		verb = "Uploading"
	}
	fmt.Fprintf(c.out, "%s %s\n", verb, url)
}

// TransferProgress redraws the progress line. Updates are throttled to
// whole-megabyte steps to keep slow terminals readable.
func (c *consoleListener) TransferProgress(transferred, total int64) {
	const step = 1 << 20
	done := total != resource.TotalUnknown && transferred >= total
	if !done && transferred/step == c.last/step {
		return
	}
	c.last = transferred

	if total == resource.TotalUnknown {
		fmt.Fprintf(c.out, "\r  %s", humanize.Bytes(uint64(transferred)))
	} else {
		fmt.Fprintf(c.out, "\r  %s / %s", humanize.Bytes(uint64(transferred)), humanize.Bytes(uint64(total)))
	}
	if done {
		fmt.Fprintln(c.out)
	}
}

// TransferError reports a failed transfer.
func (c *consoleListener) TransferError(url string, _ resource.Direction, err error) {
	fmt.Fprintf(c.out, "\nTransfer of %s failed: %v\n", url, err)
}
