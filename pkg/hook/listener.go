package hook

import (
	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/resource"
)

// Listener adapts a hook Manager to the resource.TransferListener interface.
// Script failures are logged, never propagated: hooks observe transfers, they
// do not veto them.
type Listener struct {
	manager Manager
}

// NewListener creates a transfer listener backed by the given hook manager.
func NewListener(manager Manager) *Listener {
	return &Listener{manager: manager}
}

// TransferInitiated runs the pre-transfer hook.
func (l *Listener) TransferInitiated(url string, direction resource.Direction) {
	l.run(PreTransfer, Context{URL: url, Direction: string(direction)})
}

// TransferProgress runs the post-transfer hook when the transfer completes.
// Intermediate chunks are not exposed to scripts; firing a script per chunk
// would stall the transfer.
func (l *Listener) TransferProgress(transferred, total int64) {
	if total >= 0 && transferred >= total {
		l.run(PostTransfer, Context{Transferred: transferred, Total: total})
	}
}

// TransferError runs the transfer-error hook.
func (l *Listener) TransferError(url string, direction resource.Direction, err error) {
	l.run(TransferError, Context{URL: url, Direction: string(direction), Error: err.Error()})
}

func (l *Listener) run(event Event, ctx Context) {
	if err := l.manager.Execute(event, ctx); err != nil {
		logger.Warnf("Hook %s failed: %v", event, err)
	}
}
