package resource

// TotalUnknown marks a transfer whose content length is not known.
const TotalUnknown int64 = -1

// Progress is the mutable counter shared between the accessor and transfer
// listeners for the duration of a single download or upload. It is written by
// the transferring goroutine only; no internal locking.
type Progress struct {
	total       int64
	transferred int64
	onProgress  func(transferred, total int64)
}

// NewProgress creates a progress counter with an unset total. The callback,
// when non-nil, fires after every recorded chunk.
func NewProgress(onProgress func(transferred, total int64)) *Progress {
	return &Progress{total: TotalUnknown, onProgress: onProgress}
}

// SetTotal records the expected transfer length. Pass TotalUnknown to unset.
func (p *Progress) SetTotal(n int64) {
	p.total = n
}

// Total returns the expected transfer length, TotalUnknown when unset.
func (p *Progress) Total() int64 { return p.total }

// Transferred returns the number of bytes recorded so far.
func (p *Progress) Transferred() int64 { return p.transferred }

// Add records n transferred bytes and notifies the callback.
func (p *Progress) Add(n int64) {
	p.transferred += n
	if p.onProgress != nil {
		p.onProgress(p.transferred, p.total)
	}
}

// Reset returns the counter to its initial state so a subsequent transfer
// starts clean.
func (p *Progress) Reset() {
	p.total = TotalUnknown
	p.transferred = 0
}

// progressWriter adapts a Progress counter to io.Writer for streaming copies.
type progressWriter struct {
	progress *Progress
}

func (w *progressWriter) Write(b []byte) (int, error) {
	n := len(b)
	if w.progress != nil {
		w.progress.Add(int64(n))
	}
	return n, nil
}
