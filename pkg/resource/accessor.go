package resource

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/errors"
	"github.com/glorpus-work/artfetch/pkg/model"
	"github.com/glorpus-work/artfetch/pkg/transport"
)

// Accessor drives GET/HEAD/PUT requests against a repository and wraps the
// results in Resource outcomes. It shares one transport client and one
// progress counter across operations; instances are not safe for concurrent
// use without external serialization.
type Accessor struct {
	transport     *transport.Client
	listeners     []TransferListener
	progress      *Progress
	cleanChecksum func(string) string
}

// AccessorOption configures an Accessor.
type AccessorOption func(*Accessor)

// WithListener registers a transfer lifecycle listener.
func WithListener(l TransferListener) AccessorOption {
	return func(a *Accessor) { a.listeners = append(a.listeners, l) }
}

// WithChecksumCleaner overrides the canonicalization applied to checksum
// side-file content before comparison. The tolerated formats are server
// conventions, not a fixed standard.
func WithChecksumCleaner(clean func(string) string) AccessorOption {
	return func(a *Accessor) {
		if clean != nil {
			a.cleanChecksum = clean
		}
	}
}

// NewAccessor creates an accessor on top of the given transport client.
func NewAccessor(t *transport.Client, opts ...AccessorOption) *Accessor {
	a := &Accessor{
		transport:     t,
		cleanChecksum: CleanChecksum,
	}
	a.progress = NewProgress(a.fireProgress)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Resolve dispatches a request to Get or Head depending on whether the
// caller intends to download the content.
func (a *Accessor) Resolve(ctx context.Context, req model.Request, candidates []model.Candidate) (Resource, error) {
	if req.ForDownload {
		return a.Get(ctx, req.SourceURL, candidates)
	}
	return a.Head(ctx, req.SourceURL)
}

// Get resolves source into a resource outcome. When candidates are supplied,
// the remote checksum side-file is consulted first: an exact match yields a
// cache-backed resource without transferring the artifact body. A 404 yields
// the missing outcome, never an error; any other unsuccessful status is a
// *errors.StatusError.
func (a *Accessor) Get(ctx context.Context, source string, candidates []model.Candidate) (Resource, error) {
	logger.Debugf("Constructing GET resource: %s", source)

	if len(candidates) > 0 {
		if cached := a.matchCached(ctx, source, candidates); cached != nil {
			return cached, nil
		}
	}

	return a.initResource(ctx, http.MethodGet, source)
}

// Head checks for the existence of source without fetching its body. The
// cache is never consulted.
func (a *Accessor) Head(ctx context.Context, source string) (Resource, error) {
	logger.Debugf("Constructing HEAD resource: %s", source)
	return a.initResource(ctx, http.MethodHead, source)
}

func (a *Accessor) initResource(ctx context.Context, method, source string) (Resource, error) {
	resp, err := a.transport.Do(ctx, transport.Request{Method: method, URL: source})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		logger.Info("Resource missing", logger.Fields{"method": method, "url": source})
		return NewMissingResource(source), nil
	}
	if !wasSuccessful(resp.StatusCode) {
		_ = resp.Body.Close()
		logger.Info("Failed to get resource", logger.Fields{"method": method, "url": source, "status": resp.Status})
		return nil, &errors.StatusError{Verb: method, URL: source, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	logger.Info("Resource found", logger.Fields{"method": method, "url": source})
	return NewRemoteResource(source, resp), nil
}

// Download materializes res at dest, notifying listeners of the transfer
// lifecycle. The shared progress counter's total is always reset afterwards.
// A remote resource streams over the connection opened under the ctx that
// resolved it; a ctx already cancelled here fails before any bytes move.
func (a *Accessor) Download(ctx context.Context, res Resource, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.fireInitiated(res.URL(), DirectionGet)
	a.progress.SetTotal(res.ContentLength())
	defer a.progress.Reset()

	if err := res.WriteTo(dest, a.progress); err != nil {
		a.fireError(res.URL(), DirectionGet, err)
		return err
	}
	return nil
}

// Put uploads the regular file at sourcePath to dest, streaming it as a
// non-repeatable application/octet-stream body with progress accounting. A
// non-2xx response is a *errors.StatusError.
func (a *Accessor) Put(ctx context.Context, sourcePath, dest string) error {
	logger.Debugf("Attempting to put resource %s", dest)

	info, err := os.Stat(sourcePath)
	if err != nil {
		return errors.Wrapf(err, "failed to stat upload source %s", sourcePath)
	}
	if !info.Mode().IsRegular() {
		return errors.Wrapf(errors.ErrNotRegularFile, "%s", sourcePath)
	}

	a.fireInitiated(dest, DirectionPut)
	a.progress.SetTotal(info.Size())
	defer a.progress.Reset()

	if err := a.doPut(ctx, sourcePath, dest, info.Size()); err != nil {
		a.fireError(dest, DirectionPut, err)
		return err
	}
	return nil
}

func (a *Accessor) doPut(ctx context.Context, sourcePath, dest string, size int64) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open upload source %s", sourcePath)
	}
	defer func() { _ = src.Close() }()

	resp, err := a.transport.Do(ctx, transport.Request{
		Method:        http.MethodPut,
		URL:           dest,
		Body:          io.TeeReader(src, &progressWriter{progress: a.progress}),
		ContentLength: size,
		ContentType:   "application/octet-stream",
	})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !wasSuccessful(resp.StatusCode) {
		return &errors.StatusError{Verb: http.MethodPut, URL: dest, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}

// Progress exposes the shared transfer counter.
func (a *Accessor) Progress() *Progress { return a.progress }

func (a *Accessor) fireInitiated(url string, direction Direction) {
	for _, l := range a.listeners {
		l.TransferInitiated(url, direction)
	}
}

func (a *Accessor) fireProgress(transferred, total int64) {
	for _, l := range a.listeners {
		l.TransferProgress(transferred, total)
	}
}

func (a *Accessor) fireError(url string, direction Direction, err error) {
	for _, l := range a.listeners {
		l.TransferError(url, direction, err)
	}
}

func wasSuccessful(status int) bool {
	return status >= 200 && status < 300
}
