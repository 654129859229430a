package resource

import (
	"context"

	"github.com/glorpus-work/artfetch/internal/logger"
	"github.com/glorpus-work/artfetch/pkg/model"
)

// CandidateSource supplies locally stored copies for an artifact identity.
// *cache.Store implements it.
type CandidateSource interface {
	Candidates(id model.ArtifactID) ([]model.Candidate, error)
}

// ResolveFrom resolves a request, drawing cache candidates from src when the
// request carries an artifact identity. A failing source is treated as an
// empty one: the cache may be cold or damaged, the remote stays
// authoritative.
func (a *Accessor) ResolveFrom(ctx context.Context, req model.Request, src CandidateSource) (Resource, error) {
	var candidates []model.Candidate
	if src != nil && !req.Artifact.IsZero() {
		var err error
		if candidates, err = src.Candidates(req.Artifact); err != nil {
			logger.Warnf("Failed to enumerate cache candidates for %s: %v", req.Artifact, err)
			candidates = nil
		}
	}
	return a.Resolve(ctx, req, candidates)
}
