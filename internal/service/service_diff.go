package service

import (
	"context"

	"github.com/MKhiriev/case-mirror/models"
)

// diffService is the concrete implementation of DiffService.
// It performs a purely in-memory comparison of remote and local case
// slices; no storage layer or logger is required because the operation is
// stateless and produces no side effects.
type diffService struct{}

// NewDiffService constructs a DiffService ready for use.
func NewDiffService() DiffService {
	return &diffService{}
}

// BuildChangeSet implements DiffService.
//
// It builds two O(1) lookup indexes from the input slices, then makes two
// linear passes to classify every case into exactly one action category:
//
//   - Pass 1 (over remote): cases absent locally become inserts; cases
//     present on both sides become updates only when their attributes
//     differ.
//   - Pass 2 (over local): cases absent from the remote snapshot become
//     deletes.
//
// The remote snapshot is authoritative, so there is no conflict
// resolution: local state never flows back to the remote side here. When
// the remote listing carries the same id more than once the last
// occurrence wins.
//
// ctx cancellation is checked at the start of each iteration so that
// callers can abort early when operating on large snapshots.
func (s *diffService) BuildChangeSet(
	ctx context.Context,
	remote, local []models.Case,
) (models.ChangeSet, error) {
	var cs models.ChangeSet

	localIndex := make(map[string]models.Case, len(local))
	for _, lc := range local {
		localIndex[lc.ID] = lc
	}

	remoteIndex := make(map[string]models.Case, len(remote))
	for _, rc := range remote {
		remoteIndex[rc.ID] = rc
	}

	seen := make(map[string]struct{}, len(remote))

	for _, rc := range remote {
		if err := ctx.Err(); err != nil {
			return models.ChangeSet{}, err
		}

		// Duplicate ids within one snapshot: only the final occurrence
		// (already stored in remoteIndex) is considered.
		if _, dup := seen[rc.ID]; dup {
			continue
		}
		seen[rc.ID] = struct{}{}
		rc = remoteIndex[rc.ID]

		lc, existsLocally := localIndex[rc.ID]
		if !existsLocally {
			cs.Insert = append(cs.Insert, rc)
			continue
		}

		if !rc.ContentEquals(lc) {
			cs.Update = append(cs.Update, rc)
		}
	}

	for _, lc := range local {
		if err := ctx.Err(); err != nil {
			return models.ChangeSet{}, err
		}

		if _, existsRemotely := remoteIndex[lc.ID]; !existsRemotely {
			cs.Delete = append(cs.Delete, lc.ID)
		}
	}

	return cs, nil
}
