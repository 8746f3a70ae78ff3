package snapshotloader

import (
	"context"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
)

// StaticSource serves owned-object listings and resolutions from a snapshot
// held in memory. It never fails: unknown owners own nothing and unknown ids
// resolve as NotExists.
type StaticSource struct {
	byID    map[string]Entry
	byOwner map[string][]entity.Reference
}

var _ port.ObjectSource = (*StaticSource)(nil)

// NewStaticSource indexes snap. Listing order follows snapshot order.
func NewStaticSource(snap *Snapshot) *StaticSource {
	s := &StaticSource{
		byID:    make(map[string]Entry),
		byOwner: make(map[string][]entity.Reference),
	}
	if snap == nil {
		return s
	}
	for _, e := range snap.Objects {
		s.byID[normalizeID(e.ID)] = e
		if owner := e.OwnerID(); owner != "" {
			s.byOwner[owner] = append(s.byOwner[owner], e.reference())
		}
	}
	return s
}

// ListOwnedStatic returns the references owned by ownerID.
func (s *StaticSource) ListOwnedStatic(ownerID string) []entity.Reference {
	refs := s.byOwner[normalizeID(ownerID)]
	return append([]entity.Reference(nil), refs...)
}

// ResolveStatic looks up a single object.
func (s *StaticSource) ResolveStatic(id string) entity.ObjectRecord {
	e, ok := s.byID[normalizeID(id)]
	if !ok {
		return entity.ObjectRecord{ID: id, Status: entity.StatusNotExists}
	}
	return e.record()
}

// ListOwned implements port.ObjectSource. The snapshot does not distinguish
// address and object owners, so byParentObject is ignored.
func (s *StaticSource) ListOwned(ctx context.Context, ownerID string, _ bool) ([]entity.Reference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.ListOwnedStatic(ownerID), nil
}

// ResolveBatch implements port.ObjectSource.
func (s *StaticSource) ResolveBatch(ctx context.Context, ids []string) ([]entity.ObjectRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]entity.ObjectRecord, len(ids))
	for i, id := range ids {
		records[i] = s.ResolveStatic(id)
	}
	return records, nil
}

// Len returns the number of objects in the snapshot.
func (s *StaticSource) Len() int {
	return len(s.byID)
}
