package repository

import (
	"github.com/coopsight/coopsight-backend/internal/model"
)

// MajorLinkRepository stores a many-to-many association between owning
// entities and majors. One instance serves user-major links and another
// role-major links; the semantics are identical on both sides.
type MajorLinkRepository struct {
	catalog *MajorCatalog
	links   []model.MajorLink
}

func NewMajorLinkRepository(catalog *MajorCatalog) *MajorLinkRepository {
	return &MajorLinkRepository{catalog: catalog}
}

// AddLinks associates ownerID with every resolvable major name. Names missing
// from the catalog are skipped silently; callers validate names beforehand.
func (r *MajorLinkRepository) AddLinks(ownerID int, majorNames []string) {
	for _, name := range majorNames {
		id, ok := r.catalog.IDOf(name)
		if !ok {
			continue
		}
		r.links = append(r.links, model.MajorLink{OwnerID: ownerID, MajorID: id})
	}
}

// MajorsFor returns the canonical major names linked to ownerID, in insertion
// order.
func (r *MajorLinkRepository) MajorsFor(ownerID int) []string {
	var names []string
	for _, l := range r.links {
		if l.OwnerID != ownerID {
			continue
		}
		if name, ok := r.catalog.NameOf(l.MajorID); ok {
			names = append(names, name)
		}
	}
	return names
}

// MatchAll returns the IDs of owners linked to every one of the given majors.
// The intersection starts from every owner in the table, so an empty input
// matches all owners. An unresolvable name matches none.
func (r *MajorLinkRepository) MatchAll(majorNames []string) []int {
	ownerIDs := r.owners()

	for _, name := range majorNames {
		majorID, _ := r.catalog.IDOf(name)

		withMajor := make(map[int]struct{})
		for _, l := range r.links {
			if l.MajorID == majorID {
				withMajor[l.OwnerID] = struct{}{}
			}
		}

		var kept []int
		for _, id := range ownerIDs {
			if _, ok := withMajor[id]; ok {
				kept = append(kept, id)
			}
		}
		ownerIDs = kept
	}

	return ownerIDs
}

// MatchAny returns the IDs of owners linked to at least one of the given
// majors. An empty input matches nothing, unlike MatchAll.
func (r *MajorLinkRepository) MatchAny(majorNames []string) []int {
	if len(majorNames) == 0 {
		return nil
	}

	wanted := make(map[int]struct{}, len(majorNames))
	for _, name := range majorNames {
		if id, ok := r.catalog.IDOf(name); ok {
			wanted[id] = struct{}{}
		}
	}

	var ownerIDs []int
	seen := make(map[int]struct{})
	for _, l := range r.links {
		if _, ok := wanted[l.MajorID]; !ok {
			continue
		}
		if _, ok := seen[l.OwnerID]; ok {
			continue
		}
		seen[l.OwnerID] = struct{}{}
		ownerIDs = append(ownerIDs, l.OwnerID)
	}
	return ownerIDs
}

// owners returns distinct owner IDs in order of first appearance.
func (r *MajorLinkRepository) owners() []int {
	var ids []int
	seen := make(map[int]struct{})
	for _, l := range r.links {
		if _, ok := seen[l.OwnerID]; ok {
			continue
		}
		seen[l.OwnerID] = struct{}{}
		ids = append(ids, l.OwnerID)
	}
	return ids
}

// Reset removes every link.
func (r *MajorLinkRepository) Reset() {
	r.links = nil
}
