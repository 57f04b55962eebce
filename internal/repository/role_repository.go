package repository

import (
	"github.com/coopsight/coopsight-backend/internal/model"
)

type RoleRepository interface {
	NextID() int
	Append(role model.Role)
	All() []model.Role
	ByID(id int) (model.Role, bool)
	Reset()
}

type roleRepository struct {
	seq   sequence
	roles []model.Role
}

func NewRoleRepository() RoleRepository {
	return &roleRepository{seq: newSequence()}
}

func (r *roleRepository) NextID() int {
	return r.seq.NextID()
}

func (r *roleRepository) Append(role model.Role) {
	r.roles = append(r.roles, role)
}

// All returns a copy of the stored roles in insertion order.
func (r *roleRepository) All() []model.Role {
	out := make([]model.Role, len(r.roles))
	copy(out, r.roles)
	return out
}

func (r *roleRepository) ByID(id int) (model.Role, bool) {
	for _, role := range r.roles {
		if role.RoleID == id {
			return role, true
		}
	}
	return model.Role{}, false
}

func (r *roleRepository) Reset() {
	r.roles = nil
	r.seq.Reset()
}
