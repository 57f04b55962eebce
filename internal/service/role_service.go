package service

import (
	"github.com/coopsight/coopsight-backend/internal/model"
	"github.com/coopsight/coopsight-backend/internal/repository"
)

type RoleService interface {
	AddRole(title, company string, majors []string) (*model.Role, error)
	GetRoles(roleIDs []int, titles, companies, majors []string) []*model.Role
	GetRoleByID(id int) *model.Role
	GetRolesByMajors(majors []string) []int
	MatchingRolesForUser(userID int) ([]int, error)
	RoleTrend(roleID int) (*model.RoleTrend, error)
}

type roleService struct {
	roles     repository.RoleRepository
	users     repository.UserRepository
	reviews   repository.ReviewRepository
	companies *repository.CompanyRegistry
	catalog   *repository.MajorCatalog
	roleLinks *repository.MajorLinkRepository
	userLinks *repository.MajorLinkRepository
}

func NewRoleService(
	roles repository.RoleRepository,
	users repository.UserRepository,
	reviews repository.ReviewRepository,
	companies *repository.CompanyRegistry,
	catalog *repository.MajorCatalog,
	roleLinks *repository.MajorLinkRepository,
	userLinks *repository.MajorLinkRepository,
) RoleService {
	return &roleService{
		roles:     roles,
		users:     users,
		reviews:   reviews,
		companies: companies,
		catalog:   catalog,
		roleLinks: roleLinks,
		userLinks: userLinks,
	}
}

// AddRole creates a role, registering its company and suggested-major links.
// Majors are validated before any mutation so a failure cannot leave a
// half-applied role.
func (s *roleService) AddRole(title, company string, majors []string) (*model.Role, error) {
	if len(majors) == 0 {
		return nil, ErrNoMajors
	}
	for _, m := range majors {
		if !s.catalog.IsValid(m) {
			return nil, &InvalidMajorError{Name: m}
		}
	}

	s.companies.Add(company)
	role := model.Role{RoleID: s.roles.NextID(), Role: title, Company: company}
	s.roles.Append(role)
	s.roleLinks.AddLinks(role.RoleID, majors)

	return s.withMajors(role), nil
}

// GetRoles narrows the role list by each provided filter. The majors filter
// keeps only roles whose suggested-major set contains every listed major —
// superset semantics, unlike the per-spec union used for users.
func (s *roleService) GetRoles(roleIDs []int, titles, companies, majors []string) []*model.Role {
	matched := s.roles.All()

	if roleIDs != nil {
		wanted := intSet(roleIDs)
		matched = keep(matched, func(r model.Role) bool {
			_, ok := wanted[r.RoleID]
			return ok
		})
	}

	if titles != nil {
		wanted := stringSet(titles)
		matched = keep(matched, func(r model.Role) bool {
			_, ok := wanted[r.Role]
			return ok
		})
	}

	if companies != nil {
		wanted := stringSet(companies)
		matched = keep(matched, func(r model.Role) bool {
			_, ok := wanted[r.Company]
			return ok
		})
	}

	if majors != nil {
		wanted := intSet(s.roleLinks.MatchAll(majors))
		matched = keep(matched, func(r model.Role) bool {
			_, ok := wanted[r.RoleID]
			return ok
		})
	}

	out := make([]*model.Role, 0, len(matched))
	for _, r := range matched {
		out = append(out, s.withMajors(r))
	}
	return out
}

func (s *roleService) GetRoleByID(id int) *model.Role {
	role, ok := s.roles.ByID(id)
	if !ok {
		return nil
	}
	return s.withMajors(role)
}

// GetRolesByMajors returns IDs of roles suggesting at least one of the given
// majors.
func (s *roleService) GetRolesByMajors(majors []string) []int {
	return s.roleLinks.MatchAny(majors)
}

// MatchingRolesForUser recommends roles whose suggested majors overlap the
// user's majors.
func (s *roleService) MatchingRolesForUser(userID int) ([]int, error) {
	if _, ok := s.users.ByID(userID); !ok {
		return nil, ErrUserNotFound
	}

	ids := s.GetRolesByMajors(s.userLinks.MajorsFor(userID))
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// RoleTrend aggregates every review of the role into summary statistics.
func (s *roleService) RoleTrend(roleID int) (*model.RoleTrend, error) {
	if _, ok := s.roles.ByID(roleID); !ok {
		return nil, ErrRoleNotFound
	}
	return roleTrend(s.reviews.ByRoleID(roleID))
}

func (s *roleService) withMajors(role model.Role) *model.Role {
	role.SuggestedMajors = s.roleLinks.MajorsFor(role.RoleID)
	return &role
}
