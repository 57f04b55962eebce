package service

import (
	"strings"

	"github.com/coopsight/coopsight-backend/internal/model"
	"github.com/coopsight/coopsight-backend/internal/repository"
)

type UserService interface {
	AddUser(name, email string, majors []string) (*model.User, error)
	GetUsers(userIDs []int, names, majorSpecs, emails []string) []*model.User
	GetUserByID(id int) *model.User
}

type userService struct {
	users   repository.UserRepository
	catalog *repository.MajorCatalog
	links   *repository.MajorLinkRepository
}

func NewUserService(
	users repository.UserRepository,
	catalog *repository.MajorCatalog,
	links *repository.MajorLinkRepository,
) UserService {
	return &userService{users: users, catalog: catalog, links: links}
}

// AddUser creates a user together with their major links. Every precondition
// is checked before any state changes, so a failed call leaves the store and
// the ID counter untouched.
func (s *userService) AddUser(name, email string, majors []string) (*model.User, error) {
	if s.users.EmailExists(email) {
		return nil, ErrDuplicateEmail
	}
	if len(majors) == 0 {
		return nil, ErrNoMajors
	}
	for _, m := range majors {
		if !s.catalog.IsValid(m) {
			return nil, &InvalidMajorError{Name: m}
		}
	}

	user := model.User{UserID: s.users.NextID(), Name: name, Email: email}
	s.users.Append(user)
	s.links.AddLinks(user.UserID, majors)

	return s.withMajors(user), nil
}

// GetUsers narrows the user list by each provided filter; nil means the
// filter is absent. Entries of majorSpecs are compound values like
// "COMPUTER SCIENCE & MATH": a user matches a spec only with every listed
// major, and matches the filter by satisfying any one spec.
func (s *userService) GetUsers(userIDs []int, names, majorSpecs, emails []string) []*model.User {
	matched := s.users.All()

	if userIDs != nil {
		wanted := intSet(userIDs)
		matched = keep(matched, func(u model.User) bool {
			_, ok := wanted[u.UserID]
			return ok
		})
	}

	if names != nil {
		wanted := stringSet(names)
		matched = keep(matched, func(u model.User) bool {
			_, ok := wanted[u.Name]
			return ok
		})
	}

	if emails != nil {
		wanted := stringSet(emails)
		matched = keep(matched, func(u model.User) bool {
			_, ok := wanted[u.Email]
			return ok
		})
	}

	if majorSpecs != nil {
		wanted := make(map[int]struct{})
		for _, spec := range majorSpecs {
			for _, id := range s.links.MatchAll(SplitMajorSpec(spec)) {
				wanted[id] = struct{}{}
			}
		}
		matched = keep(matched, func(u model.User) bool {
			_, ok := wanted[u.UserID]
			return ok
		})
	}

	out := make([]*model.User, 0, len(matched))
	for _, u := range matched {
		out = append(out, s.withMajors(u))
	}
	return out
}

func (s *userService) GetUserByID(id int) *model.User {
	user, ok := s.users.ByID(id)
	if !ok {
		return nil
	}
	return s.withMajors(user)
}

// withMajors joins the user's linked majors into the wire-format Major field.
func (s *userService) withMajors(user model.User) *model.User {
	user.Major = strings.Join(s.links.MajorsFor(user.UserID), MajorSeparator)
	return &user
}
