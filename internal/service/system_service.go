package service

import (
	"github.com/rs/zerolog"

	"github.com/coopsight/coopsight-backend/internal/repository"
)

// SystemService owns administrative operations that span every store.
type SystemService interface {
	ResetAll()
}

type systemService struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	reviews   repository.ReviewRepository
	companies *repository.CompanyRegistry
	userLinks *repository.MajorLinkRepository
	roleLinks *repository.MajorLinkRepository
	log       zerolog.Logger
}

func NewSystemService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	reviews repository.ReviewRepository,
	companies *repository.CompanyRegistry,
	userLinks *repository.MajorLinkRepository,
	roleLinks *repository.MajorLinkRepository,
	log zerolog.Logger,
) SystemService {
	return &systemService{
		users:     users,
		roles:     roles,
		reviews:   reviews,
		companies: companies,
		userLinks: userLinks,
		roleLinks: roleLinks,
		log:       log,
	}
}

// ResetAll clears every store and restarts each ID counter at 1. The major
// catalog is immutable and is not touched. Callers must not invoke this
// concurrently with in-flight requests.
func (s *systemService) ResetAll() {
	s.users.Reset()
	s.roles.Reset()
	s.reviews.Reset()
	s.companies.Reset()
	s.userLinks.Reset()
	s.roleLinks.Reset()

	s.log.Info().Msg("All stores reset")
}
