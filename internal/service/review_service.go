package service

import (
	"math"

	"github.com/coopsight/coopsight-backend/internal/model"
	"github.com/coopsight/coopsight-backend/internal/repository"
)

// ReviewFilter narrows GetReviews output. Nil ID slices mean the filter is
// absent. A numeric bound is applied only when it differs from its neutral
// constant (see the conditions in GetReviews); start from
// DefaultReviewFilter and override the bounds the caller actually supplied.
type ReviewFilter struct {
	ReviewIDs []int
	UserIDs   []int
	RoleIDs   []int
	MinPay    float64
	MaxPay    float64
	MinRating int
	MaxRating int
	MinCoop   int
	MaxCoop   int
}

// DefaultReviewFilter returns the documented query defaults:
// pay in [0, +Inf), rating in [0, 5], coop in [1, 3].
func DefaultReviewFilter() ReviewFilter {
	return ReviewFilter{
		MinPay:    0,
		MaxPay:    math.Inf(1),
		MinRating: 0,
		MaxRating: 5,
		MinCoop:   1,
		MaxCoop:   3,
	}
}

type ReviewService interface {
	AddReview(userID, roleID int, pay float64, rating, coop int, comment string) (*model.Review, error)
	GetReviews(f ReviewFilter) []model.Review
	GetReviewByID(id int) *model.Review
	GetReviewsByUserID(userID int) []model.Review
	GetReviewsByRoleID(roleID int) []model.Review
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	roles   repository.RoleRepository
}

func NewReviewService(
	reviews repository.ReviewRepository,
	users repository.UserRepository,
	roles repository.RoleRepository,
) ReviewService {
	return &reviewService{reviews: reviews, users: users, roles: roles}
}

// AddReview records a review after resolving both references and scanning the
// user's existing reviews. The scan fails on the first violation: a repeated
// role before a repeated coop slot, per review. A failed call leaves the
// store and the ID counter untouched.
func (s *reviewService) AddReview(userID, roleID int, pay float64, rating, coop int, comment string) (*model.Review, error) {
	if _, ok := s.users.ByID(userID); !ok {
		return nil, ErrUserNotFound
	}
	if _, ok := s.roles.ByID(roleID); !ok {
		return nil, ErrRoleNotFound
	}

	for _, r := range s.reviews.ByUserID(userID) {
		if r.RoleID == roleID {
			return nil, ErrDuplicateReview
		}
		if r.Coop == coop {
			return nil, &DuplicateCoopError{Coop: coop}
		}
	}

	review := model.Review{
		ReviewID: s.reviews.NextID(),
		UserID:   userID,
		RoleID:   roleID,
		Pay:      pay,
		Rating:   rating,
		Coop:     coop,
		Comment:  comment,
	}
	s.reviews.Append(review)

	return &review, nil
}

// GetReviews applies set-membership ID filters, then the numeric bounds.
// Each bound is a conditional narrowing, not a plain inequality: it runs only
// when the value differs from the field's neutral constant, so passing a
// bound equal to its neutral value is a no-op. Note the maxCoop neutral
// constant is 5 even though the documented coop range tops out at 3; the
// mismatch is longstanding observed behavior and is kept as is.
func (s *reviewService) GetReviews(f ReviewFilter) []model.Review {
	matched := s.reviews.All()

	if f.ReviewIDs != nil {
		wanted := intSet(f.ReviewIDs)
		matched = keep(matched, func(r model.Review) bool {
			_, ok := wanted[r.ReviewID]
			return ok
		})
	}

	if f.UserIDs != nil {
		wanted := intSet(f.UserIDs)
		matched = keep(matched, func(r model.Review) bool {
			_, ok := wanted[r.UserID]
			return ok
		})
	}

	if f.RoleIDs != nil {
		wanted := intSet(f.RoleIDs)
		matched = keep(matched, func(r model.Review) bool {
			_, ok := wanted[r.RoleID]
			return ok
		})
	}

	if f.MinPay != 0 {
		matched = keep(matched, func(r model.Review) bool { return r.Pay >= f.MinPay })
	}
	if f.MaxPay != 0 && !math.IsInf(f.MaxPay, 1) {
		matched = keep(matched, func(r model.Review) bool { return r.Pay <= f.MaxPay })
	}
	if f.MinRating > 1 {
		matched = keep(matched, func(r model.Review) bool { return r.Rating >= f.MinRating })
	}
	if f.MaxRating != 0 && f.MaxRating <= 5 {
		matched = keep(matched, func(r model.Review) bool { return r.Rating <= f.MaxRating })
	}
	if f.MinCoop != 0 && f.MinCoop != 1 {
		matched = keep(matched, func(r model.Review) bool { return r.Coop >= f.MinCoop })
	}
	if f.MaxCoop != 0 && f.MaxCoop != 5 {
		matched = keep(matched, func(r model.Review) bool { return r.Coop <= f.MaxCoop })
	}

	if matched == nil {
		matched = []model.Review{}
	}
	return matched
}

func (s *reviewService) GetReviewByID(id int) *model.Review {
	review, ok := s.reviews.ByID(id)
	if !ok {
		return nil
	}
	return &review
}

func (s *reviewService) GetReviewsByUserID(userID int) []model.Review {
	return s.reviews.ByUserID(userID)
}

func (s *reviewService) GetReviewsByRoleID(roleID int) []model.Review {
	return s.reviews.ByRoleID(roleID)
}
