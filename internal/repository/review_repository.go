package repository

import (
	"github.com/coopsight/coopsight-backend/internal/model"
)

type ReviewRepository interface {
	NextID() int
	Append(review model.Review)
	All() []model.Review
	ByID(id int) (model.Review, bool)
	ByUserID(userID int) []model.Review
	ByRoleID(roleID int) []model.Review
	Reset()
}

type reviewRepository struct {
	seq     sequence
	reviews []model.Review
}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{seq: newSequence()}
}

func (r *reviewRepository) NextID() int {
	return r.seq.NextID()
}

func (r *reviewRepository) Append(review model.Review) {
	r.reviews = append(r.reviews, review)
}

// All returns a copy of the stored reviews in insertion order.
func (r *reviewRepository) All() []model.Review {
	out := make([]model.Review, len(r.reviews))
	copy(out, r.reviews)
	return out
}

func (r *reviewRepository) ByID(id int) (model.Review, bool) {
	for _, rev := range r.reviews {
		if rev.ReviewID == id {
			return rev, true
		}
	}
	return model.Review{}, false
}

func (r *reviewRepository) ByUserID(userID int) []model.Review {
	var out []model.Review
	for _, rev := range r.reviews {
		if rev.UserID == userID {
			out = append(out, rev)
		}
	}
	return out
}

func (r *reviewRepository) ByRoleID(roleID int) []model.Review {
	var out []model.Review
	for _, rev := range r.reviews {
		if rev.RoleID == roleID {
			out = append(out, rev)
		}
	}
	return out
}

func (r *reviewRepository) Reset() {
	r.reviews = nil
	r.seq.Reset()
}
