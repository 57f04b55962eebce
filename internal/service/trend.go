package service

import (
	"math"

	"github.com/coopsight/coopsight-backend/internal/model"
)

// roleTrend reduces a homogeneous set of reviews to trend statistics.
// Averages are rounded to the nearest integer; min and max pay come from a
// linear scan. An empty input fails with ErrNoReviews rather than producing
// NaN fields; reviews spanning more than one role fail with ErrMixedRoles.
func roleTrend(reviews []model.Review) (*model.RoleTrend, error) {
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}

	roleID := reviews[0].RoleID
	for _, r := range reviews {
		if r.RoleID != roleID {
			return nil, ErrMixedRoles
		}
	}

	var paySum float64
	var ratingSum, coopSum int
	minPay, maxPay := reviews[0].Pay, reviews[0].Pay

	for _, r := range reviews {
		paySum += r.Pay
		ratingSum += r.Rating
		coopSum += r.Coop
		if r.Pay < minPay {
			minPay = r.Pay
		}
		if r.Pay > maxPay {
			maxPay = r.Pay
		}
	}

	n := float64(len(reviews))
	return &model.RoleTrend{
		RoleID: roleID,
		Pay: model.PayTrend{
			AvgPay: int(math.Round(paySum / n)),
			MinPay: minPay,
			MaxPay: maxPay,
		},
		AvgRating: int(math.Round(float64(ratingSum) / n)),
		AvgCoop:   int(math.Round(float64(coopSum) / n)),
	}, nil
}
