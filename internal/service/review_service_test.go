package service

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedReviewFixture creates two users, two roles, and three reviews.
func seedReviewFixture(t *testing.T) *fixture {
	t.Helper()

	f := newFixture(t)
	f.mustAddUser(t, "Ada", "ada@example.com", "COMPUTER SCIENCE")
	f.mustAddUser(t, "Grace", "grace@example.com", "MATH")
	f.mustAddRole(t, "Backend", "Acme", "COMPUTER SCIENCE")
	f.mustAddRole(t, "Quant", "Fund", "MATH")

	for _, rev := range []struct {
		userID, roleID int
		pay            float64
		rating, coop   int
	}{
		{1, 1, 30, 5, 1},
		{1, 2, 22, 3, 2},
		{2, 1, 18, 2, 1},
	} {
		_, err := f.reviews.AddReview(rev.userID, rev.roleID, rev.pay, rev.rating, rev.coop, "")
		require.NoError(t, err)
	}
	return f
}

func TestAddReviewResolvesReferences(t *testing.T) {
	f := newFixture(t)
	f.mustAddRole(t, "Backend", "Acme", "COMPUTER SCIENCE")

	_, err := f.reviews.AddReview(42, 1, 20, 4, 1, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	f.mustAddUser(t, "Ada", "ada@example.com", "COMPUTER SCIENCE")
	_, err = f.reviews.AddReview(1, 42, 20, 4, 1, "")
	assert.ErrorIs(t, err, ErrRoleNotFound)

	assert.Empty(t, f.revRepo.All())
}

func TestAddReviewRejectsSecondReviewOfSameRole(t *testing.T) {
	f := seedReviewFixture(t)

	_, err := f.reviews.AddReview(1, 1, 40, 5, 3, "")

	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.Len(t, f.revRepo.All(), 3)
}

func TestAddReviewRejectsSecondReviewOfSameCoop(t *testing.T) {
	f := seedReviewFixture(t)
	f.mustAddRole(t, "Designer", "Studio", "DESIGN")

	_, err := f.reviews.AddReview(1, 3, 40, 5, 1, "")

	var dup *DuplicateCoopError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.Coop)
	assert.Len(t, f.revRepo.All(), 3)
}

func TestAddReviewDuplicateRoleWinsOverDuplicateCoop(t *testing.T) {
	f := seedReviewFixture(t)

	// User 1 already reviewed role 1 during coop 1; the role check fires
	// first because it is evaluated first per scanned review.
	_, err := f.reviews.AddReview(1, 1, 40, 5, 1, "")

	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestGetReviewsNoFiltersReturnsEverything(t *testing.T) {
	f := seedReviewFixture(t)

	got := f.reviews.GetReviews(DefaultReviewFilter())

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ReviewID)
	assert.Equal(t, 3, got[2].ReviewID)
}

func TestGetReviewsIDFilters(t *testing.T) {
	f := seedReviewFixture(t)

	filter := DefaultReviewFilter()
	filter.UserIDs = []int{1}
	assert.Len(t, f.reviews.GetReviews(filter), 2)

	filter = DefaultReviewFilter()
	filter.RoleIDs = []int{1}
	filter.ReviewIDs = []int{1, 2}
	got := f.reviews.GetReviews(filter)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ReviewID)
}

func TestGetReviewsPayBounds(t *testing.T) {
	f := seedReviewFixture(t)

	filter := DefaultReviewFilter()
	filter.MinPay = 20
	filter.MaxPay = 25
	got := f.reviews.GetReviews(filter)

	require.Len(t, got, 1)
	assert.Equal(t, 22.0, got[0].Pay)
}

func TestGetReviewsNeutralBoundsAreNoOps(t *testing.T) {
	f := seedReviewFixture(t)

	// Each bound set to its neutral constant leaves the result untouched.
	filter := DefaultReviewFilter()
	filter.MinPay = 0
	filter.MaxPay = math.Inf(1)
	filter.MinRating = 1
	filter.MaxRating = 5
	filter.MinCoop = 1
	filter.MaxCoop = 5

	assert.Len(t, f.reviews.GetReviews(filter), 3)
}

func TestGetReviewsMaxCoopNeutralConstantIsFive(t *testing.T) {
	f := seedReviewFixture(t)

	// maxCoop=5 is ignored even though coop values top out at 3; maxCoop=1
	// actually narrows.
	filter := DefaultReviewFilter()
	filter.MaxCoop = 5
	assert.Len(t, f.reviews.GetReviews(filter), 3)

	filter.MaxCoop = 1
	assert.Len(t, f.reviews.GetReviews(filter), 2)
}

func TestGetReviewsRatingBounds(t *testing.T) {
	f := seedReviewFixture(t)

	filter := DefaultReviewFilter()
	filter.MinRating = 3
	assert.Len(t, f.reviews.GetReviews(filter), 2)

	// minRating=1 is the neutral value and filters nothing.
	filter = DefaultReviewFilter()
	filter.MinRating = 1
	assert.Len(t, f.reviews.GetReviews(filter), 3)

	filter = DefaultReviewFilter()
	filter.MaxRating = 2
	got := f.reviews.GetReviews(filter)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ReviewID)
}

func TestGetReviewsEmptyResultIsEmptyNotNil(t *testing.T) {
	f := newFixture(t)

	got := f.reviews.GetReviews(DefaultReviewFilter())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetReviewByID(t *testing.T) {
	f := seedReviewFixture(t)

	rev := f.reviews.GetReviewByID(2)
	require.NotNil(t, rev)
	assert.Equal(t, 22.0, rev.Pay)

	assert.Nil(t, f.reviews.GetReviewByID(42))
}

func TestGetReviewsByUserAndRole(t *testing.T) {
	f := seedReviewFixture(t)

	assert.Len(t, f.reviews.GetReviewsByUserID(1), 2)
	assert.Len(t, f.reviews.GetReviewsByRoleID(1), 2)
	assert.Empty(t, f.reviews.GetReviewsByRoleID(9))
}

func TestSystemResetRestartsIDsAtOne(t *testing.T) {
	f := seedReviewFixture(t)
	sys := NewSystemService(
		f.userRepo, f.roleRepo, f.revRepo, f.companies, f.userLinks, f.roleLinks, zerolog.Nop())

	// Resetting twice leaves the same empty state as resetting once.
	sys.ResetAll()
	sys.ResetAll()

	assert.Empty(t, f.users.GetUsers(nil, nil, nil, nil))
	assert.Empty(t, f.reviews.GetReviews(DefaultReviewFilter()))
	assert.False(t, f.companies.Exists("Acme"))

	user := f.mustAddUser(t, "Ada", "ada@again.example.com", "MATH")
	assert.Equal(t, 1, user.UserID)
	assert.Equal(t, "MATH", user.Major)
}
