package service

import (
	"errors"
	"fmt"
)

// Lookup errors. The HTTP layer maps these to 404 on the role-match and
// role-trend paths.
var (
	ErrUserNotFound = errors.New("user does not exist")
	ErrRoleNotFound = errors.New("role does not exist")
)

// Business-rule errors, always mapped to 400.
var (
	ErrDuplicateEmail  = errors.New("a user with this email already exists")
	ErrNoMajors        = errors.New("at least one major is required")
	ErrDuplicateReview = errors.New("user has already reviewed this role")
	ErrMixedRoles      = errors.New("reviews are not for the same role")
	ErrNoReviews       = errors.New("role has no reviews yet")
)

// InvalidMajorError names the first major that failed catalog validation.
type InvalidMajorError struct {
	Name string
}

func (e *InvalidMajorError) Error() string {
	return fmt.Sprintf("invalid major: %s", e.Name)
}

// DuplicateCoopError reports a second review claimed for the same co-op slot.
type DuplicateCoopError struct {
	Coop int
}

func (e *DuplicateCoopError) Error() string {
	return fmt.Sprintf("user already has a review for coop number %d", e.Coop)
}
