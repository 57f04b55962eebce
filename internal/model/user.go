package model

// User is a platform member who writes co-op reviews.
//
// Major is denormalized at read time: the user's linked major names joined
// with " & " in insertion order. It is never stored.
type User struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Major  string `json:"major"`
}
