package model

// Company is a company offering co-op roles. Companies carry no identity of
// their own; they live in a deduplicated name set and are created implicitly
// when a role references them.
type Company struct {
	Name string `json:"name"`
}

// Role is a co-op position at a company.
//
// SuggestedMajors is denormalized at read time from the role-major links, in
// insertion order.
type Role struct {
	RoleID          int      `json:"roleId"`
	Role            string   `json:"role"`
	Company         string   `json:"company"`
	SuggestedMajors []string `json:"suggestedMajors"`
}
