package model

// Major is an academic major from the fixed catalog.
type Major struct {
	MajorID int    `json:"majorId"`
	Name    string `json:"name"`
}

// MajorLink associates an owning entity (a user or a role) with a major.
// Links are created alongside their owner and never mutated.
type MajorLink struct {
	OwnerID int `json:"ownerId"`
	MajorID int `json:"majorId"`
}
