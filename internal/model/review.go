package model

// Review is a user's review of a role from one of their co-op terms.
type Review struct {
	ReviewID int     `json:"reviewId"`
	UserID   int     `json:"userId"`
	RoleID   int     `json:"roleId"`
	Pay      float64 `json:"pay"`
	Rating   int     `json:"rating"`
	Coop     int     `json:"coop"`
	Comment  string  `json:"comment"`
}

// PayTrend summarizes pay across a role's reviews. The average is rounded to
// the nearest integer; min and max are the raw reported values.
type PayTrend struct {
	AvgPay int     `json:"avgPay"`
	MinPay float64 `json:"minPay"`
	MaxPay float64 `json:"maxPay"`
}

// RoleTrend aggregates every review of a single role.
type RoleTrend struct {
	RoleID    int      `json:"roleId"`
	Pay       PayTrend `json:"pay"`
	AvgRating int      `json:"avgRating"`
	AvgCoop   int      `json:"avgCoop"`
}
