package domain

type Review struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	Avatar       *string `json:"avatar,omitempty"`
	Rating       float64 `json:"rating"` // 1-10
	Date         string  `json:"date"`   // pre-formatted display string
	Comment      string  `json:"comment"`
	StayType     *string `json:"stay_type,omitempty"`
	HelpfulCount int     `json:"helpful_count"`
}

// ReviewSubmission is user input for a new review, validated before a
// Review is created from it.
type ReviewSubmission struct {
	Author  string
	Rating  int // 1-10, 0 means "not selected"
	Comment string
}

type ReviewSort string

const (
	ReviewSortNewest  ReviewSort = "newest"
	ReviewSortHighest ReviewSort = "highest"
	ReviewSortLowest  ReviewSort = "lowest"
)

// RatingDistribution is the five fixed buckets over the 0-10 rating scale.
// Percentages are normalized by the review count; an empty set yields all
// zeros rather than dividing by zero.
type RatingDistribution struct {
	Excellent int `json:"excellent"` // [9,10]
	Great     int `json:"great"`     // [7,9)
	Good      int `json:"good"`      // [5,7)
	Fair      int `json:"fair"`      // [3,5)
	Poor      int `json:"poor"`      // [0,3)

	ExcellentPct float64 `json:"excellent_pct"`
	GreatPct     float64 `json:"great_pct"`
	GoodPct      float64 `json:"good_pct"`
	FairPct      float64 `json:"fair_pct"`
	PoorPct      float64 `json:"poor_pct"`
}
