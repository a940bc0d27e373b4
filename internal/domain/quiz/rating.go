package quiz

// Rating grades a finished quiz for the result screen.
type Rating string

// Ratings, from best to worst
const (
	RatingExcellent    Rating = "excellent"
	RatingGood         Rating = "good"
	RatingKeepLearning Rating = "keep_learning"
)

const (
	excellentThreshold = 0.8
	goodThreshold      = 0.6
)

// Title returns the headline shown for the rating.
func (r Rating) Title() string {
	switch r {
	case RatingExcellent:
		return "Excellent!"
	case RatingGood:
		return "Good Job!"
	default:
		return "Keep Learning!"
	}
}

// Message returns the encouragement line shown under the title.
func (r Rating) Message() string {
	switch r {
	case RatingExcellent:
		return "You're a true space expert!"
	case RatingGood:
		return "You know your cosmos!"
	default:
		return "Practice makes perfect!"
	}
}

// Result is the final score of a completed Session.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Fraction returns Score/Total, or 0 for an empty result.
func (r Result) Fraction() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// Rating grades the result.
func (r Result) Rating() Rating {
	f := r.Fraction()
	switch {
	case f >= excellentThreshold:
		return RatingExcellent
	case f >= goodThreshold:
		return RatingGood
	default:
		return RatingKeepLearning
	}
}
