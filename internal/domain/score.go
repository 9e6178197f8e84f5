package domain

// ScoreResult is a per-request compatibility figure. It is never persisted.
type ScoreResult struct {
	CandidateID int `json:"candidateId"`
	Percentage  int `json:"percentage"`
}

type MatchQuality string

const (
	MatchQualityExcellent MatchQuality = "excellent"
	MatchQualityGood      MatchQuality = "good"
	MatchQualityFair      MatchQuality = "fair"
	MatchQualityPoor      MatchQuality = "poor"
)

// Quality buckets the percentage for display.
func (s ScoreResult) Quality() MatchQuality {
	switch {
	case s.Percentage >= 80:
		return MatchQualityExcellent
	case s.Percentage >= 60:
		return MatchQualityGood
	case s.Percentage >= 40:
		return MatchQualityFair
	default:
		return MatchQualityPoor
	}
}
