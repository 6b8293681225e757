package service

import "math"

// ScoreConverterService turns stored scores into the figures shown on a
// result page.
type ScoreConverterService interface {
	// Percentage returns round(total/max*100), or 0 when max is not positive.
	Percentage(totalScore, maxScore int) int
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) Percentage(totalScore, maxScore int) int {
	if maxScore <= 0 || totalScore <= 0 {
		return 0
	}
	if totalScore >= maxScore {
		return 100
	}
	return int(math.Round(float64(totalScore) / float64(maxScore) * 100))
}
