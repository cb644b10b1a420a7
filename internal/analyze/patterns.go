// Package analyze derives behavioral signals from a session set: category
// distribution, a heuristic productivity score, advisory suggestions, work
// block clustering, and peak-hour detection. Every function is pure and
// returns its documented zero-value shape for empty input.
package analyze

import (
	"fmt"
	"math"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// Productivity score weights. Each component is clamped before summing.
const (
	timeScoreMax      = 50.0
	targetHours       = 7.0
	frequencyScoreMax = 30.0
	perSessionPoints  = 5.0
	diversityScoreMax = 20.0
	perCategoryPoints = 10.0
)

// Patterns summarizes a session set. The most common category is decided by
// per-category session count; on ties the category observed first wins.
func Patterns(sessions []*domain.Session) domain.PatternSummary {
	summary := domain.PatternSummary{
		CategoryDistribution: make(map[string]domain.Bucket),
	}
	if len(sessions) == 0 {
		return summary
	}

	var order []string
	for _, s := range sessions {
		b, seen := summary.CategoryDistribution[s.Category]
		if !seen {
			order = append(order, s.Category)
		}
		b.Count++
		b.Duration += s.Duration()
		summary.CategoryDistribution[s.Category] = b

		summary.TotalDuration += s.Duration()
	}
	summary.TotalSessions = len(sessions)

	for _, cat := range order {
		if summary.CategoryDistribution[cat].Count > summary.CategoryDistribution[summary.MostCommonCategory].Count {
			summary.MostCommonCategory = cat
		}
	}
	return summary
}

// Score computes the 0-100 productivity heuristic: up to 50 points for
// hours worked against a 7-hour target, up to 30 for session frequency,
// up to 20 for category diversity.
func Score(sessions []*domain.Session) domain.ProductivityScore {
	if len(sessions) == 0 {
		return domain.ProductivityScore{
			Score:       0,
			Rating:      domain.RatingLow,
			Explanation: "No work sessions recorded",
		}
	}

	summary := Patterns(sessions)
	hours := summary.TotalDuration.Hours()

	timeScore := math.Min(hours/targetHours*timeScoreMax, timeScoreMax)
	frequencyScore := math.Min(float64(len(sessions))*perSessionPoints, frequencyScoreMax)
	diversityScore := math.Min(float64(len(summary.CategoryDistribution))*perCategoryPoints, diversityScoreMax)

	score := int(math.Floor(timeScore + frequencyScore + diversityScore))

	rating := domain.RatingLow
	switch {
	case score >= 80:
		rating = domain.RatingExcellent
	case score >= 60:
		rating = domain.RatingGood
	case score >= 40:
		rating = domain.RatingFair
	}

	return domain.ProductivityScore{
		Score:       score,
		Rating:      rating,
		Explanation: fmt.Sprintf("Based on %d sessions totaling %.1f hours", len(sessions), hours),
	}
}
