package domain

import "time"

// Bucket is one cell of a grouped breakdown: how many sessions landed in
// the group and how much time they cover.
type Bucket struct {
	Count    int
	Duration time.Duration
}

// CategoryStat aggregates sessions sharing a category label.
type CategoryStat struct {
	Count           int
	TotalDuration   time.Duration
	AverageDuration time.Duration
}

// WorkBlock is a maximal run of sessions whose consecutive start-time gaps
// stay under the clustering threshold. Purely a read-time construct.
type WorkBlock struct {
	StartTime     time.Time
	EndTime       time.Time
	SessionCount  int
	TotalDuration time.Duration
}

// PatternSummary describes the overall shape of a session set.
// MostCommonCategory is empty when there are no sessions.
type PatternSummary struct {
	TotalSessions        int
	TotalDuration        time.Duration
	CategoryDistribution map[string]Bucket
	MostCommonCategory   string
}

type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingLow       Rating = "Low"
)

// ProductivityScore is the 0-100 heuristic combining total hours, session
// frequency, and category diversity.
type ProductivityScore struct {
	Score       int
	Rating      Rating
	Explanation string
}

// PeakHours maps hour-of-day (0-23) to session activity. PeakHour is nil
// when no session carries a start time.
type PeakHours struct {
	HourDistribution map[int]Bucket
	PeakHour         *int
}
