package report

import (
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// CategoryStats aggregates count, total, and average duration per category.
// Empty input yields an empty map. Buckets exist only for observed
// categories, so the average never divides by zero.
func CategoryStats(sessions []*domain.Session) map[string]domain.CategoryStat {
	stats := make(map[string]domain.CategoryStat)
	for _, s := range sessions {
		st := stats[s.Category]
		st.Count++
		st.TotalDuration += s.Duration()
		stats[s.Category] = st
	}

	for cat, st := range stats {
		st.AverageDuration = st.TotalDuration / time.Duration(st.Count)
		stats[cat] = st
	}
	return stats
}

// categoryBreakdown groups sessions into count/duration buckets by category.
func categoryBreakdown(sessions []*domain.Session) map[string]domain.Bucket {
	breakdown := make(map[string]domain.Bucket)
	for _, s := range sessions {
		b := breakdown[s.Category]
		b.Count++
		b.Duration += s.Duration()
		breakdown[s.Category] = b
	}
	return breakdown
}
