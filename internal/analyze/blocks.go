package analyze

import (
	"sort"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// BlockGap is the clustering threshold: a session extends the current work
// block only when it starts strictly less than this long after the block's
// accumulated end time. A gap of exactly BlockGap closes the block.
const BlockGap = 30 * time.Minute

// WorkBlocks clusters sessions into contiguous blocks of focused work.
// Sessions missing either timestamp are skipped entirely.
func WorkBlocks(sessions []*domain.Session) []domain.WorkBlock {
	if len(sessions) == 0 {
		return nil
	}

	sorted := make([]*domain.Session, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var blocks []domain.WorkBlock
	var current *domain.WorkBlock

	for _, s := range sorted {
		if s.StartTime.IsZero() || s.EndTime.IsZero() {
			continue
		}

		if current != nil && s.StartTime.Sub(current.EndTime) < BlockGap {
			current.EndTime = s.EndTime
			current.SessionCount++
			current.TotalDuration += s.Duration()
			continue
		}

		if current != nil {
			blocks = append(blocks, *current)
		}
		current = &domain.WorkBlock{
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			SessionCount:  1,
			TotalDuration: s.Duration(),
		}
	}

	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks
}

// PeakHours buckets sessions by the hour of day they started. The peak hour
// holds strictly the most session starts; on ties the hour observed first
// wins. Sessions without a start time are skipped.
func PeakHours(sessions []*domain.Session) domain.PeakHours {
	result := domain.PeakHours{
		HourDistribution: make(map[int]domain.Bucket),
	}

	var order []int
	for _, s := range sessions {
		if s.StartTime.IsZero() {
			continue
		}
		hour := s.StartTime.Hour()
		b, seen := result.HourDistribution[hour]
		if !seen {
			order = append(order, hour)
		}
		b.Count++
		b.Duration += s.Duration()
		result.HourDistribution[hour] = b
	}

	for _, hour := range order {
		if result.PeakHour == nil || result.HourDistribution[hour].Count > result.HourDistribution[*result.PeakHour].Count {
			h := hour
			result.PeakHour = &h
		}
	}
	return result
}
