package analyze

import (
	"testing"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/alexanderramin/tasktimer/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPatterns(t *testing.T) {
	sessions := []*domain.Session{
		testutil.Span("A", "dev", 9, 0, 10, 0),
		testutil.Span("B", "meet", 10, 0, 10, 30),
		testutil.Span("C", "dev", 11, 0, 12, 0),
	}

	got := Patterns(sessions)

	assert.Equal(t, 3, got.TotalSessions)
	assert.Equal(t, 2*time.Hour+30*time.Minute, got.TotalDuration)
	assert.Equal(t, "dev", got.MostCommonCategory)
	assert.Equal(t, domain.Bucket{Count: 2, Duration: 2 * time.Hour}, got.CategoryDistribution["dev"])
	assert.Equal(t, domain.Bucket{Count: 1, Duration: 30 * time.Minute}, got.CategoryDistribution["meet"])
}

func TestPatternsTieBreaksOnFirstSeen(t *testing.T) {
	sessions := []*domain.Session{
		testutil.Span("A", "meet", 9, 0, 9, 30),
		testutil.Span("B", "dev", 10, 0, 12, 0),
	}

	// Equal counts: the first category encountered wins, regardless of duration.
	assert.Equal(t, "meet", Patterns(sessions).MostCommonCategory)
}

func TestPatternsEmpty(t *testing.T) {
	got := Patterns(nil)

	assert.Equal(t, 0, got.TotalSessions)
	assert.Equal(t, time.Duration(0), got.TotalDuration)
	assert.Empty(t, got.CategoryDistribution)
	assert.Empty(t, got.MostCommonCategory)
}

func TestScore(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := Score(nil)
		assert.Equal(t, 0, got.Score)
		assert.Equal(t, domain.RatingLow, got.Rating)
		assert.Contains(t, got.Explanation, "No work sessions")
	})

	t.Run("more time scores higher", func(t *testing.T) {
		long := Score([]*domain.Session{testutil.Span("A", "dev", 9, 0, 13, 0)})   // 4h
		short := Score([]*domain.Session{testutil.Span("A", "dev", 9, 0, 9, 30)}) // 30m
		assert.Greater(t, long.Score, short.Score)
	})

	t.Run("component clamps", func(t *testing.T) {
		// 12 hours across 10 sessions in 3 categories: every component capped
		// except diversity (3*10 < 20 cap is exceeded too). 50+30+20 = 100.
		var sessions []*domain.Session
		cats := []string{"dev", "meet", "docs"}
		for i := 0; i < 10; i++ {
			s := testutil.NewTestSession("task",
				testutil.WithCategory(cats[i%3]),
				testutil.WithStart(testutil.At(8, 0).Add(time.Duration(i)*90*time.Minute)),
			)
			s.EndTime = s.StartTime.Add(72 * time.Minute) // 10 * 72m = 12h total
			sessions = append(sessions, s)
		}

		got := Score(sessions)
		assert.Equal(t, 100, got.Score)
		assert.Equal(t, domain.RatingExcellent, got.Rating)
	})

	t.Run("rating thresholds", func(t *testing.T) {
		// One 1h session in one category: 1/7*50 + 5 + 10 = ~22.14 -> 22, Low.
		one := Score([]*domain.Session{testutil.Span("A", "dev", 9, 0, 10, 0)})
		assert.Equal(t, 22, one.Score)
		assert.Equal(t, domain.RatingLow, one.Rating)
	})

	t.Run("explanation", func(t *testing.T) {
		got := Score([]*domain.Session{testutil.Span("A", "dev", 9, 0, 10, 30)})
		assert.Equal(t, "Based on 1 sessions totaling 1.5 hours", got.Explanation)
	})
}
