package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0s"},
		{"seconds", 42 * time.Second, "42s"},
		{"minutes and seconds", 5*time.Minute + 3*time.Second, "5m 3s"},
		{"whole minutes", 10 * time.Minute, "10m"},
		{"full", 2*time.Hour + 15*time.Minute + 30*time.Second, "2h 15m 30s"},
		{"hours only", 3 * time.Hour, "3h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elapsed(tt.d))
		})
	}
}

func TestHoursMinutes(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0m"},
		{"under an hour", 45 * time.Minute, "45m"},
		{"whole hours", 2 * time.Hour, "2h"},
		{"mixed", time.Hour + 30*time.Minute, "1h 30m"},
		{"seconds truncated", time.Hour + 59*time.Second, "1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HoursMinutes(tt.d))
		})
	}
}

func TestRatingPill(t *testing.T) {
	assert.Contains(t, RatingPill(domain.RatingExcellent), "Excellent")
	assert.Contains(t, RatingPill(domain.RatingGood), "Good")
	assert.Contains(t, RatingPill(domain.RatingFair), "Fair")
	assert.Contains(t, RatingPill(domain.RatingLow), "Low")
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "012345678")
	assert.Contains(t, TruncID("abc"), "abc")
}

func TestRenderBar(t *testing.T) {
	t.Run("half full", func(t *testing.T) {
		bar := RenderBar(5, 10, 20)
		assert.Equal(t, 10, strings.Count(bar, filledBlock))
		assert.Equal(t, 10, strings.Count(bar, emptyBlock))
	})

	t.Run("full", func(t *testing.T) {
		bar := RenderBar(10, 10, 20)
		assert.Equal(t, 20, strings.Count(bar, filledBlock))
	})

	t.Run("zero max", func(t *testing.T) {
		bar := RenderBar(5, 0, 20)
		assert.Equal(t, 0, strings.Count(bar, filledBlock))
		assert.Equal(t, 20, strings.Count(bar, emptyBlock))
	})

	t.Run("value over max clamps", func(t *testing.T) {
		bar := RenderBar(15, 10, 20)
		assert.Equal(t, 20, strings.Count(bar, filledBlock))
	})
}
