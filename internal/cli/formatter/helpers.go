package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// Elapsed renders a duration as "2h 15m 30s", omitting zero-valued leading
// units. A zero duration renders as "0s".
func Elapsed(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	out := ""
	if hours > 0 {
		out += fmt.Sprintf("%dh ", hours)
	}
	if minutes > 0 {
		out += fmt.Sprintf("%dm ", minutes)
	}
	if seconds > 0 || out == "" {
		out += fmt.Sprintf("%ds", seconds)
	}
	return trimTrailingSpace(out)
}

// HoursMinutes renders a duration as "{h}h {m}m", dropping the minutes
// clause when zero, or "{m}m" under an hour.
func HoursMinutes(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60

	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

// RatingPill returns a colored productivity rating indicator.
func RatingPill(r domain.Rating) string {
	switch r {
	case domain.RatingExcellent:
		return StyleGreen.Render("● Excellent")
	case domain.RatingGood:
		return StyleBlue.Render("● Good")
	case domain.RatingFair:
		return StyleYellow.Render("● Fair")
	case domain.RatingLow:
		return StyleRed.Render("● Low")
	default:
		return StyleDim.Render(string(r))
	}
}

// CategoryBadge renders a category label in the accent color.
func CategoryBadge(name string) string {
	if name == "" {
		return StyleDim.Render("--")
	}
	return StyleYellow.Render(name)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

func trimTrailingSpace(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
