package analyze

import (
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

// Suggestion thresholds.
const (
	longSessionThreshold  = 4 * time.Hour
	overworkHours         = 10.0
	underworkHours        = 2.0
	manySessions          = 20
	fewSessions           = 3
	devShareThreshold     = 0.8
	meetingShareThreshold = 0.5
)

// Suggest returns rule-based advisory messages, evaluated in a fixed order.
// Each rule contributes at most one message; a generic positive message is
// emitted when no rule fires.
func Suggest(sessions []*domain.Session) []string {
	if len(sessions) == 0 {
		return []string{"Start tracking your work sessions to get personalized insights!"}
	}

	var suggestions []string
	summary := Patterns(sessions)
	total := summary.TotalDuration

	for _, s := range sessions {
		if s.Duration() > longSessionThreshold {
			suggestions = append(suggestions, "Consider taking breaks during long coding sessions to maintain focus and prevent burnout.")
			break
		}
	}

	if len(summary.CategoryDistribution) == 1 {
		suggestions = append(suggestions, "Try to balance your work across different categories for a more diverse and sustainable workflow.")
	}

	hours := total.Hours()
	if hours > overworkHours {
		suggestions = append(suggestions, "You've been working long hours. Remember to take time for rest and recovery.")
	} else if hours < underworkHours {
		suggestions = append(suggestions, "Consider increasing your focused work time to boost productivity.")
	}

	if len(sessions) > manySessions {
		suggestions = append(suggestions, "Great consistency! You're maintaining a steady work rhythm.")
	} else if len(sessions) < fewSessions {
		suggestions = append(suggestions, "Try to break your work into more focused sessions throughout the day.")
	}

	if dev, ok := summary.CategoryDistribution["development"]; ok {
		if float64(dev.Duration) > float64(total)*devShareThreshold {
			suggestions = append(suggestions, "Heavy development day! Consider scheduling code reviews or documentation time.")
		}
	}

	if meet, ok := summary.CategoryDistribution["meetings"]; ok {
		if float64(meet.Duration) > float64(total)*meetingShareThreshold {
			suggestions = append(suggestions, "High meeting load today. Try to protect some blocks for deep work.")
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Keep up the great work! Your productivity patterns look healthy.")
	}

	return suggestions
}
