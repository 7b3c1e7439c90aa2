package models

import "fmt"

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Verdict is the headline shown on the results page.
type Verdict struct {
	Tier     string `json:"tier"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Headline string `json:"headline"`
	Message  string `json:"message"`
}

// VerdictFor picks the results headline for a percentage.
func VerdictFor(percentage int) Verdict {
	switch {
	case percentage >= 90:
		return Verdict{
			Tier:     "excellent",
			Title:    "Excellent!",
			Subtitle: "Outstanding performance!",
			Headline: "Outstanding!",
			Message:  "You are a true quiz master! Your knowledge is impressive.",
		}
	case percentage >= 70:
		return Verdict{
			Tier:     "good",
			Title:    "Great Job!",
			Subtitle: "You did really well!",
			Headline: "Well Done!",
			Message:  "Great performance! You have a solid understanding of the topic.",
		}
	case percentage >= 50:
		return Verdict{
			Tier:     "average",
			Title:    "Good Effort!",
			Subtitle: "Keep practicing to improve!",
			Headline: "Good Job!",
			Message:  "You are on the right track. A bit more practice will make you even better!",
		}
	default:
		return Verdict{
			Tier:     "poor",
			Title:    "Try Again!",
			Subtitle: "Don't give up, you can do better!",
			Headline: "Keep Learning!",
			Message:  "Every expert was once a beginner. Keep practicing and you will improve!",
		}
	}
}

// ShareText is the text offered when a player shares a result.
func ShareText(r *QuizResult) string {
	return fmt.Sprintf(
		"I just scored %d points in %s quiz! %d%% accuracy. Can you beat my score?",
		r.Score, DisplayName(string(r.Category)), r.Percentage,
	)
}
