package stats

import "github.com/letsssgooo/quizMaster/internal/domain/models"

// Achievement is a badge shown on the results page.
type Achievement struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Achievement thresholds.
const (
	highScoreThreshold  = 50
	hotStreakThreshold  = 10
	speedDemonSeconds   = 10
	categoryExpertShare = 80
)

// CheckAchievements returns the badges earned by result. stats must already include it.
func CheckAchievements(stats models.UserStats, result *models.QuizResult) []Achievement {
	var earned []Achievement

	if stats.TotalQuizzes == 1 {
		earned = append(earned, Achievement{Key: "first_quiz", Title: "First Quiz Completed!"})
	}

	if result.Percentage == 100 {
		earned = append(earned, Achievement{Key: "perfect_score", Title: "Perfect Score!"})
	}

	if result.Score >= highScoreThreshold {
		earned = append(earned, Achievement{Key: "high_scorer", Title: "High Scorer!"})
	}

	if result.BestStreak >= hotStreakThreshold {
		earned = append(earned, Achievement{Key: "hot_streak", Title: "Hot Streak!"})
	}

	if result.AvgTimePerQuestion <= speedDemonSeconds {
		earned = append(earned, Achievement{Key: "speed_demon", Title: "Speed Demon!"})
	}

	if result.Percentage >= categoryExpertShare {
		earned = append(earned, Achievement{
			Key:   "category_expert",
			Title: models.DisplayName(string(result.Category)) + " Expert!",
		})
	}

	return earned
}
