package models

import (
	"time"
)

// Models shared by the engine, the aggregator and the storage repositories.
// JSON field names follow the blobs kept in the local store.

// MaxHistory is the number of most recent results kept per account.
const MaxHistory = 50

// QuestionRecord is one multiple-choice question. Identity is Question.
type QuestionRecord struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	Difficulty       string   `json:"difficulty"`
}

// Options returns the incorrect answers followed by the correct one.
func (q QuestionRecord) Options() []string {
	options := make([]string, 0, len(q.IncorrectAnswers)+1)
	options = append(options, q.IncorrectAnswers...)

	return append(options, q.CorrectAnswer)
}

// AnswerRecord is appended once per question. SelectedAnswer is nil on timeout.
type AnswerRecord struct {
	QuestionIndex    int     `json:"questionIndex"`
	Question         string  `json:"question"`
	SelectedAnswer   *string `json:"selectedAnswer"`
	CorrectAnswer    string  `json:"correctAnswer"`
	IsCorrect        bool    `json:"isCorrect"`
	TimeSpentSeconds int     `json:"timeSpent"`
}

// QuizResult is the summary of a finished session.
type QuizResult struct {
	ID                 string         `json:"id"`
	Category           Category       `json:"category"`
	Score              int            `json:"score"`
	CorrectAnswers     int            `json:"correctAnswers"`
	WrongAnswers       int            `json:"wrongAnswers"`
	TotalQuestions     int            `json:"totalQuestions"`
	Percentage         int            `json:"percentage"`
	BestStreak         int            `json:"streak"`
	EndingStreak       int            `json:"endingStreak"`
	TotalTimeSeconds   int            `json:"totalTime"`
	AvgTimePerQuestion int            `json:"avgTimePerQuestion"`
	Date               time.Time      `json:"date"`
	Answers            []AnswerRecord `json:"userAnswers"`
}

// UserStats holds lifetime statistics of an account.
type UserStats struct {
	HighestScore  int              `json:"highestScore"`
	LastScore     int              `json:"lastScore"`
	CurrentStreak int              `json:"currentStreak"`
	BestStreak    int              `json:"bestStreak"`
	TotalQuizzes  int              `json:"totalQuizzes"`
	CategoryBests map[Category]int `json:"categoryBests"`
}

// NewUserStats returns zeroed stats with every known category present.
func NewUserStats() UserStats {
	bests := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		bests[c] = 0
	}

	return UserStats{CategoryBests: bests}
}

// UserAccount is a registered user. Password holds a hash, never the plain text.
type UserAccount struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	JoinDate time.Time    `json:"joinDate"`
	Stats    UserStats    `json:"stats"`
	History  []QuizResult `json:"history"`
}

// HasResult reports whether a result with the given id is in the retained history.
// Results evicted beyond MaxHistory are not found.
func (u *UserAccount) HasResult(resultID string) bool {
	if resultID == "" {
		return false
	}

	for _, r := range u.History {
		if r.ID == resultID {
			return true
		}
	}

	return false
}

// RecentHistory returns up to n results, newest first.
func (u *UserAccount) RecentHistory(n int) []QuizResult {
	if n <= 0 || n > len(u.History) {
		n = len(u.History)
	}

	recent := make([]QuizResult, 0, n)
	for i := len(u.History) - 1; i >= len(u.History)-n; i-- {
		recent = append(recent, u.History[i])
	}

	return recent
}

// UsedQuestion is one ledger entry.
type UsedQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}
