package quiz

import (
	"math"
	"time"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
)

// pointsPerCorrect is the score for one correct answer. Wrong answers cost nothing.
const pointsPerCorrect = 2

// Session — состояние одной попытки квиза. Принадлежит движку.
type Session struct {
	Category      models.Category
	Questions     []models.QuestionRecord
	CurrentIndex  int
	Phase         Phase
	Score         int
	CurrentStreak int
	BestStreak    int
	CorrectCount  int
	WrongCount    int
	Answers       []models.AnswerRecord
	StartedAt     time.Time
	ShownAt       time.Time
	TimeLeft      time.Duration
	Options       []string
	Notice        string
}

func newSession(category models.Category, questions []models.QuestionRecord, now time.Time) *Session {
	return &Session{
		Category:  category,
		Questions: questions,
		StartedAt: now,
	}
}

// record scores the current question and appends its AnswerRecord.
// selected is nil on timeout.
func (s *Session) record(selected *string, timeSpent int) models.AnswerRecord {
	q := s.Questions[s.CurrentIndex]
	isCorrect := selected != nil && *selected == q.CorrectAnswer

	if isCorrect {
		s.Score += pointsPerCorrect
		s.CurrentStreak++
		s.CorrectCount++
	} else {
		s.CurrentStreak = 0
		s.WrongCount++
	}

	s.BestStreak = max(s.BestStreak, s.CurrentStreak)

	rec := models.AnswerRecord{
		QuestionIndex:    s.CurrentIndex,
		Question:         q.Question,
		SelectedAnswer:   selected,
		CorrectAnswer:    q.CorrectAnswer,
		IsCorrect:        isCorrect,
		TimeSpentSeconds: timeSpent,
	}
	s.Answers = append(s.Answers, rec)

	return rec
}

// answerAt returns the recorded answer for question idx, if any.
func (s *Session) answerAt(idx int) *models.AnswerRecord {
	if idx < 0 || idx >= len(s.Answers) {
		return nil
	}

	rec := s.Answers[idx]
	return &rec
}

func (s *Session) result(id string, now time.Time) *models.QuizResult {
	total := len(s.Questions)
	totalTime := int(math.Round(now.Sub(s.StartedAt).Seconds()))

	answers := make([]models.AnswerRecord, len(s.Answers))
	copy(answers, s.Answers)

	return &models.QuizResult{
		ID:                 id,
		Category:           s.Category,
		Score:              s.Score,
		CorrectAnswers:     s.CorrectCount,
		WrongAnswers:       s.WrongCount,
		TotalQuestions:     total,
		Percentage:         int(math.Round(float64(s.CorrectCount) / float64(total) * 100)),
		BestStreak:         s.BestStreak,
		EndingStreak:       s.CurrentStreak,
		TotalTimeSeconds:   totalTime,
		AvgTimePerQuestion: int(math.Round(float64(totalTime) / float64(total))),
		Date:               now,
		Answers:            answers,
	}
}
