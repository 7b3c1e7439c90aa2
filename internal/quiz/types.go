package quiz

import (
	"context"
	"time"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
)

// Status — статус сессии квиза.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusQuit       Status = "quit"
)

// Phase — подсостояние сессии в статусе in_progress.
type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseRevealing      Phase = "revealing"
	PhaseReviewing      Phase = "reviewing"
)

// Settings содержит тайминги и размер квиза.
type Settings struct {
	QuestionTime time.Duration
	TickInterval time.Duration
	RevealPause  time.Duration
	MaxQuestions int
}

// DefaultSettings возвращает настройки по умолчанию: 30 секунд на вопрос,
// пауза 1.5 секунды после ответа, не больше 20 вопросов.
func DefaultSettings() Settings {
	return Settings{
		QuestionTime: 30 * time.Second,
		TickInterval: time.Second,
		RevealPause:  1500 * time.Millisecond,
		MaxQuestions: 20,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.QuestionTime <= 0 {
		s.QuestionTime = d.QuestionTime
	}
	if s.TickInterval <= 0 {
		s.TickInterval = d.TickInterval
	}
	if s.RevealPause <= 0 {
		s.RevealPause = d.RevealPause
	}
	if s.MaxQuestions <= 0 {
		s.MaxQuestions = d.MaxQuestions
	}

	return s
}

// StartRequest описывает запуск нового квиза.
type StartRequest struct {
	UserID   string
	Category models.Category
	Pool     []models.QuestionRecord
}

// Snapshot is the render state pushed after every transition.
type Snapshot struct {
	Status          Status               `json:"status"`
	Phase           Phase                `json:"phase,omitempty"`
	Category        models.Category      `json:"category,omitempty"`
	CategoryName    string               `json:"categoryName,omitempty"`
	Index           int                  `json:"index"`
	Total           int                  `json:"total"`
	Question        string               `json:"question,omitempty"`
	Difficulty      string               `json:"difficulty,omitempty"`
	Options         []string             `json:"options,omitempty"`
	Score           int                  `json:"score"`
	Streak          int                  `json:"streak"`
	BestStreak      int                  `json:"bestStreak"`
	Answered        int                  `json:"answered"`
	TimeLeftSeconds int                  `json:"timeLeft"`
	Answer          *models.AnswerRecord `json:"answer,omitempty"`
	Notice          string               `json:"notice,omitempty"`
	Result          *models.QuizResult   `json:"result,omitempty"`
}

// Renderer получает снимок состояния после каждого перехода.
// Вызывается под блокировкой движка.
type Renderer interface {
	Render(s Snapshot)
}

// ResultSink получает результат завершенного квиза.
// Вызывается под блокировкой движка, поэтому не должен обращаться к движку.
type ResultSink interface {
	OnFinished(ctx context.Context, userID string, result *models.QuizResult) error
}

// UsedLedger — журнал уже заданных вопросов.
type UsedLedger interface {
	Used(ctx context.Context, userID string, category models.Category) ([]models.UsedQuestion, error)
	Clear(ctx context.Context, userID string, category models.Category) error
}

// Streak milestone notices.
const (
	NoticeOnFire      = "5 in a row! You're on fire!"
	NoticeUnstoppable = "10 streak! Unstoppable!"
	NoticeQuizMaster  = "Amazing streak! You're a quiz master!"
	NoticeTimeUp      = "Time's up!"
)

// StreakNotice returns the milestone notice for a live streak, or "".
func StreakNotice(streak int) string {
	switch {
	case streak == 5:
		return NoticeOnFire
	case streak == 10:
		return NoticeUnstoppable
	case streak >= 15:
		return NoticeQuizMaster
	default:
		return ""
	}
}
