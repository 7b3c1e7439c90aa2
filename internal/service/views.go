package service

import (
	"context"
	"time"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/stats"
)

// recentOnDashboard is the number of history entries shown on the dashboard.
const recentOnDashboard = 5

type CategoryInfo struct {
	Key  models.Category `json:"key"`
	Name string          `json:"name"`
}

// Profile is an account without its password hash and history.
type Profile struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	JoinDate time.Time        `json:"joinDate"`
	Stats    models.UserStats `json:"stats"`
}

func ProfileOf(u *models.UserAccount) Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		JoinDate: u.JoinDate,
		Stats:    u.Stats,
	}
}

type CategoryBest struct {
	Category models.Category `json:"category"`
	Name     string          `json:"name"`
	Best     int             `json:"best"`
}

type HistoryEntry struct {
	ID           string          `json:"id"`
	Category     models.Category `json:"category"`
	CategoryName string          `json:"categoryName"`
	Score        int             `json:"score"`
	Percentage   int             `json:"percentage"`
	Correct      int             `json:"correctAnswers"`
	Total        int             `json:"totalQuestions"`
	TotalTime    string          `json:"totalTime"`
	Date         time.Time       `json:"date"`
}

type Dashboard struct {
	Profile       Profile        `json:"profile"`
	CategoryBests []CategoryBest `json:"categoryBests"`
	Recent        []HistoryEntry `json:"recent"`
	JustCompleted bool           `json:"justCompleted"`
}

type ResultView struct {
	Result       *models.QuizResult  `json:"result"`
	CategoryName string              `json:"categoryName"`
	TotalTime    string              `json:"totalTime"`
	Verdict      models.Verdict      `json:"verdict"`
	Achievements []stats.Achievement `json:"achievements"`
}

// Categories возвращает список категорий в порядке отображения.
func (s *Service) Categories() []CategoryInfo {
	list := make([]CategoryInfo, 0, len(models.Categories))
	for _, c := range models.Categories {
		list = append(list, CategoryInfo{Key: c, Name: models.DisplayName(string(c))})
	}

	return list
}

// Dashboard собирает данные дашборда. Флаг завершенного квиза сбрасывается при чтении.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	user, err := s.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	justCompleted, err := s.quizzes.ConsumeJustCompleted(ctx)
	if err != nil {
		s.log.Warn("can not read completion flag", "error", err)
	}

	bests := make([]CategoryBest, 0, len(models.Categories))
	for _, c := range models.Categories {
		bests = append(bests, CategoryBest{
			Category: c,
			Name:     models.DisplayName(string(c)),
			Best:     user.Stats.CategoryBests[c],
		})
	}

	return &Dashboard{
		Profile:       ProfileOf(user),
		CategoryBests: bests,
		Recent:        historyEntries(user.RecentHistory(recentOnDashboard)),
		JustCompleted: justCompleted,
	}, nil
}

// History возвращает всю историю активного пользователя, новые сверху.
func (s *Service) History(ctx context.Context) ([]HistoryEntry, error) {
	user, err := s.auth.Current(ctx)
	if err != nil {
		return nil, err
	}

	return historyEntries(user.RecentHistory(0)), nil
}

// CurrentResult возвращает последний результат с вердиктом и достижениями.
func (s *Service) CurrentResult(ctx context.Context) (*ResultView, error) {
	last, err := s.quizzes.LastResult(ctx)
	if err != nil {
		return nil, err
	}

	view := &ResultView{
		Result:       last,
		CategoryName: models.DisplayName(string(last.Category)),
		TotalTime:    models.FormatTime(last.TotalTimeSeconds),
		Verdict:      models.VerdictFor(last.Percentage),
	}

	if user, err := s.auth.Current(ctx); err == nil {
		view.Achievements = stats.CheckAchievements(user.Stats, last)
	}

	return view, nil
}

func historyEntries(results []models.QuizResult) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, HistoryEntry{
			ID:           r.ID,
			Category:     r.Category,
			CategoryName: models.DisplayName(string(r.Category)),
			Score:        r.Score,
			Percentage:   r.Percentage,
			Correct:      r.CorrectAnswers,
			Total:        r.TotalQuestions,
			TotalTime:    models.FormatTime(r.TotalTimeSeconds),
			Date:         r.Date,
		})
	}

	return entries
}
