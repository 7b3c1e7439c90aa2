package quizzes

import (
	"context"
	"errors"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/storage"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Repo хранит последний результат, флаг завершенного квиза и тему.
type Repo struct {
	st storage.Storage
}

func NewRepo(st storage.Storage) *Repo {
	return &Repo{st: st}
}

// SaveResult сохраняет результат последнего квиза.
func (r *Repo) SaveResult(ctx context.Context, result *models.QuizResult) error {
	return storage.SetJSON(ctx, r.st, storage.KeyCurrentQuizResults, result)
}

// LastResult возвращает результат последнего квиза или models.ErrNotFound.
func (r *Repo) LastResult(ctx context.Context) (*models.QuizResult, error) {
	var result models.QuizResult

	found, err := storage.GetJSON(ctx, r.st, storage.KeyCurrentQuizResults, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.ErrNotFound
	}

	return &result, nil
}

// MarkJustCompleted ставит флаг для дашборда.
func (r *Repo) MarkJustCompleted(ctx context.Context) error {
	return r.st.Set(ctx, storage.KeyJustCompletedQuiz, "true")
}

// ConsumeJustCompleted возвращает флаг и сбрасывает его.
func (r *Repo) ConsumeJustCompleted(ctx context.Context) (bool, error) {
	value, err := r.st.Get(ctx, storage.KeyJustCompletedQuiz)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = r.st.Remove(ctx, storage.KeyJustCompletedQuiz); err != nil {
		return false, err
	}

	return value == "true", nil
}

// Theme возвращает сохраненную тему, по умолчанию светлую.
func (r *Repo) Theme(ctx context.Context) (Theme, error) {
	value, err := r.st.Get(ctx, storage.KeyTheme)
	if errors.Is(err, storage.ErrNotFound) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", err
	}

	if Theme(value) == ThemeDark {
		return ThemeDark, nil
	}

	return ThemeLight, nil
}

func (r *Repo) SetTheme(ctx context.Context, theme Theme) error {
	return r.st.Set(ctx, storage.KeyTheme, string(theme))
}
