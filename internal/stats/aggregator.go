package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
)

// AccountStore — хранилище аккаунтов, нужное агрегатору.
type AccountStore interface {
	FindByID(ctx context.Context, id string) (*models.UserAccount, error)
	Save(ctx context.Context, user *models.UserAccount) error
	Current(ctx context.Context) (*models.UserAccount, error)
	SetCurrent(ctx context.Context, user *models.UserAccount) error
}

// UsedAppender дописывает вопросы в журнал заданных.
type UsedAppender interface {
	Append(ctx context.Context, userID string, category models.Category, entries []models.UsedQuestion) error
}

// Aggregator folds finished results into the owner's lifetime stats and history.
// A result is applied at most once per account, keyed by its ID.
type Aggregator struct {
	accounts AccountStore
	used     UsedAppender
	log      *slog.Logger
}

func NewAggregator(accounts AccountStore, used UsedAppender) *Aggregator {
	return &Aggregator{
		accounts: accounts,
		used:     used,
		log:      slog.Default().With("component", "stats"),
	}
}

// Apply обновляет статистику и историю пользователя и сохраняет их.
// Повторное применение того же результата возвращает models.ErrResultAlreadyApplied.
// Повтор распознается только пока результат остается в истории (models.MaxHistory записей).
// currentUser обновляется, только если активен владелец результата.
// Ошибки записи оборачивают models.ErrPersistence, аккаунт в памяти при этом уже обновлен.
func (a *Aggregator) Apply(ctx context.Context, userID string, result *models.QuizResult) (*models.UserAccount, error) {
	account, err := a.accounts.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load account %s: %w", userID, err)
	}

	if account.HasResult(result.ID) {
		return account, fmt.Errorf("result %s: %w", result.ID, models.ErrResultAlreadyApplied)
	}

	Fold(&account.Stats, result)
	account.History = AppendHistory(account.History, *result)

	// Writes are independent: each one is attempted whatever happened to the others.
	var errs []error

	if err = a.accounts.Save(ctx, account); err != nil {
		errs = append(errs, fmt.Errorf("save account: %w", err))
	}

	if err = a.mirrorCurrent(ctx, account); err != nil {
		errs = append(errs, fmt.Errorf("save current user: %w", err))
	}

	if err = a.used.Append(ctx, userID, result.Category, UsedFrom(result)); err != nil {
		errs = append(errs, fmt.Errorf("save used questions: %w", err))
	}

	if len(errs) > 0 {
		return account, fmt.Errorf("%w: %w", models.ErrPersistence, errors.Join(errs...))
	}

	a.log.Info("stats updated",
		"user", userID,
		"result", result.ID,
		"total_quizzes", account.Stats.TotalQuizzes,
		"best_streak", account.Stats.BestStreak,
	)

	return account, nil
}

// mirrorCurrent rewrites currentUser when account is the active user.
func (a *Aggregator) mirrorCurrent(ctx context.Context, account *models.UserAccount) error {
	current, err := a.accounts.Current(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if current.ID != account.ID {
		a.log.Debug("owner is not the active user, current user left as is", "user", account.ID, "current", current.ID)
		return nil
	}

	return a.accounts.SetCurrent(ctx, account)
}

// Fold applies one result to stats. Best and highest fields never decrease.
func Fold(stats *models.UserStats, result *models.QuizResult) {
	stats.LastScore = result.Score
	stats.TotalQuizzes++
	stats.HighestScore = max(stats.HighestScore, result.Score)
	stats.BestStreak = max(stats.BestStreak, result.BestStreak)

	if result.EndingStreak > 0 {
		stats.CurrentStreak = max(stats.CurrentStreak, result.BestStreak)
	} else {
		stats.CurrentStreak = result.BestStreak
	}

	if stats.CategoryBests == nil {
		stats.CategoryBests = make(map[models.Category]int)
	}
	stats.CategoryBests[result.Category] = max(stats.CategoryBests[result.Category], result.Score)
}

// AppendHistory appends result and evicts the oldest entries beyond models.MaxHistory.
func AppendHistory(history []models.QuizResult, result models.QuizResult) []models.QuizResult {
	history = append(history, result)

	if over := len(history) - models.MaxHistory; over > 0 {
		history = append([]models.QuizResult(nil), history[over:]...)
	}

	return history
}

// UsedFrom returns the ledger entries for the questions of a result.
func UsedFrom(result *models.QuizResult) []models.UsedQuestion {
	used := make([]models.UsedQuestion, 0, len(result.Answers))
	for _, a := range result.Answers {
		used = append(used, models.UsedQuestion{Question: a.Question, CorrectAnswer: a.CorrectAnswer})
	}

	return used
}
