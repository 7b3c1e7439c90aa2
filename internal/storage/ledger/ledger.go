package ledger

import (
	"context"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/storage"
)

// Ledger хранит уже заданные пользователю вопросы по категориям.
type Ledger struct {
	st storage.Storage
}

func New(st storage.Storage) *Ledger {
	return &Ledger{st: st}
}

// Used возвращает записанные вопросы для пользователя и категории.
func (l *Ledger) Used(ctx context.Context, userID string, category models.Category) ([]models.UsedQuestion, error) {
	var used []models.UsedQuestion
	if _, err := storage.GetJSON(ctx, l.st, storage.UsedKey(string(category), userID), &used); err != nil {
		return nil, err
	}

	return used, nil
}

// Append дописывает вопросы в конец журнала.
func (l *Ledger) Append(ctx context.Context, userID string, category models.Category, entries []models.UsedQuestion) error {
	if len(entries) == 0 {
		return nil
	}

	used, err := l.Used(ctx, userID, category)
	if err != nil {
		return err
	}

	used = append(used, entries...)

	return storage.SetJSON(ctx, l.st, storage.UsedKey(string(category), userID), used)
}

// Clear очищает журнал категории.
func (l *Ledger) Clear(ctx context.Context, userID string, category models.Category) error {
	return l.st.Remove(ctx, storage.UsedKey(string(category), userID))
}

// Prompts returns the set of question texts in entries.
func Prompts(entries []models.UsedQuestion) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e.Question] = struct{}{}
	}

	return set
}
