package questions

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
)

//go:embed bank/*.json
var bankFS embed.FS

// LocalBank is the built-in question set, always available.
type LocalBank struct {
	pools map[models.Category][]models.QuestionRecord
}

// NewLocalBank загружает встроенные вопросы для всех категорий.
func NewLocalBank() (*LocalBank, error) {
	pools := make(map[models.Category][]models.QuestionRecord, len(models.Categories))

	for _, c := range models.Categories {
		data, err := bankFS.ReadFile("bank/" + string(c) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read bank %s: %w", c, err)
		}

		var pool []models.QuestionRecord
		if err = json.Unmarshal(data, &pool); err != nil {
			return nil, fmt.Errorf("decode bank %s: %w", c, err)
		}

		pools[c] = pool
	}

	return &LocalBank{pools: pools}, nil
}

// FetchQuestions returns a copy of the category pool. Unknown categories get general.
func (b *LocalBank) FetchQuestions(_ context.Context, category models.Category) ([]models.QuestionRecord, error) {
	return slices.Clone(b.pools[category.OrGeneral()]), nil
}
