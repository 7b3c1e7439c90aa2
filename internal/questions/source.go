package questions

import (
	"context"
	"errors"
	"log/slog"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
)

// Source поставляет пул вопросов для категории.
type Source interface {
	FetchQuestions(ctx context.Context, category models.Category) ([]models.QuestionRecord, error)
}

// FallbackSource asks Primary first and falls back to Fallback on error or an empty pool.
type FallbackSource struct {
	Primary  Source
	Fallback Source
	log      *slog.Logger
}

func NewFallbackSource(primary, fallback Source) *FallbackSource {
	return &FallbackSource{
		Primary:  primary,
		Fallback: fallback,
		log:      slog.Default().With("component", "questions"),
	}
}

func (s *FallbackSource) FetchQuestions(ctx context.Context, category models.Category) ([]models.QuestionRecord, error) {
	if s.Primary != nil {
		pool, err := s.Primary.FetchQuestions(ctx, category)
		switch {
		case err == nil && len(pool) > 0:
			return pool, nil
		case err == nil:
			s.log.Warn("primary source returned no questions, using local bank", "category", category)
		case errors.Is(err, context.Canceled):
			return nil, err
		default:
			s.log.Warn("primary source failed, using local bank", "category", category, "error", err)
		}
	}

	pool, err := s.Fallback.FetchQuestions(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		return nil, models.ErrNoQuestionsAvailable
	}

	return pool, nil
}
