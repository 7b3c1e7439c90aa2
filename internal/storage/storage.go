package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get for an absent key.
var ErrNotFound = errors.New("key not found")

// Storage определяет key-value хранилище строковых блобов.
type Storage interface {
	// Get возвращает значение по ключу или ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set сохраняет значение по ключу, перезаписывая старое.
	Set(ctx context.Context, key string, value string) error

	// Remove удаляет ключ. Удаление отсутствующего ключа не ошибка.
	Remove(ctx context.Context, key string) error
}

// Keys used in the store.
const (
	KeyCurrentUser        = "currentUser"
	KeyUsers              = "users"
	KeyJustCompletedQuiz  = "justCompletedQuiz"
	KeyCurrentQuizResults = "currentQuizResults"
	KeyTheme              = "theme"
)

// UsedKey is the ledger key for a user and category.
func UsedKey(category, userID string) string {
	return fmt.Sprintf("used_%s_%s", category, userID)
}

// GetJSON decodes the blob under key into v. found is false when the key is absent.
func GetJSON(ctx context.Context, st Storage, key string, v any) (found bool, err error) {
	raw, err := st.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err = json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, st Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = st.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}
