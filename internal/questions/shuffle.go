package questions

import (
	"math/rand/v2"
)

// Shuffle returns a Fisher–Yates shuffled copy of items.
func Shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// ShuffleWithLimit shuffles items and keeps at most limit of them. limit <= 0 keeps all.
func ShuffleWithLimit[T any](items []T, limit int) []T {
	shuffled := Shuffle(items)

	if limit <= 0 || limit > len(shuffled) {
		limit = len(shuffled)
	}

	return shuffled[:limit]
}
