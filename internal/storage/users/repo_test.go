package users

import (
	"context"
	"testing"
	"time"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(id, email string) *models.UserAccount {
	return &models.UserAccount{
		ID:       id,
		Name:     "User " + id,
		Email:    email,
		Password: "hash",
		JoinDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Stats:    models.NewUserStats(),
	}
}

func TestRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(storage.NewMemoryStorage())

	require.NoError(t, repo.Create(ctx, newAccount("1", "ann@example.com")))
	require.NoError(t, repo.Create(ctx, newAccount("2", "bob@example.com")))

	err := repo.Create(ctx, newAccount("3", "ANN@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	u, err := repo.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "2", u.ID)

	u, err = repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, 0, u.Stats.CategoryBests[models.CategoryCoding])

	_, err = repo.FindByID(ctx, "404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepo_SaveReplacesOnlyThatUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(storage.NewMemoryStorage())

	require.NoError(t, repo.Create(ctx, newAccount("1", "ann@example.com")))
	require.NoError(t, repo.Create(ctx, newAccount("2", "bob@example.com")))

	u, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	u.Stats.TotalQuizzes = 3
	require.NoError(t, repo.Save(ctx, u))

	u, err = repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 3, u.Stats.TotalQuizzes)

	other, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Stats.TotalQuizzes)

	err = repo.Save(ctx, newAccount("9", "ghost@example.com"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepo_CurrentUserMirror(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(storage.NewMemoryStorage())

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)

	ann := newAccount("1", "ann@example.com")
	require.NoError(t, repo.SetCurrent(ctx, ann))

	cur, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, cur.ID)
	assert.True(t, ann.JoinDate.Equal(cur.JoinDate))

	require.NoError(t, repo.ClearCurrent(ctx))
	_, err = repo.Current(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
