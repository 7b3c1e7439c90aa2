package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/storage"
)

// UserRepo определяет интерфейс для хранения данных о пользователях.
type UserRepo interface {
	// FindByEmail ищет пользователя по email
	FindByEmail(ctx context.Context, email string) (*models.UserAccount, error)

	// FindByID ищет пользователя по id
	FindByID(ctx context.Context, id string) (*models.UserAccount, error)

	// Create добавляет нового пользователя в коллекцию
	Create(ctx context.Context, user *models.UserAccount) error

	// Save перезаписывает существующего пользователя в коллекции
	Save(ctx context.Context, user *models.UserAccount) error

	// Current возвращает активного пользователя
	Current(ctx context.Context) (*models.UserAccount, error)

	// SetCurrent делает пользователя активным
	SetCurrent(ctx context.Context, user *models.UserAccount) error

	// ClearCurrent сбрасывает активного пользователя
	ClearCurrent(ctx context.Context) error
}

// ErrEmailTaken is returned by Create for a duplicate email.
var ErrEmailTaken = errors.New("user with this email already exists")

// Repo keeps all accounts in the "users" blob and mirrors the active one into "currentUser".
type Repo struct {
	st storage.Storage
	mu sync.Mutex
}

func NewRepo(st storage.Storage) *Repo {
	return &Repo{st: st}
}

func (r *Repo) list(ctx context.Context) ([]models.UserAccount, error) {
	var all []models.UserAccount
	if _, err := storage.GetJSON(ctx, r.st, storage.KeyUsers, &all); err != nil {
		return nil, err
	}

	return all, nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}

	return nil, models.ErrNotFound
}

func (r *Repo) FindByID(ctx context.Context, id string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}

	return nil, models.ErrNotFound
}

func (r *Repo) Create(ctx context.Context, user *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.list(ctx)
	if err != nil {
		return err
	}

	for _, u := range all {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}

	all = append(all, *user)

	return storage.SetJSON(ctx, r.st, storage.KeyUsers, all)
}

func (r *Repo) Save(ctx context.Context, user *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.list(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range all {
		if all[i].ID == user.ID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return fmt.Errorf("user %s: %w", user.ID, models.ErrNotFound)
	}

	all[idx] = *user

	return storage.SetJSON(ctx, r.st, storage.KeyUsers, all)
}

func (r *Repo) Current(ctx context.Context) (*models.UserAccount, error) {
	var user models.UserAccount

	found, err := storage.GetJSON(ctx, r.st, storage.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.ErrNotFound
	}

	return &user, nil
}

func (r *Repo) SetCurrent(ctx context.Context, user *models.UserAccount) error {
	return storage.SetJSON(ctx, r.st, storage.KeyCurrentUser, user)
}

func (r *Repo) ClearCurrent(ctx context.Context) error {
	return r.st.Remove(ctx, storage.KeyCurrentUser)
}
