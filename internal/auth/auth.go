package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/storage/users"
)

// Service регистрирует пользователей и ведет активного пользователя.
type Service struct {
	users  users.UserRepo
	hasher PasswordHasher
	now    func() time.Time
	log    *slog.Logger
}

func NewService(repo users.UserRepo, hasher PasswordHasher) *Service {
	return &Service{
		users:  repo,
		hasher: hasher,
		now:    time.Now,
		log:    slog.Default().With("component", "auth"),
	}
}

// Signup создает пользователя и делает его активным.
func (s *Service) Signup(ctx context.Context, data SignupData) (*models.UserAccount, error) {
	data, err := ParseSignup(data)
	if err != nil {
		return nil, err
	}

	ctx, cancelFunc := context.WithTimeout(ctx, timeoutAuth)
	defer cancelFunc()

	hash, err := s.hasher.HashPassword(data.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.UserAccount{
		ID:       uuid.NewString(),
		Name:     data.Name,
		Email:    data.Email,
		Password: hash,
		JoinDate: s.now().UTC(),
		Stats:    models.NewUserStats(),
		History:  []models.QuizResult{},
	}

	if err = s.users.Create(ctx, account); err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err = s.users.SetCurrent(ctx, account); err != nil {
		return nil, fmt.Errorf("set current user: %w", err)
	}

	s.log.Info("user signed up", "user", account.ID)

	return account, nil
}

// Login проверяет пароль и делает пользователя активным.
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserAccount, error) {
	ctx, cancelFunc := context.WithTimeout(ctx, timeoutAuth)
	defer cancelFunc()

	account, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err = s.hasher.ComparePassword(account.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err = s.users.SetCurrent(ctx, account); err != nil {
		return nil, fmt.Errorf("set current user: %w", err)
	}

	s.log.Info("user logged in", "user", account.ID)

	return account, nil
}

// Logout сбрасывает активного пользователя.
func (s *Service) Logout(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, timeoutAuth)
	defer cancelFunc()

	return s.users.ClearCurrent(ctx)
}

// Current возвращает активного пользователя или ErrNoCurrentUser.
func (s *Service) Current(ctx context.Context) (*models.UserAccount, error) {
	account, err := s.users.Current(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrNoCurrentUser
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}
