package auth

import (
	"errors"
	"time"
)

// PasswordHasher определяет хеширование и проверку паролей.
type PasswordHasher interface {
	// HashPassword возвращает хеш пароля
	HashPassword(password string) (string, error)

	// ComparePassword возвращает nil, если пароль соответствует хешу
	ComparePassword(hash, password string) error
}

// Ошибки авторизации
var (
	ErrValidation         = errors.New("validation error")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoCurrentUser      = errors.New("no user is logged in")
)

// MinPasswordLength — минимальная длина пароля.
const MinPasswordLength = 6

// Таймаут
const timeoutAuth = 2 * time.Second
