package auth

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// SignupData — данные формы регистрации.
type SignupData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ParseSignup валидирует данные регистрации и отдает обработанные данные
func ParseSignup(data SignupData) (SignupData, error) {
	data.Name = strings.TrimSpace(data.Name)
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))

	if data.Name == "" || data.Email == "" || data.Password == "" {
		return SignupData{}, fmt.Errorf("%w, please fill in all fields", ErrValidation)
	}

	if err := ParseEmail(data.Email); err != nil {
		return SignupData{}, err
	}

	if utf8.RuneCountInString(data.Password) < MinPasswordLength {
		return SignupData{}, fmt.Errorf(
			"%w, password must be at least %d characters long", ErrValidation, MinPasswordLength,
		)
	}

	return data, nil
}

// ParseEmail проверяет адрес почты
func ParseEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w, invalid email", ErrValidation)
	}

	return nil
}
