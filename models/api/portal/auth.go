package portalapimodels

import "github.com/pkg/errors"

type RegisterRequest struct {
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Role               UserRole `json:"role"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Phone              string   `json:"phone"`
	LanguagePreference string   `json:"languagePreference"`
}

func (r RegisterRequest) Validate() error {
	if r.Email == "" {
		return errors.New("не указан email")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	switch r.Role {
	case RoleStudent, RoleGraduate, RoleEmployer:
	default:
		return errors.New("не указана роль")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("не указаны email или пароль")
	}
	return nil
}

// AuthResponse - бекенд возвращает токен вместе с полями пользователя в одном объекте
type AuthResponse struct {
	Token string `json:"token"`
	User
}
