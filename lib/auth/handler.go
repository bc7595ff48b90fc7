package auth

import (
	"context"

	log "github.com/sirupsen/logrus"

	"career-portal-frontend/lib/portal/client"
	sessionstore "career-portal-frontend/lib/session/store"
	portalapimodels "career-portal-frontend/models/api/portal"
)

type Provider interface {
	// Register возвращает идентификатор созданной сессии.
	// hMsg - сообщение пользователю при отказе (валидация или ответ бекенда),
	// err - только транспортные ошибки.
	Register(ctx context.Context, req portalapimodels.RegisterRequest, confirmPassword string) (sessionID string, hMsg string, err error)
	Login(ctx context.Context, req portalapimodels.LoginRequest) (sessionID string, hMsg string, err error)
	Logout(ctx context.Context, sessionID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		client:       client.Instance,
		sessionStore: sessionstore.Instance,
	}
}

type impl struct {
	client       client.Provider
	sessionStore sessionstore.Provider
}

func (i impl) Register(ctx context.Context, req portalapimodels.RegisterRequest, confirmPassword string) (string, string, error) {
	if req.Password != confirmPassword {
		return "", "Пароли не совпадают", nil
	}
	if err := req.Validate(); err != nil {
		return "", err.Error(), nil
	}
	resp, err := i.client.Register(ctx, req)
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return "", client.BackendMessage(err, "Ошибка регистрации"), nil
		}
		return "", "", err
	}
	return i.createSession(ctx, req.Email, resp)
}

func (i impl) Login(ctx context.Context, req portalapimodels.LoginRequest) (string, string, error) {
	if err := req.Validate(); err != nil {
		return "", err.Error(), nil
	}
	resp, err := i.client.Login(ctx, req)
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return "", client.BackendMessage(err, "Неверный email или пароль"), nil
		}
		return "", "", err
	}
	return i.createSession(ctx, req.Email, resp)
}

func (i impl) Logout(ctx context.Context, sessionID string) error {
	return i.sessionStore.Delete(ctx, sessionID)
}

func (i impl) createSession(ctx context.Context, email string, resp *portalapimodels.AuthResponse) (string, string, error) {
	sessionID, err := i.sessionStore.Create(ctx, sessionstore.Data{
		Token: resp.Token,
		User:  resp.User,
	})
	if err != nil {
		log.WithError(err).
			WithField("email", email).
			Error("ошибка создания сессии")
		return "", "", err
	}
	return sessionID, "", nil
}
