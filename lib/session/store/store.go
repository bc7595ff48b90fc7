package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-portal-frontend/lib/kv"
	portalapimodels "career-portal-frontend/models/api/portal"
)

// Data - состояние сессии: токен бекенда и закешированный пользователь.
// Срок действия токена не проверяется - протухший токен обнаруживается
// только по 401 от бекенда.
type Data struct {
	Token string               `json:"token"`
	User  portalapimodels.User `json:"user"`
}

type Provider interface {
	Create(ctx context.Context, data Data) (id string, err error)
	// Get возвращает nil, nil если сессия не найдена или истекла
	Get(ctx context.Context, id string) (*Data, error)
	SetUser(ctx context.Context, id string, user portalapimodels.User) error
	Delete(ctx context.Context, id string) error
}

var Instance Provider

func NewHandler(store kv.Provider, ttl time.Duration) {
	Instance = NewInstance(store, ttl)
}

func NewInstance(store kv.Provider, ttl time.Duration) Provider {
	return &impl{
		store: store,
		ttl:   ttl,
	}
}

type impl struct {
	store kv.Provider
	ttl   time.Duration
}

const keyPrefix = "session:"

func (i impl) Create(ctx context.Context, data Data) (string, error) {
	id := uuid.NewString()
	err := i.save(ctx, id, data)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) Get(ctx context.Context, id string) (*Data, error) {
	value, err := i.store.Get(ctx, keyPrefix+id)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	data := Data{}
	err = json.Unmarshal(value, &data)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации сессии")
	}
	return &data, nil
}

func (i impl) SetUser(ctx context.Context, id string, user portalapimodels.User) error {
	data, err := i.Get(ctx, id)
	if err != nil {
		return err
	}
	if data == nil {
		return errors.New("сессия не найдена")
	}
	data.User = user
	return i.save(ctx, id, *data)
}

func (i impl) Delete(ctx context.Context, id string) error {
	return i.store.Delete(ctx, keyPrefix+id)
}

func (i impl) save(ctx context.Context, id string, data Data) error {
	value, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации сессии")
	}
	return i.store.Set(ctx, keyPrefix+id, value, i.ttl)
}
