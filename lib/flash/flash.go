package flash

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-portal-frontend/lib/kv"
)

type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// Message - одноразовое сообщение пользователю, показывается на следующей
// отрисовке страницы и исчезает по таймеру на стороне браузера
type Message struct {
	Kind      Kind   `json:"kind"`
	Text      string `json:"text"`
	DismissMs int    `json:"dismissMs"`
}

const (
	errorDismissMs   = 5000
	successDismissMs = 3000
)

func NewError(text string) Message {
	return Message{Kind: KindError, Text: text, DismissMs: errorDismissMs}
}

func NewSuccess(text string) Message {
	return Message{Kind: KindSuccess, Text: text, DismissMs: successDismissMs}
}

type Provider interface {
	// Push сохраняет сообщение и возвращает ключ для cookie
	Push(ctx context.Context, msg Message) (key string, err error)
	// Pop читает и удаляет сообщение, nil если его нет
	Pop(ctx context.Context, key string) (*Message, error)
}

var Instance Provider

func NewHandler(store kv.Provider) {
	Instance = &impl{store: store}
}

type impl struct {
	store kv.Provider
}

const (
	keyPrefix = "flash:"
	ttl       = time.Minute
)

func (i impl) Push(ctx context.Context, msg Message) (string, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сериализации сообщения")
	}
	key := uuid.NewString()
	err = i.store.Set(ctx, keyPrefix+key, value, ttl)
	if err != nil {
		return "", err
	}
	return key, nil
}

func (i impl) Pop(ctx context.Context, key string) (*Message, error) {
	value, err := i.store.GetDel(ctx, keyPrefix+key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	msg := Message{}
	err = json.Unmarshal(value, &msg)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации сообщения")
	}
	return &msg, nil
}
