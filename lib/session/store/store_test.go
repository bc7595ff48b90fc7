package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"career-portal-frontend/lib/kv"
	portalapimodels "career-portal-frontend/models/api/portal"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewInstance(kv.NewMemoryInstance(), time.Hour)

	data := Data{
		Token: "backend-jwt",
		User:  portalapimodels.User{ID: 1, Email: "student@example.com", Role: portalapimodels.RoleStudent},
	}

	id, err := store.Create(ctx, data)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	t.Run("чтение по идентификатору", func(t *testing.T) {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "backend-jwt", got.Token)
		require.Equal(t, "student@example.com", got.User.Email)
	})

	t.Run("обновление пользователя сохраняет токен", func(t *testing.T) {
		user := data.User
		user.FirstName = "Иван"
		require.NoError(t, store.SetUser(ctx, id, user))

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Иван", got.User.FirstName)
		require.Equal(t, "backend-jwt", got.Token)
	})

	t.Run("несуществующая сессия", func(t *testing.T) {
		got, err := store.Get(ctx, "нет-такой")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("удаление", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, id))
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("истечение сессии", func(t *testing.T) {
		short := NewInstance(kv.NewMemoryInstance(), time.Millisecond)
		id, err := short.Create(ctx, data)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		got, err := short.Get(ctx, id)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
