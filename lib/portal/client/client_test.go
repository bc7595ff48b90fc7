package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	portalapimodels "career-portal-frontend/models/api/portal"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) Provider {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	NewProvider(server.URL, time.Second)
	return Instance
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/api/applications/my", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := provider.MyApplications(context.Background(), "token-123")
	require.NoError(t, err)
	require.Equal(t, "Bearer token-123", gotAuth)

	t.Run("без токена заголовок не ставится", func(t *testing.T) {
		provider = newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`[]`))
		})
		_, err = provider.Vacancies(context.Background())
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}

func TestBackendError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Вы уже подали заявку на эту вакансию"}`))
	})

	err := provider.SubmitApplication(context.Background(), "token", portalapimodels.ApplicationCreateRequest{VacancyID: 1})
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "Вы уже подали заявку на эту вакансию", apiErr.Message)
	require.Equal(t, "Вы уже подали заявку на эту вакансию", BackendMessage(err, "запасной текст"))

	t.Run("тело без message", func(t *testing.T) {
		provider = newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		err = provider.DeactivateVacancy(context.Background(), "token", 5)
		apiErr, ok = AsAPIError(err)
		require.True(t, ok)
		require.Empty(t, apiErr.Message)
		require.Equal(t, "запасной текст", BackendMessage(err, "запасной текст"))
	})
}

func TestLoginDecode(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		req := portalapimodels.LoginRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "student@example.com", req.Email)
		_, _ = w.Write([]byte(`{"token":"jwt-token","id":42,"email":"student@example.com","role":"STUDENT","firstName":"Иван","lastName":"Иванов"}`))
	})

	resp, err := provider.Login(context.Background(), portalapimodels.LoginRequest{
		Email:    "student@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "jwt-token", resp.Token)
	require.Equal(t, int64(42), resp.User.ID)
	require.Equal(t, portalapimodels.RoleStudent, resp.User.Role)
}

func TestMyVacanciesEnvelope(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/vacancies/my", r.URL.Path)
		_, _ = w.Write([]byte(`{"content":[{"id":3,"titleRu":"Стажер"}]}`))
	})

	vacancies, err := provider.MyVacancies(context.Background(), "token")
	require.NoError(t, err)
	require.Len(t, vacancies, 1)
	require.Equal(t, "Стажер", vacancies[0].TitleRu)
}

func TestSearchQueryEscaping(t *testing.T) {
	var gotQuery string
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := provider.SearchVacancies(context.Background(), "java разработчик")
	require.NoError(t, err)
	require.Equal(t, "java разработчик", gotQuery)
}
