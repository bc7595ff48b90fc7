package reviewhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"career-portal-frontend/lib/portal/client"
	sessionstore "career-portal-frontend/lib/session/store"
	portalapimodels "career-portal-frontend/models/api/portal"
)

type fakeClient struct {
	client.Provider
	applications []portalapimodels.Application
	updates      []portalapimodels.StatusUpdateRequest
	updateErr    error
}

func (f *fakeClient) VacancyApplications(ctx context.Context, accessToken string, vacancyID int64) ([]portalapimodels.Application, error) {
	return f.applications, nil
}

func (f *fakeClient) UpdateApplicationStatus(ctx context.Context, accessToken string, applicationID int64, req portalapimodels.StatusUpdateRequest) error {
	f.updates = append(f.updates, req)
	return f.updateErr
}

func employerSession() *sessionstore.Data {
	return &sessionstore.Data{
		Token: "token",
		User:  portalapimodels.User{ID: 2, Role: portalapimodels.RoleEmployer},
	}
}

func TestApplications(t *testing.T) {
	fake := &fakeClient{applications: []portalapimodels.Application{
		{ID: 1, StudentName: "Иван Иванов", Status: portalapimodels.StatusPending},
		{ID: 2, StudentName: "Петр Петров", Status: portalapimodels.StatusRejected},
	}}
	handler := impl{client: fake}

	view, err := handler.Applications(context.Background(), employerSession(), 10, "Java &amp; Go разработчик")
	require.NoError(t, err)
	require.Equal(t, 2, view.Total)

	t.Run("html-сущности в заголовке раскодируются", func(t *testing.T) {
		require.Equal(t, "Java & Go разработчик", view.Title)
	})

	t.Run("заготовки решения только для открытых заявок", func(t *testing.T) {
		require.Contains(t, view.Applications[0].AcceptMessage, "Иван Иванов")
		require.Contains(t, view.Applications[0].RejectMessage, "Иван Иванов")
		require.Empty(t, view.Applications[1].AcceptMessage)
		require.Empty(t, view.Applications[1].RejectMessage)
	})
}

func TestAccept(t *testing.T) {
	t.Run("без времени собеседования запрос не уходит", func(t *testing.T) {
		fake := &fakeClient{}
		handler := impl{client: fake}
		hMsg, err := handler.Accept(context.Background(), employerSession(), AcceptRequest{
			ApplicationID:   1,
			EmployerMessage: "Поздравляем",
			InterviewTime:   "   ",
		})
		require.NoError(t, err)
		require.Equal(t, "Пожалуйста, заполните все поля", hMsg)
		require.Empty(t, fake.updates)
	})

	t.Run("без сообщения запрос не уходит", func(t *testing.T) {
		fake := &fakeClient{}
		handler := impl{client: fake}
		hMsg, err := handler.Accept(context.Background(), employerSession(), AcceptRequest{
			ApplicationID: 1,
			InterviewTime: "2025-05-20T14:30",
		})
		require.NoError(t, err)
		require.Equal(t, "Пожалуйста, заполните все поля", hMsg)
		require.Empty(t, fake.updates)
	})

	t.Run("успешное принятие", func(t *testing.T) {
		fake := &fakeClient{}
		handler := impl{client: fake}
		hMsg, err := handler.Accept(context.Background(), employerSession(), AcceptRequest{
			ApplicationID:   1,
			EmployerMessage: "Ждем вас",
			InterviewTime:   "2025-05-20T14:30",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, fake.updates, 1)
		update := fake.updates[0]
		require.Equal(t, portalapimodels.StatusAccepted, update.Status)
		require.NotNil(t, update.EmployerMessage)
		require.Equal(t, "Ждем вас", *update.EmployerMessage)
		require.Equal(t, "2025-05-20T14:30", update.InterviewTime)
	})
}

func TestReject(t *testing.T) {
	t.Run("пустое сообщение уходит как null", func(t *testing.T) {
		fake := &fakeClient{}
		handler := impl{client: fake}
		hMsg, err := handler.Reject(context.Background(), employerSession(), RejectRequest{
			ApplicationID:   1,
			EmployerMessage: "  ",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, fake.updates, 1)
		require.Equal(t, portalapimodels.StatusRejected, fake.updates[0].Status)
		require.Nil(t, fake.updates[0].EmployerMessage)
	})

	t.Run("сообщение передается", func(t *testing.T) {
		fake := &fakeClient{}
		handler := impl{client: fake}
		_, err := handler.Reject(context.Background(), employerSession(), RejectRequest{
			ApplicationID:   1,
			EmployerMessage: "К сожалению, нет",
		})
		require.NoError(t, err)
		require.NotNil(t, fake.updates[0].EmployerMessage)
		require.Equal(t, "К сожалению, нет", *fake.updates[0].EmployerMessage)
	})

	t.Run("отказ бекенда показывается пользователю", func(t *testing.T) {
		fake := &fakeClient{updateErr: &client.APIError{StatusCode: 403, Message: "Нет доступа к заявке"}}
		handler := impl{client: fake}
		hMsg, err := handler.Reject(context.Background(), employerSession(), RejectRequest{ApplicationID: 1})
		require.NoError(t, err)
		require.Equal(t, "Нет доступа к заявке", hMsg)
	})
}

func TestDefaultMessages(t *testing.T) {
	handler := impl{}
	require.Equal(t,
		"Поздравляем, Иван Иванов! Мы рады сообщить, что ваша заявка одобрена. Приглашаем вас на собеседование.",
		handler.DefaultAcceptMessage("Иван Иванов"))
	require.Equal(t,
		"Уважаемый(-ая) Иван Иванов, спасибо за вашу заявку. К сожалению, в данный момент мы не можем продолжить рассмотрение вашей кандидатуры.",
		handler.DefaultRejectMessage("Иван Иванов"))
}
