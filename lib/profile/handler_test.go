package profilehandler

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
	profile        *portalapimodels.Profile
	myApplications []portalapimodels.Application
	myVacancies    []portalapimodels.Vacancy
	studentUpdates []portalapimodels.StudentProfile
	updateErr      error
}

func (f *fakeClient) Profile(ctx context.Context, accessToken string) (*portalapimodels.Profile, error) {
	return f.profile, nil
}

func (f *fakeClient) MyApplications(ctx context.Context, accessToken string) ([]portalapimodels.Application, error) {
	return f.myApplications, nil
}

func (f *fakeClient) MyVacancies(ctx context.Context, accessToken string) ([]portalapimodels.Vacancy, error) {
	return f.myVacancies, nil
}

func (f *fakeClient) UpdateStudentProfile(ctx context.Context, accessToken string, profile portalapimodels.StudentProfile) error {
	f.studentUpdates = append(f.studentUpdates, profile)
	return f.updateErr
}

func TestGet(t *testing.T) {
	t.Run("студент с заявками", func(t *testing.T) {
		fake := &fakeClient{
			profile: &portalapimodels.Profile{
				StudentProfile: &portalapimodels.StudentProfile{
					University: "КазНУ",
					Skills:     []string{"Go", "SQL"},
				},
			},
			myApplications: []portalapimodels.Application{{ID: 1}},
		}
		handler := impl{client: fake}
		sess := &sessionstore.Data{User: portalapimodels.User{Role: portalapimodels.RoleStudent}}

		view, err := handler.Get(context.Background(), sess)
		require.NoError(t, err)
		require.NotNil(t, view.Student)
		require.Nil(t, view.Employer)
		require.Equal(t, "Go, SQL", view.Student.Skills)
		require.Len(t, view.Student.Applications, 1)
	})

	t.Run("работодатель с вакансиями", func(t *testing.T) {
		fake := &fakeClient{
			profile: &portalapimodels.Profile{
				EmployerProfile: &portalapimodels.EmployerProfile{CompanyName: "Acme"},
			},
			myVacancies: []portalapimodels.Vacancy{{ID: 1}, {ID: 2}},
		}
		handler := impl{client: fake}
		sess := &sessionstore.Data{User: portalapimodels.User{Role: portalapimodels.RoleEmployer}}

		view, err := handler.Get(context.Background(), sess)
		require.NoError(t, err)
		require.Nil(t, view.Student)
		require.NotNil(t, view.Employer)
		require.Equal(t, "Acme", view.Employer.Profile.CompanyName)
		require.Len(t, view.Employer.Vacancies, 2)
	})

	t.Run("профиль еще не заполнен", func(t *testing.T) {
		fake := &fakeClient{profile: &portalapimodels.Profile{}}
		handler := impl{client: fake}
		sess := &sessionstore.Data{User: portalapimodels.User{Role: portalapimodels.RoleGraduate}}

		view, err := handler.Get(context.Background(), sess)
		require.NoError(t, err)
		require.NotNil(t, view.Student)
		require.Empty(t, view.Student.Profile.University)
	})
}

func TestUpdateStudent(t *testing.T) {
	fake := &fakeClient{}
	handler := impl{client: fake}
	sess := &sessionstore.Data{User: portalapimodels.User{Role: portalapimodels.RoleStudent}}

	hMsg, err := handler.UpdateStudent(context.Background(), sess, StudentForm{
		University:     "КазНУ",
		Course:         "3",
		GraduationYear: "не знаю",
		Gpa:            "3.85",
		Skills:         "Java, SQL ,  Go",
	})
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.Len(t, fake.studentUpdates, 1)

	profile := fake.studentUpdates[0]
	require.Equal(t, "КазНУ", profile.University)
	require.NotNil(t, profile.Course)
	require.Equal(t, 3, *profile.Course)
	// нечисловое значение не превращается в ошибку формы
	require.Nil(t, profile.GraduationYear)
	require.NotNil(t, profile.Gpa)
	require.Equal(t, 3.85, *profile.Gpa)
	require.Equal(t, []string{"Java", "SQL", "Go"}, profile.Skills)

	t.Run("отказ бекенда показывается пользователю", func(t *testing.T) {
		fake.updateErr = &client.APIError{StatusCode: 400, Message: "Некорректный GPA"}
		hMsg, err = handler.UpdateStudent(context.Background(), sess, StudentForm{})
		require.NoError(t, err)
		require.Equal(t, "Некорректный GPA", hMsg)
	})
}
