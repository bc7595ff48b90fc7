package profilehandler

import (
	"context"

	log "github.com/sirupsen/logrus"

	"career-portal-frontend/lib/portal/client"
	sessionstore "career-portal-frontend/lib/session/store"
	"career-portal-frontend/lib/utils/helpers"
	portalapimodels "career-portal-frontend/models/api/portal"
)

type Provider interface {
	Get(ctx context.Context, sess *sessionstore.Data) (*View, error)
	UpdateStudent(ctx context.Context, sess *sessionstore.Data, form StudentForm) (hMsg string, err error)
	UpdateEmployer(ctx context.Context, sess *sessionstore.Data, form EmployerForm) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		client: client.Instance,
	}
}

type impl struct {
	client client.Provider
}

// View - страница профиля; заполнена секция соответствующая роли
type View struct {
	User     portalapimodels.User
	Student  *StudentView
	Employer *EmployerView
}

type StudentView struct {
	Profile      portalapimodels.StudentProfile
	Skills       string
	Applications []portalapimodels.Application
}

type EmployerView struct {
	Profile   portalapimodels.EmployerProfile
	Vacancies []portalapimodels.Vacancy
}

// StudentForm - значения полей формы как есть; числовые поля разбираются
// с откатом в "не указано" при нечисловом вводе
type StudentForm struct {
	University     string
	Faculty        string
	Specialization string
	Course         string
	GraduationYear string
	Gpa            string
	Skills         string
	Bio            string
	LinkedinUrl    string
	GithubUrl      string
}

type EmployerForm struct {
	CompanyName        string
	CompanyDescription string
	Industry           string
	CompanySize        string
	Website            string
	Address            string
}

func (i impl) Get(ctx context.Context, sess *sessionstore.Data) (*View, error) {
	profile, err := i.client.Profile(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	view := View{User: sess.User}
	if sess.User.IsEmployer() {
		employer := portalapimodels.EmployerProfile{}
		if profile.EmployerProfile != nil {
			employer = *profile.EmployerProfile
		}
		vacancies, err := i.client.MyVacancies(ctx, sess.Token)
		if err != nil {
			log.WithError(err).Error("ошибка загрузки вакансий работодателя")
			return nil, err
		}
		view.Employer = &EmployerView{
			Profile:   employer,
			Vacancies: vacancies,
		}
		return &view, nil
	}

	student := portalapimodels.StudentProfile{}
	if profile.StudentProfile != nil {
		student = *profile.StudentProfile
	}
	applications, err := i.client.MyApplications(ctx, sess.Token)
	if err != nil {
		log.WithError(err).Error("ошибка загрузки заявок студента")
		return nil, err
	}
	view.Student = &StudentView{
		Profile:      student,
		Skills:       student.SkillsString(),
		Applications: applications,
	}
	return &view, nil
}

func (i impl) UpdateStudent(ctx context.Context, sess *sessionstore.Data, form StudentForm) (string, error) {
	profile := portalapimodels.StudentProfile{
		University:     form.University,
		Faculty:        form.Faculty,
		Specialization: form.Specialization,
		Course:         helpers.IntPtrFromString(form.Course),
		GraduationYear: helpers.IntPtrFromString(form.GraduationYear),
		Gpa:            helpers.FloatPtrFromString(form.Gpa),
		Skills:         helpers.SplitSkills(form.Skills),
		Bio:            form.Bio,
		LinkedinUrl:    form.LinkedinUrl,
		GithubUrl:      form.GithubUrl,
	}
	err := i.client.UpdateStudentProfile(ctx, sess.Token, profile)
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return client.BackendMessage(err, "Ошибка при обновлении профиля"), nil
		}
		return "", err
	}
	return "", nil
}

func (i impl) UpdateEmployer(ctx context.Context, sess *sessionstore.Data, form EmployerForm) (string, error) {
	profile := portalapimodels.EmployerProfile{
		CompanyName:        form.CompanyName,
		CompanyDescription: form.CompanyDescription,
		Industry:           form.Industry,
		CompanySize:        form.CompanySize,
		Website:            form.Website,
		Address:            form.Address,
	}
	err := i.client.UpdateEmployerProfile(ctx, sess.Token, profile)
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return client.BackendMessage(err, "Ошибка при обновлении профиля"), nil
		}
		return "", err
	}
	return "", nil
}
