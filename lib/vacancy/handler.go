package vacancyhandler

import (
	"context"

	log "github.com/sirupsen/logrus"

	"career-portal-frontend/lib/portal/client"
	sessionstore "career-portal-frontend/lib/session/store"
	portalapimodels "career-portal-frontend/models/api/portal"
)

type Provider interface {
	List(ctx context.Context) (ListView, error)
	Search(ctx context.Context, query string) (ListView, error)
	// Modal собирает карточку вакансии; sess может быть nil для анонимного просмотра
	Modal(ctx context.Context, sess *sessionstore.Data, vacancyID int64) (*ModalView, error)
	// Apply возвращает hMsg с текстом отказа бекенда, err - транспортные ошибки
	Apply(ctx context.Context, sess *sessionstore.Data, vacancyID int64, coverLetter string) (hMsg string, err error)
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

// ListView - список карточек; Total всегда равен числу элементов
type ListView struct {
	Vacancies []portalapimodels.Vacancy
	Total     int
}

func (v ListView) IsEmpty() bool {
	return len(v.Vacancies) == 0
}

// ModalView - детали вакансии и состояние заявки текущего пользователя.
// Existing и ShowApplyForm взаимоисключающие: либо заявка уже подана и
// показывается ее статус, либо форма подачи.
type ModalView struct {
	Vacancy       portalapimodels.Vacancy
	Existing      *portalapimodels.Application
	ShowApplyForm bool
}

func (i impl) List(ctx context.Context) (ListView, error) {
	vacancies, err := i.client.Vacancies(ctx)
	if err != nil {
		return ListView{}, err
	}
	return ListView{Vacancies: vacancies, Total: len(vacancies)}, nil
}

func (i impl) Search(ctx context.Context, query string) (ListView, error) {
	if query == "" {
		return i.List(ctx)
	}
	vacancies, err := i.client.SearchVacancies(ctx, query)
	if err != nil {
		return ListView{}, err
	}
	return ListView{Vacancies: vacancies, Total: len(vacancies)}, nil
}

func (i impl) Modal(ctx context.Context, sess *sessionstore.Data, vacancyID int64) (*ModalView, error) {
	vacancy, err := i.client.Vacancy(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	view := ModalView{Vacancy: *vacancy}
	if sess == nil || sess.User.IsEmployer() {
		return &view, nil
	}
	existing := i.findExistingApplication(ctx, sess, vacancyID)
	if existing != nil {
		view.Existing = existing
	} else {
		view.ShowApplyForm = true
	}
	return &view, nil
}

func (i impl) Apply(ctx context.Context, sess *sessionstore.Data, vacancyID int64, coverLetter string) (string, error) {
	err := i.client.SubmitApplication(ctx, sess.Token, portalapimodels.ApplicationCreateRequest{
		VacancyID:   vacancyID,
		CoverLetter: coverLetter,
	})
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return client.BackendMessage(err, "Ошибка отправки заявки"), nil
		}
		return "", err
	}
	return "", nil
}

// findExistingApplication ищет заявку пользователя по списку его заявок.
// Ошибка здесь не фатальна - показываем форму подачи, дубль отсечет бекенд.
func (i impl) findExistingApplication(ctx context.Context, sess *sessionstore.Data, vacancyID int64) *portalapimodels.Application {
	applications, err := i.client.MyApplications(ctx, sess.Token)
	if err != nil {
		log.WithError(err).
			WithField("vacancy_id", vacancyID).
			Warn("не удалось проверить наличие заявки")
		return nil
	}
	for idx := range applications {
		if applications[idx].VacancyID == vacancyID {
			return &applications[idx]
		}
	}
	return nil
}
