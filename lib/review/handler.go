package reviewhandler

import (
	"context"
	"html"
	"strings"

	log "github.com/sirupsen/logrus"

	messagetemplate "career-portal-frontend/lib/message-template"
	"career-portal-frontend/lib/portal/client"
	sessionstore "career-portal-frontend/lib/session/store"
	portalapimodels "career-portal-frontend/models/api/portal"
)

type Provider interface {
	MyVacancies(ctx context.Context, sess *sessionstore.Data) ([]portalapimodels.Vacancy, error)
	Deactivate(ctx context.Context, sess *sessionstore.Data, vacancyID int64) (hMsg string, err error)
	Applications(ctx context.Context, sess *sessionstore.Data, vacancyID int64, title string) (*ApplicationsView, error)
	// Accept требует заполненные сообщение и время собеседования,
	// при нарушении возвращает hMsg без обращения к бекенду
	Accept(ctx context.Context, sess *sessionstore.Data, req AcceptRequest) (hMsg string, err error)
	Reject(ctx context.Context, sess *sessionstore.Data, req RejectRequest) (hMsg string, err error)
	DefaultAcceptMessage(studentName string) string
	DefaultRejectMessage(studentName string) string
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

// ApplicationsView - заявки одной вакансии для модального окна работодателя
type ApplicationsView struct {
	VacancyID    int64
	Title        string
	Applications []ApplicationCard
	Total        int
}

// ApplicationCard - заявка с заготовленными текстами решения для форм
type ApplicationCard struct {
	portalapimodels.Application
	AcceptMessage string
	RejectMessage string
}

type AcceptRequest struct {
	ApplicationID   int64
	VacancyID       int64
	EmployerMessage string
	InterviewTime   string
}

type RejectRequest struct {
	ApplicationID   int64
	VacancyID       int64
	EmployerMessage string
}

func (i impl) MyVacancies(ctx context.Context, sess *sessionstore.Data) ([]portalapimodels.Vacancy, error) {
	return i.client.MyVacancies(ctx, sess.Token)
}

func (i impl) Deactivate(ctx context.Context, sess *sessionstore.Data, vacancyID int64) (string, error) {
	err := i.client.DeactivateVacancy(ctx, sess.Token, vacancyID)
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return client.BackendMessage(err, "Ошибка при деактивации вакансии"), nil
		}
		return "", err
	}
	return "", nil
}

func (i impl) Applications(ctx context.Context, sess *sessionstore.Data, vacancyID int64, title string) (*ApplicationsView, error) {
	applications, err := i.client.VacancyApplications(ctx, sess.Token, vacancyID)
	if err != nil {
		return nil, err
	}
	cards := make([]ApplicationCard, 0, len(applications))
	for _, app := range applications {
		card := ApplicationCard{Application: app}
		if app.Status.IsOpen() {
			card.AcceptMessage = i.DefaultAcceptMessage(app.StudentName)
			card.RejectMessage = i.DefaultRejectMessage(app.StudentName)
		}
		cards = append(cards, card)
	}
	// заголовок мог пройти через атрибуты разметки и содержать HTML-сущности
	return &ApplicationsView{
		VacancyID:    vacancyID,
		Title:        html.UnescapeString(title),
		Applications: cards,
		Total:        len(applications),
	}, nil
}

func (i impl) Accept(ctx context.Context, sess *sessionstore.Data, req AcceptRequest) (string, error) {
	message := strings.TrimSpace(req.EmployerMessage)
	interviewTime := strings.TrimSpace(req.InterviewTime)
	if message == "" || interviewTime == "" {
		return "Пожалуйста, заполните все поля", nil
	}
	err := i.client.UpdateApplicationStatus(ctx, sess.Token, req.ApplicationID, portalapimodels.StatusUpdateRequest{
		Status:          portalapimodels.StatusAccepted,
		EmployerMessage: &message,
		InterviewTime:   interviewTime,
	})
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return client.BackendMessage(err, "Ошибка при принятии заявки"), nil
		}
		return "", err
	}
	return "", nil
}

func (i impl) Reject(ctx context.Context, sess *sessionstore.Data, req RejectRequest) (string, error) {
	update := portalapimodels.StatusUpdateRequest{
		Status: portalapimodels.StatusRejected,
	}
	// пустое сообщение уходит на бекенд как null
	if message := strings.TrimSpace(req.EmployerMessage); message != "" {
		update.EmployerMessage = &message
	}
	err := i.client.UpdateApplicationStatus(ctx, sess.Token, req.ApplicationID, update)
	if err != nil {
		if _, ok := client.AsAPIError(err); ok {
			return client.BackendMessage(err, "Ошибка при отклонении заявки"), nil
		}
		return "", err
	}
	return "", nil
}

func (i impl) DefaultAcceptMessage(studentName string) string {
	msg, err := messagetemplate.BuildAcceptMsg(studentName)
	if err != nil {
		log.WithError(err).Error("ошибка формирования сообщения о принятии")
		return ""
	}
	return msg
}

func (i impl) DefaultRejectMessage(studentName string) string {
	msg, err := messagetemplate.BuildRejectMsg(studentName)
	if err != nil {
		log.WithError(err).Error("ошибка формирования сообщения об отказе")
		return ""
	}
	return msg
}
