package portalapimodels

import (
	"career-portal-frontend/lib/utils/helpers"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusReviewed ApplicationStatus = "REVIEWED"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// StatusBadge - цвет и подпись статуса заявки
type StatusBadge struct {
	Color string
	Label string
}

var statusBadges = map[ApplicationStatus]StatusBadge{
	StatusPending:  {Color: "#FFA500", Label: "⏳ Ожидание"},
	StatusReviewed: {Color: "#2196F3", Label: "👀 Просмотрено"},
	StatusAccepted: {Color: "#4CAF50", Label: "✅ Принято"},
	StatusRejected: {Color: "#F44336", Label: "❌ Отказ"},
}

// Badge - неизвестный статус отображается нейтральным цветом с исходным текстом
func (s ApplicationStatus) Badge() StatusBadge {
	if badge, ok := statusBadges[s]; ok {
		return badge
	}
	return StatusBadge{Color: "#666", Label: string(s)}
}

// IsOpen - заявку можно принять или отклонить пока работодатель не вынес решение
func (s ApplicationStatus) IsOpen() bool {
	return s == StatusPending || s == StatusReviewed
}

type Application struct {
	ID              int64             `json:"id"`
	VacancyID       int64             `json:"vacancyId"`
	VacancyTitle    string            `json:"vacancyTitle"`
	CompanyName     string            `json:"companyName"`
	StudentName     string            `json:"studentName"`
	StudentEmail    string            `json:"studentEmail"`
	StudentPhone    string            `json:"studentPhone"`
	CoverLetter     string            `json:"coverLetter"`
	Status          ApplicationStatus `json:"status"`
	AppliedAt       string            `json:"appliedAt"`
	EmployerMessage string            `json:"employerMessage"`
	InterviewTime   string            `json:"interviewTime"`
}

func (a Application) StatusBadge() StatusBadge {
	return a.Status.Badge()
}

func (a Application) AppliedAtString() string {
	t, err := helpers.ParsePortalTime(a.AppliedAt)
	if err != nil {
		return a.AppliedAt
	}
	return t.Format("02.01.2006")
}

func (a Application) InterviewTimeString() string {
	if a.InterviewTime == "" {
		return ""
	}
	t, err := helpers.ParsePortalTime(a.InterviewTime)
	if err != nil {
		return a.InterviewTime
	}
	return t.Format("02.01.2006 15:04")
}

type ApplicationCreateRequest struct {
	VacancyID   int64  `json:"vacancyId"`
	CoverLetter string `json:"coverLetter"`
}

// StatusUpdateRequest - employerMessage сериализуется как null если не заполнено
type StatusUpdateRequest struct {
	Status          ApplicationStatus `json:"status"`
	EmployerMessage *string           `json:"employerMessage"`
	InterviewTime   string            `json:"interviewTime,omitempty"`
}
