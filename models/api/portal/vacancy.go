package portalapimodels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"career-portal-frontend/lib/utils/helpers"
)

type VacancyType string

const (
	VacancyTypeInternship VacancyType = "INTERNSHIP"
	VacancyTypeFullTime   VacancyType = "FULL_TIME"
	VacancyTypePartTime   VacancyType = "PART_TIME"
	VacancyTypeRemote     VacancyType = "REMOTE"
)

var vacancyTypeLabels = map[VacancyType]string{
	VacancyTypeInternship: "Стажировка",
	VacancyTypeFullTime:   "Полная занятость",
	VacancyTypePartTime:   "Частичная занятость",
	VacancyTypeRemote:     "Удаленная работа",
}

// Label - неизвестное значение отображается как есть, это не ошибка
func (t VacancyType) Label() string {
	if label, ok := vacancyTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

type Employer struct {
	CompanyName string `json:"companyName"`
}

type Vacancy struct {
	ID              int64       `json:"id"`
	TitleRu         string      `json:"titleRu"`
	TitleEn         string      `json:"titleEn"`
	TitleKk         string      `json:"titleKk"`
	DescriptionRu   string      `json:"descriptionRu"`
	DescriptionEn   string      `json:"descriptionEn"`
	DescriptionKk   string      `json:"descriptionKk"`
	Type            VacancyType `json:"type"`
	Location        string      `json:"location"`
	ExperienceYears int         `json:"experienceYears"`
	SalaryMin       int64       `json:"salaryMin"`
	SalaryMax       int64       `json:"salaryMax"`
	Currency        string      `json:"currency"`
	RequiredSkills  []string    `json:"requiredSkills"`
	IsActive        bool        `json:"isActive"`
	CreatedAt       string      `json:"createdAt"`
	Employer        *Employer   `json:"employer,omitempty"`
}

const descriptionPreviewLen = 150

// DisplayTitle - локализованный заголовок, порядок ru -> en -> kk
func (v Vacancy) DisplayTitle() string {
	if v.TitleRu != "" {
		return v.TitleRu
	}
	if v.TitleEn != "" {
		return v.TitleEn
	}
	return v.TitleKk
}

func (v Vacancy) DisplayTitleOrStub() string {
	title := v.DisplayTitle()
	if title == "" {
		return "Без названия"
	}
	return title
}

func (v Vacancy) DisplayDescription() string {
	if v.DescriptionRu != "" {
		return v.DescriptionRu
	}
	if v.DescriptionEn != "" {
		return v.DescriptionEn
	}
	return v.DescriptionKk
}

func (v Vacancy) ShortDescription() string {
	descr := []rune(v.DisplayDescription())
	if len(descr) <= descriptionPreviewLen {
		return string(descr)
	}
	return string(descr[:descriptionPreviewLen]) + "..."
}

func (v Vacancy) CompanyName() string {
	if v.Employer == nil || v.Employer.CompanyName == "" {
		return "Компания"
	}
	return v.Employer.CompanyName
}

// SalaryString - диапазон указывается только при наличии обеих границ
func (v Vacancy) SalaryString() string {
	if v.SalaryMin == 0 || v.SalaryMax == 0 {
		return "Не указана"
	}
	currency := v.Currency
	if currency == "" {
		currency = "KZT"
	}
	return fmt.Sprintf("%v - %v %v", helpers.FormatGrouped(v.SalaryMin), helpers.FormatGrouped(v.SalaryMax), currency)
}

func (v Vacancy) TypeLabel() string {
	return v.Type.Label()
}

func (v Vacancy) SkillTags() []string {
	tags := make([]string, 0, len(v.RequiredSkills))
	for _, s := range v.RequiredSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		tags = append(tags, s)
	}
	return tags
}

func (v Vacancy) CreatedAtString() string {
	t, err := helpers.ParsePortalTime(v.CreatedAt)
	if err != nil {
		return v.CreatedAt
	}
	return t.Format("02.01.2006")
}

func (v Vacancy) ExperienceString() string {
	return fmt.Sprintf("%v лет опыта", v.ExperienceYears)
}

// VacancyList принимает и чистый массив, и постраничный ответ с полем content
type VacancyList []Vacancy

func (l *VacancyList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, (*[]Vacancy)(l))
	}
	var page struct {
		Content []Vacancy `json:"content"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	*l = page.Content
	return nil
}
