package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	portalapimodels "career-portal-frontend/models/api/portal"
)

// Provider - клиент REST API карьерного бекенда.
// Все вызовы однократные, без повторов и без собственной политики таймаутов
// кроме общего таймаута http-клиента.
type Provider interface {
	Register(ctx context.Context, req portalapimodels.RegisterRequest) (*portalapimodels.AuthResponse, error)
	Login(ctx context.Context, req portalapimodels.LoginRequest) (*portalapimodels.AuthResponse, error)

	Vacancies(ctx context.Context) ([]portalapimodels.Vacancy, error)
	SearchVacancies(ctx context.Context, query string) ([]portalapimodels.Vacancy, error)
	Vacancy(ctx context.Context, id int64) (*portalapimodels.Vacancy, error)
	MyVacancies(ctx context.Context, accessToken string) ([]portalapimodels.Vacancy, error)
	DeactivateVacancy(ctx context.Context, accessToken string, id int64) error

	MyApplications(ctx context.Context, accessToken string) ([]portalapimodels.Application, error)
	VacancyApplications(ctx context.Context, accessToken string, vacancyID int64) ([]portalapimodels.Application, error)
	SubmitApplication(ctx context.Context, accessToken string, req portalapimodels.ApplicationCreateRequest) error
	UpdateApplicationStatus(ctx context.Context, accessToken string, applicationID int64, req portalapimodels.StatusUpdateRequest) error

	Profile(ctx context.Context, accessToken string) (*portalapimodels.Profile, error)
	UpdateStudentProfile(ctx context.Context, accessToken string, profile portalapimodels.StudentProfile) error
	UpdateEmployerProfile(ctx context.Context, accessToken string, profile portalapimodels.EmployerProfile) error
}

var Instance Provider

type impl struct {
	host       string
	httpClient *http.Client
}

func NewProvider(host string, timeout time.Duration) {
	Instance = &impl{
		host:       strings.TrimRight(host, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

const (
	registerPath            = "/auth/register"
	loginPath               = "/auth/login"
	vacanciesPath           = "/vacancies"
	vacancySearchPath       = "/vacancies/search?query=%v"
	vacancyPath             = "/vacancies/%v"
	myVacanciesPath         = "/vacancies/my"
	myApplicationsPath      = "/applications/my"
	applicationsPath        = "/applications"
	vacancyApplicationsPath = "/applications/vacancy/%v"
	applicationStatusPath   = "/applications/%v/status"
	profilePath             = "/users/profile"
	studentProfilePath      = "/users/student-profile"
	employerProfilePath     = "/users/employer-profile"
)

func (i impl) Register(ctx context.Context, req portalapimodels.RegisterRequest) (*portalapimodels.AuthResponse, error) {
	resp := portalapimodels.AuthResponse{}
	err := i.sendJSON(ctx, http.MethodPost, registerPath, req, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) Login(ctx context.Context, req portalapimodels.LoginRequest) (*portalapimodels.AuthResponse, error) {
	resp := portalapimodels.AuthResponse{}
	err := i.sendJSON(ctx, http.MethodPost, loginPath, req, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) Vacancies(ctx context.Context) ([]portalapimodels.Vacancy, error) {
	resp := []portalapimodels.Vacancy{}
	err := i.send(ctx, http.MethodGet, vacanciesPath, &resp, "")
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) SearchVacancies(ctx context.Context, query string) ([]portalapimodels.Vacancy, error) {
	resp := []portalapimodels.Vacancy{}
	uri := fmt.Sprintf(vacancySearchPath, url.QueryEscape(query))
	err := i.send(ctx, http.MethodGet, uri, &resp, "")
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) Vacancy(ctx context.Context, id int64) (*portalapimodels.Vacancy, error) {
	resp := portalapimodels.Vacancy{}
	err := i.send(ctx, http.MethodGet, fmt.Sprintf(vacancyPath, id), &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyVacancies - бекенд может вернуть как список, так и постраничный ответ с полем content
func (i impl) MyVacancies(ctx context.Context, accessToken string) ([]portalapimodels.Vacancy, error) {
	resp := portalapimodels.VacancyList{}
	err := i.send(ctx, http.MethodGet, myVacanciesPath, &resp, accessToken)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) DeactivateVacancy(ctx context.Context, accessToken string, id int64) error {
	return i.send(ctx, http.MethodDelete, fmt.Sprintf(vacancyPath, id), nil, accessToken)
}

func (i impl) MyApplications(ctx context.Context, accessToken string) ([]portalapimodels.Application, error) {
	resp := []portalapimodels.Application{}
	err := i.send(ctx, http.MethodGet, myApplicationsPath, &resp, accessToken)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) VacancyApplications(ctx context.Context, accessToken string, vacancyID int64) ([]portalapimodels.Application, error) {
	resp := []portalapimodels.Application{}
	err := i.send(ctx, http.MethodGet, fmt.Sprintf(vacancyApplicationsPath, vacancyID), &resp, accessToken)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) SubmitApplication(ctx context.Context, accessToken string, req portalapimodels.ApplicationCreateRequest) error {
	return i.sendJSON(ctx, http.MethodPost, applicationsPath, req, nil, accessToken)
}

func (i impl) UpdateApplicationStatus(ctx context.Context, accessToken string, applicationID int64, req portalapimodels.StatusUpdateRequest) error {
	return i.sendJSON(ctx, http.MethodPut, fmt.Sprintf(applicationStatusPath, applicationID), req, nil, accessToken)
}

func (i impl) Profile(ctx context.Context, accessToken string) (*portalapimodels.Profile, error) {
	resp := portalapimodels.Profile{}
	err := i.send(ctx, http.MethodGet, profilePath, &resp, accessToken)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) UpdateStudentProfile(ctx context.Context, accessToken string, profile portalapimodels.StudentProfile) error {
	return i.sendJSON(ctx, http.MethodPut, studentProfilePath, profile, nil, accessToken)
}

func (i impl) UpdateEmployerProfile(ctx context.Context, accessToken string, profile portalapimodels.EmployerProfile) error {
	return i.sendJSON(ctx, http.MethodPut, employerProfilePath, profile, nil, accessToken)
}

func (i impl) send(ctx context.Context, method, path string, resp interface{}, accessToken string) error {
	uri := i.host + "/api" + path
	logger := log.
		WithField("backend_request", uri).
		WithField("method", method)
	r, err := http.NewRequestWithContext(ctx, method, uri, nil)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	return i.sendRequest(logger, r, resp, accessToken)
}

func (i impl) sendJSON(ctx context.Context, method, path string, request, resp interface{}, accessToken string) error {
	uri := i.host + "/api" + path
	body, err := json.Marshal(request)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации запроса")
	}
	logger := log.
		WithField("backend_request", uri).
		WithField("method", method).
		WithField("request_body", string(body))
	r, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewBuffer(body))
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	return i.sendRequest(logger, r, resp, accessToken)
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}, accessToken string) error {
	r.Header.Add("Content-Type", "application/json")
	if accessToken != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", accessToken))
	}
	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка выполнения запроса к бекенду")
		return errors.Wrap(err, "ошибка выполнения запроса к бекенду")
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			responseBody, _ := io.ReadAll(response.Body)
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				logger.WithError(err).Error("ошибка сериализации ответа")
				return errors.Wrap(err, "ошибка сериализации ответа")
			}
		}
		return nil
	}

	apiErr := APIError{StatusCode: response.StatusCode}
	responseBody, _ := io.ReadAll(response.Body)
	logger = logger.
		WithField("status_code", response.StatusCode).
		WithField("response_body", string(responseBody))
	errorResp := struct {
		Message string `json:"message"`
	}{}
	if len(responseBody) > 0 {
		if err = json.Unmarshal(responseBody, &errorResp); err == nil {
			apiErr.Message = errorResp.Message
		}
	}
	logger.Warn("бекенд вернул ошибку")
	return &apiErr
}
