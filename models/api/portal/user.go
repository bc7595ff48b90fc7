package portalapimodels

import "fmt"

type UserRole string

const (
	RoleStudent  UserRole = "STUDENT"
	RoleGraduate UserRole = "GRADUATE"
	RoleEmployer UserRole = "EMPLOYER"
)

var roleLabels = map[UserRole]string{
	RoleStudent:  "Студент",
	RoleGraduate: "Выпускник",
	RoleEmployer: "Работодатель",
}

type User struct {
	ID                 int64    `json:"id"`
	Email              string   `json:"email"`
	Role               UserRole `json:"role"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Phone              string   `json:"phone"`
	LanguagePreference string   `json:"languagePreference"`
}

func (u User) FullName() string {
	return fmt.Sprintf("%v %v", u.FirstName, u.LastName)
}

func (u User) RoleLabel() string {
	if label, ok := roleLabels[u.Role]; ok {
		return label
	}
	return string(u.Role)
}

func (u User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// CanApply - подавать заявки могут студенты и выпускники
func (u User) CanApply() bool {
	return u.Role == RoleStudent || u.Role == RoleGraduate
}

func (u User) PhoneOrStub() string {
	if u.Phone == "" {
		return "Не указан"
	}
	return u.Phone
}
