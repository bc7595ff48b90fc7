package portalapimodels

import "career-portal-frontend/lib/utils/helpers"

type StudentProfile struct {
	University     string   `json:"university"`
	Faculty        string   `json:"faculty"`
	Specialization string   `json:"specialization"`
	Course         *int     `json:"course"`
	GraduationYear *int     `json:"graduationYear"`
	Gpa            *float64 `json:"gpa"`
	Skills         []string `json:"skills"`
	Bio            string   `json:"bio"`
	LinkedinUrl    string   `json:"linkedinUrl"`
	GithubUrl      string   `json:"githubUrl"`
}

// SkillsString - навыки редактируются одной строкой через запятую
func (p StudentProfile) SkillsString() string {
	return helpers.JoinSkills(p.Skills)
}

type EmployerProfile struct {
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"companySize"`
	Website            string `json:"website"`
	Address            string `json:"address"`
}

// Profile - комбинированный ответ бекенда, заполнена секция соответствующая роли
type Profile struct {
	StudentProfile  *StudentProfile  `json:"studentProfile"`
	EmployerProfile *EmployerProfile `json:"employerProfile"`
}
