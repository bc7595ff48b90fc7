package messagetemplate

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

// Типовые сообщения кандидату, подставляются в форму и могут быть
// отредактированы работодателем перед отправкой.
const (
	acceptTemplate = "Поздравляем, {{.StudentName}}! Мы рады сообщить, что ваша заявка одобрена. Приглашаем вас на собеседование."
	rejectTemplate = "Уважаемый(-ая) {{.StudentName}}, спасибо за вашу заявку. К сожалению, в данный момент мы не можем продолжить рассмотрение вашей кандидатуры."
)

type TemplateData struct {
	StudentName string
}

func BuildAcceptMsg(studentName string) (string, error) {
	return buildMsg(acceptTemplate, TemplateData{StudentName: studentName})
}

func BuildRejectMsg(studentName string) (string, error) {
	return buildMsg(rejectTemplate, TemplateData{StudentName: studentName})
}

func buildMsg(tplBody string, data TemplateData) (string, error) {
	tpl, err := template.New("msg").Parse(tplBody)
	if err != nil {
		return "", errors.Wrap(err, "ошибка разбора шаблона сообщения")
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", errors.Wrap(err, "ошибка формирования сообщения")
	}
	return buf.String(), nil
}
