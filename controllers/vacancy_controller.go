package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"career-portal-frontend/lib/flash"
	vacancyhandler "career-portal-frontend/lib/vacancy"
	"career-portal-frontend/middleware"
)

type vacancyController struct {
	BasePageController
}

func InitVacancyRouters(app *fiber.App) {
	controller := vacancyController{}
	app.Route("vacancies", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.modal)
			idRoute.Use(middleware.AuthorizationRequired()).Post("apply", controller.apply)
		})
	})
}

// Список вакансий, с фильтром по ?query=
func (c *vacancyController) list(ctx *fiber.Ctx) error {
	query := ctx.Query("query")
	view, err := vacancyhandler.Instance.Search(ctx.UserContext(), query)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка загрузки вакансий")
	}
	return ctx.Render("vacancies", c.Bind(ctx, fiber.Map{
		"Title":     "Вакансии",
		"Query":     query,
		"Vacancies": view.Vacancies,
		"Total":     view.Total,
		"IsEmpty":   view.IsEmpty(),
	}), "layouts/main")
}

// Карточка вакансии: статус своей заявки либо форма подачи
func (c *vacancyController) modal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sess := middleware.GetSession(ctx)
	view, err := vacancyhandler.Instance.Modal(ctx.UserContext(), sess, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки деталей вакансии")
	}
	return ctx.Render("vacancy", c.Bind(ctx, fiber.Map{
		"Title":         view.Vacancy.DisplayTitleOrStub(),
		"Vacancy":       view.Vacancy,
		"Existing":      view.Existing,
		"ShowApplyForm": view.ShowApplyForm,
	}), "layouts/main")
}

// Подача заявки; после успеха возврат на карточку - статус подтянется заново
func (c *vacancyController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sess := middleware.GetSession(ctx)
	hMsg, err := vacancyhandler.Instance.Apply(ctx.UserContext(), sess, id, ctx.FormValue("coverLetter"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка отправки заявки")
	}
	if hMsg != "" {
		c.SetFlash(ctx, flash.NewError(hMsg))
	} else {
		c.SetFlash(ctx, flash.NewSuccess("Заявка успешно отправлена!"))
	}
	return ctx.Redirect(fmt.Sprintf("/vacancies/%v", id), fiber.StatusFound)
}
