package controllers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"career-portal-frontend/lib/flash"
	reviewhandler "career-portal-frontend/lib/review"
	"career-portal-frontend/middleware"
)

type employerController struct {
	BasePageController
}

func InitEmployerRouters(app *fiber.App) {
	controller := employerController{}
	app.Route("employer", func(router fiber.Router) {
		router.Use(middleware.EmployerRequired())
		router.Route("vacancies/:id", func(idRoute fiber.Router) {
			idRoute.Get("applications", controller.applications)
			idRoute.Post("deactivate", controller.deactivate)
		})
		router.Route("applications/:id", func(idRoute fiber.Router) {
			idRoute.Post("accept", controller.accept)
			idRoute.Post("reject", controller.reject)
		})
	})
}

// Заявки одной вакансии; заголовок приходит параметром из карточки
func (c *employerController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sess := middleware.GetSession(ctx)
	view, err := reviewhandler.Instance.Applications(ctx.UserContext(), sess, id, ctx.Query("title"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка загрузки заявок")
	}
	return ctx.Render("applications", c.Bind(ctx, fiber.Map{
		"Title":        view.Title,
		"VacancyID":    view.VacancyID,
		"VacancyTitle": view.Title,
		"Applications": view.Applications,
		"Total":        view.Total,
	}), "layouts/main")
}

func (c *employerController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sess := middleware.GetSession(ctx)
	hMsg, err := reviewhandler.Instance.Deactivate(ctx.UserContext(), sess, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка деактивации вакансии")
	}
	if hMsg != "" {
		c.SetFlash(ctx, flash.NewError(hMsg))
	} else {
		c.SetFlash(ctx, flash.NewSuccess("✅ Вакансия успешно деактивирована"))
	}
	return ctx.Redirect("/profile", fiber.StatusFound)
}

func (c *employerController) accept(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sess := middleware.GetSession(ctx)
	req := reviewhandler.AcceptRequest{
		ApplicationID:   id,
		VacancyID:       c.getVacancyID(ctx),
		EmployerMessage: ctx.FormValue("employerMessage"),
		InterviewTime:   ctx.FormValue("interviewTime"),
	}
	hMsg, err := reviewhandler.Instance.Accept(ctx.UserContext(), sess, req)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка принятия заявки")
	}
	if hMsg != "" {
		c.SetFlash(ctx, flash.NewError(hMsg))
	} else {
		c.SetFlash(ctx, flash.NewSuccess("✅ Кандидат принят! Сообщение и время собеседования отправлены."))
	}
	return c.redirectToApplications(ctx, req.VacancyID)
}

func (c *employerController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sess := middleware.GetSession(ctx)
	req := reviewhandler.RejectRequest{
		ApplicationID:   id,
		VacancyID:       c.getVacancyID(ctx),
		EmployerMessage: ctx.FormValue("employerMessage"),
	}
	hMsg, err := reviewhandler.Instance.Reject(ctx.UserContext(), sess, req)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка отклонения заявки")
	}
	if hMsg != "" {
		c.SetFlash(ctx, flash.NewError(hMsg))
	} else {
		c.SetFlash(ctx, flash.NewSuccess("❌ Заявка отклонена. Сообщение отправлено."))
	}
	return c.redirectToApplications(ctx, req.VacancyID)
}

func (c *employerController) getVacancyID(ctx *fiber.Ctx) int64 {
	var id int64
	_, _ = fmt.Sscan(ctx.FormValue("vacancyId"), &id)
	return id
}

func (c *employerController) redirectToApplications(ctx *fiber.Ctx, vacancyID int64) error {
	title := url.QueryEscape(ctx.FormValue("vacancyTitle"))
	uri := fmt.Sprintf("/employer/vacancies/%v/applications?title=%v", vacancyID, title)
	return ctx.Redirect(uri, fiber.StatusFound)
}
