package controllers

import (
	"github.com/gofiber/fiber/v2"

	"career-portal-frontend/lib/flash"
	profilehandler "career-portal-frontend/lib/profile"
	"career-portal-frontend/middleware"
)

type profileController struct {
	BasePageController
}

func InitProfileRouters(app *fiber.App) {
	controller := profileController{}
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.profile)
		router.Post("student", controller.updateStudent)
		router.Post("employer", controller.updateEmployer)
	})
}

func (c *profileController) profile(ctx *fiber.Ctx) error {
	sess := middleware.GetSession(ctx)
	view, err := profilehandler.Instance.Get(ctx.UserContext(), sess)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка загрузки профиля")
	}
	return ctx.Render("profile", c.Bind(ctx, fiber.Map{
		"Title":    "Профиль",
		"User":     view.User,
		"Student":  view.Student,
		"Employer": view.Employer,
	}), "layouts/main")
}

func (c *profileController) updateStudent(ctx *fiber.Ctx) error {
	sess := middleware.GetSession(ctx)
	form := profilehandler.StudentForm{
		University:     ctx.FormValue("university"),
		Faculty:        ctx.FormValue("faculty"),
		Specialization: ctx.FormValue("specialization"),
		Course:         ctx.FormValue("course"),
		GraduationYear: ctx.FormValue("graduationYear"),
		Gpa:            ctx.FormValue("gpa"),
		Skills:         ctx.FormValue("skills"),
		Bio:            ctx.FormValue("bio"),
		LinkedinUrl:    ctx.FormValue("linkedinUrl"),
		GithubUrl:      ctx.FormValue("githubUrl"),
	}
	hMsg, err := profilehandler.Instance.UpdateStudent(ctx.UserContext(), sess, form)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка обновления профиля студента")
	}
	if hMsg != "" {
		c.SetFlash(ctx, flash.NewError(hMsg))
	} else {
		c.SetFlash(ctx, flash.NewSuccess("Профиль успешно обновлен!"))
	}
	return ctx.Redirect("/profile", fiber.StatusFound)
}

func (c *profileController) updateEmployer(ctx *fiber.Ctx) error {
	sess := middleware.GetSession(ctx)
	form := profilehandler.EmployerForm{
		CompanyName:        ctx.FormValue("companyName"),
		CompanyDescription: ctx.FormValue("companyDescription"),
		Industry:           ctx.FormValue("industry"),
		CompanySize:        ctx.FormValue("companySize"),
		Website:            ctx.FormValue("website"),
		Address:            ctx.FormValue("address"),
	}
	hMsg, err := profilehandler.Instance.UpdateEmployer(ctx.UserContext(), sess, form)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка обновления профиля работодателя")
	}
	if hMsg != "" {
		c.SetFlash(ctx, flash.NewError(hMsg))
	} else {
		c.SetFlash(ctx, flash.NewSuccess("Профиль успешно обновлен!"))
	}
	return ctx.Redirect("/profile", fiber.StatusFound)
}
