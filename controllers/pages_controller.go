package controllers

import (
	"github.com/gofiber/fiber/v2"

	vacancyhandler "career-portal-frontend/lib/vacancy"
	"career-portal-frontend/middleware"
)

type pagesController struct {
	BasePageController
}

func InitPageRouters(app *fiber.App) {
	controller := pagesController{}
	app.Get("/", controller.home)
	app.Get("/login", controller.loginPage)
	app.Get("/register", controller.registerPage)
}

// Главная: счетчик вакансий; ошибка загрузки не роняет страницу
func (c *pagesController) home(ctx *fiber.Ctx) error {
	vacanciesCount := 0
	view, err := vacancyhandler.Instance.List(ctx.UserContext())
	if err != nil {
		c.GetLogger(ctx).WithError(err).Warn("не удалось получить число вакансий")
	} else {
		vacanciesCount = view.Total
	}
	return ctx.Render("index", c.Bind(ctx, fiber.Map{
		"Title":          "Карьерный портал",
		"VacanciesCount": vacanciesCount,
	}), "layouts/main")
}

func (c *pagesController) loginPage(ctx *fiber.Ctx) error {
	if middleware.GetSession(ctx) != nil {
		return ctx.Redirect("/profile", fiber.StatusFound)
	}
	return ctx.Render("login", c.Bind(ctx, fiber.Map{
		"Title": "Вход",
	}), "layouts/main")
}

func (c *pagesController) registerPage(ctx *fiber.Ctx) error {
	if middleware.GetSession(ctx) != nil {
		return ctx.Redirect("/profile", fiber.StatusFound)
	}
	return ctx.Render("register", c.Bind(ctx, fiber.Map{
		"Title": "Регистрация",
	}), "layouts/main")
}
