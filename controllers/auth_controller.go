package controllers

import (
	"github.com/gofiber/fiber/v2"

	"career-portal-frontend/lib/auth"
	"career-portal-frontend/lib/flash"
	"career-portal-frontend/middleware"
	portalapimodels "career-portal-frontend/models/api/portal"
)

type authController struct {
	BasePageController
}

func InitAuthRouters(app *fiber.App) {
	controller := authController{}
	app.Post("/register", controller.register)
	app.Post("/login", controller.login)
	app.Get("/logout", controller.logout)
}

func (c *authController) register(ctx *fiber.Ctx) error {
	payload := portalapimodels.RegisterRequest{
		Email:              ctx.FormValue("email"),
		Password:           ctx.FormValue("password"),
		Role:               portalapimodels.UserRole(ctx.FormValue("role")),
		FirstName:          ctx.FormValue("firstName"),
		LastName:           ctx.FormValue("lastName"),
		Phone:              ctx.FormValue("phone"),
		LanguagePreference: ctx.FormValue("language"),
	}
	sessionID, hMsg, err := auth.Instance.Register(ctx.UserContext(), payload, ctx.FormValue("confirmPassword"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка регистрации")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).Render("register", c.Bind(ctx, fiber.Map{
			"Title": "Регистрация",
			"Error": hMsg,
		}), "layouts/main")
	}
	if err = c.SetSessionCookie(ctx, sessionID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка создания сессии")
	}
	c.SetFlash(ctx, flash.NewSuccess("Регистрация успешна!"))
	return ctx.Redirect("/profile", fiber.StatusFound)
}

func (c *authController) login(ctx *fiber.Ctx) error {
	payload := portalapimodels.LoginRequest{
		Email:    ctx.FormValue("email"),
		Password: ctx.FormValue("password"),
	}
	sessionID, hMsg, err := auth.Instance.Login(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка входа")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusUnauthorized).Render("login", c.Bind(ctx, fiber.Map{
			"Title": "Вход",
			"Error": hMsg,
		}), "layouts/main")
	}
	if err = c.SetSessionCookie(ctx, sessionID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка создания сессии")
	}
	c.SetFlash(ctx, flash.NewSuccess("Вход выполнен успешно!"))
	return ctx.Redirect("/profile", fiber.StatusFound)
}

func (c *authController) logout(ctx *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID != "" {
		if err := auth.Instance.Logout(ctx.UserContext(), sessionID); err != nil {
			c.GetLogger(ctx).WithError(err).Error("ошибка удаления сессии")
		}
	}
	c.ClearSessionCookie(ctx)
	return ctx.Redirect("/", fiber.StatusFound)
}
