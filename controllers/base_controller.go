package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"career-portal-frontend/config"
	"career-portal-frontend/lib/flash"
	"career-portal-frontend/lib/portal/client"
	"career-portal-frontend/lib/session"
	sessionstore "career-portal-frontend/lib/session/store"
	"career-portal-frontend/middleware"
)

type BasePageController struct{}

func (c *BasePageController) GetID(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("не удалось получить идентификатор записи")
	}
	return int64(id), nil
}

func (c *BasePageController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("path", ctx.Path()).
		WithField("method", ctx.Method())
	if sess := middleware.GetSession(ctx); sess != nil {
		logger = logger.WithField("user_email", sess.User.Email)
	}
	return logger
}

// Bind - общие данные каждой страницы: пользователь для шапки и flash-сообщение
func (c *BasePageController) Bind(ctx *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	sess := middleware.GetSession(ctx)
	data["Authenticated"] = sess != nil
	if sess != nil {
		data["CurrentUser"] = sess.User
	}
	if msg := c.ConsumeFlash(ctx); msg != nil {
		data["Flash"] = msg
	}
	return data
}

func (c *BasePageController) SetFlash(ctx *fiber.Ctx, msg flash.Message) {
	key, err := flash.Instance.Push(ctx.UserContext(), msg)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка сохранения flash-сообщения")
		return
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Session.FlashCookieName,
		Value:    key,
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c *BasePageController) ConsumeFlash(ctx *fiber.Ctx) *flash.Message {
	key := ctx.Cookies(config.Conf.Session.FlashCookieName)
	if key == "" {
		return nil
	}
	ctx.ClearCookie(config.Conf.Session.FlashCookieName)
	msg, err := flash.Instance.Pop(ctx.UserContext(), key)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка чтения flash-сообщения")
		return nil
	}
	return msg
}

func (c *BasePageController) SetSessionCookie(ctx *fiber.Ctx, sessionID string) error {
	ttl := time.Duration(config.Conf.Session.TTLInHours) * time.Hour
	cookie, err := session.MintCookie(sessionID, config.Conf.Session.JWTSecret, ttl)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования cookie сессии")
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Session.CookieName,
		Value:    cookie,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (c *BasePageController) ClearSessionCookie(ctx *fiber.Ctx) {
	ctx.ClearCookie(config.Conf.Session.CookieName)
}

// SendError - транспортная ошибка бекенда: логируем и показываем страницу ошибки.
// Протухший токен обнаруживается здесь по 401 - сессия снимается и
// пользователь уходит на страницу входа.
func (c *BasePageController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	logger.WithError(err).Error(hMsg)
	if apiErr, ok := client.AsAPIError(err); ok && apiErr.IsUnauthorized() {
		if sessionID := middleware.GetSessionID(ctx); sessionID != "" {
			if delErr := sessionstore.Instance.Delete(ctx.UserContext(), sessionID); delErr != nil {
				logger.WithError(delErr).Error("ошибка удаления сессии")
			}
		}
		c.ClearSessionCookie(ctx)
		return ctx.Redirect("/login", fiber.StatusFound)
	}
	return ctx.Status(fiber.StatusBadGateway).Render("error", c.Bind(ctx, fiber.Map{
		"Title":   "Ошибка",
		"Message": "Ошибка подключения к серверу",
	}), "layouts/main")
}
