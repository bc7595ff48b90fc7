package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"career-portal-frontend/config"
	"career-portal-frontend/lib/session"
	sessionstore "career-portal-frontend/lib/session/store"
)

const (
	localsSession   = "portal_session"
	localsSessionID = "portal_session_id"
)

// SessionLoader разбирает cookie и кладет сессию в контекст запроса.
// Отсутствие или нечитаемость cookie не ошибка - запрос идет как анонимный.
func SessionLoader() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		cookie := ctx.Cookies(config.Conf.Session.CookieName)
		if cookie == "" {
			return ctx.Next()
		}
		sessionID, err := session.ParseCookie(cookie, config.Conf.Session.JWTSecret)
		if err != nil {
			log.WithError(err).Debug("cookie сессии не распознана")
			return ctx.Next()
		}
		data, err := sessionstore.Instance.Get(ctx.UserContext(), sessionID)
		if err != nil {
			log.WithError(err).Error("ошибка чтения сессии")
			return ctx.Next()
		}
		if data == nil {
			return ctx.Next()
		}
		ctx.Locals(localsSession, data)
		ctx.Locals(localsSessionID, sessionID)
		return ctx.Next()
	}
}

// AuthorizationRequired - страницы требующие входа; аноним уходит на /login
func AuthorizationRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetSession(ctx) == nil {
			return ctx.Redirect("/login", fiber.StatusFound)
		}
		return ctx.Next()
	}
}

// EmployerRequired пускает только работодателя
func EmployerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess := GetSession(ctx)
		if sess == nil {
			return ctx.Redirect("/login", fiber.StatusFound)
		}
		if !sess.User.IsEmployer() {
			return ctx.SendStatus(fiber.StatusForbidden)
		}
		return ctx.Next()
	}
}

func GetSession(ctx *fiber.Ctx) *sessionstore.Data {
	data, ok := ctx.Locals(localsSession).(*sessionstore.Data)
	if !ok {
		return nil
	}
	return data
}

func GetSessionID(ctx *fiber.Ctx) string {
	id, ok := ctx.Locals(localsSessionID).(string)
	if !ok {
		return ""
	}
	return id
}
