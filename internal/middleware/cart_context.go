package middleware

import (
	"net/http"

	"crosstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	CtxRequestContextKey = "request_context" // usecase.RequestContext

	// 匿名カートを引くセッショントークンのcookie
	SessionCookieName = "cart_session"
)

// CartContext は毎リクエストで (customer, cart, items) を解決して載せる。
// 匿名はcookieのセッショントークンでカートをスコープし、
// cookieが無ければここで発行する
func CartContext(identity *usecase.IdentityUsecase, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, authenticated := userIDFrom(c)

			sessionToken := sessionTokenFrom(c)
			if sessionToken == "" {
				sessionToken = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionToken,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			rc, err := identity.Resolve(c.Request().Context(), userID, authenticated, sessionToken)
			if err != nil {
				log.Error("request context resolution failed",
					zap.Int64("user_id", userID),
					zap.Bool("authenticated", authenticated),
					zap.Error(err),
				)
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}

			c.Set(CtxRequestContextKey, rc)
			return next(c)
		}
	}
}

func userIDFrom(c echo.Context) (int64, bool) {
	authed, _ := c.Get(CtxAuthenticatedKey).(bool)
	if !authed {
		return 0, false
	}
	id, ok := c.Get(CtxUserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func sessionTokenFrom(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}
