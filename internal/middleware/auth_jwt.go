package middleware

import (
	"errors"
	"strconv"
	"strings"

	"crosstop/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey        = "user_id"       // int64
	CtxAuthenticatedKey = "authenticated" // bool
)

// AuthOptional はBearerトークンがあれば検証してuser_idを載せる。
// 無い・不正なら匿名として通す（カート解決が匿名側に倒れる）
func AuthOptional(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CtxAuthenticatedKey, false)

			rawToken := extractBearer(c)
			if rawToken == "" {
				return next(c)
			}

			// JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return next(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}

			userID, err := parseUserID(claims["sub"])
			if err != nil || userID <= 0 {
				return next(c)
			}

			c.Set(CtxUserIDKey, userID)
			c.Set(CtxAuthenticatedKey, true)

			return next(c)
		}
	}
}

func extractBearer(c echo.Context) string {
	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return ""
	}

	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// user_idをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
