package middlewares

import (
	"errors"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/jwt"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// ErrorWriter 把认证失败写成响应
type ErrorWriter func(c echo.Context, err error) error

type Authenticator interface {
	Authenticate(authHeader string) (*jwt.Claims, error)
}

// Bearer 校验 Authorization 头，成功后把声明放进 context
func Bearer(guard Authenticator, writeError ErrorWriter) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsKey,
		// 不带前缀，整个头交给 guard 判断格式
		TokenLookup: "header:Authorization",
		ParseTokenFunc: func(c echo.Context, authHeader string) (interface{}, error) {
			return guard.Authenticate(authHeader)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var e *auth.Error
			if errors.As(err, &e) {
				return writeError(c, e)
			}
			// 取不到头
			return writeError(c, auth.ErrMissingHeader.With(err))
		},
	})
}

// RequireRole 要求令牌中包含指定角色，需放在 Bearer 之后
func RequireRole(role string, writeError ErrorWriter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := Claims(c)
			if claims == nil {
				return writeError(c, auth.ErrUnauthenticated)
			}
			if !auth.HasRole(claims.Roles, role) {
				return writeError(c, auth.ErrForbidden)
			}
			return next(c)
		}
	}
}

// Claims 取出 Bearer 设置的声明，未认证时为 nil
func Claims(c echo.Context) *jwt.Claims {
	claims, _ := c.Get(claimsKey).(*jwt.Claims)
	return claims
}
