package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"net/http"
)

// AuthUser 返回令牌中的声明（type=token ，默认）或完整的用户资料（type=info）
func (a *App) AuthUser(c echo.Context) error {
	claims := middlewares.Claims(c)
	if claims == nil {
		return a.fail(c, auth.ErrUnauthenticated)
	}

	queryType := c.QueryParam("type")
	if queryType == "" {
		queryType = "token"
	}

	switch queryType {
	case "token":
		return c.JSON(http.StatusOK, claims)
	case "info":
		profile, err := a.svc.Guard.Profile(c.Request().Context(), claims)
		if err != nil {
			return a.fail(c, err)
		}
		return c.JSON(http.StatusOK, profile)
	default:
		return a.fail(c, auth.ErrInvalidInput.WithMessage("无效的查询类型"))
	}
}
