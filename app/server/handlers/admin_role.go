package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) RoleCreate(c echo.Context) error {
	// 绑定请求体
	var req auth.RoleInput
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.With(err))
	}

	role, err := a.svc.Catalog.CreateRole(c.Request().Context(), req)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &Message{
		StatusCode: http.StatusCreated,
		Message:    "角色创建成功",
		Data:       role,
	})
}

func (a *App) PermissionCreate(c echo.Context) error {
	// 绑定请求体
	var req auth.PermissionInput
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.With(err))
	}

	permission, err := a.svc.Catalog.CreatePermission(c.Request().Context(), req)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &Message{
		StatusCode: http.StatusCreated,
		Message:    "权限创建成功",
		Data:       permission,
	})
}
