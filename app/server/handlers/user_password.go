package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"net/http"
)

// UserPasswordUpdate 修改当前登录用户的密码
func (a *App) UserPasswordUpdate(c echo.Context) error {
	claims := middlewares.Claims(c)
	if claims == nil {
		return a.fail(c, auth.ErrUnauthenticated)
	}

	// 绑定请求体
	var req auth.ChangePasswordInput
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.WithMessage("缺少密码信息").With(err))
	}

	if err := a.svc.Accounts.ChangePassword(c.Request().Context(), claims.Subject, req); err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &Message{
		StatusCode: http.StatusOK,
		Message:    "密码成功更新",
	})
}
