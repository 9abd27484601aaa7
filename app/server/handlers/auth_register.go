package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/labstack/echo/v4"
	"net/http"
)

type CreatedUserData struct {
	User *auth.CreatedUser `json:"user"`
}

func (a *App) AuthRegister(c echo.Context) error {
	// 绑定请求体
	var req auth.RegisterInput
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.With(err))
	}

	user, err := a.svc.Registrar.Register(c.Request().Context(), req)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &Message{
		StatusCode: http.StatusCreated,
		Message:    "账号注册成功",
		Data:       &CreatedUserData{User: user},
	})
}
