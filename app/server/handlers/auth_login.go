package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/labstack/echo/v4"
	"net/http"
)

type TokenResponse struct {
	Token *auth.TokenPair `json:"token"`
}

func (a *App) AuthLogin(c echo.Context) error {
	// 绑定请求体
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.With(err))
	}

	pair, err := a.svc.Login.Login(c.Request().Context(), req)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &TokenResponse{Token: pair})
}
