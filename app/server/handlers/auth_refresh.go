package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/labstack/echo/v4"
	"net/http"
)

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (a *App) AuthRefresh(c echo.Context) error {
	// 绑定请求体
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrMissingToken.With(err))
	}

	pair, err := a.svc.Refresh.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &TokenResponse{Token: pair})
}
