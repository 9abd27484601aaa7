package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"net/http"
)

type UserUpdateResponse struct {
	Status string            `json:"status"`
	Data   *auth.UserProfile `json:"data"`
}

func (a *App) UserUpdate(c echo.Context) error {
	claims := middlewares.Claims(c)
	if claims == nil {
		return a.fail(c, auth.ErrUnauthenticated)
	}

	// 绑定请求体
	var req auth.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.WithMessage("请求参数无效").With(err))
	}

	profile, err := a.svc.Accounts.UpdateProfile(c.Request().Context(), claims, c.Param("id"), req)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &UserUpdateResponse{
		Status: "success",
		Data:   profile,
	})
}
