package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/labstack/echo/v4"
	"net/http"
)

type TmpKeyRequest struct {
	Scope string `json:"scope"`
}

type UploadURLRequest struct {
	Filename string `json:"filename"`
}

func (a *App) StorageTmpKey(c echo.Context) error {
	if a.svc.Storage == nil {
		return a.er(c, http.StatusServiceUnavailable)
	}

	// 绑定请求体
	var req TmpKeyRequest
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.With(err))
	}

	keys, err := a.svc.Storage.TemporaryKeys(c.Request().Context(), req.Scope)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, keys)
}

func (a *App) StorageUploadURL(c echo.Context) error {
	if a.svc.Storage == nil {
		return a.er(c, http.StatusServiceUnavailable)
	}

	// 绑定请求体
	var req UploadURLRequest
	if err := c.Bind(&req); err != nil {
		return a.fail(c, auth.ErrInvalidInput.With(err))
	}

	u, err := a.svc.Storage.PresignUpload(c.Request().Context(), req.Filename)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, u)
}
