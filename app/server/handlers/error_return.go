package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type ErrorMessage struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

type Message struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &ErrorMessage{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	})
}

// fail 按错误类别输出响应，内部原因只写日志
func (a *App) fail(c echo.Context, err error) error {
	e := auth.AsError(err)
	statusCode := statusOf(e)

	message := e.Message
	if statusCode >= http.StatusInternalServerError {
		a.l.Error("request failed", zap.String("code", string(e.Code)), zap.String("uri", c.Request().RequestURI), zap.Error(e.Err))
		message = http.StatusText(statusCode)
	} else if e.Err != nil {
		a.l.Debug("request rejected", zap.String("code", string(e.Code)), zap.Error(e.Err))
	}

	return c.JSON(statusCode, &ErrorMessage{
		StatusCode: statusCode,
		Code:       string(e.Code),
		Message:    message,
	})
}

func statusOf(e *auth.Error) int {
	switch e.Kind {
	case auth.KindInvalidInput:
		return http.StatusBadRequest
	case auth.KindConflict:
		return http.StatusConflict
	case auth.KindUnauthenticated:
		if e.Code == auth.CodeBadCredentials {
			return http.StatusBadRequest
		}
		return http.StatusForbidden
	case auth.KindAccessTokenExpired:
		return http.StatusUnauthorized
	case auth.KindTokenExpired, auth.KindInvalidToken, auth.KindNotFound, auth.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
