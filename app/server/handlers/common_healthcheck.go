package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	rctx := c.Request().Context()

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err != nil {
			a.l.Error("failed to get database handle", zap.Error(err))
			return c.NoContent(http.StatusServiceUnavailable)
		} else if err = sqlDB.PingContext(rctx); err != nil {
			a.l.Error("failed to ping database", zap.Error(err))
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	// 缓存不可用时仍能服务，只记录
	if a.rdb != nil {
		if err := a.rdb.Ping(rctx).Err(); err != nil {
			a.l.Warn("failed to ping redis", zap.Error(err))
		}
	}

	return c.NoContent(http.StatusOK)
}
