package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/middlewares"
	"github.com/labstack/echo/v4"
)

func (a *App) Register(e *echo.Echo) {
	bearer := middlewares.Bearer(a.svc.Guard, a.fail)
	admin := middlewares.RequireRole(constants.RoleNameAdmin, a.fail)

	api := e.Group("/api")
	api.GET("/healthcheck", a.HealthCheck)

	// 无需登录
	api.POST("/auth/login", a.AuthLogin)
	api.POST("/auth/register", a.AuthRegister)
	api.POST("/auth/refresh", a.AuthRefresh)

	// 需要 access token
	api.GET("/auth/user", a.AuthUser, bearer)
	api.PATCH("/user/password", a.UserPasswordUpdate, bearer)
	api.PATCH("/user/:id", a.UserUpdate, bearer)
	api.POST("/tmp-key", a.StorageTmpKey, bearer)
	api.POST("/upload-url", a.StorageUploadURL, bearer)

	// 需要管理员角色
	api.POST("/role", a.RoleCreate, bearer, admin)
	api.POST("/permission", a.PermissionCreate, bearer, admin)
}
