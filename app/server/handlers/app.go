package handlers

import (
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/storage"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services 各个业务组件
type Services struct {
	Registrar *auth.Registrar
	Login     *auth.Authenticator
	Refresh   *auth.RefreshCoordinator
	Guard     *auth.Guard
	Accounts  *auth.Accounts
	Catalog   *auth.Catalog
	Storage   *storage.Vendor // 未配置对象存储时为 nil
}

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库，只用于健康检查
	rdb *redis.Client // Redis ，未配置时为 nil
	svc Services
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, svc Services) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		svc: svc,
	}
}
