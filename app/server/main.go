package main

import (
	"context"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/apidocs"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/handlers"
	"github.com/Edward-Brock/x-dimension/app/server/inits"
	"github.com/Edward-Brock/x-dimension/app/server/jwt"
	"github.com/Edward-Brock/x-dimension/app/server/password"
	"github.com/Edward-Brock/x-dimension/app/server/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"os"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config(os.Args[1:])
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化对象存储
	vendor, err := inits.Storage(context.Background(), cfg)
	if err != nil {
		l.Fatal("error initializing object storage", zap.Error(err))
	}
	if vendor == nil {
		l.Warn("object storage is not configured, upload endpoints are disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey, cfg.Token.Issuer)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 存储，配置了 redis 时资料查询走缓存
	raw := store.New(db)
	var (
		profiles    auth.CredentialStore = raw
		credentials auth.CredentialStore = raw
		catalog     auth.CatalogStore    = raw
	)
	if rdb != nil {
		cached := store.NewCached(raw, rdb, l)
		profiles = cached
		credentials = cached.Uncached()
		catalog = store.NewCachedCatalog(raw, cached)
	} else {
		l.Warn("redis is not configured, user profile cache is disabled")
	}

	hasher := password.New(cfg.Security.PasswordCost)
	issuer := auth.NewIssuer(j, cfg.Token.AccessTTL, cfg.Token.RefreshTTL)

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, handlers.Services{
		Registrar: auth.NewRegistrar(l, raw, hasher, auth.NewDefaultRoleCache(raw, constants.RoleNameUser)),
		Login:     auth.NewAuthenticator(l, raw, hasher, issuer),
		Refresh:   auth.NewRefreshCoordinator(l, j, raw, issuer),
		Guard:     auth.NewGuard(j, profiles),
		Accounts:  auth.NewAccounts(l, credentials, hasher),
		Catalog:   auth.NewCatalog(l, catalog, raw),
		Storage:   vendor,
	})

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlerApp.Register(e)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if swgJson, err := apidocs.Swagger(); err != nil {
			l.Error("error initializing swagger", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", swgJson))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
