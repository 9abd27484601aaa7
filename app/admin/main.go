package main

import (
	"context"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/admin/handlers"
	admininits "github.com/Edward-Brock/x-dimension/app/admin/inits"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/inits"
	"github.com/Edward-Brock/x-dimension/app/server/password"
	"github.com/Edward-Brock/x-dimension/app/server/store"
	"go.uber.org/zap"
	"log"
	"os"
)

func main() {
	// 解析子命令
	cmd, err := handlers.ParseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// 初始化配置
	cfg, err := admininits.Config(os.LookupEnv)
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 初始化数据库连接，会顺带完成迁移
	db, err := inits.DB(cfg.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接，与服务端共用用户资料缓存
	rdb, err := inits.Redis(cfg.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	s := store.New(db)
	var catalog auth.CatalogStore = s
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		catalog = store.NewCachedCatalog(s, store.NewCached(s, rdb, l))
	} else {
		l.Warn("redis is not configured, server side profile cache will expire on its own")
	}

	hasher := password.New(cfg.PasswordCost)
	app := handlers.NewApp(l, s,
		auth.NewRegistrar(l, s, hasher, auth.NewDefaultRoleCache(s, constants.RoleNameUser)),
		auth.NewCatalog(l, catalog, s),
	)

	if err = app.Run(context.Background(), cmd); err != nil {
		l.Fatal("command failed", zap.String("command", cmd.Name), zap.Error(err))
	}
}
