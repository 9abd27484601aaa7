package handlers

import (
	"context"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"go.uber.org/zap"
)

type RoleSeeder interface {
	EnsureRoles(ctx context.Context, names ...string) error
}

type App struct {
	l         *zap.Logger
	seeder    RoleSeeder
	registrar *auth.Registrar
	catalog   *auth.Catalog
}

func NewApp(l *zap.Logger, seeder RoleSeeder, registrar *auth.Registrar, catalog *auth.Catalog) *App {
	return &App{
		l:         l,
		seeder:    seeder,
		registrar: registrar,
		catalog:   catalog,
	}
}

func (a *App) Run(ctx context.Context, cmd *Command) error {
	switch cmd.Name {
	case CommandSeed:
		if err := a.seeder.EnsureRoles(ctx, constants.RoleNameAdmin, constants.RoleNameUser); err != nil {
			return fmt.Errorf("failed to seed roles: %w", err)
		}
		a.l.Info("fixed roles are ready")

	case CommandGrant:
		if err := a.catalog.GrantRole(ctx, cmd.Username, cmd.Role); err != nil {
			return fmt.Errorf("failed to grant role: %w", err)
		}
		a.l.Info("role granted", zap.String("user", cmd.Username), zap.String("role", cmd.Role))

	case CommandCreateAdmin:
		user, err := a.registrar.Register(ctx, auth.RegisterInput{
			Nickname: cmd.Nickname,
			Username: cmd.Username,
			Password: cmd.Password,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err = a.catalog.GrantRole(ctx, cmd.Username, cmd.Role); err != nil {
			return fmt.Errorf("failed to grant role: %w", err)
		}
		a.l.Info("admin created", zap.String("id", user.ID), zap.String("user", cmd.Username))

	default:
		return fmt.Errorf("unknown command %q", cmd.Name)
	}

	return nil
}
