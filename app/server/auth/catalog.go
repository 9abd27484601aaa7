package auth

import (
	"context"
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type RoleInput struct {
	Name        string   `json:"name"`
	Remark      string   `json:"remark"`
	IsFixed     bool     `json:"isFixed"`
	Permissions []string `json:"permissions"`
}

func (r RoleInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 64)),
		validation.Field(&r.Permissions, validation.By(nonEmptyNames)),
	)
}

func nonEmptyNames(value interface{}) error {
	names, _ := value.([]string)
	for _, name := range names {
		if name == "" {
			return errors.New("must not contain empty names")
		}
	}
	return nil
}

type PermissionInput struct {
	Name    string `json:"name"`
	Remark  string `json:"remark"`
	IsFixed bool   `json:"isFixed"`
}

func (r PermissionInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 64)),
	)
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Catalog 角色与权限的维护
type Catalog struct {
	l     *zap.Logger
	store CatalogStore
	users CredentialStore
}

func NewCatalog(l *zap.Logger, store CatalogStore, users CredentialStore) *Catalog {
	return &Catalog{
		l:     l,
		store: store,
		users: users,
	}
}

func (c *Catalog) CreateRole(ctx context.Context, in RoleInput) (*models.Role, error) {
	if err := in.Validate(); err != nil {
		return nil, ErrInvalidInput.With(err)
	}

	// 判断角色是否存在
	if _, err := c.store.FindRoleByName(ctx, in.Name); err == nil {
		return nil, ErrRoleExists
	} else if !errors.Is(err, ErrNotFound) {
		c.l.Error("failed to find role", zap.String("name", in.Name), zap.Error(err))
		return nil, ErrCreateFailed.With(err)
	}

	// 引用的权限必须都存在
	names := uniqueNames(in.Permissions)
	if len(names) > 0 {
		count, err := c.store.CountPermissions(ctx, names)
		if err != nil {
			c.l.Error("failed to count permissions", zap.Strings("permissions", names), zap.Error(err))
			return nil, ErrCreateFailed.With(err)
		}
		if int(count) != len(names) {
			return nil, ErrInvalidInput.WithMessage("权限不存在").With(fmt.Errorf("count permissions mismatch"))
		}
	}

	role := &models.Role{
		Name:        in.Name,
		Remark:      in.Remark,
		IsFixed:     in.IsFixed,
		Permissions: names,
	}
	if err := c.store.CreateRole(ctx, role); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrRoleExists
		}
		c.l.Error("failed to create role", zap.String("name", in.Name), zap.Error(err))
		return nil, ErrCreateFailed.WithMessage("角色创建失败").With(err)
	}

	return role, nil
}

func (c *Catalog) CreatePermission(ctx context.Context, in PermissionInput) (*models.Permission, error) {
	if err := in.Validate(); err != nil {
		return nil, ErrInvalidInput.With(err)
	}

	// 判断权限是否存在
	if _, err := c.store.FindPermissionByName(ctx, in.Name); err == nil {
		return nil, ErrPermissionExists
	} else if !errors.Is(err, ErrNotFound) {
		c.l.Error("failed to find permission", zap.String("name", in.Name), zap.Error(err))
		return nil, ErrCreateFailed.With(err)
	}

	permission := &models.Permission{
		Name:    in.Name,
		Remark:  in.Remark,
		IsFixed: in.IsFixed,
	}
	if err := c.store.CreatePermission(ctx, permission); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrPermissionExists
		}
		c.l.Error("failed to create permission", zap.String("name", in.Name), zap.Error(err))
		return nil, ErrCreateFailed.WithMessage("权限创建失败").With(err)
	}

	return permission, nil
}

// GrantRole 给用户追加角色，已拥有时不做任何事
func (c *Catalog) GrantRole(ctx context.Context, username string, roleName string) error {
	record, err := c.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal.With(err)
	}

	role, err := c.store.FindRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrRoleNotFound
		}
		return ErrInternal.With(err)
	}

	if err := c.store.AssignRole(ctx, record.User.ID, role.ID); err != nil {
		c.l.Error("failed to assign role", zap.String("user", username), zap.String("role", roleName), zap.Error(err))
		return ErrUpdateFailed.With(err)
	}

	return nil
}
