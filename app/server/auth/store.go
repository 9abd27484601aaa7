package auth

import (
	"context"
	"errors"
	"github.com/Edward-Brock/x-dimension/app/server/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRecord 用户及其角色名，角色按关联创建顺序排列
type UserRecord struct {
	User  models.User
	Roles []string
}

// UserFields 允许修改的资料字段， nil 表示不修改
type UserFields struct {
	Nickname  *string
	Email     *string
	Mobile    *string
	AvatarURL *string
	Gender    *string
	Status    *string
	Remark    *string
}

func (f UserFields) Empty() bool {
	return f.Nickname == nil && f.Email == nil && f.Mobile == nil && f.AvatarURL == nil &&
		f.Gender == nil && f.Status == nil && f.Remark == nil
}

// CredentialStore 用户、角色及关联的持久化。找不到记录时返回 ErrNotFound ，唯一约束冲突时返回 ErrDuplicate
type CredentialStore interface {
	FindUserByUsername(ctx context.Context, username string) (*UserRecord, error)
	FindUserByID(ctx context.Context, id string) (*UserRecord, error)
	FindRoleByName(ctx context.Context, name string) (*models.Role, error)
	// CreateUserWithRole 在同一个事务里写入用户和角色关联
	CreateUserWithRole(ctx context.Context, user *models.User, roleID string) error
	UpdatePassword(ctx context.Context, id string, digest string) error
	UpdateUserFields(ctx context.Context, id string, fields UserFields) error
}

// CatalogStore 角色与权限的维护
type CatalogStore interface {
	FindRoleByName(ctx context.Context, name string) (*models.Role, error)
	FindPermissionByName(ctx context.Context, name string) (*models.Permission, error)
	CountPermissions(ctx context.Context, names []string) (int64, error)
	CreateRole(ctx context.Context, role *models.Role) error
	CreatePermission(ctx context.Context, permission *models.Permission) error
	// AssignRole 已存在的关联直接忽略
	AssignRole(ctx context.Context, userID string, roleID string) error
}
