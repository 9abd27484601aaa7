package store

import (
	"context"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"gorm.io/gorm/clause"
)

func (s *Store) FindRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).First(&role, "name = ?", name).Error; err != nil {
		return nil, translate(err)
	}

	return &role, nil
}

func (s *Store) FindPermissionByName(ctx context.Context, name string) (*models.Permission, error) {
	var permission models.Permission
	if err := s.db.WithContext(ctx).First(&permission, "name = ?", name).Error; err != nil {
		return nil, translate(err)
	}

	return &permission, nil
}

func (s *Store) CountPermissions(ctx context.Context, names []string) (int64, error) {
	var counter int64
	if err := s.db.WithContext(ctx).Model(&models.Permission{}).Where("name IN ?", names).Count(&counter).Error; err != nil {
		return 0, translate(err)
	}

	return counter, nil
}

func (s *Store) CreateRole(ctx context.Context, role *models.Role) error {
	return translate(s.db.WithContext(ctx).Create(role).Error)
}

func (s *Store) CreatePermission(ctx context.Context, permission *models.Permission) error {
	return translate(s.db.WithContext(ctx).Create(permission).Error)
}

func (s *Store) AssignRole(ctx context.Context, userID string, roleID string) error {
	return translate(s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserRole{
			UserID: userID,
			RoleID: roleID,
		}).Error)
}

// EnsureRoles 创建缺失的内置角色，已有的不做修改
func (s *Store) EnsureRoles(ctx context.Context, names ...string) error {
	for _, name := range names {
		role := models.Role{
			Name:    name,
			IsFixed: true,
		}
		if err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&role).Error; err != nil {
			return translate(err)
		}
	}

	return nil
}
