package store

import (
	"context"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"gorm.io/gorm"
)

var (
	_ auth.CredentialStore = (*Store)(nil)
	_ auth.CatalogStore    = (*Store)(nil)
)

// Store 基于 Postgres 的用户、角色与权限存储
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*auth.UserRecord, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}

	return s.withRoles(ctx, &user)
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*auth.UserRecord, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	return s.withRoles(ctx, &user)
}

// withRoles 查询用户的角色名，按授予顺序排列
func (s *Store) withRoles(ctx context.Context, user *models.User) (*auth.UserRecord, error) {
	roles := []string{}
	if err := s.db.WithContext(ctx).
		Model(&models.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", user.ID).
		Order("user_roles.created_at ASC").
		Pluck("roles.name", &roles).Error; err != nil {
		return nil, fmt.Errorf("failed to get roles of user %s: %w", user.ID, err)
	}

	return &auth.UserRecord{
		User:  *user,
		Roles: roles,
	}, nil
}

func (s *Store) CreateUserWithRole(ctx context.Context, user *models.User, roleID string) error {
	return translate(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		return tx.Create(&models.UserRole{
			UserID: user.ID,
			RoleID: roleID,
		}).Error
	}))
}

func (s *Store) UpdatePassword(ctx context.Context, id string, digest string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", digest)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return auth.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateUserFields(ctx context.Context, id string, fields auth.UserFields) error {
	updates := map[string]interface{}{}
	for column, value := range map[string]*string{
		"nickname":   fields.Nickname,
		"email":      fields.Email,
		"mobile":     fields.Mobile,
		"avatar_url": fields.AvatarURL,
		"gender":     fields.Gender,
		"status":     fields.Status,
		"remark":     fields.Remark,
	} {
		if value != nil {
			updates[column] = *value
		}
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return auth.ErrNotFound
	}

	return nil
}
