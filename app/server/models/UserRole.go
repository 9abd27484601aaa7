package models

import "time"

// UserRole 用户与角色的关联，只随用户一起创建
type UserRole struct {
	UserID string `gorm:"column:user_id;type:uuid;primaryKey"`
	RoleID string `gorm:"column:role_id;type:uuid;primaryKey;index"`

	CreatedAt time.Time `gorm:"column:created_at"` // 用于保持角色的插入顺序
}
