package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"time"
)

type Role struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"`

	Name        string         `gorm:"column:name;uniqueIndex;not null"` // 角色名，全局唯一
	Remark      string         `gorm:"column:remark"`                    // 备注
	IsFixed     bool           `gorm:"column:is_fixed"`                  // 系统内置角色，不允许修改或删除
	Permissions pq.StringArray `gorm:"column:permissions;type:text[]"`   // 角色拥有的权限名

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
