package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type Permission struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"`

	Name    string `gorm:"column:name;uniqueIndex;not null"` // 权限名，全局唯一
	Remark  string `gorm:"column:remark"`
	IsFixed bool   `gorm:"column:is_fixed"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (p *Permission) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
