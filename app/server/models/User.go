package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

const (
	GenderMale    = "Male"
	GenderFemale  = "Female"
	GenderOther   = "Other"
	GenderUnknown = "Unknown"
)

const (
	StatusActive   = "Active"
	StatusBanned   = "Banned"
	StatusLocked   = "Locked"
	StatusInactive = "Inactive"
)

type User struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"` // 用户 ID ，创建时生成

	// 基础信息
	Username  string `gorm:"column:username;size:32;uniqueIndex;not null"` // 用户名，全局唯一
	Nickname  string `gorm:"column:nickname;size:80"`                      // 显示名称
	AvatarURL string `gorm:"column:avatar_url"`                            // 头像地址

	// 个人资料
	Email  string `gorm:"column:email"`
	Mobile string `gorm:"column:mobile;size:11"`
	Gender string `gorm:"column:gender;size:16"` // Male / Female / Other / Unknown
	Status string `gorm:"column:status;size:16"` // Active / Banned / Locked / Inactive
	Remark string `gorm:"column:remark"`

	// 登录认证相关
	Password string `gorm:"column:password;not null" json:"-"` // 密码 hash ，不对外输出

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// BeforeCreate 补全 ID 与默认资料，不依赖数据库默认值
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Gender == "" {
		u.Gender = GenderUnknown
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}
