package inits

import (
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接，唯一约束冲突等错误转换为 gorm 的通用错误
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserRole{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化内置角色
	if err = db.Model(&models.Role{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get role count: %w", err)
	} else if counter == 0 { // 没有任何角色，添加内置角色
		if err = db.Create([]*models.Role{
			{
				Name:        constants.RoleNameAdmin,
				Remark:      "管理员",
				IsFixed:     true,
				Permissions: []string{},
			},
			{
				Name:        constants.RoleNameUser,
				Remark:      "注册用户的默认角色",
				IsFixed:     true,
				Permissions: []string{},
			},
		}).Error; err != nil {
			return fmt.Errorf("failed to create fixed roles: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
