package constants

import "time"

// 内置角色
const (
	RoleNameUser  = "User" // 注册时自动授予的默认角色
	RoleNameAdmin = "Admin"
)

const (
	AccessTokenDuration  = 10 * time.Minute
	RefreshTokenDuration = 24 * time.Hour
)

const DefaultTokenIssuer = "x-dimension"
