package config

type Config struct {
	// 基础配置
	IsProd bool

	// 数据库
	DBConnectionString string

	// Redis ，可选。配置后授予角色会清理服务端的用户资料缓存
	RedisConnectionString string

	// 新密码使用的 bcrypt 强度
	PasswordCost int
}
