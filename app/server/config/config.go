package config

import "time"

type Config struct {
	System struct {
		IsProd                bool   `yaml:"isProd"`                // 是否为生产环境
		Listen                string `yaml:"listen"`                // 监听地址
		DBConnectionString    string `yaml:"dbConnectionString"`    // Postgres 数据库的连接字符串
		RedisConnectionString string `yaml:"redisConnectionString"` // Redis 数据库的连接字符串，为空时不使用缓存
	} `yaml:"system"`
	Security struct {
		SignatureSecretKey string `yaml:"signatureSecretKey"` // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		PasswordCost       int    `yaml:"passwordCost"`       // bcrypt 强度
	} `yaml:"security"`
	Token struct {
		Issuer     string        `yaml:"issuer"`
		AccessTTL  time.Duration `yaml:"accessTTL"`  // 短期 Token 有效期
		RefreshTTL time.Duration `yaml:"refreshTTL"` // 长期 Token 有效期
	} `yaml:"token"`
	Storage struct {
		Region          string `yaml:"region"`
		Endpoint        string `yaml:"endpoint"` // 兼容 S3 的服务地址
		Bucket          string `yaml:"bucket"`
		AccessKeyID     string `yaml:"accessKeyId"`
		SecretAccessKey string `yaml:"secretAccessKey"`
	} `yaml:"storage"`
}
