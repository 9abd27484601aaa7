package inits

import (
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/config"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/password"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
	"strings"
	"time"
)

func Config(args []string) (*config.Config, error) {
	return loadConfig(args, os.LookupEnv)
}

func loadConfig(args []string, lookup func(string) (string, bool)) (*config.Config, error) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	configFile := fs.String("config", "", "YAML 配置文件路径，环境变量优先")
	listen := fs.String("listen", "", "监听地址，覆盖 LISTEN")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := &config.Config{}
	cfg.System.Listen = ":1323" // 默认监听地址
	cfg.Security.PasswordCost = password.DefaultCost
	cfg.Token.Issuer = constants.DefaultTokenIssuer
	cfg.Token.AccessTTL = constants.AccessTokenDuration
	cfg.Token.RefreshTTL = constants.RefreshTokenDuration

	// 配置文件只提供默认值
	path := *configFile
	if path == "" {
		path, _ = lookup("CONFIG_FILE")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// 环境变量
	if mode, exist := lookup("MODE"); exist {
		cfg.System.IsProd = strings.HasPrefix(strings.ToLower(mode), "p")
	}

	strs := map[string]*string{
		"LISTEN":                    &cfg.System.Listen,
		"DB_CONN":                   &cfg.System.DBConnectionString,
		"REDIS_CONN":                &cfg.System.RedisConnectionString,
		"SIGNATURE_SECRET_KEY":      &cfg.Security.SignatureSecretKey,
		"TOKEN_ISSUER":              &cfg.Token.Issuer,
		"STORAGE_REGION":            &cfg.Storage.Region,
		"STORAGE_ENDPOINT":          &cfg.Storage.Endpoint,
		"STORAGE_BUCKET":            &cfg.Storage.Bucket,
		"STORAGE_ACCESS_KEY_ID":     &cfg.Storage.AccessKeyID,
		"STORAGE_SECRET_ACCESS_KEY": &cfg.Storage.SecretAccessKey,
	}
	for key, dst := range strs {
		if v, exist := lookup(key); exist {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":  &cfg.Token.AccessTTL,
		"REFRESH_TOKEN_TTL": &cfg.Token.RefreshTTL,
	}
	for key, dst := range durations {
		if v, exist := lookup(key); exist {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}

	if v, exist := lookup("PASSWORD_COST"); exist {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PASSWORD_COST: %w", err)
		}
		cfg.Security.PasswordCost = cost
	}

	if *listen != "" {
		cfg.System.Listen = *listen
	}

	// 必填项
	if cfg.System.DBConnectionString == "" {
		return nil, errors.New("DB_CONN environment variable not set")
	}
	if cfg.Security.SignatureSecretKey == "" {
		return nil, errors.New("SIGNATURE_SECRET_KEY environment variable not set")
	}
	if cfg.Token.AccessTTL <= 0 || cfg.Token.RefreshTTL <= cfg.Token.AccessTTL {
		return nil, fmt.Errorf("refresh token ttl %s must be longer than access token ttl %s", cfg.Token.RefreshTTL, cfg.Token.AccessTTL)
	}

	return cfg, nil
}
