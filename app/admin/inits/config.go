package inits

import (
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/admin/config"
	"github.com/Edward-Brock/x-dimension/app/server/password"
	"strconv"
	"strings"
)

func Config(lookup func(string) (string, bool)) (*config.Config, error) {
	var cfg config.Config
	{
		mode, exist := lookup("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if dbconn, exist := lookup("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.DBConnectionString = dbconn
	}

	if redisconn, exist := lookup("REDIS_CONN"); exist {
		cfg.RedisConnectionString = redisconn
	}

	if costStr, exist := lookup("PASSWORD_COST"); !exist {
		cfg.PasswordCost = password.DefaultCost
	} else if cost, err := strconv.Atoi(costStr); err != nil {
		return nil, fmt.Errorf("PASSWORD_COST should be an integer")
	} else {
		cfg.PasswordCost = cost
	}

	return &cfg, nil
}
