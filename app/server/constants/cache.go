package constants

import "time"

const (
	CacheKeyUserProfile = "xdim:user:profile:%s" // %s -> user id
)

const (
	CacheExpireUserProfile = 5 * time.Minute
)
