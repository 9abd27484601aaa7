package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedRecord 缓存中的用户资料。 models.User 序列化时不带密码，缓存里不保存 hash
type cachedRecord struct {
	User  models.User `json:"user"`
	Roles []string    `json:"roles"`
}

// Cached 在 CredentialStore 前加一层 Redis 缓存，只缓存按 ID 查询的资料，写操作后清理对应缓存。
// 缓存命中时 User.Password 为空，需要校验密码的调用方使用 Uncached
type Cached struct {
	auth.CredentialStore

	rdb *redis.Client
	l   *zap.Logger
}

func NewCached(next auth.CredentialStore, rdb *redis.Client, l *zap.Logger) *Cached {
	return &Cached{
		CredentialStore: next,
		rdb:             rdb,
		l:               l,
	}
}

func cacheKey(id string) string {
	return fmt.Sprintf(constants.CacheKeyUserProfile, id)
}

func (c *Cached) FindUserByID(ctx context.Context, id string) (*auth.UserRecord, error) {
	key := cacheKey(id)

	// 查询缓存
	if cacheBytes, err := c.rdb.Get(ctx, key).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Error("failed to query cache for user", zap.String("id", id), zap.Error(err))
		}
	} else {
		var cached cachedRecord
		if err = json.Unmarshal(cacheBytes, &cached); err != nil {
			c.l.Error("failed to unmarshal user", zap.String("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
			// 可能是无效的缓存，清理掉
			c.rdb.Del(ctx, key)
		} else {
			return &auth.UserRecord{User: cached.User, Roles: cached.Roles}, nil
		}
	}

	// 查询数据库
	record, err := c.CredentialStore.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(&cachedRecord{
		User:  record.User,
		Roles: record.Roles,
	}); err != nil {
		c.l.Error("failed to marshal user", zap.String("id", id), zap.Error(err))
	} else {
		c.rdb.Set(ctx, key, cacheBytes, constants.CacheExpireUserProfile)
	}

	return record, nil
}

func (c *Cached) UpdatePassword(ctx context.Context, id string, digest string) error {
	defer c.Invalidate(ctx, id)
	return c.CredentialStore.UpdatePassword(ctx, id, digest)
}

func (c *Cached) UpdateUserFields(ctx context.Context, id string, fields auth.UserFields) error {
	defer c.Invalidate(ctx, id)
	return c.CredentialStore.UpdateUserFields(ctx, id, fields)
}

// Uncached 返回读操作直连下层存储的视图，写操作仍会清理缓存
func (c *Cached) Uncached() auth.CredentialStore {
	return uncachedReads{c}
}

type uncachedReads struct {
	*Cached
}

func (u uncachedReads) FindUserByID(ctx context.Context, id string) (*auth.UserRecord, error) {
	return u.Cached.CredentialStore.FindUserByID(ctx, id)
}

// Invalidate 清理用户缓存，失败只记录日志
func (c *Cached) Invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.l.Error("failed to delete user cache", zap.String("id", id), zap.Error(err))
	}
}

// CachedCatalog 授予角色后清理用户缓存，使资料中的角色及时更新
type CachedCatalog struct {
	auth.CatalogStore

	users *Cached
}

func NewCachedCatalog(next auth.CatalogStore, users *Cached) *CachedCatalog {
	return &CachedCatalog{
		CatalogStore: next,
		users:        users,
	}
}

func (c *CachedCatalog) AssignRole(ctx context.Context, userID string, roleID string) error {
	defer c.users.Invalidate(ctx, userID)
	return c.CatalogStore.AssignRole(ctx, userID, roleID)
}
