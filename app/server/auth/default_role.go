package auth

import (
	"context"
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	"golang.org/x/sync/singleflight"
	"sync/atomic"
)

type RoleFinder interface {
	FindRoleByName(ctx context.Context, name string) (*models.Role, error)
}

// DefaultRoleCache 缓存默认角色 ID 。首次并发使用时只会查询一次存储，查询失败不缓存
type DefaultRoleCache struct {
	finder RoleFinder
	name   string

	id    atomic.Pointer[string]
	group singleflight.Group
}

func NewDefaultRoleCache(finder RoleFinder, name string) *DefaultRoleCache {
	return &DefaultRoleCache{
		finder: finder,
		name:   name,
	}
}

func (c *DefaultRoleCache) ID(ctx context.Context) (string, error) {
	if id := c.id.Load(); id != nil {
		return *id, nil
	}

	// 共享的查询不受单个调用方取消的影响，调用方取消时只放弃等待
	lookupCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(c.name, func() (interface{}, error) {
		// 上一轮查询可能刚刚写入
		if id := c.id.Load(); id != nil {
			return *id, nil
		}

		// 通过角色名查找角色表
		role, err := c.finder.FindRoleByName(lookupCtx, c.name)
		if err != nil {
			return "", err
		}

		id := role.ID
		c.id.Store(&id)
		return id, nil
	})

	var (
		v   interface{}
		err error
	)
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("failed to find default role %s: %w", c.name, ctx.Err())
	case res := <-ch:
		v, err = res.Val, res.Err
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrDefaultRoleUndefined
		}
		return "", fmt.Errorf("failed to find default role %s: %w", c.name, err)
	}

	return v.(string), nil
}
