package auth

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

// RefreshCoordinator 校验 refresh token 并重新签出一对令牌。
// 新令牌总是基于重新查询到的用户与角色，而不是旧令牌里的声明
type RefreshCoordinator struct {
	l      *zap.Logger
	codec  TokenCodec
	store  CredentialStore
	issuer *Issuer
}

func NewRefreshCoordinator(l *zap.Logger, codec TokenCodec, store CredentialStore, issuer *Issuer) *RefreshCoordinator {
	return &RefreshCoordinator{
		l:      l,
		codec:  codec,
		store:  store,
		issuer: issuer,
	}
}

func (r *RefreshCoordinator) Refresh(ctx context.Context, refreshToken string) (pair *TokenPair, err error) {
	// 任何意外都归为无效令牌，不向调用方暴露细节
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Error("panic while refreshing token", zap.Any("panic", rec))
			pair, err = nil, ErrInvalidToken.With(fmt.Errorf("panic: %v", rec))
		}
	}()

	if refreshToken == "" {
		return nil, ErrMissingToken
	}

	// 校验签名
	claims, err := r.codec.Parse(refreshToken)
	if err != nil {
		r.l.Debug("refresh token rejected", zap.Error(err))
		return nil, ErrInvalidToken.With(err)
	}
	if !claims.IsRefresh() {
		return nil, ErrInvalidToken.With(fmt.Errorf("unexpected token type %q", claims.TokenType))
	}

	// 检查是否过期
	if !r.codec.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	// 通过用户 ID 查找用户及所属角色信息
	record, err := r.store.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		r.l.Error("failed to find user for refresh", zap.String("id", claims.Subject), zap.Error(err))
		return nil, ErrInvalidToken.With(err)
	}

	pair, err = r.issuer.Issue(record)
	if err != nil {
		r.l.Error("failed to issue token pair", zap.String("id", claims.Subject), zap.Error(err))
		return nil, ErrInvalidToken.With(err)
	}

	return pair, nil
}
