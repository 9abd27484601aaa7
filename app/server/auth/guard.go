package auth

import (
	"context"
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/jwt"
	"strings"
)

const bearerScheme = "Bearer"

// Guard 校验 Authorization 头中的 access token
type Guard struct {
	codec TokenCodec
	store CredentialStore
}

func NewGuard(codec TokenCodec, store CredentialStore) *Guard {
	return &Guard{
		codec: codec,
		store: store,
	}
}

// Authenticate 只接受 "Bearer <token>" 形式的头
func (g *Guard) Authenticate(authHeader string) (*jwt.Claims, error) {
	if authHeader == "" {
		return nil, ErrMissingHeader
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 || splits[0] != bearerScheme || splits[1] == "" {
		return nil, ErrMalformedHeader
	}

	claims, err := g.codec.ParseFresh(splits[1])
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, ErrAccessTokenExpired.With(err)
		}
		return nil, ErrUnauthenticated.With(err)
	}

	// refresh token 不能当作 access token 使用
	if !claims.IsAccess() {
		return nil, ErrUnauthenticated.With(fmt.Errorf("unexpected token type %q", claims.TokenType))
	}

	return claims, nil
}

// Profile 查询令牌对应用户的完整资料
func (g *Guard) Profile(ctx context.Context, claims *jwt.Claims) (*UserProfile, error) {
	record, err := g.store.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal.With(fmt.Errorf("find user %s: %w", claims.Subject, err))
	}

	return NewUserProfile(record), nil
}
