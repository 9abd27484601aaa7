package auth

import (
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/jwt"
	gojwt "github.com/golang-jwt/jwt/v5"
	"time"
)

// TokenCodec 令牌的签发与校验
type TokenCodec interface {
	Sign(claims *jwt.Claims, ttl time.Duration) (string, error)
	Parse(token string) (*jwt.Claims, error)
	ParseFresh(token string) (*jwt.Claims, error)
	Now() time.Time
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Issuer 根据查询到的用户与角色签出一对令牌
type Issuer struct {
	codec      TokenCodec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(codec TokenCodec, accessTTL time.Duration, refreshTTL time.Duration) *Issuer {
	if accessTTL <= 0 {
		accessTTL = constants.AccessTokenDuration
	}
	if refreshTTL <= 0 {
		refreshTTL = constants.RefreshTokenDuration
	}

	return &Issuer{
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (i *Issuer) AccessTTL() time.Duration {
	return i.accessTTL
}

func (i *Issuer) Issue(record *UserRecord) (*TokenPair, error) {
	// 保持存储返回的顺序，不去重
	roles := make([]string, len(record.Roles))
	copy(roles, record.Roles)

	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{Subject: record.User.ID},
		Username:         record.User.Username,
		Nickname:         record.User.Nickname,
		AvatarURL:        record.User.AvatarURL,
		Roles:            roles,
	}

	// 短期 Token
	claims.TokenType = jwt.TokenTypeAccess
	accessToken, err := i.codec.Sign(&claims, i.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	// 长期 Token
	claims.TokenType = jwt.TokenTypeRefresh
	refreshToken, err := i.codec.Sign(&claims, i.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
