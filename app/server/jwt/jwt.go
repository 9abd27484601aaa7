package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMalformed        = errors.New("malformed token")
	ErrExpired          = errors.New("token is expired")
)

// Claims 令牌中携带的全部声明，access 与 refresh 结构一致，只靠 TokenType 区分
type Claims struct {
	jwt.RegisteredClaims

	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatar_url"`
	Roles     []string  `json:"roles"`
	TokenType TokenType `json:"token_type"`
}

func (c *Claims) IsAccess() bool {
	return c.TokenType == TokenTypeAccess
}

func (c *Claims) IsRefresh() bool {
	return c.TokenType == TokenTypeRefresh
}

type JWT struct {
	key    []byte
	issuer string
	now    func() time.Time
}

type Option func(*JWT)

// WithClock 替换时间来源，主要用于测试
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

func New(key string, issuer string, opts ...Option) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	j := &JWT{
		key:    []byte(key),
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}

	return j, nil
}

func (j *JWT) Now() time.Time {
	return j.now()
}

// Sign 以当前时间为签发时间，签出有效期为 ttl 的令牌
func (j *JWT) Sign(claims *Claims, ttl time.Duration) (string, error) {
	// 复制一份，避免修改调用方的声明
	c := *claims
	now := j.now()
	c.Issuer = j.issuer
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &c)

	// 签名并返回
	return token.SignedString(j.key)
}

// Parse 只校验签名与结构，不检查是否过期
func (j *JWT) Parse(tokenString string) (*Claims, error) {
	return j.parse(tokenString, jwt.WithoutClaimsValidation())
}

// ParseFresh 校验签名与结构，并拒绝已过期的令牌
func (j *JWT) ParseFresh(tokenString string) (*Claims, error) {
	return j.parse(tokenString, jwt.WithExpirationRequired())
}

func (j *JWT) parse(tokenString string, opt jwt.ParserOption) (*Claims, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrMalformed)
	}

	// 映射字段
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		opt,
	)
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	// 匹配内容
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing subject or expiry", ErrMalformed)
	}

	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}
