package password

import (
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

// DefaultCost 与原有账号的 bcrypt 强度保持一致
const DefaultCost = 10

const argon2idPrefix = "$argon2id$"

// bcrypt 只使用前 72 字节，更长的密码按 72 字节截断，与原有账号的 hash 保持一致
const maxBcryptBytes = 72

var ErrEmptyPassword = errors.New("password is empty")

// Hasher 单向加盐 hash 。新密码统一使用 bcrypt ，旧的 argon2id hash 仍然可以校验
type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword(bcryptInput(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify 比较明文与 hash ，不一致或 hash 无法识别时返回 false
func (h *Hasher) Verify(plaintext string, digest string) bool {
	if strings.HasPrefix(digest, argon2idPrefix) {
		match, err := argon2id.ComparePasswordAndHash(plaintext, digest)
		return err == nil && match
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), bcryptInput(plaintext)) == nil
}

func bcryptInput(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxBcryptBytes {
		b = b[:maxBcryptBytes]
	}
	return b
}

// NeedsRehash 判断 hash 是否需要按当前算法与强度重新生成
func (h *Hasher) NeedsRehash(digest string) bool {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return true
	}
	return cost != h.cost
}
