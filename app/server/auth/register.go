package auth

import (
	"context"
	"errors"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// PasswordHasher 单向 hash 与比较
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
	NeedsRehash(digest string) bool
}

type RegisterInput struct {
	Nickname string `json:"nickname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.Required, validation.RuneLength(1, 80)),
		validation.Field(&r.Username, validation.Required, validation.RuneLength(1, 32)),
		validation.Field(&r.Password, validation.Required, validation.RuneLength(1, 128)),
	)
}

// Registrar 创建新账号，用户与默认角色关联在同一个事务中写入
type Registrar struct {
	l      *zap.Logger
	store  CredentialStore
	hasher PasswordHasher
	roles  *DefaultRoleCache
}

func NewRegistrar(l *zap.Logger, store CredentialStore, hasher PasswordHasher, roles *DefaultRoleCache) *Registrar {
	return &Registrar{
		l:      l,
		store:  store,
		hasher: hasher,
		roles:  roles,
	}
}

func (r *Registrar) Register(ctx context.Context, in RegisterInput) (*CreatedUser, error) {
	if err := in.Validate(); err != nil {
		return nil, ErrInvalidInput.With(err)
	}

	// 判断用户是否存在
	if _, err := r.store.FindUserByUsername(ctx, in.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrNotFound) {
		r.l.Error("failed to find user", zap.String("username", in.Username), zap.Error(err))
		return nil, ErrCreateFailed.With(err)
	}

	digest, err := r.hasher.Hash(in.Password)
	if err != nil {
		r.l.Error("failed to hash password", zap.Error(err))
		return nil, ErrCreateFailed.With(err)
	}

	// 获取默认角色 ID
	roleID, err := r.roles.ID(ctx)
	if err != nil {
		r.l.Error("failed to resolve default role", zap.Error(err))
		if errors.Is(err, ErrDefaultRoleUndefined) {
			return nil, ErrDefaultRoleUndefined
		}
		return nil, ErrCreateFailed.With(err)
	}

	user := &models.User{
		Nickname: in.Nickname,
		Username: in.Username,
		Password: digest,
	}
	if err := r.store.CreateUserWithRole(ctx, user, roleID); err != nil {
		// 并发注册同名用户时由唯一约束兜底
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrUserExists
		}
		r.l.Error("failed to create user", zap.String("username", in.Username), zap.Error(err))
		return nil, ErrCreateFailed.With(err)
	}

	return &CreatedUser{
		ID:       user.ID,
		Nickname: user.Nickname,
		Username: user.Username,
	}, nil
}
