package auth

import (
	"context"
	"errors"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.RuneLength(1, 32)),
		validation.Field(&r.Password, validation.Required, validation.RuneLength(1, 128)),
	)
}

// Authenticator 校验用户名密码并签出令牌
type Authenticator struct {
	l      *zap.Logger
	store  CredentialStore
	hasher PasswordHasher
	issuer *Issuer

	// 用户不存在时也做一次比较，避免通过耗时判断用户名是否存在
	decoy string
}

func NewAuthenticator(l *zap.Logger, store CredentialStore, hasher PasswordHasher, issuer *Issuer) *Authenticator {
	decoy, err := hasher.Hash("x-dimension-decoy")
	if err != nil {
		l.Warn("failed to prepare decoy hash", zap.Error(err))
	}

	return &Authenticator{
		l:      l,
		store:  store,
		hasher: hasher,
		issuer: issuer,
		decoy:  decoy,
	}
}

func (a *Authenticator) Login(ctx context.Context, in LoginInput) (*TokenPair, error) {
	if err := in.Validate(); err != nil {
		return nil, ErrInvalidInput.With(err)
	}

	// 通过用户名查找用户及所属角色信息
	record, err := a.store.FindUserByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.hasher.Verify(in.Password, a.decoy)
			return nil, ErrBadCredentials
		}
		a.l.Error("failed to find user", zap.String("username", in.Username), zap.Error(err))
		return nil, ErrInternal.With(err)
	}

	// 判断该账号密码是否正确
	if !a.hasher.Verify(in.Password, record.User.Password) {
		return nil, ErrBadCredentials
	}

	// 旧算法或旧强度的 hash 顺手升级，失败不影响登录
	if a.hasher.NeedsRehash(record.User.Password) {
		if digest, err := a.hasher.Hash(in.Password); err != nil {
			a.l.Warn("failed to rehash password", zap.String("id", record.User.ID), zap.Error(err))
		} else if err := a.store.UpdatePassword(ctx, record.User.ID, digest); err != nil {
			a.l.Warn("failed to store rehashed password", zap.String("id", record.User.ID), zap.Error(err))
		}
	}

	pair, err := a.issuer.Issue(record)
	if err != nil {
		a.l.Error("failed to issue token pair", zap.String("id", record.User.ID), zap.Error(err))
		return nil, ErrInternal.With(err)
	}

	return pair, nil
}
