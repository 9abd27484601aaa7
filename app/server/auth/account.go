package auth

import (
	"context"
	"errors"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/Edward-Brock/x-dimension/app/server/jwt"
	"github.com/Edward-Brock/x-dimension/app/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"go.uber.org/zap"
)

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required, validation.RuneLength(1, 128)),
		validation.Field(&r.NewPassword, validation.Required, validation.RuneLength(1, 128)),
	)
}

type UpdateProfileInput struct {
	Nickname  *string `json:"nickname"`
	Email     *string `json:"email"`
	Mobile    *string `json:"mobile"`
	AvatarURL *string `json:"avatarUrl"`
	Gender    *string `json:"gender"`
	Status    *string `json:"status"`
	Remark    *string `json:"remark"`
}

func (r UpdateProfileInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.RuneLength(0, 80)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Mobile, validation.RuneLength(11, 11)),
		validation.Field(&r.AvatarURL, is.URL),
		validation.Field(&r.Gender, validation.In(models.GenderMale, models.GenderFemale, models.GenderOther, models.GenderUnknown)),
		validation.Field(&r.Status, validation.In(models.StatusActive, models.StatusBanned, models.StatusLocked, models.StatusInactive)),
	)
}

func (r UpdateProfileInput) fields() UserFields {
	return UserFields{
		Nickname:  r.Nickname,
		Email:     r.Email,
		Mobile:    r.Mobile,
		AvatarURL: r.AvatarURL,
		Gender:    r.Gender,
		Status:    r.Status,
		Remark:    r.Remark,
	}
}

// Accounts 已登录用户对自身账号的维护
type Accounts struct {
	l      *zap.Logger
	store  CredentialStore
	hasher PasswordHasher
}

func NewAccounts(l *zap.Logger, store CredentialStore, hasher PasswordHasher) *Accounts {
	return &Accounts{
		l:      l,
		store:  store,
		hasher: hasher,
	}
}

// ChangePassword 校验原密码后更新为新密码，用户 ID 来自已验证的令牌
func (a *Accounts) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error {
	if err := in.Validate(); err != nil {
		return ErrInvalidInput.WithMessage("缺少密码信息").With(err)
	}

	// 获取当前用户的数据库记录
	record, err := a.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		a.l.Error("failed to find user", zap.String("id", userID), zap.Error(err))
		return ErrInternal.With(err)
	}

	// 验证原密码
	if !a.hasher.Verify(in.CurrentPassword, record.User.Password) {
		return ErrWrongPassword
	}

	digest, err := a.hasher.Hash(in.NewPassword)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return ErrUpdateFailed.With(err)
	}

	if err := a.store.UpdatePassword(ctx, userID, digest); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		a.l.Error("failed to update password", zap.String("id", userID), zap.Error(err))
		return ErrUpdateFailed.With(err)
	}

	return nil
}

// UpdateProfile 修改用户资料。只能修改自己的资料，管理员可以修改任何人的资料及账号状态
func (a *Accounts) UpdateProfile(ctx context.Context, caller *jwt.Claims, userID string, in UpdateProfileInput) (*UserProfile, error) {
	if userID == "" {
		return nil, ErrInvalidInput.WithMessage("缺少用户 ID")
	}
	if err := in.Validate(); err != nil {
		return nil, ErrInvalidInput.WithMessage("请求参数无效").With(err)
	}

	isAdmin := HasRole(caller.Roles, constants.RoleNameAdmin)
	if !isAdmin && (caller.Subject != userID || in.Status != nil) {
		return nil, ErrForbidden
	}

	if fields := in.fields(); !fields.Empty() {
		if err := a.store.UpdateUserFields(ctx, userID, fields); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrUserNotFound
			}
			a.l.Error("failed to update user", zap.String("id", userID), zap.Error(err))
			return nil, ErrUpdateFailed.WithMessage("更新用户信息失败").With(err)
		}
	}

	record, err := a.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		a.l.Error("failed to find user", zap.String("id", userID), zap.Error(err))
		return nil, ErrInternal.With(err)
	}

	return NewUserProfile(record), nil
}
