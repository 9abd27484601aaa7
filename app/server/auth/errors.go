package auth

import (
	"errors"
	"fmt"
)

// Kind 错误的大类，传输层据此决定状态码
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindConflict
	KindUnauthenticated
	KindAccessTokenExpired
	KindTokenExpired
	KindInvalidToken
	KindNotFound
	KindForbidden
	KindConfiguration
)

var kindNames = map[Kind]string{
	KindInternal:           "Internal",
	KindInvalidInput:       "InvalidInput",
	KindConflict:           "Conflict",
	KindUnauthenticated:    "Unauthenticated",
	KindAccessTokenExpired: "AccessTokenExpired",
	KindTokenExpired:       "TokenExpired",
	KindInvalidToken:       "InvalidToken",
	KindNotFound:           "NotFound",
	KindForbidden:          "Forbidden",
	KindConfiguration:      "Configuration",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code 具体的失败原因，会原样返回给客户端
type Code string

const (
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeUserExists           Code = "USER_EXISTS"
	CodeRoleExists           Code = "ROLE_EXISTS"
	CodePermissionExists     Code = "PERMISSION_EXISTS"
	CodeBadCredentials       Code = "BAD_CREDENTIALS"
	CodeWrongPassword        Code = "WRONG_PASSWORD"
	CodeMissingHeader        Code = "MISSING_HEADER"
	CodeMalformedHeader      Code = "MALFORMED_HEADER"
	CodeUnauthenticated      Code = "UNAUTHENTICATED"
	CodeAccessTokenExpired   Code = "ACCESS_TOKEN_EXPIRED"
	CodeMissingToken         Code = "MISSING_TOKEN"
	CodeInvalidToken         Code = "INVALID_TOKEN"
	CodeTokenExpired         Code = "TOKEN_EXPIRED"
	CodeUserNotFound         Code = "USER_NOT_FOUND"
	CodeRoleNotFound         Code = "ROLE_NOT_FOUND"
	CodeForbidden            Code = "FORBIDDEN"
	CodeDefaultRoleUndefined Code = "DEFAULT_ROLE_UNDEFINED"
	CodeCreateFailed         Code = "CREATE_FAILED"
	CodeUpdateFailed         Code = "UPDATE_FAILED"
	CodeInternal             Code = "INTERNAL"
)

// Error 分类后的失败结果。两个 Error 只要 Code 相同， errors.Is 即认为相等
type Error struct {
	Kind    Kind
	Code    Code
	Message string // 面向用户的提示
	Err     error  // 内部原因，只用于日志
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// With 返回附带内部原因的副本
func (e *Error) With(cause error) *Error {
	c := *e
	c.Err = cause
	return &c
}

// WithMessage 返回替换了提示信息的副本
func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.Message = message
	return &c
}

var (
	ErrInvalidInput         = &Error{Kind: KindInvalidInput, Code: CodeInvalidInput, Message: "缺少必填字段"}
	ErrUserExists           = &Error{Kind: KindConflict, Code: CodeUserExists, Message: "用户已存在"}
	ErrRoleExists           = &Error{Kind: KindConflict, Code: CodeRoleExists, Message: "角色已存在"}
	ErrPermissionExists     = &Error{Kind: KindConflict, Code: CodePermissionExists, Message: "权限已存在"}
	ErrBadCredentials       = &Error{Kind: KindUnauthenticated, Code: CodeBadCredentials, Message: "用户名或密码错误"}
	ErrWrongPassword        = &Error{Kind: KindUnauthenticated, Code: CodeWrongPassword, Message: "原密码错误"}
	ErrMissingHeader        = &Error{Kind: KindUnauthenticated, Code: CodeMissingHeader, Message: "需要传递有效的 Bearer-authorization 标头才能访问此端点"}
	ErrMalformedHeader      = &Error{Kind: KindUnauthenticated, Code: CodeMalformedHeader, Message: "无效的授权头"}
	ErrUnauthenticated      = &Error{Kind: KindUnauthenticated, Code: CodeUnauthenticated, Message: "必须登录才能使用此端点"}
	ErrAccessTokenExpired   = &Error{Kind: KindAccessTokenExpired, Code: CodeAccessTokenExpired, Message: "访问令牌已过期，请刷新令牌"}
	ErrMissingToken         = &Error{Kind: KindInvalidToken, Code: CodeMissingToken, Message: "缺少刷新令牌"}
	ErrInvalidToken         = &Error{Kind: KindInvalidToken, Code: CodeInvalidToken, Message: "刷新令牌无效"}
	ErrTokenExpired         = &Error{Kind: KindTokenExpired, Code: CodeTokenExpired, Message: "刷新令牌已过期"}
	ErrUserNotFound         = &Error{Kind: KindNotFound, Code: CodeUserNotFound, Message: "用户不存在"}
	ErrRoleNotFound         = &Error{Kind: KindNotFound, Code: CodeRoleNotFound, Message: "角色不存在"}
	ErrForbidden            = &Error{Kind: KindForbidden, Code: CodeForbidden, Message: "没有权限执行此操作"}
	ErrDefaultRoleUndefined = &Error{Kind: KindConfiguration, Code: CodeDefaultRoleUndefined, Message: "默认角色未定义"}
	ErrCreateFailed         = &Error{Kind: KindInternal, Code: CodeCreateFailed, Message: "创建失败"}
	ErrUpdateFailed         = &Error{Kind: KindInternal, Code: CodeUpdateFailed, Message: "更新失败"}
	ErrInternal             = &Error{Kind: KindInternal, Code: CodeInternal, Message: "服务器内部错误"}
)

// AsError 把任意错误归类，无法识别的按内部错误处理
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal.With(err)
}
