package apperr

import (
	"fmt"
	"net/http"
)

// 稳定的错误码，直接透传给调用方。
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeInternal     = "INTERNAL"
)

// Error 是带有稳定错误码和 HTTP 状态的业务错误。
// 所有错误都原样返回给调用方，不在服务内部重试或恢复。
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// New 构造一个任意状态和错误码的 Error。
func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Unauthorized 表示调用方没有认证身份。
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Err: fmt.Errorf("%s", msg)}
}

// NotFound 表示被引用的行不存在，或调用方不是所有者。
// 两种情况返回同一个错误码，避免泄露他人数据的存在性。
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Err: fmt.Errorf("%s", msg)}
}

// Validation 表示必填字段缺失/为空，或枚举值非法。
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Err: fmt.Errorf("%s", msg)}
}
