package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息
	cause error  // 被包装的底层错误
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 实现 errors.Unwrap 接口，支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeNetworkFailure, "请求房间后端失败")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回默认码
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// 业务状态码常量定义
// 其中 2001~2004 对应房间数据同步核心的四类失败结果：
// 网络失败 / 后端拒绝 / 房间不存在 / 未登录
const (
	CodeSuccess        = 1000 // 成功
	CodeInvalidParam   = 1001 // 请求参数错误
	CodeServerBusy     = 1005 // 服务繁忙
	CodeUnauthorized   = 1006 // 未授权/认证失败
	CodeNetworkFailure = 2001 // 房间后端网络失败
	CodeBackendReject  = 2002 // 房间后端业务拒绝（success != true）
	CodeNotFound       = 2003 // 房间不存在
	CodeUnauthGateway  = 2004 // 未登录发起需要身份的操作
	CodeCacheError     = 1011 // 缓存错误
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidParam    = New(CodeInvalidParam, "请求参数错误")
	ErrServerBusy      = New(CodeServerBusy, "服务繁忙")
	ErrNetworkFailure  = New(CodeNetworkFailure, "无法连接房间后端")
	ErrBackendReject   = New(CodeBackendReject, "房间后端拒绝了本次操作")
	ErrRoomNotFound    = New(CodeNotFound, "房间不存在或已被删除")
	ErrUnauthenticated = New(CodeUnauthGateway, "请先登录")
)

// IsNotFound 检查错误是否为"房间不存在"类型
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}
