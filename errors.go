package pxshot

import "fmt"

// Code SDK 错误码（与线上 API 的错误分类一一对应）
type Code uint8

const (
	CodeOK          Code = iota // 成功
	CodeInvalidArg              // 参数无效
	CodeTransport               // 传输层请求失败
	CodeHTTP                    // HTTP 错误状态（看 HTTPStatus）
	CodeJSONParse               // 响应 JSON 解析失败
	CodeAPI                     // API 返回业务错误
	CodeTimeout                 // 请求超时
	CodeUnknown                 // 未知错误
)

// String 返回错误码的可读描述
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "success"
	case CodeInvalidArg:
		return "invalid argument"
	case CodeTransport:
		return "transport request failed"
	case CodeHTTP:
		return "HTTP error"
	case CodeJSONParse:
		return "JSON parse error"
	case CodeAPI:
		return "API error"
	case CodeTimeout:
		return "request timed out"
	default:
		return "unknown error"
	}
}

// Error SDK 统一错误类型
//
// 所有失败同步返回，绝不吞掉、绝不自动重试（重试策略属于
// 客户端配置 RetryConfig，且仅覆盖瞬态传输失败）。
type Error struct {
	Code       Code   // 错误分类
	HTTPStatus int    // HTTP 状态码（请求未发出为 0）
	Message    string // 可读信息（可能来自 API 的 error 字段）
	Err        error  // 底层错误
}

// Error 实现 error 接口
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.String()
	}
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("pxshot: %s (HTTP %d)", msg, e.HTTPStatus)
	}
	return "pxshot: " + msg
}

// Unwrap 返回底层错误，支持 errors.Is/As 链
func (e *Error) Unwrap() error { return e.Err }

// Is 支持按错误码哨兵匹配: errors.Is(err, &Error{Code: CodeTimeout})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.HTTPStatus == 0 || t.HTTPStatus == e.HTTPStatus)
}

// errInvalid 构造参数错误
func errInvalid(msg string) *Error {
	return &Error{Code: CodeInvalidArg, Message: msg}
}
