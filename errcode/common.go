package errcode

// 通用错误码
// 10xxx 为框架层/通用错误, 20xxx 为土地市场业务错误 (见 biz.go)
const (
	CodeOK            = 200
	CodeCustom        = 10001
	CodeInvalidParams = 10002
	CodeUnexpected    = 10003
	CodeUnauthorized  = 10004
	CodeNotFound      = 10005
)

var (
	// NoErr 正常返回
	NoErr = NewErr(CodeOK, "success")
	// ErrCustom 自定义错误占位
	ErrCustom = NewErr(CodeCustom, "custom error")
	// ErrInvalidParams 请求参数错误
	ErrInvalidParams = NewErr(CodeInvalidParams, "invalid params")
	// ErrUnexpected 服务内部错误
	ErrUnexpected = NewErr(CodeUnexpected, "unexpected error")
	// ErrUnauthorized 未授权调用
	ErrUnauthorized = NewErr(CodeUnauthorized, "unauthorized")
	// ErrNotFound 资源不存在
	ErrNotFound = NewErr(CodeNotFound, "resource not found")
)
