package errcode

import "fmt"

// Err 业务错误类型
// code 用于前端/调用方做程序化判断, msg 为可读的错误描述
type Err struct {
	code int
	msg  string
}

// NewErr 创建一个带错误码的业务错误
func NewErr(code int, msg string) *Err {
	return &Err{
		code: code,
		msg:  msg,
	}
}

// NewCustomErr 创建自定义错误 (统一使用 CodeCustom 错误码)
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

// Code 返回错误码
func (e *Err) Code() int {
	return e.code
}

// Msg 返回错误描述
func (e *Err) Msg() string {
	return e.msg
}

// Error 实现 error 接口
func (e *Err) Error() string {
	return fmt.Sprintf("code: %d, msg: %s", e.code, e.msg)
}

// Is 支持 errors.Is 按错误码比较
func (e *Err) Is(target error) bool {
	t, ok := target.(*Err)
	if !ok {
		return false
	}
	return e.code == t.code
}
