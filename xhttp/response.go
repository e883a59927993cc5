package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ProjectsTask/LandSwapCore/errcode"
)

// Response 统一响应结构
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// OkJson 成功响应, data 放入 data 字段
func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: errcode.CodeOK,
		Msg:  "success",
		Data: data,
	})
}

// Error 错误响应
// 业务错误 (*errcode.Err) 按错误码返回, 其余错误统一按内部错误处理
func Error(c *gin.Context, err error) {
	var bizErr *errcode.Err
	if errors.As(err, &bizErr) {
		c.JSON(httpStatus(bizErr.Code()), Response{
			Code: bizErr.Code(),
			Msg:  bizErr.Msg(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, Response{
		Code: errcode.CodeUnexpected,
		Msg:  errcode.ErrUnexpected.Msg(),
	})
}

// httpStatus 业务错误码到 HTTP 状态码的映射
func httpStatus(code int) int {
	switch code {
	case errcode.CodeUnauthorized,
		errcode.CodeNotMarketplaceAuthority,
		errcode.CodeNotParcelOwner,
		errcode.CodeNotListingSeller:
		return http.StatusForbidden
	case errcode.CodeNotFound,
		errcode.CodeParcelNotFound,
		errcode.CodeListingNotFound,
		errcode.CodeAccountNotFound:
		return http.StatusNotFound
	case errcode.CodeUnexpected:
		return http.StatusInternalServerError
	default:
		// 校验类/状态类错误统一按错误请求返回
		return http.StatusBadRequest
	}
}
