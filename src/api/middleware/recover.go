package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/xhttp"
)

// RecoverMiddleware 恢复中间件
// 捕获 handler panic, 记录堆栈并返回统一的内部错误响应
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				xzap.WithContext(c.Request.Context()).Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()))
				xhttp.Error(c, errcode.ErrUnexpected)
				c.Abort()
			}
		}()
		c.Next()
	}
}
