package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/xhttp"

	service "github.com/ProjectsTask/LandSwapCore/src/service/v1"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// InitializeMarketplaceHandler 创建市场单例
// 1. 绑定并校验请求参数
// 2. 调用 Service 层完成创建 (重复创建/费率越界/金库非法都会被拒绝)
func InitializeMarketplaceHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.InitializeMarketplaceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.InitializeMarketplace(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// UpdateMarketplaceFeeHandler 更新手续费率
// 仅市场 authority 可调用
func UpdateMarketplaceFeeHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateMarketplaceFeeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.UpdateMarketplaceFee(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// MarketplaceInfoHandler 市场注册表视图
func MarketplaceInfoHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetMarketplaceInfo(c.Request.Context(), svcCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// MarketplaceStatsHandler 市场统计视图 (带进程内缓存)
func MarketplaceStatsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetMarketplaceStats(c.Request.Context(), svcCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}
