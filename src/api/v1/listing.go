package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/xhttp"

	service "github.com/ProjectsTask/LandSwapCore/src/service/v1"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// ListParcelHandler 创建挂单
func ListParcelHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ListParcelReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.ListParcelForSale(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// CancelListingHandler 卖家主动撤单
func CancelListingHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CancelListingReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		if err := service.CancelListing(c.Request.Context(), svcCtx, req); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: "success"})
	}
}

// PurchaseParcelHandler 成交结算
// 买家余额 / 挂单状态 / 卖家持仓在同一事务内校验,
// 任一条件不满足整笔交易原样回滚
func PurchaseParcelHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PurchaseParcelReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.PurchaseParcel(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}
