package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/xhttp"

	service "github.com/ProjectsTask/LandSwapCore/src/service/v1"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// MintParcelHandler 铸造地块
// 坐标/名称/链接越界会得到对应的业务错误码;
// 元数据服务失败时整个铸造回滚, 不会留下半成品记录
func MintParcelHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.MintParcelReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.MintLandParcel(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}

// ParcelDetailHandler 地块详情 (聚合当前 Active 挂单)
func ParcelDetailHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		mint := c.Param("mint")
		if mint == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetParcelDetail(c.Request.Context(), svcCtx, mint)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}
