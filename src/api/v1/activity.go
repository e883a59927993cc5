package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/xhttp"

	service "github.com/ProjectsTask/LandSwapCore/src/service/v1"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// ActivitiesHandler 活动流水分页查询
// 支持按地块 / 用户地址 / 活动类型过滤
func ActivitiesHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var param types.ActivitiesParam
		if err := c.ShouldBindQuery(&param); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetActivities(c.Request.Context(), svcCtx, param)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			Result interface{} `json:"result"`
		}{Result: res})
	}
}
