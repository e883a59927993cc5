package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ProjectsTask/LandSwapCore/src/api/middleware"
	v1 "github.com/ProjectsTask/LandSwapCore/src/api/v1"
	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
)

func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	// 强制控制台颜色输出，使日志更易读
	gin.ForceConsoleColor()
	// 设置 Gin 为发布模式 (ReleaseMode)
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()                        // 新建一个gin引擎实例
	r.Use(middleware.RecoverMiddleware()) // 使用自定义的恢复中间件，处理 Panic
	r.Use(middleware.RLog())              // 使用请求日志中间件，记录API访问日志

	r.Use(cors.New(cors.Config{ // 使用cors中间件，配置跨域访问策略
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-CSRF-Token", "Authorization", "AccessToken", "Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Access-Control-Allow-Origin", "Access-Control-Allow-Headers"},
		AllowCredentials: true,
		MaxAge:           1 * time.Hour,
	}))

	// 注册自定义请求校验器 (address 等)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		for tag, fn := range validate.Validators() {
			_ = v.RegisterValidation(tag, fn)
		}
	}

	loadV1(r, svcCtx) // 加载 v1 版本的路由分组

	return r
}

// loadV1 挂载 v1 路由
func loadV1(r *gin.Engine, svcCtx *svc.ServerCtx) {
	api := r.Group("/api/v1")

	marketplace := api.Group("/marketplace")
	{
		marketplace.POST("/initialize", v1.InitializeMarketplaceHandler(svcCtx)) // 创建市场单例
		marketplace.POST("/fee", v1.UpdateMarketplaceFeeHandler(svcCtx))         // 更新手续费率
		marketplace.GET("/info", v1.MarketplaceInfoHandler(svcCtx))              // 注册表视图
		marketplace.GET("/stats", v1.MarketplaceStatsHandler(svcCtx))            // 统计视图
	}

	parcels := api.Group("/parcels")
	{
		parcels.POST("/mint", v1.MintParcelHandler(svcCtx))   // 铸造地块
		parcels.GET("/:mint", v1.ParcelDetailHandler(svcCtx)) // 地块详情
	}

	listings := api.Group("/listings")
	{
		listings.POST("", v1.ListParcelHandler(svcCtx))               // 挂单
		listings.POST("/cancel", v1.CancelListingHandler(svcCtx))     // 取消挂单
		listings.POST("/purchase", v1.PurchaseParcelHandler(svcCtx))  // 购买结算
	}

	api.GET("/activities", v1.ActivitiesHandler(svcCtx)) // 活动流水
}
