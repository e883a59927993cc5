package svc

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/kv"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb"
	"github.com/ProjectsTask/LandSwapCore/stores/xkv"

	"github.com/ProjectsTask/LandSwapCore/src/config"
	"github.com/ProjectsTask/LandSwapCore/src/dao"
	"github.com/ProjectsTask/LandSwapCore/src/service/metadata"
)

// ServerCtx 服务上下文, 聚合所有基础设施组件
// Now 为环境时钟: 过期判断一律取它而不是直接调 time.Now,
// 测试场景注入固定时钟
type ServerCtx struct {
	C        *config.Config
	DB       *gorm.DB
	Dao      *dao.Dao
	KvStore  *xkv.Store
	Metadata metadata.Service
	Now      func() int64
}

// NewServiceContext 初始化服务上下文
// 该函数负责初始化后端服务所需的所有基础设施组件
func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	// 1. 初始化日志系统 (Zap Logger)
	_, err := xzap.SetUp(c.Log)
	if err != nil {
		return nil, err
	}

	// 2. 构造 Redis 配置
	var kvConf kv.KvConf
	for _, con := range c.Kv.Redis {
		kvConf = append(kvConf, cache.NodeConf{
			RedisConf: redis.RedisConf{
				Host: con.Host,
				Type: con.Type,
				Pass: con.Pass,
			},
			Weight: 1,
		})
	}

	// 3. 初始化 Redis 客户端 (xkv Store)
	store := xkv.NewStore(kvConf)

	// 4. 初始化数据库连接 (GORM)
	db, err := gdb.NewDB(&c.DB)
	if err != nil {
		return nil, err
	}

	// 5. 初始化数据访问层 (DAO)
	d := dao.New(context.Background(), db, store)

	// 6. 组装 ServerCtx 对象
	serverCtx := NewServerCtx(
		WithDB(db),
		WithKv(store),
		WithDao(d),
		WithMetadata(metadata.NewClient(c.Metadata)),
	)
	serverCtx.C = c

	return serverCtx, nil
}
