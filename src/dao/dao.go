package dao

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ProjectsTask/LandSwapCore/stores/xkv"
)

// forUpdate 追加行锁
// SQLite 方言不支持 FOR UPDATE, 单连接内存库下事务本身已串行化
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Dao 数据访问对象
// 封装数据库 (GORM) 与 Redis (KvStore) 的操作
// 所有数据库交互逻辑在此层实现, 避免在 Service 层直接操作 DB
type Dao struct {
	ctx context.Context

	DB      *gorm.DB        // 关系型数据库连接实例
	KvStore *xkv.Store      // 键值存储实例 (Redis), 测试场景可为 nil
	cache   *gocache.Cache  // 进程内只读缓存 (统计类查询)
}

// 进程内缓存参数
const (
	statsCacheTTL     = 30 * time.Second
	cacheSweepPeriod  = 5 * time.Minute
	marketplaceStatsKey = "marketplace:stats"
)

// New 创建一个新的 Dao 实例
func New(ctx context.Context, db *gorm.DB, kvStore *xkv.Store) *Dao {
	return &Dao{
		ctx:     ctx,
		DB:      db,
		KvStore: kvStore,
		cache:   gocache.New(statsCacheTTL, cacheSweepPeriod),
	}
}
