package svc

import (
	"time"

	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/stores/xkv"

	"github.com/ProjectsTask/LandSwapCore/src/dao"
	"github.com/ProjectsTask/LandSwapCore/src/service/metadata"
)

// CtxConfig 服务上下文配置构建器
// 使用 Option 模式构建 ServerCtx
type CtxConfig struct {
	db       *gorm.DB
	dao      *dao.Dao
	KvStore  *xkv.Store
	Metadata metadata.Service
	Now      func() int64
}

type CtxOption func(conf *CtxConfig)

// NewServerCtx 创建新的服务上下文
// 使用 Option 模式初始化 DB, KVStore, Dao 等组件
func NewServerCtx(options ...CtxOption) *ServerCtx {
	c := &CtxConfig{}
	for _, opt := range options {
		opt(c)
	}
	now := c.Now
	if now == nil {
		now = func() int64 { return time.Now().Unix() }
	}
	return &ServerCtx{
		DB:       c.db,
		KvStore:  c.KvStore,
		Dao:      c.dao,
		Metadata: c.Metadata,
		Now:      now,
	}
}

func WithKv(kv *xkv.Store) CtxOption {
	return func(conf *CtxConfig) {
		conf.KvStore = kv
	}
}

func WithDB(db *gorm.DB) CtxOption {
	return func(conf *CtxConfig) {
		conf.db = db
	}
}

func WithDao(dao *dao.Dao) CtxOption {
	return func(conf *CtxConfig) {
		conf.dao = dao
	}
}

func WithMetadata(m metadata.Service) CtxOption {
	return func(conf *CtxConfig) {
		conf.Metadata = m
	}
}

// WithNow 注入环境时钟 (测试用)
func WithNow(now func() int64) CtxOption {
	return func(conf *CtxConfig) {
		conf.Now = now
	}
}
