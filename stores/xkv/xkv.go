package xkv

import (
	"github.com/zeromicro/go-zero/core/stores/kv"
)

// Store KV 存储封装 (Redis)
// 直接内嵌 go-zero 的 kv.Store, 统一从这里拿缓存/队列能力
type Store struct {
	kv.Store
}

// NewStore 创建 KV 存储实例
func NewStore(c kv.KvConf) *Store {
	return &Store{
		Store: kv.NewStore(c),
	}
}
