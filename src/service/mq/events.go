package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/stores/xkv"

	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
)

const CacheMarketplaceEventKey = "cache:%s:marketplace:events"

// 发布重试参数
const (
	publishAttempts = 3
	publishBackoff  = 100 * time.Millisecond
)

// GetMarketplaceEventKey 事件队列的 Redis key
func GetMarketplaceEventKey(project string) string {
	return fmt.Sprintf(CacheMarketplaceEventKey, strings.ToLower(project))
}

// Envelope 队列中的事件信封
type Envelope struct {
	Kind      string      `json:"kind"`
	EventTime int64       `json:"event_time"`
	Payload   interface{} `json:"payload"`
}

// PublishEvent 将事件推送到 Redis Set 队列
// 活动流水已随操作事务落库, 这里只是提交后的通知通道;
// kvStore 为 nil (测试场景) 时静默跳过
func PublishEvent(kvStore *xkv.Store, project, kind string, eventTime int64, payload interface{}) error {
	if kvStore == nil {
		return nil
	}

	raw, err := json.Marshal(Envelope{
		Kind:      kind,
		EventTime: eventTime,
		Payload:   payload,
	})
	if err != nil {
		return errors.Wrap(err, "failed on marshal event")
	}

	// Redis 抖动时短暂重试, 仍失败交给调用方记日志
	if err := utils.Retry("publish event", publishAttempts, publishBackoff, func() error {
		_, err := kvStore.Sadd(GetMarketplaceEventKey(project), string(raw))
		return err
	}); err != nil {
		return errors.Wrap(err, "failed on push event to queue")
	}

	xzap.WithContext(context.Background()).Info("event published",
		zap.String("kind", kind), zap.Int64("event_time", eventTime))
	return nil
}
