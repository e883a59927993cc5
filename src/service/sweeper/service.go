package sweeper

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/threading"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
	"github.com/ProjectsTask/LandSwapCore/src/service/mq"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// 默认扫描参数
const (
	DefaultSweepInterval = 10 // 秒
	DefaultBatchSize     = 100
)

// Service 过期挂单清理服务
// 把到期但仍标记 Active 的挂单落库为 Expired, 并同步修复
// is_listed 标志与 active_listings 计数器。
// 这只是记账: 购买路径始终按时钟复核过期, 正确性不依赖本服务
type Service struct {
	ctx       context.Context
	svcCtx    *svc.ServerCtx
	interval  time.Duration
	batchSize int
}

// New 创建清理服务
func New(ctx context.Context, svcCtx *svc.ServerCtx) *Service {
	interval := int64(DefaultSweepInterval)
	batchSize := DefaultBatchSize
	if svcCtx.C != nil {
		if svcCtx.C.Sweeper.Interval > 0 {
			interval = svcCtx.C.Sweeper.Interval
		}
		if svcCtx.C.Sweeper.BatchSize > 0 {
			batchSize = svcCtx.C.Sweeper.BatchSize
		}
	}
	return &Service{
		ctx:       ctx,
		svcCtx:    svcCtx,
		interval:  time.Duration(interval) * time.Second,
		batchSize: batchSize,
	}
}

// Start 启动后台清理循环
func (s *Service) Start() {
	threading.GoSafe(s.sweepLoop)
}

func (s *Service) sweepLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			xzap.WithContext(s.ctx).Info("sweep loop stopped due to context cancellation")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(s.ctx); err != nil {
				xzap.WithContext(s.ctx).Error("failed on sweep expired listings", zap.Error(err))
			}
		}
	}
}

// SweepOnce 执行一轮清理, 返回本轮落库为 Expired 的挂单数
func (s *Service) SweepOnce(ctx context.Context) (int, error) {
	now := s.svcCtx.Now()
	ids, err := s.svcCtx.Dao.FindExpiredActiveListings(ctx, now, s.batchSize)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, id := range ids {
		if err := s.expireListing(ctx, id, now); err != nil {
			xzap.WithContext(ctx).Error("failed on expire listing",
				zap.Int64("listing_id", id), zap.Error(err))
			continue
		}
		swept++
	}

	if swept > 0 {
		xzap.WithContext(ctx).Info("expired listings swept", zap.Int("count", swept))
	}
	return swept, nil
}

// expireListing 把单个挂单落库为 Expired
// 每个挂单独立事务, 与购买/取消的并发冲突靠行锁 + 状态复核解决
func (s *Service) expireListing(ctx context.Context, id int64, now int64) error {
	var listing *landmodel.Listing

	err := s.svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		listing, err = s.svcCtx.Dao.GetListingForUpdateByID(tx, id)
		if err != nil {
			return err
		}
		// 拿到锁后复核: 可能已被并发的购买/取消迁移走
		if listing.Status != landmodel.StatusActive || !listing.ExpiredAt(now) {
			return nil
		}

		listing.Status = landmodel.StatusExpired
		if err := s.svcCtx.Dao.SaveListing(tx, listing); err != nil {
			return err
		}

		parcel, err := s.svcCtx.Dao.GetParcelForUpdate(tx, listing.ParcelMint)
		if err != nil {
			return err
		}
		parcel.IsListed = false
		if err := s.svcCtx.Dao.SaveParcel(tx, parcel); err != nil {
			return err
		}

		marketplace, err := s.svcCtx.Dao.GetMarketplaceForUpdate(tx)
		if err != nil {
			return err
		}
		active, ok := utils.SafeSub(marketplace.ActiveListings, 1)
		if !ok {
			return errcode.ErrMathOverflow
		}
		marketplace.ActiveListings = active
		if err := s.svcCtx.Dao.SaveMarketplace(tx, marketplace); err != nil {
			return err
		}

		return s.svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivityExpired,
			ParcelMint:   listing.ParcelMint,
			Maker:        listing.Seller,
			Price:        listing.Price,
			EventTime:    now,
		})
	})
	if err != nil {
		return err
	}

	if listing != nil && listing.Status == landmodel.StatusExpired {
		if err := mq.PublishEvent(s.svcCtx.KvStore, project(s.svcCtx), types.EventListingExpired, now,
			types.ListingExpiredEvent{
				Mint:       listing.ParcelMint,
				Seller:     listing.Seller,
				ExpireTime: listing.ExpireTime,
			}); err != nil {
			xzap.WithContext(ctx).Error("failed on publish expired event", zap.Error(err))
		}
	}
	return nil
}

func project(svcCtx *svc.ServerCtx) string {
	if svcCtx.C != nil && svcCtx.C.ProjectCfg.Name != "" {
		return svcCtx.C.ProjectCfg.Name
	}
	return "landswap"
}
