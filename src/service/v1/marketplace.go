package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/src/service/mq"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// projectName 事件队列使用的项目标识
func projectName(svcCtx *svc.ServerCtx) string {
	if svcCtx.C != nil && svcCtx.C.ProjectCfg.Name != "" {
		return svcCtx.C.ProjectCfg.Name
	}
	return "landswap"
}

// InitializeMarketplace 创建市场单例
// 流程:
// 1. 校验费率与金库地址 (任何写入之前)
// 2. 事务内创建单例 (重复创建被主键约束拒绝), 计数器全部置零
// 3. 同事务写入活动流水, 提交后发布创建事件
func InitializeMarketplace(ctx context.Context, svcCtx *svc.ServerCtx, req types.InitializeMarketplaceReq) (*types.MarketplaceInfo, error) {
	if err := validate.CheckFeeBps(req.FeeBasisPoints); err != nil {
		return nil, err
	}
	if err := validate.CheckTreasury(req.Treasury); err != nil {
		return nil, err
	}
	if !validate.ValidAddress(req.Authority) {
		return nil, errcode.ErrInvalidParams
	}

	now := svcCtx.Now()
	marketplace := &landmodel.Marketplace{
		Authority:      validate.NormalizeAddress(req.Authority),
		Treasury:       validate.NormalizeAddress(req.Treasury),
		FeeBasisPoints: req.FeeBasisPoints,
	}

	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := svcCtx.Dao.CreateMarketplace(tx, marketplace); err != nil {
			return err
		}
		return svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivityInitialized,
			Maker:        marketplace.Authority,
			EventTime:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	xzap.WithContext(ctx).Info("marketplace initialized",
		zap.String("authority", marketplace.Authority),
		zap.Int64("fee_bps", marketplace.FeeBasisPoints))

	if err := mq.PublishEvent(svcCtx.KvStore, projectName(svcCtx), types.EventMarketplaceInitialized, now,
		types.MarketplaceInitializedEvent{
			Authority:      marketplace.Authority,
			Treasury:       marketplace.Treasury,
			FeeBasisPoints: marketplace.FeeBasisPoints,
		}); err != nil {
		xzap.WithContext(ctx).Error("failed on publish initialized event", zap.Error(err))
	}

	return marketplaceInfo(marketplace), nil
}

// UpdateMarketplaceFee 更新手续费率
// 仅存储的 authority 可调用; 费率越界返回 FeeTooHigh
func UpdateMarketplaceFee(ctx context.Context, svcCtx *svc.ServerCtx, req types.UpdateMarketplaceFeeReq) (*types.MarketplaceInfo, error) {
	if err := validate.CheckFeeBps(req.NewFeeBasisPoints); err != nil {
		return nil, err
	}

	now := svcCtx.Now()
	var oldFee int64
	var marketplace *landmodel.Marketplace

	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		marketplace, err = svcCtx.Dao.GetMarketplaceForUpdate(tx)
		if err != nil {
			return err
		}
		if !validate.SameIdentity(req.Authority, marketplace.Authority) {
			return errcode.ErrNotMarketplaceAuthority
		}

		oldFee = marketplace.FeeBasisPoints
		marketplace.FeeBasisPoints = req.NewFeeBasisPoints
		if err := svcCtx.Dao.SaveMarketplace(tx, marketplace); err != nil {
			return err
		}
		return svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivityFeeUpdate,
			Maker:        marketplace.Authority,
			EventTime:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	xzap.WithContext(ctx).Info("marketplace fee updated",
		zap.Int64("old_fee_bps", oldFee),
		zap.Int64("new_fee_bps", marketplace.FeeBasisPoints))

	if err := mq.PublishEvent(svcCtx.KvStore, projectName(svcCtx), types.EventMarketplaceFeeUpdated, now,
		types.MarketplaceFeeUpdatedEvent{
			Authority:         marketplace.Authority,
			OldFeeBasisPoints: oldFee,
			NewFeeBasisPoints: marketplace.FeeBasisPoints,
		}); err != nil {
		xzap.WithContext(ctx).Error("failed on publish fee updated event", zap.Error(err))
	}

	return marketplaceInfo(marketplace), nil
}

// GetMarketplaceInfo 读取市场注册表视图
func GetMarketplaceInfo(ctx context.Context, svcCtx *svc.ServerCtx) (*types.MarketplaceInfo, error) {
	marketplace, err := svcCtx.Dao.GetMarketplace(ctx)
	if err != nil {
		return nil, err
	}
	return marketplaceInfo(marketplace), nil
}

// GetMarketplaceStats 读取市场统计视图
func GetMarketplaceStats(ctx context.Context, svcCtx *svc.ServerCtx) (*types.MarketplaceStats, error) {
	return svcCtx.Dao.GetMarketplaceStats(ctx)
}

func marketplaceInfo(m *landmodel.Marketplace) *types.MarketplaceInfo {
	return &types.MarketplaceInfo{
		Authority:          m.Authority,
		Treasury:           m.Treasury,
		FeeBasisPoints:     m.FeeBasisPoints,
		TotalVolume:        m.TotalVolume,
		ActiveListings:     m.ActiveListings,
		TotalParcelsMinted: m.TotalParcelsMinted,
	}
}
