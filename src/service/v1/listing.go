package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/src/service/mq"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// ListParcelForSale 创建挂单
// 流程:
// 1. 校验价格下限与过期窗口 (任何写入之前)
// 2. 事务内: 锁地块 -> 卖家必须是持有人 -> 不得已有 Active 挂单
//    -> 创建 Active 挂单 -> 置位 is_listed -> 锁市场并自增 active_listings
//    -> 写入活动流水
// 3. 提交后发布挂单事件
func ListParcelForSale(ctx context.Context, svcCtx *svc.ServerCtx, req types.ListParcelReq) (*types.ListParcelResp, error) {
	if err := validate.CheckListPrice(req.Price); err != nil {
		return nil, err
	}
	now := svcCtx.Now()
	if err := validate.CheckExpiry(now, req.ExpireTime); err != nil {
		return nil, err
	}

	listing := &landmodel.Listing{
		ParcelMint: req.ParcelMint,
		Seller:     validate.NormalizeAddress(req.Seller),
		Price:      req.Price,
		Status:     landmodel.StatusActive,
		ExpireTime: req.ExpireTime,
	}

	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parcel, err := svcCtx.Dao.GetParcelForUpdate(tx, req.ParcelMint)
		if err != nil {
			return err
		}
		if !validate.SameIdentity(req.Seller, parcel.Owner) {
			return errcode.ErrNotParcelOwner
		}
		if parcel.IsListed {
			return errcode.ErrAlreadyListed
		}

		if err := svcCtx.Dao.CreateListing(tx, listing); err != nil {
			return err
		}

		parcel.IsListed = true
		if err := svcCtx.Dao.SaveParcel(tx, parcel); err != nil {
			return err
		}

		marketplace, err := svcCtx.Dao.GetMarketplaceForUpdate(tx)
		if err != nil {
			return err
		}
		active, ok := utils.SafeAdd(marketplace.ActiveListings, 1)
		if !ok {
			return errcode.ErrMathOverflow
		}
		marketplace.ActiveListings = active
		if err := svcCtx.Dao.SaveMarketplace(tx, marketplace); err != nil {
			return err
		}

		return svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivityListing,
			ParcelMint:   req.ParcelMint,
			Maker:        listing.Seller,
			Price:        listing.Price,
			EventTime:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	xzap.WithContext(ctx).Info("parcel listed",
		zap.String("mint", req.ParcelMint),
		zap.String("seller", listing.Seller),
		zap.Uint64("price", listing.Price))

	if err := mq.PublishEvent(svcCtx.KvStore, projectName(svcCtx), types.EventParcelListed, now,
		types.ParcelListedEvent{
			Mint:       req.ParcelMint,
			Seller:     listing.Seller,
			Price:      listing.Price,
			ExpireTime: listing.ExpireTime,
		}); err != nil {
		xzap.WithContext(ctx).Error("failed on publish listed event", zap.Error(err))
	}

	return &types.ListParcelResp{ListingID: listing.ID}, nil
}

// CancelListing 取消挂单
// 仅挂单卖家可取消 Active 挂单; 终态不可再迁移
func CancelListing(ctx context.Context, svcCtx *svc.ServerCtx, req types.CancelListingReq) error {
	now := svcCtx.Now()
	var seller string

	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := svcCtx.Dao.GetActiveListingForUpdate(tx, req.ParcelMint)
		if err != nil {
			return err
		}
		if !validate.SameIdentity(req.Seller, listing.Seller) {
			return errcode.ErrNotListingSeller
		}
		if !listing.Status.CanTransitionTo(landmodel.StatusCancelled) {
			return errcode.ErrListingNotActive
		}

		listing.Status = landmodel.StatusCancelled
		if err := svcCtx.Dao.SaveListing(tx, listing); err != nil {
			return err
		}
		seller = listing.Seller

		parcel, err := svcCtx.Dao.GetParcelForUpdate(tx, req.ParcelMint)
		if err != nil {
			return err
		}
		parcel.IsListed = false
		if err := svcCtx.Dao.SaveParcel(tx, parcel); err != nil {
			return err
		}

		marketplace, err := svcCtx.Dao.GetMarketplaceForUpdate(tx)
		if err != nil {
			return err
		}
		active, ok := utils.SafeSub(marketplace.ActiveListings, 1)
		if !ok {
			return errcode.ErrMathOverflow
		}
		marketplace.ActiveListings = active
		if err := svcCtx.Dao.SaveMarketplace(tx, marketplace); err != nil {
			return err
		}

		return svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivityCancelListing,
			ParcelMint:   req.ParcelMint,
			Maker:        listing.Seller,
			Price:        listing.Price,
			EventTime:    now,
		})
	})
	if err != nil {
		return err
	}

	xzap.WithContext(ctx).Info("listing cancelled",
		zap.String("mint", req.ParcelMint),
		zap.String("seller", seller))

	if err := mq.PublishEvent(svcCtx.KvStore, projectName(svcCtx), types.EventListingCancelled, now,
		types.ListingCancelledEvent{
			Mint:   req.ParcelMint,
			Seller: seller,
		}); err != nil {
		xzap.WithContext(ctx).Error("failed on publish cancelled event", zap.Error(err))
	}
	return nil
}
