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

// PurchaseParcel 结算协议: 购买挂单中的地块
// 整个操作是一个数据库事务, 任意一步失败全部回滚, 不存在部分提交:
// 1. 锁定 Active 挂单 (并发购买只有一个能成功, 其余拿到 ListingNotActive)
// 2. 按环境时钟复核过期 — 状态仍是 Active 也要拒绝 (ListingExpired)
// 3. 拆分成交价: fee = floor(price*feeBps/10000), 全程检查溢出
// 4. 买家 -> 卖家 / 买家 -> 金库 两笔转账同事务完成
// 5. 更新地块: 持有人/挂单标志/成交统计
// 6. 挂单置为 Sold (终态)
// 7. 更新市场: active_listings 自减 / total_volume 累加 (检查)
// 8. 同事务写入成交流水, 提交后发布成交事件
func PurchaseParcel(ctx context.Context, svcCtx *svc.ServerCtx, req types.PurchaseParcelReq) (*types.PurchaseParcelResp, error) {
	if !validate.ValidAddress(req.Buyer) {
		return nil, errcode.ErrInvalidParams
	}

	now := svcCtx.Now()
	buyer := validate.NormalizeAddress(req.Buyer)
	var resp *types.PurchaseParcelResp

	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := svcCtx.Dao.GetActiveListingForUpdate(tx, req.ParcelMint)
		if err != nil {
			return err
		}
		// 逻辑过期: 只信时钟, 不信持久化状态
		if listing.ExpiredAt(now) {
			return errcode.ErrListingExpired
		}

		parcel, err := svcCtx.Dao.GetParcelForUpdate(tx, req.ParcelMint)
		if err != nil {
			return err
		}
		// 挂单卖家与地块持有人必须仍然一致
		if !validate.SameIdentity(listing.Seller, parcel.Owner) {
			return errcode.ErrInvalidSeller
		}

		marketplace, err := svcCtx.Dao.GetMarketplaceForUpdate(tx)
		if err != nil {
			return err
		}

		feeAmount, sellerAmount, ok := utils.SplitSalePrice(
			listing.Price, marketplace.FeeBasisPoints, landmodel.BpsDenominator)
		if !ok {
			return errcode.ErrMathOverflow
		}

		// 两笔转账在同一事务内, 要么都发生要么都不发生
		if err := svcCtx.Dao.Transfer(tx, buyer, listing.Seller, sellerAmount); err != nil {
			return err
		}
		if feeAmount > 0 {
			if err := svcCtx.Dao.Transfer(tx, buyer, marketplace.Treasury, feeAmount); err != nil {
				return err
			}
		}

		trades, ok := utils.SafeAdd(parcel.TotalTrades, 1)
		if !ok {
			return errcode.ErrMathOverflow
		}
		parcel.Owner = buyer
		parcel.IsListed = false
		parcel.TotalTrades = trades
		parcel.LastSalePrice = listing.Price
		if err := svcCtx.Dao.SaveParcel(tx, parcel); err != nil {
			return err
		}

		listing.Status = landmodel.StatusSold
		if err := svcCtx.Dao.SaveListing(tx, listing); err != nil {
			return err
		}

		active, ok := utils.SafeSub(marketplace.ActiveListings, 1)
		if !ok {
			return errcode.ErrMathOverflow
		}
		volume, ok := utils.SafeAdd(marketplace.TotalVolume, listing.Price)
		if !ok {
			return errcode.ErrMathOverflow
		}
		marketplace.ActiveListings = active
		marketplace.TotalVolume = volume
		if err := svcCtx.Dao.SaveMarketplace(tx, marketplace); err != nil {
			return err
		}

		if err := svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivitySale,
			ParcelMint:   req.ParcelMint,
			Maker:        listing.Seller,
			Taker:        buyer,
			Price:        listing.Price,
			FeeAmount:    feeAmount,
			EventTime:    now,
		}); err != nil {
			return err
		}

		resp = &types.PurchaseParcelResp{
			ParcelMint:   req.ParcelMint,
			Seller:       listing.Seller,
			Buyer:        buyer,
			Price:        listing.Price,
			FeeAmount:    feeAmount,
			SellerAmount: sellerAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	xzap.WithContext(ctx).Info("parcel sold",
		zap.String("mint", resp.ParcelMint),
		zap.String("seller", resp.Seller),
		zap.String("buyer", resp.Buyer),
		zap.Uint64("price", resp.Price),
		zap.Uint64("fee_amount", resp.FeeAmount))

	if err := mq.PublishEvent(svcCtx.KvStore, projectName(svcCtx), types.EventParcelSold, now,
		types.ParcelSoldEvent{
			Mint:      resp.ParcelMint,
			Seller:    resp.Seller,
			Buyer:     resp.Buyer,
			Price:     resp.Price,
			FeeAmount: resp.FeeAmount,
		}); err != nil {
		xzap.WithContext(ctx).Error("failed on publish sold event", zap.Error(err))
	}

	return resp, nil
}
