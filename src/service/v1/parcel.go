package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/logger/xzap"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/src/service/metadata"
	"github.com/ProjectsTask/LandSwapCore/src/service/mq"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// MintLandParcel 铸造新地块
// 流程:
// 1. 校验坐标/名称/链接/枚举取值 (任何写入之前)
// 2. 事务内: 锁市场单例 -> 铸造计数器自增 (检查溢出) -> 分配 mint 标识
//    -> 写入地块记录 -> 同步调用元数据服务 (失败则整个铸造回滚)
//    -> 写入活动流水
// 3. 提交后发布铸造事件
func MintLandParcel(ctx context.Context, svcCtx *svc.ServerCtx, req types.MintParcelReq) (*types.MintParcelResp, error) {
	if err := validate.CheckCoordinates(req.CoordinateX, req.CoordinateY); err != nil {
		return nil, err
	}
	if err := validate.CheckParcelName(req.Name); err != nil {
		return nil, err
	}
	if err := validate.CheckMetadataURI(req.MetadataURI); err != nil {
		return nil, err
	}

	size := landmodel.ParcelSize(req.Size)
	rarity := landmodel.Rarity(req.Rarity)
	if !size.Valid() || !rarity.Valid() {
		return nil, errcode.ErrInvalidParams
	}
	if !validate.ValidAddress(req.Owner) || !validate.ValidAddress(req.Payer) {
		return nil, errcode.ErrInvalidParams
	}

	now := svcCtx.Now()
	parcel := &landmodel.LandParcel{
		Mint:        uuid.NewString(),
		Owner:       validate.NormalizeAddress(req.Owner),
		CoordinateX: req.CoordinateX,
		CoordinateY: req.CoordinateY,
		Size:        size,
		Rarity:      rarity,
		Name:        req.Name,
		MetadataURI: req.MetadataURI,
	}

	err := svcCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marketplace, err := svcCtx.Dao.GetMarketplaceForUpdate(tx)
		if err != nil {
			return err
		}

		minted, ok := utils.SafeAdd(marketplace.TotalParcelsMinted, 1)
		if !ok {
			return errcode.ErrMathOverflow
		}
		marketplace.TotalParcelsMinted = minted
		if err := svcCtx.Dao.SaveMarketplace(tx, marketplace); err != nil {
			return err
		}

		if err := svcCtx.Dao.CreateParcel(tx, parcel); err != nil {
			return err
		}

		// 外部协作方调用放在事务内: 元数据创建失败时铸造整体回滚
		if err := svcCtx.Metadata.CreateParcelMetadata(ctx, metadata.CreateReq{
			Mint: parcel.Mint,
			Name: parcel.Name,
			URI:  parcel.MetadataURI,
		}); err != nil {
			return errors.Wrap(err, "failed on create parcel metadata")
		}

		return svcCtx.Dao.AddActivity(tx, &landmodel.Activity{
			ActivityType: landmodel.ActivityMint,
			ParcelMint:   parcel.Mint,
			Maker:        parcel.Owner,
			EventTime:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	xzap.WithContext(ctx).Info("land parcel minted",
		zap.String("mint", parcel.Mint),
		zap.String("owner", parcel.Owner),
		zap.Int32("x", parcel.CoordinateX),
		zap.Int32("y", parcel.CoordinateY))

	if err := mq.PublishEvent(svcCtx.KvStore, projectName(svcCtx), types.EventLandParcelMinted, now,
		types.LandParcelMintedEvent{
			Mint:        parcel.Mint,
			Owner:       parcel.Owner,
			CoordinateX: parcel.CoordinateX,
			CoordinateY: parcel.CoordinateY,
			Size:        parcel.Size.String(),
			Rarity:      parcel.Rarity.String(),
		}); err != nil {
		xzap.WithContext(ctx).Error("failed on publish minted event", zap.Error(err))
	}

	return &types.MintParcelResp{Mint: parcel.Mint}, nil
}

// GetParcelDetail 地块详情 (聚合当前 Active 挂单)
func GetParcelDetail(ctx context.Context, svcCtx *svc.ServerCtx, mint string) (*types.ParcelDetail, error) {
	parcel, err := svcCtx.Dao.GetParcelByMint(ctx, mint)
	if err != nil {
		return nil, err
	}

	detail := &types.ParcelDetail{
		Mint:          parcel.Mint,
		Owner:         parcel.Owner,
		CoordinateX:   parcel.CoordinateX,
		CoordinateY:   parcel.CoordinateY,
		Size:          parcel.Size.String(),
		Rarity:        parcel.Rarity.String(),
		Name:          parcel.Name,
		MetadataURI:   parcel.MetadataURI,
		IsListed:      parcel.IsListed,
		TotalTrades:   parcel.TotalTrades,
		LastSalePrice: parcel.LastSalePrice,
		CreateTime:    parcel.CreateTime,
	}

	if parcel.IsListed {
		listing, err := svcCtx.Dao.GetActiveListingByMint(ctx, mint)
		if err != nil {
			return nil, err
		}
		detail.ListingID = listing.ID
		detail.ListPrice = listing.Price
		detail.ListPriceShow = utils.ToDisplayPrice(listing.Price)
		detail.ListSeller = listing.Seller
		detail.ListExpireTime = listing.ExpireTime
	}
	return detail, nil
}
