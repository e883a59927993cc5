package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
)

// GetMarketplace 读取市场单例
// 未初始化时返回 ErrMarketplaceUninitialized
func (d *Dao) GetMarketplace(ctx context.Context) (*landmodel.Marketplace, error) {
	return getMarketplace(d.DB.WithContext(ctx), false)
}

// GetMarketplaceForUpdate 在事务内按行锁读取市场单例
// 所有会变更计数器的操作都必须先拿到这把锁, 保证计数器串行更新
func (d *Dao) GetMarketplaceForUpdate(tx *gorm.DB) (*landmodel.Marketplace, error) {
	return getMarketplace(tx, true)
}

func getMarketplace(db *gorm.DB, lock bool) (*landmodel.Marketplace, error) {
	if lock {
		db = forUpdate(db)
	}

	var marketplace landmodel.Marketplace
	if err := db.Where("id = ?", landmodel.MarketplaceID).
		First(&marketplace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrMarketplaceUninitialized
		}
		return nil, errors.Wrap(err, "failed on get marketplace")
	}
	return &marketplace, nil
}

// CreateMarketplace 创建市场单例
// 依赖主键唯一约束保证单例只能创建一次
func (d *Dao) CreateMarketplace(tx *gorm.DB, marketplace *landmodel.Marketplace) error {
	marketplace.ID = landmodel.MarketplaceID
	if err := tx.Create(marketplace).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errcode.ErrMarketplaceInitialized
		}
		return errors.Wrap(err, "failed on create marketplace")
	}
	return nil
}

// SaveMarketplace 持久化市场单例的变更 (费率/计数器)
func (d *Dao) SaveMarketplace(tx *gorm.DB, marketplace *landmodel.Marketplace) error {
	if err := tx.Save(marketplace).Error; err != nil {
		return errors.Wrap(err, "failed on save marketplace")
	}
	return nil
}

// CountListingsByStatus 按状态统计挂单数量
// 用于校验 active_listings 计数器与真实 Active 挂单数的一致性
func (d *Dao) CountListingsByStatus(ctx context.Context, status landmodel.ListingStatus) (int64, error) {
	var count int64
	if err := d.DB.WithContext(ctx).Model(&landmodel.Listing{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed on count listings by status")
	}
	return count, nil
}
