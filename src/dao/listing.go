package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
)

// CreateListing 写入新挂单
func (d *Dao) CreateListing(tx *gorm.DB, listing *landmodel.Listing) error {
	if err := tx.Create(listing).Error; err != nil {
		return errors.Wrap(err, "failed on create listing")
	}
	return nil
}

// GetActiveListingByMint 读取地块当前的 Active 挂单
func (d *Dao) GetActiveListingByMint(ctx context.Context, mint string) (*landmodel.Listing, error) {
	return getActiveListingByMint(d.DB.WithContext(ctx), mint, false)
}

// GetActiveListingForUpdate 在事务内按行锁读取地块当前的 Active 挂单
// 两个并发购买只有一个能拿到锁并看到 Active, 另一个被确定性拒绝
func (d *Dao) GetActiveListingForUpdate(tx *gorm.DB, mint string) (*landmodel.Listing, error) {
	return getActiveListingByMint(tx, mint, true)
}

func getActiveListingByMint(db *gorm.DB, mint string, lock bool) (*landmodel.Listing, error) {
	if lock {
		db = forUpdate(db)
	}

	var listing landmodel.Listing
	if err := db.Where("parcel_mint = ? and status = ?", mint, landmodel.StatusActive).
		Order("id desc").
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrListingNotActive
		}
		return nil, errors.Wrap(err, "failed on get active listing")
	}
	return &listing, nil
}

// GetListingByID 按主键读取挂单
func (d *Dao) GetListingByID(ctx context.Context, id int64) (*landmodel.Listing, error) {
	var listing landmodel.Listing
	if err := d.DB.WithContext(ctx).Where("id = ?", id).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "failed on get listing by id")
	}
	return &listing, nil
}

// SaveListing 持久化挂单状态迁移
func (d *Dao) SaveListing(tx *gorm.DB, listing *landmodel.Listing) error {
	if err := tx.Save(listing).Error; err != nil {
		return errors.Wrap(err, "failed on save listing")
	}
	return nil
}

// FindExpiredActiveListings 捞取一批已到期但仍标记 Active 的挂单主键
// sweeper 逐条在独立事务里落库 Expired, 这里只读不加锁
func (d *Dao) FindExpiredActiveListings(ctx context.Context, now int64, limit int) ([]int64, error) {
	var ids []int64
	if err := d.DB.WithContext(ctx).Model(&landmodel.Listing{}).
		Where("status = ? and expire_time > ? and expire_time < ?",
			landmodel.StatusActive, landmodel.NoExpiry, now).
		Order("expire_time asc").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed on find expired listings")
	}
	return ids, nil
}

// GetListingForUpdateByID 在事务内按行锁读取挂单 (sweeper 落库用)
func (d *Dao) GetListingForUpdateByID(tx *gorm.DB, id int64) (*landmodel.Listing, error) {
	var listing landmodel.Listing
	if err := forUpdate(tx).
		Where("id = ?", id).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "failed on get listing for update")
	}
	return &listing, nil
}

// FloorPrice 当前 Active 挂单的最低价, 无挂单返回 0
func (d *Dao) FloorPrice(ctx context.Context) (uint64, error) {
	var floor *uint64
	if err := d.DB.WithContext(ctx).Model(&landmodel.Listing{}).
		Where("status = ?", landmodel.StatusActive).
		Select("min(price)").
		Scan(&floor).Error; err != nil {
		return 0, errors.Wrap(err, "failed on query floor price")
	}
	if floor == nil {
		return 0, nil
	}
	return *floor, nil
}
