package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
)

// CreateParcel 写入新铸造的地块记录
func (d *Dao) CreateParcel(tx *gorm.DB, parcel *landmodel.LandParcel) error {
	if err := tx.Create(parcel).Error; err != nil {
		return errors.Wrap(err, "failed on create parcel")
	}
	return nil
}

// GetParcelByMint 按铸造标识读取地块
func (d *Dao) GetParcelByMint(ctx context.Context, mint string) (*landmodel.LandParcel, error) {
	return getParcelByMint(d.DB.WithContext(ctx), mint, false)
}

// GetParcelForUpdate 在事务内按行锁读取地块
// 挂单/购买对地块的读改写都要经过这里, 串行化同一地块上的冲突操作
func (d *Dao) GetParcelForUpdate(tx *gorm.DB, mint string) (*landmodel.LandParcel, error) {
	return getParcelByMint(tx, mint, true)
}

func getParcelByMint(db *gorm.DB, mint string, lock bool) (*landmodel.LandParcel, error) {
	if lock {
		db = forUpdate(db)
	}

	var parcel landmodel.LandParcel
	if err := db.Where("mint = ?", mint).
		First(&parcel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrParcelNotFound
		}
		return nil, errors.Wrap(err, "failed on get parcel by mint")
	}
	return &parcel, nil
}

// SaveParcel 持久化地块变更 (owner / is_listed / 成交统计)
func (d *Dao) SaveParcel(tx *gorm.DB, parcel *landmodel.LandParcel) error {
	if err := tx.Save(parcel).Error; err != nil {
		return errors.Wrap(err, "failed on save parcel")
	}
	return nil
}
