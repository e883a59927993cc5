package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// 活动类型与对外标识的映射
var activityTypeToName = map[int]string{
	landmodel.ActivityMint:          "mint",
	landmodel.ActivityListing:       "list",
	landmodel.ActivitySale:          "sale",
	landmodel.ActivityCancelListing: "cancel_list",
	landmodel.ActivityExpired:       "expired",
	landmodel.ActivityFeeUpdate:     "fee_update",
	landmodel.ActivityInitialized:   "initialized",
}

// 分页默认值
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ActivityTypeName 活动类型的对外字符串标识
func ActivityTypeName(activityType int) string {
	if name, ok := activityTypeToName[activityType]; ok {
		return name
	}
	return "unknown"
}

// AddActivity 在操作事务内写入一条活动流水
// 与业务写入同事务提交, 活动流水即事件的持久化形式
func (d *Dao) AddActivity(tx *gorm.DB, activity *landmodel.Activity) error {
	if err := tx.Create(activity).Error; err != nil {
		return errors.Wrap(err, "failed on add activity")
	}
	return nil
}

// QueryActivities 分页查询活动流水
// 支持按地块、用户地址 (maker 或 taker)、活动类型过滤
func (d *Dao) QueryActivities(ctx context.Context, param types.ActivitiesParam) ([]landmodel.Activity, int64, error) {
	page := int64(utils.Max(int64(param.Page), 1))
	pageSize := int64(utils.Min(maxPageSize, int(utils.Max(int64(param.PageSize), defaultPageSize))))

	query := d.DB.WithContext(ctx).Model(&landmodel.Activity{})
	if param.ParcelMint != "" {
		query = query.Where("parcel_mint = ?", param.ParcelMint)
	}
	if param.UserAddress != "" {
		addr := validate.NormalizeAddress(param.UserAddress)
		query = query.Where("maker = ? or taker = ?", addr, addr)
	}
	if param.ActivityType != 0 {
		query = query.Where("activity_type = ?", param.ActivityType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed on count activities")
	}

	var activities []landmodel.Activity
	if err := query.Order("event_time desc, id desc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&activities).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed on query activities")
	}
	return activities, count, nil
}
