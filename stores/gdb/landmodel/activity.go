package landmodel

// 活动类型
// 每个公开操作在提交的同一事务里写入一条活动记录, 作为事件的持久化形式
const (
	ActivityMint = iota + 1
	ActivityListing
	ActivitySale
	ActivityCancelListing
	ActivityExpired
	ActivityFeeUpdate
	ActivityInitialized
)

// Activity 市场活动流水
type Activity struct {
	ID           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ActivityType int    `json:"activity_type" gorm:"column:activity_type;not null;index"`
	ParcelMint   string `json:"parcel_mint" gorm:"column:parcel_mint;type:varchar(64);index"` // 市场级活动为空
	Maker        string `json:"maker" gorm:"column:maker;type:varchar(42);index"`             // 发起方 (卖家/铸造者/管理者)
	Taker        string `json:"taker" gorm:"column:taker;type:varchar(42)"`                   // 对手方 (买家), 可为空
	Price        uint64 `json:"price" gorm:"column:price;not null;default:0"`                 // 成交/挂单价格
	FeeAmount    uint64 `json:"fee_amount" gorm:"column:fee_amount;not null;default:0"`       // 成交手续费
	EventTime    int64  `json:"event_time" gorm:"column:event_time;not null;index"`
	CreateTime   int64  `json:"create_time" gorm:"column:create_time;autoCreateTime"`
}

func (Activity) TableName() string {
	return ActivityTableName()
}

func ActivityTableName() string {
	return "lm_activity"
}
