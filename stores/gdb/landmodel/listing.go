package landmodel

// 挂单约束
const (
	// MinListPrice 挂单价格下限 (基础单位)
	MinListPrice uint64 = 1_000_000
	// MaxListingDuration 最大挂单窗口 (30 天, 秒)
	MaxListingDuration int64 = 30 * 24 * 3600
	// NoExpiry expire_time 为 0 表示挂单不过期
	NoExpiry int64 = 0
)

// ListingStatus 挂单状态 (封闭枚举)
// 状态机: Active -> Sold / Cancelled / Expired, 终态不可再迁移
// Expired 是按时间推导的逻辑状态: 即使数据库仍是 Active,
// 过了 expire_time 的挂单也不可成交, 后台 sweeper 仅做事后落库
type ListingStatus uint8

const (
	StatusActive ListingStatus = iota + 1
	StatusSold
	StatusCancelled
	StatusExpired
)

// Valid 状态取值是否合法
func (s ListingStatus) Valid() bool {
	return s >= StatusActive && s <= StatusExpired
}

// Terminal 是否为终态
func (s ListingStatus) Terminal() bool {
	return s == StatusSold || s == StatusCancelled || s == StatusExpired
}

// CanTransitionTo 状态迁移是否合法
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	return s == StatusActive && next.Valid() && next.Terminal()
}

func (s ListingStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSold:
		return "sold"
	case StatusCancelled:
		return "cancelled"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Listing 销售挂单, 每个报价一行
// 同一地块可以在前一个挂单关闭后重新挂出, 因此以自增 id 为主键,
// "最多一个 Active" 的约束由地块的 is_listed 标志在事务内保证
type Listing struct {
	ID         int64         `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ParcelMint string        `json:"parcel_mint" gorm:"column:parcel_mint;type:varchar(64);not null;index"` // 地块引用
	Seller     string        `json:"seller" gorm:"column:seller;type:varchar(42);not null;index"`           // 创建时必须等于地块持有人
	Price      uint64        `json:"price" gorm:"column:price;not null"`                                    // 一口价, >= MinListPrice
	Status     ListingStatus `json:"status" gorm:"column:status;not null;index"`
	ExpireTime int64         `json:"expire_time" gorm:"column:expire_time;not null;default:0"` // 0 表示不过期
	CreateTime int64         `json:"create_time" gorm:"column:create_time;autoCreateTime"`
	UpdateTime int64         `json:"update_time" gorm:"column:update_time;autoUpdateTime"`
}

// ExpiredAt 按给定时间判断挂单是否已过期 (逻辑过期)
func (l *Listing) ExpiredAt(now int64) bool {
	return l.ExpireTime != NoExpiry && now > l.ExpireTime
}

func (Listing) TableName() string {
	return ListingTableName()
}

func ListingTableName() string {
	return "lm_listing"
}
