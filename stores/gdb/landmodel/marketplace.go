package landmodel

// 市场全局约束
const (
	// MaxFeeBps 手续费率上限 (1000 bps = 10%)
	MaxFeeBps = 1000
	// BpsDenominator 基点分母 (parts-per-10000)
	BpsDenominator = 10000
	// MarketplaceID 单例记录主键, 全系统只有一行
	MarketplaceID = 1
)

// Marketplace 市场注册表 (单例)
// authority 创建后不再变更, fee_basis_points 仅允许 authority 更新,
// 三个计数器只由 mint / list / cancel / purchase 操作驱动
type Marketplace struct {
	ID                int64  `json:"id" gorm:"column:id;primaryKey"`
	Authority         string `json:"authority" gorm:"column:authority;type:varchar(42);not null"`                  // 管理者地址
	FeeBasisPoints    int64  `json:"fee_basis_points" gorm:"column:fee_basis_points;not null"`                     // 手续费率 [0, 1000]
	Treasury          string `json:"treasury" gorm:"column:treasury;type:varchar(42);not null"`                    // 手续费接收地址
	TotalVolume       uint64 `json:"total_volume" gorm:"column:total_volume;not null;default:0"`                   // 累计成交额 (单调不减)
	ActiveListings    uint64 `json:"active_listings" gorm:"column:active_listings;not null;default:0"`             // 当前 Active 挂单数
	TotalParcelsMinted uint64 `json:"total_parcels_minted" gorm:"column:total_parcels_minted;not null;default:0"` // 累计铸造数 (单调递增)
	CreateTime        int64  `json:"create_time" gorm:"column:create_time;autoCreateTime"`
	UpdateTime        int64  `json:"update_time" gorm:"column:update_time;autoUpdateTime"`
}

func (Marketplace) TableName() string {
	return MarketplaceTableName()
}

func MarketplaceTableName() string {
	return "lm_marketplace"
}
