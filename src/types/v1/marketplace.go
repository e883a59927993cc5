package types

import "github.com/shopspring/decimal"

// InitializeMarketplaceReq 创建市场单例请求
type InitializeMarketplaceReq struct {
	Authority      string `json:"authority" binding:"required,address"`      // 管理者地址 (由网关完成签名验证)
	Treasury       string `json:"treasury" binding:"required"`               // 手续费接收地址
	FeeBasisPoints int64  `json:"fee_basis_points" binding:"min=0"`          // 手续费率 [0, 1000]
}

// UpdateMarketplaceFeeReq 更新手续费率请求
type UpdateMarketplaceFeeReq struct {
	Authority         string `json:"authority" binding:"required,address"` // 调用方身份
	NewFeeBasisPoints int64  `json:"new_fee_basis_points" binding:"min=0"` // 新费率
}

// MarketplaceInfo 市场注册表视图
type MarketplaceInfo struct {
	Authority          string `json:"authority"`
	Treasury           string `json:"treasury"`
	FeeBasisPoints     int64  `json:"fee_basis_points"`
	TotalVolume        uint64 `json:"total_volume"`
	ActiveListings     uint64 `json:"active_listings"`
	TotalParcelsMinted uint64 `json:"total_parcels_minted"`
}

// MarketplaceStats 市场统计视图 (面向前端展示)
type MarketplaceStats struct {
	FeeBasisPoints     int64           `json:"fee_basis_points"`
	ActiveListings     uint64          `json:"active_listings"`
	TotalParcelsMinted uint64          `json:"total_parcels_minted"`
	TotalVolume        uint64          `json:"total_volume"`         // 基础单位
	TotalVolumeDisplay decimal.Decimal `json:"total_volume_display"` // 展示单位
	FloorPrice         uint64          `json:"floor_price"`          // 当前 Active 挂单最低价, 无挂单为 0
}
