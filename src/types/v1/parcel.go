package types

import "github.com/shopspring/decimal"

// MintParcelReq 铸造地块请求
type MintParcelReq struct {
	Payer       string `json:"payer" binding:"required,address"` // 记录费用支付方
	Owner       string `json:"owner" binding:"required,address"` // 初始持有人
	CoordinateX int32  `json:"coordinate_x"`
	CoordinateY int32  `json:"coordinate_y"`
	Size        uint8  `json:"size"`
	Rarity      uint8  `json:"rarity"`
	Name        string `json:"name" binding:"required"`
	MetadataURI string `json:"metadata_uri" binding:"required"`
}

// MintParcelResp 铸造结果
type MintParcelResp struct {
	Mint string `json:"mint"` // 新分配的唯一铸造标识
}

// ParcelDetail 地块详情 (聚合当前 Active 挂单)
type ParcelDetail struct {
	Mint          string          `json:"mint"`
	Owner         string          `json:"owner"`
	CoordinateX   int32           `json:"coordinate_x"`
	CoordinateY   int32           `json:"coordinate_y"`
	Size          string          `json:"size"`
	Rarity        string          `json:"rarity"`
	Name          string          `json:"name"`
	MetadataURI   string          `json:"metadata_uri"`
	IsListed      bool            `json:"is_listed"`
	TotalTrades   uint64          `json:"total_trades"`
	LastSalePrice uint64          `json:"last_sale_price"`
	CreateTime    int64           `json:"create_time"`

	// 挂单详情 (仅 is_listed 为 true 时填充)
	ListingID      int64           `json:"listing_id,omitempty"`
	ListPrice      uint64          `json:"list_price,omitempty"`
	ListPriceShow  decimal.Decimal `json:"list_price_show,omitempty"`
	ListSeller     string          `json:"list_seller,omitempty"`
	ListExpireTime int64           `json:"list_expire_time,omitempty"`
}
