package types

// ListParcelReq 挂单请求
type ListParcelReq struct {
	Seller     string `json:"seller" binding:"required,address"` // 卖家身份, 必须等于地块持有人
	ParcelMint string `json:"parcel_mint" binding:"required"`
	Price      uint64 `json:"price" binding:"required"`
	ExpireTime int64  `json:"expire_time"` // 0 表示不过期
}

// ListParcelResp 挂单结果
type ListParcelResp struct {
	ListingID int64 `json:"listing_id"`
}

// CancelListingReq 取消挂单请求
type CancelListingReq struct {
	Seller     string `json:"seller" binding:"required,address"` // 必须等于挂单卖家
	ParcelMint string `json:"parcel_mint" binding:"required"`
}

// PurchaseParcelReq 购买请求
type PurchaseParcelReq struct {
	Buyer      string `json:"buyer" binding:"required,address"`
	ParcelMint string `json:"parcel_mint" binding:"required"`
}

// PurchaseParcelResp 购买结果 (结算明细)
type PurchaseParcelResp struct {
	ParcelMint   string `json:"parcel_mint"`
	Seller       string `json:"seller"`
	Buyer        string `json:"buyer"`
	Price        uint64 `json:"price"`
	FeeAmount    uint64 `json:"fee_amount"`
	SellerAmount uint64 `json:"seller_amount"`
}
