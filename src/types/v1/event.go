package types

// 通知事件
// 每个公开操作成功提交后向事件队列发布一条

// EventKind 事件类型标识
const (
	EventMarketplaceInitialized = "marketplace_initialized"
	EventMarketplaceFeeUpdated  = "marketplace_fee_updated"
	EventLandParcelMinted       = "land_parcel_minted"
	EventParcelListed           = "parcel_listed"
	EventParcelSold             = "parcel_sold"
	EventListingCancelled       = "listing_cancelled"
	EventListingExpired         = "listing_expired"
)

// MarketplaceInitializedEvent 市场创建事件
type MarketplaceInitializedEvent struct {
	Authority      string `json:"authority"`
	Treasury       string `json:"treasury"`
	FeeBasisPoints int64  `json:"fee_basis_points"`
}

// MarketplaceFeeUpdatedEvent 费率更新事件
type MarketplaceFeeUpdatedEvent struct {
	Authority         string `json:"authority"`
	OldFeeBasisPoints int64  `json:"old_fee_basis_points"`
	NewFeeBasisPoints int64  `json:"new_fee_basis_points"`
}

// LandParcelMintedEvent 铸造事件
type LandParcelMintedEvent struct {
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	CoordinateX int32  `json:"coordinate_x"`
	CoordinateY int32  `json:"coordinate_y"`
	Size        string `json:"size"`
	Rarity      string `json:"rarity"`
}

// ParcelListedEvent 挂单事件
type ParcelListedEvent struct {
	Mint       string `json:"mint"`
	Seller     string `json:"seller"`
	Price      uint64 `json:"price"`
	ExpireTime int64  `json:"expire_time"`
}

// ParcelSoldEvent 成交事件
type ParcelSoldEvent struct {
	Mint      string `json:"mint"`
	Seller    string `json:"seller"`
	Buyer     string `json:"buyer"`
	Price     uint64 `json:"price"`
	FeeAmount uint64 `json:"fee_amount"`
}

// ListingCancelledEvent 取消挂单事件
type ListingCancelledEvent struct {
	Mint   string `json:"mint"`
	Seller string `json:"seller"`
}

// ListingExpiredEvent 挂单过期落库事件 (sweeper 发布)
type ListingExpiredEvent struct {
	Mint       string `json:"mint"`
	Seller     string `json:"seller"`
	ExpireTime int64  `json:"expire_time"`
}
