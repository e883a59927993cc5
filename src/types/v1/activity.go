package types

// ActivitiesParam 活动流水查询参数
type ActivitiesParam struct {
	ParcelMint   string `form:"parcel_mint"`
	UserAddress  string `form:"user_address"`
	ActivityType int    `form:"activity_type"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}

// ActivityInfo 活动流水视图
type ActivityInfo struct {
	ActivityType string `json:"activity_type"`
	ParcelMint   string `json:"parcel_mint"`
	Maker        string `json:"maker"`
	Taker        string `json:"taker,omitempty"`
	Price        uint64 `json:"price,omitempty"`
	FeeAmount    uint64 `json:"fee_amount,omitempty"`
	EventTime    int64  `json:"event_time"`
}

// ActivitiesResp 活动流水分页响应
type ActivitiesResp struct {
	Result []ActivityInfo `json:"result"`
	Count  int64          `json:"count"`
}
