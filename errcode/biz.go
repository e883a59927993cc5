package errcode

// 土地市场业务错误码
// 每一个校验/算术失败都精确对应一个错误码, 操作整体失败, 不做部分提交
const (
	CodeInvalidCoordinates       = 20001
	CodeNameTooLong              = 20002
	CodeUriTooLong               = 20003
	CodeFeeTooHigh               = 20004
	CodePriceTooLow              = 20005
	CodeInvalidExpiryTime        = 20006
	CodeExpiryTooFar             = 20007
	CodeAlreadyListed            = 20008
	CodeListingNotActive         = 20009
	CodeListingExpired           = 20010
	CodeNotParcelOwner           = 20011
	CodeNotListingSeller         = 20012
	CodeInvalidSeller            = 20013
	CodeInvalidTreasury          = 20014
	CodeNotMarketplaceAuthority  = 20015
	CodeMathOverflow             = 20016
	CodeMarketplaceInitialized   = 20017
	CodeMarketplaceUninitialized = 20018
	CodeParcelNotFound           = 20019
	CodeListingNotFound          = 20020
	CodeAccountNotFound          = 20021
	CodeInsufficientBalance      = 20022
)

var (
	// ErrInvalidCoordinates 坐标超出 [-10000, 10000] 范围
	ErrInvalidCoordinates = NewErr(CodeInvalidCoordinates, "coordinates out of range")
	// ErrNameTooLong 名称超过 32 字符
	ErrNameTooLong = NewErr(CodeNameTooLong, "name too long")
	// ErrUriTooLong 元数据链接超过 200 字符
	ErrUriTooLong = NewErr(CodeUriTooLong, "uri too long")
	// ErrFeeTooHigh 手续费率超过 1000 bps (10%)
	ErrFeeTooHigh = NewErr(CodeFeeTooHigh, "fee basis points too high")
	// ErrPriceTooLow 挂单价格低于最低价格
	ErrPriceTooLow = NewErr(CodePriceTooLow, "price below minimum")
	// ErrInvalidExpiryTime 过期时间不晚于当前时间
	ErrInvalidExpiryTime = NewErr(CodeInvalidExpiryTime, "invalid expiry time")
	// ErrExpiryTooFar 过期时间超过最大挂单窗口 (30 天)
	ErrExpiryTooFar = NewErr(CodeExpiryTooFar, "expiry time too far in the future")
	// ErrAlreadyListed 地块已存在 Active 挂单
	ErrAlreadyListed = NewErr(CodeAlreadyListed, "parcel already listed")
	// ErrListingNotActive 挂单不处于 Active 状态
	ErrListingNotActive = NewErr(CodeListingNotActive, "listing not active")
	// ErrListingExpired 挂单已过期 (按时间推导, 不依赖持久化状态)
	ErrListingExpired = NewErr(CodeListingExpired, "listing expired")
	// ErrNotParcelOwner 调用者不是地块持有人
	ErrNotParcelOwner = NewErr(CodeNotParcelOwner, "not parcel owner")
	// ErrNotListingSeller 调用者不是挂单卖家
	ErrNotListingSeller = NewErr(CodeNotListingSeller, "not listing seller")
	// ErrInvalidSeller 挂单卖家与地块持有人不一致
	ErrInvalidSeller = NewErr(CodeInvalidSeller, "invalid seller")
	// ErrInvalidTreasury 金库地址非法
	ErrInvalidTreasury = NewErr(CodeInvalidTreasury, "invalid treasury")
	// ErrNotMarketplaceAuthority 调用者不是市场管理者
	ErrNotMarketplaceAuthority = NewErr(CodeNotMarketplaceAuthority, "not marketplace authority")
	// ErrMathOverflow 算术溢出
	ErrMathOverflow = NewErr(CodeMathOverflow, "math overflow")
	// ErrMarketplaceInitialized 市场已初始化 (单例只能创建一次)
	ErrMarketplaceInitialized = NewErr(CodeMarketplaceInitialized, "marketplace already initialized")
	// ErrMarketplaceUninitialized 市场尚未初始化
	ErrMarketplaceUninitialized = NewErr(CodeMarketplaceUninitialized, "marketplace not initialized")
	// ErrParcelNotFound 地块不存在
	ErrParcelNotFound = NewErr(CodeParcelNotFound, "parcel not found")
	// ErrListingNotFound 挂单不存在
	ErrListingNotFound = NewErr(CodeListingNotFound, "listing not found")
	// ErrAccountNotFound 资金账户不存在
	ErrAccountNotFound = NewErr(CodeAccountNotFound, "account not found")
	// ErrInsufficientBalance 买家余额不足
	ErrInsufficientBalance = NewErr(CodeInsufficientBalance, "insufficient balance")
)
