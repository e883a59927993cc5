package validate

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
)

// 校验层: 无状态谓词检查
// 每个失败精确映射到一个业务错误码, 所有校验都在任何写入之前执行,
// 被拒绝的输入不会产生部分写入

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// ValidAddress 地址格式是否合法 (0x + 40 位十六进制)
func ValidAddress(addr string) bool {
	return addressPattern.MatchString(addr)
}

// NormalizeAddress 将地址规范化为 EIP-55 校验和格式
// 身份相等判断一律在规范化之后进行
func NormalizeAddress(addr string) string {
	return common.HexToAddress(addr).Hex()
}

// SameIdentity 身份相等谓词
// 调用方身份由外部执行环境完成签名验证, 这里只做纯相等比较
func SameIdentity(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// CheckCoordinates 坐标分量必须落在 [-10000, 10000]
func CheckCoordinates(x, y int32) error {
	if x < landmodel.MinCoordinate || x > landmodel.MaxCoordinate ||
		y < landmodel.MinCoordinate || y > landmodel.MaxCoordinate {
		return errcode.ErrInvalidCoordinates
	}
	return nil
}

// CheckParcelName 名称长度 <= 32
func CheckParcelName(name string) error {
	if len(name) > landmodel.MaxNameLen {
		return errcode.ErrNameTooLong
	}
	return nil
}

// CheckMetadataURI 元数据链接长度 <= 200
func CheckMetadataURI(uri string) error {
	if len(uri) > landmodel.MaxMetadataURILen {
		return errcode.ErrUriTooLong
	}
	return nil
}

// CheckFeeBps 手续费率必须落在 [0, 1000]
func CheckFeeBps(feeBps int64) error {
	if feeBps < 0 || feeBps > landmodel.MaxFeeBps {
		return errcode.ErrFeeTooHigh
	}
	return nil
}

// CheckListPrice 挂单价格必须 >= 最低价
func CheckListPrice(price uint64) error {
	if price < landmodel.MinListPrice {
		return errcode.ErrPriceTooLow
	}
	return nil
}

// CheckExpiry 过期时间校验
// expireTime 为 0 表示不过期; 否则必须晚于当前时间且不超过最大挂单窗口
func CheckExpiry(now, expireTime int64) error {
	if expireTime == landmodel.NoExpiry {
		return nil
	}
	if expireTime <= now {
		return errcode.ErrInvalidExpiryTime
	}
	if expireTime > now+landmodel.MaxListingDuration {
		return errcode.ErrExpiryTooFar
	}
	return nil
}

// CheckTreasury 金库地址必须是合法的非零地址
func CheckTreasury(treasury string) error {
	if !ValidAddress(treasury) || common.HexToAddress(treasury) == (common.Address{}) {
		return errcode.ErrInvalidTreasury
	}
	return nil
}

// addressValidator gin 请求绑定用的自定义 "address" 校验规则
var addressValidator validator.Func = func(fl validator.FieldLevel) bool {
	addr, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return ValidAddress(addr)
}

// Validators 暴露给路由层注册的自定义校验器集合
func Validators() map[string]validator.Func {
	return map[string]validator.Func{
		"address": addressValidator,
	}
}
