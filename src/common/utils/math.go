package utils

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceDecimals 价格基础单位的展示精度 (1 展示单位 = 10^9 基础单位)
const PriceDecimals = 9

// Min 返回两个整数中的较小值
func Min(x, y int) int {
	if x > y {
		return y
	}
	return x
}

// Max 返回两个 int64 整数中的较大值
func Max(x, y int64) int64 {
	if x < y {
		return y
	}
	return x
}

// SafeAdd 带溢出检查的 uint64 加法
func SafeAdd(x, y uint64) (uint64, bool) {
	if x > math.MaxUint64-y {
		return 0, false
	}
	return x + y, true
}

// SafeSub 带下溢检查的 uint64 减法
func SafeSub(x, y uint64) (uint64, bool) {
	if x < y {
		return 0, false
	}
	return x - y, true
}

// SafeMul 带溢出检查的 uint64 乘法
func SafeMul(x, y uint64) (uint64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z := x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// SplitSalePrice 按基点费率拆分成交价
// feeAmount = floor(price * feeBps / 10000), sellerAmount = price - feeAmount
// 任一步算术失败返回 ok=false, 调用方整体中止操作
func SplitSalePrice(price uint64, feeBps int64, bpsDenominator uint64) (feeAmount, sellerAmount uint64, ok bool) {
	raw, ok := SafeMul(price, uint64(feeBps))
	if !ok {
		return 0, 0, false
	}
	feeAmount = raw / bpsDenominator
	sellerAmount, ok = SafeSub(price, feeAmount)
	if !ok {
		return 0, 0, false
	}
	return feeAmount, sellerAmount, true
}

// ToDisplayPrice 将基础单位价格转换为展示价格
// 例如 2_000_000_000 -> 2
func ToDisplayPrice(price uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(price), 0).Shift(-PriceDecimals)
}
