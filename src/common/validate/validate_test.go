package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
)

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.True(t, ValidAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	assert.False(t, ValidAddress("5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.False(t, ValidAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe"))
	assert.False(t, ValidAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAedd"))
	assert.False(t, ValidAddress(""))
	assert.False(t, ValidAddress("0xZZZeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
}

func TestSameIdentity(t *testing.T) {
	// 同一地址不同大小写视为同一身份
	assert.True(t, SameIdentity(
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	))
	assert.False(t, SameIdentity(
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	))
}

func TestNormalizeAddress(t *testing.T) {
	// 统一规范化为 EIP-55 校验和格式
	assert.Equal(t,
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		NormalizeAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
	)
}

func TestCheckCoordinates(t *testing.T) {
	assert.NoError(t, CheckCoordinates(0, 0))
	assert.NoError(t, CheckCoordinates(landmodel.MaxCoordinate, landmodel.MinCoordinate))
	assert.ErrorIs(t, CheckCoordinates(landmodel.MaxCoordinate+1, 0), errcode.ErrInvalidCoordinates)
	assert.ErrorIs(t, CheckCoordinates(0, landmodel.MinCoordinate-1), errcode.ErrInvalidCoordinates)
}

func TestCheckParcelName(t *testing.T) {
	assert.NoError(t, CheckParcelName(""))
	assert.NoError(t, CheckParcelName(strings.Repeat("a", landmodel.MaxNameLen)))
	assert.ErrorIs(t, CheckParcelName(strings.Repeat("a", landmodel.MaxNameLen+1)), errcode.ErrNameTooLong)
}

func TestCheckMetadataURI(t *testing.T) {
	assert.NoError(t, CheckMetadataURI(strings.Repeat("u", landmodel.MaxMetadataURILen)))
	assert.ErrorIs(t, CheckMetadataURI(strings.Repeat("u", landmodel.MaxMetadataURILen+1)), errcode.ErrUriTooLong)
}

func TestCheckFeeBps(t *testing.T) {
	assert.NoError(t, CheckFeeBps(0))
	assert.NoError(t, CheckFeeBps(landmodel.MaxFeeBps))
	assert.ErrorIs(t, CheckFeeBps(landmodel.MaxFeeBps+1), errcode.ErrFeeTooHigh)
	assert.ErrorIs(t, CheckFeeBps(-1), errcode.ErrFeeTooHigh)
}

func TestCheckListPrice(t *testing.T) {
	assert.NoError(t, CheckListPrice(landmodel.MinListPrice))
	assert.ErrorIs(t, CheckListPrice(landmodel.MinListPrice-1), errcode.ErrPriceTooLow)
}

func TestCheckExpiry(t *testing.T) {
	now := int64(1_700_000_000)

	// 0 表示不过期
	assert.NoError(t, CheckExpiry(now, landmodel.NoExpiry))
	assert.NoError(t, CheckExpiry(now, now+1))
	assert.NoError(t, CheckExpiry(now, now+landmodel.MaxListingDuration))

	assert.ErrorIs(t, CheckExpiry(now, now), errcode.ErrInvalidExpiryTime)
	assert.ErrorIs(t, CheckExpiry(now, now-1), errcode.ErrInvalidExpiryTime)
	assert.ErrorIs(t, CheckExpiry(now, now+landmodel.MaxListingDuration+1), errcode.ErrExpiryTooFar)
}

func TestCheckTreasury(t *testing.T) {
	assert.NoError(t, CheckTreasury("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.ErrorIs(t, CheckTreasury("0x0000000000000000000000000000000000000000"), errcode.ErrInvalidTreasury)
	assert.ErrorIs(t, CheckTreasury("not-an-address"), errcode.ErrInvalidTreasury)
}
