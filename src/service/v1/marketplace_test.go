package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

func TestInitializeMarketplace(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)

	info, err := InitializeMarketplace(context.Background(), svcCtx, types.InitializeMarketplaceReq{
		Authority:      testAuthority,
		Treasury:       testTreasury,
		FeeBasisPoints: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, validate.NormalizeAddress(testAuthority), info.Authority)
	assert.Equal(t, validate.NormalizeAddress(testTreasury), info.Treasury)
	assert.Equal(t, int64(250), info.FeeBasisPoints)
	// 计数器全部从零开始
	assert.Equal(t, uint64(0), info.TotalVolume)
	assert.Equal(t, uint64(0), info.ActiveListings)
	assert.Equal(t, uint64(0), info.TotalParcelsMinted)

	// 同事务写入创建流水
	assert.Equal(t, int64(1), countActivities(t, svcCtx, landmodel.ActivityInitialized))
}

func TestInitializeMarketplaceTwice(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)

	_, err := InitializeMarketplace(context.Background(), svcCtx, types.InitializeMarketplaceReq{
		Authority:      testAuthority,
		Treasury:       testTreasury,
		FeeBasisPoints: 100,
	})
	require.ErrorIs(t, err, errcode.ErrMarketplaceInitialized)

	// 原单例不受影响
	m := marketplaceRow(t, svcCtx)
	assert.Equal(t, int64(250), m.FeeBasisPoints)
}

func TestInitializeMarketplaceValidation(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)

	_, err := InitializeMarketplace(context.Background(), svcCtx, types.InitializeMarketplaceReq{
		Authority:      testAuthority,
		Treasury:       testTreasury,
		FeeBasisPoints: landmodel.MaxFeeBps + 1,
	})
	require.ErrorIs(t, err, errcode.ErrFeeTooHigh)

	_, err = InitializeMarketplace(context.Background(), svcCtx, types.InitializeMarketplaceReq{
		Authority:      testAuthority,
		Treasury:       "0x0000000000000000000000000000000000000000",
		FeeBasisPoints: 250,
	})
	require.ErrorIs(t, err, errcode.ErrInvalidTreasury)

	// 校验失败不产生任何写入
	_, err = svcCtx.Dao.GetMarketplace(context.Background())
	assert.ErrorIs(t, err, errcode.ErrMarketplaceUninitialized)
}

func TestUpdateMarketplaceFee(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)

	// 边界值 0 与 1000 都合法
	info, err := UpdateMarketplaceFee(context.Background(), svcCtx, types.UpdateMarketplaceFeeReq{
		Authority:         testAuthority,
		NewFeeBasisPoints: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.FeeBasisPoints)

	info, err = UpdateMarketplaceFee(context.Background(), svcCtx, types.UpdateMarketplaceFeeReq{
		Authority:         testAuthority,
		NewFeeBasisPoints: landmodel.MaxFeeBps,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(landmodel.MaxFeeBps), info.FeeBasisPoints)

	assert.Equal(t, int64(2), countActivities(t, svcCtx, landmodel.ActivityFeeUpdate))
}

func TestUpdateMarketplaceFeeNotAuthority(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)

	_, err := UpdateMarketplaceFee(context.Background(), svcCtx, types.UpdateMarketplaceFeeReq{
		Authority:         testBuyer,
		NewFeeBasisPoints: 100,
	})
	require.ErrorIs(t, err, errcode.ErrNotMarketplaceAuthority)

	// 费率保持原值
	m := marketplaceRow(t, svcCtx)
	assert.Equal(t, int64(250), m.FeeBasisPoints)
	assert.Equal(t, int64(0), countActivities(t, svcCtx, landmodel.ActivityFeeUpdate))
}

func TestUpdateMarketplaceFeeTooHigh(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)

	_, err := UpdateMarketplaceFee(context.Background(), svcCtx, types.UpdateMarketplaceFeeReq{
		Authority:         testAuthority,
		NewFeeBasisPoints: landmodel.MaxFeeBps + 1,
	})
	require.ErrorIs(t, err, errcode.ErrFeeTooHigh)
}

func TestUpdateMarketplaceFeeUninitialized(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)

	_, err := UpdateMarketplaceFee(context.Background(), svcCtx, types.UpdateMarketplaceFeeReq{
		Authority:         testAuthority,
		NewFeeBasisPoints: 100,
	})
	require.ErrorIs(t, err, errcode.ErrMarketplaceUninitialized)
}

func TestGetMarketplaceInfo(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)

	_, err := GetMarketplaceInfo(context.Background(), svcCtx)
	require.ErrorIs(t, err, errcode.ErrMarketplaceUninitialized)

	mustInit(t, svcCtx, 250)
	info, err := GetMarketplaceInfo(context.Background(), svcCtx)
	require.NoError(t, err)
	assert.Equal(t, validate.NormalizeAddress(testAuthority), info.Authority)
}
