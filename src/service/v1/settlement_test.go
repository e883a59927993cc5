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

// 2_000_000 @ 250bps: 卖家 1_950_000, 金库 50_000
func TestPurchaseParcel(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)
	mint := mustMint(t, svcCtx, testSeller)
	listingID := mustList(t, svcCtx, testSeller, mint, 2_000_000, landmodel.NoExpiry)
	mustDeposit(t, svcCtx, testBuyer, 2_000_000)

	resp, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(2_000_000), resp.Price)
	assert.Equal(t, uint64(50_000), resp.FeeAmount)
	assert.Equal(t, uint64(1_950_000), resp.SellerAmount)
	assert.Equal(t, validate.NormalizeAddress(testSeller), resp.Seller)
	assert.Equal(t, validate.NormalizeAddress(testBuyer), resp.Buyer)

	// 资金划转: 买家清零, 卖家与金库分账
	assert.Equal(t, uint64(0), balanceOf(t, svcCtx, testBuyer))
	assert.Equal(t, uint64(1_950_000), balanceOf(t, svcCtx, testSeller))
	assert.Equal(t, uint64(50_000), balanceOf(t, svcCtx, testTreasury))

	// 地块过户并更新成交统计
	detail, err := GetParcelDetail(context.Background(), svcCtx, mint)
	require.NoError(t, err)
	assert.Equal(t, validate.NormalizeAddress(testBuyer), detail.Owner)
	assert.False(t, detail.IsListed)
	assert.Equal(t, uint64(1), detail.TotalTrades)
	assert.Equal(t, uint64(2_000_000), detail.LastSalePrice)

	// 挂单进入 Sold 终态
	listing, err := svcCtx.Dao.GetListingByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, landmodel.StatusSold, listing.Status)

	// 市场计数器: 成交额累加, Active 计数与实际行数一致
	m := marketplaceRow(t, svcCtx)
	assert.Equal(t, uint64(2_000_000), m.TotalVolume)
	assert.Equal(t, uint64(0), m.ActiveListings)
	activeRows, err := svcCtx.Dao.CountListingsByStatus(context.Background(), landmodel.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, int64(m.ActiveListings), activeRows)

	assert.Equal(t, int64(1), countActivities(t, svcCtx, landmodel.ActivitySale))
}

func TestPurchaseParcelZeroFee(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 0)
	mint := mustMint(t, svcCtx, testSeller)
	mustList(t, svcCtx, testSeller, mint, 2_000_000, landmodel.NoExpiry)
	mustDeposit(t, svcCtx, testBuyer, 2_000_000)

	resp, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), resp.FeeAmount)
	assert.Equal(t, uint64(2_000_000), resp.SellerAmount)
	assert.Equal(t, uint64(2_000_000), balanceOf(t, svcCtx, testSeller))

	// 零手续费时不触碰金库账户
	_, err = svcCtx.Dao.GetAccount(context.Background(), testTreasury)
	assert.ErrorIs(t, err, errcode.ErrAccountNotFound)
}

func TestPurchaseParcelInsufficientBalance(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)
	mint := mustMint(t, svcCtx, testSeller)
	listingID := mustList(t, svcCtx, testSeller, mint, 2_000_000, landmodel.NoExpiry)
	mustDeposit(t, svcCtx, testBuyer, 1_999_999)

	_, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.ErrorIs(t, err, errcode.ErrInsufficientBalance)

	// 整体回滚: 余额、挂单、地块、计数器全部不变
	assert.Equal(t, uint64(1_999_999), balanceOf(t, svcCtx, testBuyer))
	assert.Equal(t, uint64(0), balanceOf(t, svcCtx, testSeller))

	listing, err := svcCtx.Dao.GetListingByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, landmodel.StatusActive, listing.Status)

	detail, err := GetParcelDetail(context.Background(), svcCtx, mint)
	require.NoError(t, err)
	assert.Equal(t, validate.NormalizeAddress(testSeller), detail.Owner)
	assert.True(t, detail.IsListed)

	m := marketplaceRow(t, svcCtx)
	assert.Equal(t, uint64(0), m.TotalVolume)
	assert.Equal(t, uint64(1), m.ActiveListings)
}

func TestPurchaseParcelTwice(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)
	mint := mustMint(t, svcCtx, testSeller)
	mustList(t, svcCtx, testSeller, mint, 2_000_000, landmodel.NoExpiry)
	mustDeposit(t, svcCtx, testBuyer, 4_000_000)

	_, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.NoError(t, err)

	// 已成交的挂单不能再次购买
	_, err = PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.ErrorIs(t, err, errcode.ErrListingNotActive)
}

func TestPurchaseParcelExpired(t *testing.T) {
	svcCtx, _, clock := newTestCtx(t)
	mustInit(t, svcCtx, 250)
	mint := mustMint(t, svcCtx, testSeller)
	listingID := mustList(t, svcCtx, testSeller, mint, 2_000_000, clock.now+100)
	mustDeposit(t, svcCtx, testBuyer, 2_000_000)

	// 时钟越过挂单到期时间. 数据库状态仍是 Active,
	// 但购买路径只信时钟
	clock.now += 101

	_, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.ErrorIs(t, err, errcode.ErrListingExpired)

	listing, err := svcCtx.Dao.GetListingByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, landmodel.StatusActive, listing.Status)
	assert.Equal(t, uint64(2_000_000), balanceOf(t, svcCtx, testBuyer))
}

func TestPurchaseParcelAtExpiryBoundary(t *testing.T) {
	svcCtx, _, clock := newTestCtx(t)
	mustInit(t, svcCtx, 250)
	mint := mustMint(t, svcCtx, testSeller)
	mustList(t, svcCtx, testSeller, mint, 2_000_000, clock.now+100)
	mustDeposit(t, svcCtx, testBuyer, 2_000_000)

	// 到期当秒仍可成交
	clock.now += 100

	_, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.NoError(t, err)
}

func TestPurchaseParcelNoListing(t *testing.T) {
	svcCtx, _, _ := newTestCtx(t)
	mustInit(t, svcCtx, 250)
	mint := mustMint(t, svcCtx, testSeller)

	_, err := PurchaseParcel(context.Background(), svcCtx, types.PurchaseParcelReq{
		Buyer:      testBuyer,
		ParcelMint: mint,
	})
	require.ErrorIs(t, err, errcode.ErrListingNotActive)
}
