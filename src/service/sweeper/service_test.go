package sweeper

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/dao"
	"github.com/ProjectsTask/LandSwapCore/src/service/metadata"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	service "github.com/ProjectsTask/LandSwapCore/src/service/v1"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

const (
	testAuthority = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testTreasury  = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	testSeller    = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
)

type noopMetadata struct{}

func (noopMetadata) CreateParcelMetadata(ctx context.Context, req metadata.CreateReq) error {
	return nil
}

type testClock struct {
	now int64
}

func (c *testClock) Now() int64 {
	return c.now
}

// newTestEnv 内存数据库 + 可拨动时钟, 预置一个 Active 挂单
func newTestEnv(t *testing.T) (*svc.ServerCtx, *testClock, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&landmodel.Marketplace{},
		&landmodel.LandParcel{},
		&landmodel.Listing{},
		&landmodel.Account{},
		&landmodel.Activity{},
	))

	clock := &testClock{now: 1_700_000_000}
	svcCtx := svc.NewServerCtx(
		svc.WithDB(db),
		svc.WithDao(dao.New(context.Background(), db, nil)),
		svc.WithMetadata(noopMetadata{}),
		svc.WithNow(clock.Now),
	)

	ctx := context.Background()
	_, err = service.InitializeMarketplace(ctx, svcCtx, types.InitializeMarketplaceReq{
		Authority:      testAuthority,
		Treasury:       testTreasury,
		FeeBasisPoints: 250,
	})
	require.NoError(t, err)

	mintResp, err := service.MintLandParcel(ctx, svcCtx, types.MintParcelReq{
		Payer:       testSeller,
		Owner:       testSeller,
		Size:        uint8(landmodel.SizeSmall),
		Rarity:      uint8(landmodel.RarityCommon),
		Name:        "Plot",
		MetadataURI: "https://meta.landswap.io/plot.json",
	})
	require.NoError(t, err)

	_, err = service.ListParcelForSale(ctx, svcCtx, types.ListParcelReq{
		Seller:     testSeller,
		ParcelMint: mintResp.Mint,
		Price:      2_000_000,
		ExpireTime: clock.now + 100,
	})
	require.NoError(t, err)

	return svcCtx, clock, mintResp.Mint
}

func TestSweepOnce(t *testing.T) {
	svcCtx, clock, mint := newTestEnv(t)
	s := New(context.Background(), svcCtx)

	// 未到期: 无事发生
	swept, err := s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, swept)

	clock.now += 101
	swept, err = s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	// 挂单落库 Expired, 地块与计数器同步修复
	listing, err := svcCtx.Dao.GetActiveListingByMint(context.Background(), mint)
	assert.Error(t, err)
	assert.Nil(t, listing)

	parcel, err := svcCtx.Dao.GetParcelByMint(context.Background(), mint)
	require.NoError(t, err)
	assert.False(t, parcel.IsListed)

	m, err := svcCtx.Dao.GetMarketplace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), m.ActiveListings)

	expiredRows, err := svcCtx.Dao.CountListingsByStatus(context.Background(), landmodel.StatusExpired)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expiredRows)

	// 再扫一轮: 幂等, 不重复落库
	swept, err = s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
}

func TestSweepSkipsNoExpiryListings(t *testing.T) {
	svcCtx, clock, mint := newTestEnv(t)

	// 追加一个不过期挂单
	mintResp, err := service.MintLandParcel(context.Background(), svcCtx, types.MintParcelReq{
		Payer:       testSeller,
		Owner:       testSeller,
		Size:        uint8(landmodel.SizeSmall),
		Rarity:      uint8(landmodel.RarityCommon),
		Name:        "Forever Plot",
		MetadataURI: "https://meta.landswap.io/forever.json",
	})
	require.NoError(t, err)
	_, err = service.ListParcelForSale(context.Background(), svcCtx, types.ListParcelReq{
		Seller:     testSeller,
		ParcelMint: mintResp.Mint,
		Price:      3_000_000,
		ExpireTime: landmodel.NoExpiry,
	})
	require.NoError(t, err)

	clock.now += 1_000_000
	s := New(context.Background(), svcCtx)
	swept, err := s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	// 只有带过期时间的那单被清理
	_, err = svcCtx.Dao.GetActiveListingByMint(context.Background(), mint)
	assert.Error(t, err)
	forever, err := svcCtx.Dao.GetActiveListingByMint(context.Background(), mintResp.Mint)
	require.NoError(t, err)
	assert.Equal(t, landmodel.StatusActive, forever.Status)

	m, err := svcCtx.Dao.GetMarketplace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.ActiveListings)
}
