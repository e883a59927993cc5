package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"

	"github.com/ProjectsTask/LandSwapCore/src/dao"
	"github.com/ProjectsTask/LandSwapCore/src/service/metadata"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// 测试身份
const (
	testAuthority = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testTreasury  = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	testSeller    = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
	testBuyer     = "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"

	testStartTime = int64(1_700_000_000)
)

// fakeMetadata 可注入失败的元数据服务替身
type fakeMetadata struct {
	err   error
	calls int
}

func (f *fakeMetadata) CreateParcelMetadata(ctx context.Context, req metadata.CreateReq) error {
	f.calls++
	return f.err
}

// testClock 可拨动的环境时钟
type testClock struct {
	now int64
}

func (c *testClock) Now() int64 {
	return c.now
}

// newTestCtx 构建内存数据库上的服务上下文
// Redis 留空 (事件发布自动跳过), 元数据服务与时钟均可被测试控制
func newTestCtx(t *testing.T) (*svc.ServerCtx, *fakeMetadata, *testClock) {
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

	meta := &fakeMetadata{}
	clock := &testClock{now: testStartTime}
	d := dao.New(context.Background(), db, nil)

	svcCtx := svc.NewServerCtx(
		svc.WithDB(db),
		svc.WithDao(d),
		svc.WithMetadata(meta),
		svc.WithNow(clock.Now),
	)
	return svcCtx, meta, clock
}

// mustInit 以给定费率创建市场单例
func mustInit(t *testing.T, svcCtx *svc.ServerCtx, feeBps int64) {
	t.Helper()
	_, err := InitializeMarketplace(context.Background(), svcCtx, types.InitializeMarketplaceReq{
		Authority:      testAuthority,
		Treasury:       testTreasury,
		FeeBasisPoints: feeBps,
	})
	require.NoError(t, err)
}

// mustMint 为指定持有人铸造一个地块, 返回 mint 标识
func mustMint(t *testing.T, svcCtx *svc.ServerCtx, owner string) string {
	t.Helper()
	resp, err := MintLandParcel(context.Background(), svcCtx, types.MintParcelReq{
		Payer:       owner,
		Owner:       owner,
		CoordinateX: 12,
		CoordinateY: -34,
		Size:        uint8(landmodel.SizeMedium),
		Rarity:      uint8(landmodel.RarityRare),
		Name:        "Genesis Plaza",
		MetadataURI: "https://meta.landswap.io/genesis-plaza.json",
	})
	require.NoError(t, err)
	return resp.Mint
}

// mustList 为地块创建 Active 挂单, 返回挂单 id
func mustList(t *testing.T, svcCtx *svc.ServerCtx, seller, mint string, price uint64, expireTime int64) int64 {
	t.Helper()
	resp, err := ListParcelForSale(context.Background(), svcCtx, types.ListParcelReq{
		Seller:     seller,
		ParcelMint: mint,
		Price:      price,
		ExpireTime: expireTime,
	})
	require.NoError(t, err)
	return resp.ListingID
}

// mustDeposit 为账户充值
func mustDeposit(t *testing.T, svcCtx *svc.ServerCtx, address string, amount uint64) {
	t.Helper()
	err := svcCtx.DB.Transaction(func(tx *gorm.DB) error {
		return svcCtx.Dao.Deposit(tx, address, amount)
	})
	require.NoError(t, err)
}

// balanceOf 读取账户余额, 账户不存在视为 0
func balanceOf(t *testing.T, svcCtx *svc.ServerCtx, address string) uint64 {
	t.Helper()
	account, err := svcCtx.Dao.GetAccount(context.Background(), address)
	if err != nil {
		return 0
	}
	return account.Balance
}

// marketplaceRow 直接读取市场单例行
func marketplaceRow(t *testing.T, svcCtx *svc.ServerCtx) *landmodel.Marketplace {
	t.Helper()
	m, err := svcCtx.Dao.GetMarketplace(context.Background())
	require.NoError(t, err)
	return m
}

// countActivities 统计指定类型的活动流水条数
func countActivities(t *testing.T, svcCtx *svc.ServerCtx, activityType int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svcCtx.DB.Model(&landmodel.Activity{}).
		Where("activity_type = ?", activityType).Count(&count).Error)
	return count
}
