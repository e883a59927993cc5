package dao

import (
	"context"

	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// GetMarketplaceStats 聚合市场统计视图
// 读多写少, 结果在进程内缓存 30s, 写操作不经过这里所以无需失效通知
func (d *Dao) GetMarketplaceStats(ctx context.Context) (*types.MarketplaceStats, error) {
	if cached, ok := d.cache.Get(marketplaceStatsKey); ok {
		if stats, ok := cached.(*types.MarketplaceStats); ok {
			return stats, nil
		}
	}

	marketplace, err := d.GetMarketplace(ctx)
	if err != nil {
		return nil, err
	}

	floor, err := d.FloorPrice(ctx)
	if err != nil {
		return nil, err
	}

	stats := &types.MarketplaceStats{
		FeeBasisPoints:     marketplace.FeeBasisPoints,
		ActiveListings:     marketplace.ActiveListings,
		TotalParcelsMinted: marketplace.TotalParcelsMinted,
		TotalVolume:        marketplace.TotalVolume,
		TotalVolumeDisplay: utils.ToDisplayPrice(marketplace.TotalVolume),
		FloorPrice:         floor,
	}
	d.cache.SetDefault(marketplaceStatsKey, stats)
	return stats, nil
}
