package service

import (
	"context"

	"github.com/ProjectsTask/LandSwapCore/src/dao"
	"github.com/ProjectsTask/LandSwapCore/src/service/svc"
	"github.com/ProjectsTask/LandSwapCore/src/types/v1"
)

// GetActivities 分页查询市场活动流水
func GetActivities(ctx context.Context, svcCtx *svc.ServerCtx, param types.ActivitiesParam) (*types.ActivitiesResp, error) {
	activities, count, err := svcCtx.Dao.QueryActivities(ctx, param)
	if err != nil {
		return nil, err
	}

	result := make([]types.ActivityInfo, 0, len(activities))
	for _, activity := range activities {
		result = append(result, types.ActivityInfo{
			ActivityType: dao.ActivityTypeName(activity.ActivityType),
			ParcelMint:   activity.ParcelMint,
			Maker:        activity.Maker,
			Taker:        activity.Taker,
			Price:        activity.Price,
			FeeAmount:    activity.FeeAmount,
			EventTime:    activity.EventTime,
		})
	}

	return &types.ActivitiesResp{
		Result: result,
		Count:  count,
	}, nil
}
