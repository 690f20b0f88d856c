// File: services/schedule/cache.go
package scheduleService

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotwise/utils"
)

const dayViewKeyPrefix = "schedule:day"

func dayViewKey(providerID, date string) string {
	return fmt.Sprintf("%s:%s:%s", dayViewKeyPrefix, providerID, date)
}

// cachedDayView returns a cached resolved day, if present. Cache
// failures are treated as misses; the resolver is cheap enough to rerun.
func (s *DefaultScheduleService) cachedDayView(ctx context.Context, providerID, date string) (*DayView, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, dayViewKey(providerID, date)).Result()
	if err != nil {
		return nil, false
	}
	var view DayView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, false
	}
	return &view, true
}

func (s *DefaultScheduleService) cacheDayView(ctx context.Context, providerID, date string, view *DayView) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	ttl := s.DayCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := s.Cache.Set(ctx, dayViewKey(providerID, date), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache day view", zap.Error(err))
	}
}

// invalidateDay drops one cached date after an override edit.
func (s *DefaultScheduleService) invalidateDay(ctx context.Context, providerID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, dayViewKey(providerID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate day cache", zap.Error(err))
	}
}

// invalidateProviderDays drops every cached date for a provider after a
// weekly edit, since any date may resolve differently now.
func (s *DefaultScheduleService) invalidateProviderDays(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("%s:%s:*", dayViewKeyPrefix, providerID)
	iter := s.Cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate day cache", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("day cache scan failed", zap.Error(err))
	}
}
