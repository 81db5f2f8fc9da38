package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"studytrack/api/internal/models"
	"studytrack/api/internal/repository"
	"studytrack/api/internal/stats"
)

const summaryCacheTTL = 5 * time.Minute

// SessionLister is the slice of the persistence layer the stats service
// needs.
type SessionLister interface {
	ListByUser(ctx context.Context, userID string, filter repository.ListFilter) ([]models.StudySession, error)
}

// StatsService computes dashboard aggregates from a user's full session
// history and caches the result per user per calendar day. The cache is
// best-effort: redis errors degrade to recomputation, never to failure.
type StatsService struct {
	sessions SessionLister
	cache    *redis.Client
	log      zerolog.Logger
	now      func() time.Time
}

func NewStatsService(sessions SessionLister, cache *redis.Client, log zerolog.Logger) *StatsService {
	return &StatsService{
		sessions: sessions,
		cache:    cache,
		log:      log,
		now:      time.Now,
	}
}

func (s *StatsService) Summary(ctx context.Context, userID string) (stats.Summary, error) {
	now := s.now()
	key := summaryCacheKey(userID, now)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var summary stats.Summary
			if err := json.Unmarshal(cached, &summary); err == nil {
				return summary, nil
			}
		}
	}

	sessions, err := s.sessions.ListByUser(ctx, userID, repository.ListFilter{})
	if err != nil {
		return stats.Summary{}, err
	}

	summary := stats.Compute(sessions, now)

	if s.cache != nil {
		payload, err := json.Marshal(summary)
		if err == nil {
			if err := s.cache.Set(ctx, key, payload, summaryCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Str("user_id", userID).Msg("summary cache write failed")
			}
		}
	}

	return summary, nil
}

// InvalidateSummary drops the cached summary for the current day, called
// after a new session is logged so the dashboard reflects it immediately.
func (s *StatsService) InvalidateSummary(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	key := summaryCacheKey(userID, s.now())
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("summary cache invalidation failed")
	}
}

func summaryCacheKey(userID string, now time.Time) string {
	return fmt.Sprintf("stats:%s:%s", userID, stats.DayKey(now))
}
