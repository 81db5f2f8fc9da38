package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs the midnight rollover: cached dashboard summaries are
// keyed by calendar day, so at day boundary the previous day's entries are
// swept out of redis instead of waiting for their TTL.
type Scheduler struct {
	cron  *cron.Cron
	cache *redis.Client
	log   zerolog.Logger
}

func NewScheduler(cache *redis.Client, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		cache: cache,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if s.cache == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 0 * * *", s.flushSummaryCache); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits up to five seconds for a running flush to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) flushSummaryCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := s.cache.Scan(ctx, cursor, "stats:*", 100).Result()
		if err != nil {
			s.log.Error().Err(err).Msg("summary cache scan failed")
			return
		}
		if len(keys) > 0 {
			if err := s.cache.Del(ctx, keys...).Err(); err != nil {
				s.log.Error().Err(err).Msg("summary cache delete failed")
				return
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	s.log.Info().Int("deleted", deleted).Msg("summary cache flushed at day rollover")
}
