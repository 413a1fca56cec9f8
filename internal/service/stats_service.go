package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/persistence"
	"github.com/bloodlink/donor-service/internal/repository"
	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

const activeDonorsCacheKey = "stats:active_donors"

// StatsService serves donor statistics, fronting the store with a short-lived
// Redis cache for the live counter shown on the landing page.
type StatsService struct {
	donors repository.DonorRepository
	cache  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsService constructs the service. A nil cache disables caching.
func NewStatsService(donors repository.DonorRepository, cache *persistence.Redis, ttl time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{
		donors: donors,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// ActiveDonors returns the number of donors currently flagged available.
// Cache failures fall through to the store; only a store failure errors.
func (s *StatsService) ActiveDonors(ctx context.Context) (int64, error) {
	if s.cacheReady() {
		count, err := s.cache.Client.Get(ctx, activeDonorsCacheKey).Int64()
		if err == nil {
			return count, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("active donor cache read failed", zap.Error(err))
		}
	}

	count, err := s.donors.CountAvailable(ctx)
	if err != nil {
		return 0, errorutil.NewStoreUnavailable(err)
	}

	if s.cacheReady() {
		if err := s.cache.Client.Set(ctx, activeDonorsCacheKey, count, s.ttl).Err(); err != nil {
			s.logger.Debug("active donor cache write failed", zap.Error(err))
		}
	}
	return count, nil
}

func (s *StatsService) cacheReady() bool {
	return s.cache != nil && s.cache.Client != nil
}
