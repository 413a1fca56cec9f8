package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/domain"
	"github.com/bloodlink/donor-service/internal/observability"
	"github.com/bloodlink/donor-service/internal/repository"
)

// MaxDonorsToContact caps the emergency contact list.
const MaxDonorsToContact = 5

// MatchingService selects and ranks donors for emergency requests.
type MatchingService struct {
	donors  repository.DonorRepository
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// NewMatchingService constructs the service.
func NewMatchingService(donors repository.DonorRepository, logger *zap.Logger, metrics *observability.Metrics) *MatchingService {
	return &MatchingService{
		donors:  donors,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// FindMatches retrieves donors for the requested blood type and city, keeps
// the available and eligible ones, and truncates to the contact cap. Empty
// filters mean "any". A store failure degrades to an empty result: the
// emergency flow must never hard-fail on matching, so callers see zero donors
// while the warning log and match counter carry the real cause.
func (s *MatchingService) FindMatches(ctx context.Context, bloodType, city string) domain.MatchResult {
	now := s.now().UTC()
	result := domain.MatchResult{
		BloodType:   bloodType,
		City:        city,
		GeneratedAt: now,
	}

	donors, err := s.donors.List(ctx, repository.DonorFilter{BloodType: bloodType, City: city})
	if err != nil {
		s.logger.Warn("donor lookup failed, degrading to empty match result",
			zap.String("blood_type", bloodType),
			zap.String("city", city),
			zap.Error(err),
		)
		s.metrics.RecordMatchOutcome(bloodType, true)
		return result
	}

	result.MatchingDonors = len(donors)
	for _, donor := range donors {
		if !donor.Available || !Eligible(donor.LastDonation, now) {
			continue
		}
		result.AvailableDonors++
		if len(result.DonorsToContact) < MaxDonorsToContact {
			result.DonorsToContact = append(result.DonorsToContact, donor)
		}
	}

	s.metrics.RecordMatchOutcome(bloodType, false)
	return result
}
