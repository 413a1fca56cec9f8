package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/domain"
	"github.com/bloodlink/donor-service/internal/observability"
	"github.com/bloodlink/donor-service/internal/repository"
)

func newTestMatcher(repo repository.DonorRepository, now time.Time) *MatchingService {
	m := NewMatchingService(repo, zap.NewNop(), observability.NewMetrics())
	m.now = func() time.Time { return now }
	return m
}

func testDonor(id int64, lastDonation *time.Time, available bool) domain.Donor {
	return domain.Donor{
		ID:           id,
		FullName:     fmt.Sprintf("Donor %d", id),
		Phone:        fmt.Sprintf("555000%04d", id),
		BloodType:    domain.BloodTypeONegative,
		City:         "Los Angeles",
		LastDonation: lastDonation,
		Available:    available,
	}
}

func TestFindMatchesFiltersAndCaps(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	eligible := now.AddDate(0, 0, -60)
	recent := now.AddDate(0, 0, -10)

	donors := make([]domain.Donor, 0, 10)
	for i := int64(1); i <= 8; i++ {
		donors = append(donors, testDonor(i, &eligible, true))
	}
	// one recent donor and one unavailable donor, both retrieved but filtered
	donors = append(donors, testDonor(9, &recent, true), testDonor(10, &eligible, false))

	var gotFilter repository.DonorFilter
	repo := &MockDonorRepository{
		ListFunc: func(_ context.Context, filter repository.DonorFilter) ([]domain.Donor, error) {
			gotFilter = filter
			return donors, nil
		},
	}

	result := newTestMatcher(repo, now).FindMatches(context.Background(), "O-", "Los Angeles")

	assert.Equal(t, repository.DonorFilter{BloodType: "O-", City: "Los Angeles"}, gotFilter)
	assert.Equal(t, 10, result.MatchingDonors)
	assert.Equal(t, 8, result.AvailableDonors)
	require.Len(t, result.DonorsToContact, MaxDonorsToContact)
	// contact list preserves the repository ordering
	for i, donor := range result.DonorsToContact {
		assert.Equal(t, int64(i+1), donor.ID)
	}
	assert.LessOrEqual(t, result.AvailableDonors, result.MatchingDonors)
}

func TestFindMatchesRecentDonorCountedButNotContacted(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sixtyDaysAgo := now.AddDate(0, 0, -60)
	tenDaysAgo := now.AddDate(0, 0, -10)

	eligibleDonor := testDonor(1, &sixtyDaysAgo, true)
	recentDonor := testDonor(2, &tenDaysAgo, true)

	repo := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return []domain.Donor{eligibleDonor, recentDonor}, nil
		},
	}

	result := newTestMatcher(repo, now).FindMatches(context.Background(), "O-", "Los Angeles")

	assert.Equal(t, 2, result.MatchingDonors)
	assert.Equal(t, 1, result.AvailableDonors)
	require.Len(t, result.DonorsToContact, 1)
	assert.Equal(t, int64(1), result.DonorsToContact[0].ID)
}

func TestFindMatchesNeverDonatedIsEligible(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	donor := testDonor(1, nil, true)

	repo := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return []domain.Donor{donor}, nil
		},
	}

	result := newTestMatcher(repo, now).FindMatches(context.Background(), "O-", "")
	assert.Equal(t, 1, result.AvailableDonors)
	assert.Len(t, result.DonorsToContact, 1)
}

func TestFindMatchesStoreFailureDegradesToEmpty(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	repo := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return nil, errors.New("connection refused")
		},
	}

	result := newTestMatcher(repo, now).FindMatches(context.Background(), "A+", "Chicago")

	assert.Equal(t, "A+", result.BloodType)
	assert.Equal(t, "Chicago", result.City)
	assert.Zero(t, result.MatchingDonors)
	assert.Zero(t, result.AvailableDonors)
	assert.Empty(t, result.DonorsToContact)
	assert.Equal(t, now.UTC(), result.GeneratedAt)
}

func TestFindMatchesEmptyStore(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	repo := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return nil, nil
		},
	}

	result := newTestMatcher(repo, now).FindMatches(context.Background(), "", "")
	assert.Zero(t, result.MatchingDonors)
	assert.Empty(t, result.DonorsToContact)
}
