package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

func TestActiveDonorsFallsBackToStoreWithoutCache(t *testing.T) {
	repo := &MockDonorRepository{
		CountAvailableFunc: func(context.Context) (int64, error) {
			return 57, nil
		},
	}
	svc := NewStatsService(repo, nil, time.Minute, zap.NewNop())

	count, err := svc.ActiveDonors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(57), count)
}

func TestActiveDonorsStoreFailure(t *testing.T) {
	repo := &MockDonorRepository{
		CountAvailableFunc: func(context.Context) (int64, error) {
			return 0, assert.AnError
		},
	}
	svc := NewStatsService(repo, nil, time.Minute, zap.NewNop())

	_, err := svc.ActiveDonors(context.Background())
	require.Error(t, err)
	assert.Equal(t, "STORE_UNAVAILABLE", errorutil.ToDomainError(err).Code)
}
