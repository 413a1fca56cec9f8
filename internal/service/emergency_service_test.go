package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/domain"
	"github.com/bloodlink/donor-service/internal/events"
	"github.com/bloodlink/donor-service/internal/repository"
	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

func validEmergencyInput() EmergencySubmitInput {
	return EmergencySubmitInput{
		PatientName:   "John Doe",
		ContactPerson: "Mary Doe",
		Hospital:      "General Hospital",
		HospitalCity:  "Los Angeles",
		BloodType:     "O-",
		Units:         "2",
		Urgency:       "critical",
		Contact:       "5551234567",
	}
}

func newTestEmergencyService(requests repository.EmergencyRepository, donors repository.DonorRepository, dispatcher events.Dispatcher) *EmergencyService {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return NewEmergencyService(EmergencyDependencies{
		EmergencyRepo: requests,
		Matcher:       newTestMatcher(donors, now),
		Dispatcher:    dispatcher,
		Logger:        zap.NewNop(),
	})
}

func TestSubmitSuccess(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sixtyDaysAgo := now.AddDate(0, 0, -60)
	donor := testDonor(1, &sixtyDaysAgo, true)

	requests := &MockEmergencyRepository{
		CreateFunc: func(_ context.Context, request *domain.EmergencyRequest) error {
			request.CreatedAt = now
			return nil
		},
	}
	donors := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return []domain.Donor{donor}, nil
		},
	}
	svc := newTestEmergencyService(requests, donors, nil)

	submission, err := svc.Submit(context.Background(), validEmergencyInput())

	require.NoError(t, err)
	assert.NotEmpty(t, submission.EmergencyID)
	assert.Equal(t, "success", submission.Status)
	assert.Equal(t, 1, submission.Match.MatchingDonors)
	assert.Equal(t, 1, submission.Match.AvailableDonors)
	require.Len(t, submission.Match.DonorsToContact, 1)
	assert.Equal(t, domain.BloodTypeONegative, submission.Request.BloodType)
	assert.Equal(t, 2, submission.Request.Units)
	assert.Contains(t, submission.Message, "SMS alerts sent")
	assert.Equal(t, 1, requests.CreateCalls)
}

func TestSubmitCollectsAllMissingFields(t *testing.T) {
	requests := &MockEmergencyRepository{}
	svc := newTestEmergencyService(requests, &MockDonorRepository{}, nil)

	input := validEmergencyInput()
	input.Contact = ""
	input.Urgency = "  "
	_, err := svc.Submit(context.Background(), input)

	require.Error(t, err)
	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.ElementsMatch(t, []string{"contact", "urgency"}, domainErr.Details["missing_fields"])
	// nothing persisted on validation failure
	assert.Zero(t, requests.CreateCalls)
}

func TestSubmitMissingContactOnly(t *testing.T) {
	requests := &MockEmergencyRepository{}
	svc := newTestEmergencyService(requests, &MockDonorRepository{}, nil)

	input := validEmergencyInput()
	input.Contact = ""
	_, err := svc.Submit(context.Background(), input)

	require.Error(t, err)
	domainErr := errorutil.ToDomainError(err)
	assert.ElementsMatch(t, []string{"contact"}, domainErr.Details["missing_fields"])
	assert.Zero(t, requests.CreateCalls)
}

func TestSubmitRejectsBadUnits(t *testing.T) {
	for _, units := range []string{"zero", "0", "-1"} {
		requests := &MockEmergencyRepository{}
		svc := newTestEmergencyService(requests, &MockDonorRepository{}, nil)

		input := validEmergencyInput()
		input.Units = units
		_, err := svc.Submit(context.Background(), input)

		require.Error(t, err, "units %q", units)
		assert.Equal(t, "VALIDATION_FAILED", errorutil.ToDomainError(err).Code)
		assert.Zero(t, requests.CreateCalls)
	}
}

func TestSubmitPersistsBeforeMatching(t *testing.T) {
	var order []string
	requests := &MockEmergencyRepository{
		CreateFunc: func(context.Context, *domain.EmergencyRequest) error {
			order = append(order, "persist")
			return nil
		},
	}
	donors := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			order = append(order, "match")
			return nil, nil
		},
	}
	svc := newTestEmergencyService(requests, donors, nil)

	_, err := svc.Submit(context.Background(), validEmergencyInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"persist", "match"}, order)
}

func TestSubmitSurvivesDonorStoreFailure(t *testing.T) {
	requests := &MockEmergencyRepository{}
	donors := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestEmergencyService(requests, donors, nil)

	submission, err := svc.Submit(context.Background(), validEmergencyInput())

	// the request is durable even though matching degraded to empty
	require.NoError(t, err)
	assert.Equal(t, 1, requests.CreateCalls)
	assert.Zero(t, submission.Match.MatchingDonors)
	assert.Empty(t, submission.Match.DonorsToContact)
	assert.Contains(t, submission.Message, "No available donors")
}

func TestSubmitFailsWhenRequestStoreDown(t *testing.T) {
	requests := &MockEmergencyRepository{
		CreateFunc: func(context.Context, *domain.EmergencyRequest) error {
			return errors.New("connection refused")
		},
	}
	donors := &MockDonorRepository{}
	svc := newTestEmergencyService(requests, donors, nil)

	_, err := svc.Submit(context.Background(), validEmergencyInput())
	require.Error(t, err)
	assert.Equal(t, "STORE_UNAVAILABLE", errorutil.ToDomainError(err).Code)
	// matching must not run when the request could not be stored
	assert.Zero(t, donors.ListCalls)
}

func TestSubmitPublishesNotificationEvents(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sixtyDaysAgo := now.AddDate(0, 0, -60)
	donor := testDonor(1, &sixtyDaysAgo, true)

	dispatcher := events.NewInMemoryDispatcher()
	var notified *events.DonorsNotifiedPayload
	dispatcher.Subscribe(events.EventDonorsNotified, func(_ context.Context, event events.Event) error {
		payload := event.Payload.(events.DonorsNotifiedPayload)
		notified = &payload
		return nil
	})

	requests := &MockEmergencyRepository{}
	donors := &MockDonorRepository{
		ListFunc: func(context.Context, repository.DonorFilter) ([]domain.Donor, error) {
			return []domain.Donor{donor}, nil
		},
	}
	svc := newTestEmergencyService(requests, donors, dispatcher)

	submission, err := svc.Submit(context.Background(), validEmergencyInput())
	require.NoError(t, err)
	require.NotNil(t, notified)
	assert.Equal(t, submission.EmergencyID, notified.EmergencyID)
	require.Len(t, notified.Donors, 1)
	assert.Equal(t, donor.Phone, notified.Donors[0].Phone)
}

func TestSubmitOptionalFieldsStoredWhenPresent(t *testing.T) {
	var stored *domain.EmergencyRequest
	requests := &MockEmergencyRepository{
		CreateFunc: func(_ context.Context, request *domain.EmergencyRequest) error {
			stored = request
			return nil
		},
	}
	svc := newTestEmergencyService(requests, &MockDonorRepository{}, nil)

	input := validEmergencyInput()
	input.HospitalAddress = "100 Medical Plaza"
	input.Message = "urgent surgery tomorrow"
	_, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.HospitalAddress)
	assert.Equal(t, "100 Medical Plaza", *stored.HospitalAddress)
	require.NotNil(t, stored.Message)
	assert.Equal(t, "urgent surgery tomorrow", *stored.Message)

	// and omitted when blank
	stored = nil
	input = validEmergencyInput()
	_, err = svc.Submit(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.HospitalAddress)
	assert.Nil(t, stored.Message)
}
