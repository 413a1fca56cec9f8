package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/domain"
	"github.com/bloodlink/donor-service/internal/events"
	"github.com/bloodlink/donor-service/internal/repository"
	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

// DonorService coordinates donor registration and lookup.
type DonorService struct {
	donors     repository.DonorRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DonorDependencies bundles requirements for the donor service.
type DonorDependencies struct {
	DonorRepo  repository.DonorRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// DonorRegisterInput describes the registration payload. LastDonation is an
// optional 2006-01-02 date.
type DonorRegisterInput struct {
	FullName     string
	Email        string
	Phone        string
	Age          int
	BloodType    string
	Gender       string
	Address      string
	City         string
	State        string
	Pincode      string
	LastDonation string
	Available    *bool
}

// NewDonorService constructs the service.
func NewDonorService(deps DonorDependencies) *DonorService {
	return &DonorService{
		donors:     deps.DonorRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Register validates the input and inserts the donor in a single atomic
// statement. All blank required fields are reported together so the caller
// can correct the form in one round trip. Uniqueness of email and phone is
// decided by the database constraints, not a prior read.
func (s *DonorService) Register(ctx context.Context, input DonorRegisterInput) (*domain.Donor, error) {
	var missing []string
	appendMissing := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	appendMissing("fullName", input.FullName)
	appendMissing("email", input.Email)
	appendMissing("phone", input.Phone)
	if input.Age == 0 {
		missing = append(missing, "age")
	}
	appendMissing("bloodType", input.BloodType)
	appendMissing("gender", input.Gender)
	appendMissing("address", input.Address)
	appendMissing("city", input.City)
	appendMissing("state", input.State)
	appendMissing("pincode", input.Pincode)
	if len(missing) > 0 {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("please fill all required fields: %s", strings.Join(missing, ", ")),
			map[string]any{"missing_fields": missing},
		)
	}

	if input.Age < domain.MinDonorAge || input.Age > domain.MaxDonorAge {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("age must be between %d and %d years", domain.MinDonorAge, domain.MaxDonorAge),
			map[string]any{"field": "age"},
		)
	}

	bloodType := domain.BloodType(strings.TrimSpace(input.BloodType))
	if !bloodType.Valid() {
		return nil, errorutil.NewValidationError(
			"unrecognized blood type",
			map[string]any{"field": "bloodType"},
		)
	}

	lastDonation, err := optionalDonationDate(input.LastDonation)
	if err != nil {
		return nil, errorutil.NewValidationError(
			"last donation date must be a valid YYYY-MM-DD date",
			map[string]any{"field": "lastDonation"},
		)
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	donor := &domain.Donor{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:        strings.TrimSpace(input.Phone),
		Age:          input.Age,
		BloodType:    bloodType,
		Gender:       strings.TrimSpace(input.Gender),
		Address:      strings.TrimSpace(input.Address),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		Pincode:      strings.TrimSpace(input.Pincode),
		LastDonation: lastDonation,
		Available:    available,
	}

	if err := s.donors.Create(ctx, donor); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, errorutil.NewDuplicateDonor("email")
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, errorutil.NewDuplicateDonor("phone")
		case errors.Is(err, repository.ErrDuplicateDonor):
			return nil, errorutil.NewDuplicateDonor("email or phone")
		}
		return nil, errorutil.NewStoreUnavailable(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventDonorRegistered,
		Payload: events.DonorRegisteredPayload{
			DonorID:   donor.ID,
			BloodType: donor.BloodType,
			City:      donor.City,
		},
	})

	return donor, nil
}

// List returns donors filtered by optional blood type and city substring,
// most recently registered first.
func (s *DonorService) List(ctx context.Context, bloodType, city string) ([]domain.Donor, error) {
	donors, err := s.donors.List(ctx, repository.DonorFilter{BloodType: bloodType, City: city})
	if err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}
	if donors == nil {
		donors = []domain.Donor{}
	}
	return donors, nil
}

func (s *DonorService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func optionalDonationDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") || raw == "0000-00-00" {
		return nil, nil
	}
	parsed, err := parseDonationDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
