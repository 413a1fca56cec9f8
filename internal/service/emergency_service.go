package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/domain"
	"github.com/bloodlink/donor-service/internal/events"
	"github.com/bloodlink/donor-service/internal/repository"
	"github.com/bloodlink/donor-service/pkg/util/errorutil"
)

// EmergencyService handles emergency request intake and orchestrates donor
// matching.
type EmergencyService struct {
	requests   repository.EmergencyRepository
	matcher    *MatchingService
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// EmergencyDependencies bundles requirements for the emergency service.
type EmergencyDependencies struct {
	EmergencyRepo repository.EmergencyRepository
	Matcher       *MatchingService
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// EmergencySubmitInput carries the raw intake form values.
type EmergencySubmitInput struct {
	PatientName     string
	ContactPerson   string
	Hospital        string
	HospitalCity    string
	HospitalAddress string
	BloodType       string
	Units           string
	Urgency         string
	Contact         string
	Message         string
}

// EmergencySubmission is the composed intake response.
type EmergencySubmission struct {
	EmergencyID string
	Status      string
	Message     string
	Request     domain.EmergencyRequest
	Match       domain.MatchResult
}

// NewEmergencyService constructs the service.
func NewEmergencyService(deps EmergencyDependencies) *EmergencyService {
	return &EmergencyService{
		requests:   deps.EmergencyRepo,
		matcher:    deps.Matcher,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Submit validates the request, persists it, then runs donor matching. The
// row is committed before matching so the request stays durable even when no
// donor can be found or the donor store is down. All blank required fields
// are reported together.
func (s *EmergencyService) Submit(ctx context.Context, input EmergencySubmitInput) (*EmergencySubmission, error) {
	var missing []string
	appendMissing := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	appendMissing("patientName", input.PatientName)
	appendMissing("contactPerson", input.ContactPerson)
	appendMissing("hospital", input.Hospital)
	appendMissing("hospitalCity", input.HospitalCity)
	appendMissing("bloodType", input.BloodType)
	appendMissing("units", input.Units)
	appendMissing("urgency", input.Urgency)
	appendMissing("contact", input.Contact)
	if len(missing) > 0 {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("please fill all required fields: %s", strings.Join(missing, ", ")),
			map[string]any{"missing_fields": missing},
		)
	}

	units, err := strconv.Atoi(strings.TrimSpace(input.Units))
	if err != nil || units <= 0 {
		return nil, errorutil.NewValidationError(
			"units must be a positive number",
			map[string]any{"field": "units"},
		)
	}

	request := &domain.EmergencyRequest{
		ID:            uuid.NewString(),
		PatientName:   strings.TrimSpace(input.PatientName),
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		Hospital:      strings.TrimSpace(input.Hospital),
		HospitalCity:  strings.TrimSpace(input.HospitalCity),
		BloodType:     domain.BloodType(strings.TrimSpace(input.BloodType)),
		Units:         units,
		Urgency:       domain.UrgencyLevel(strings.TrimSpace(input.Urgency)),
		ContactPhone:  strings.TrimSpace(input.Contact),
	}
	if addr := strings.TrimSpace(input.HospitalAddress); addr != "" {
		request.HospitalAddress = &addr
	}
	if msg := strings.TrimSpace(input.Message); msg != "" {
		request.Message = &msg
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, errorutil.NewStoreUnavailable(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventEmergencyRequested,
		Payload: events.EmergencyRequestedPayload{
			EmergencyID:  request.ID,
			BloodType:    request.BloodType,
			HospitalCity: request.HospitalCity,
			Units:        request.Units,
			Urgency:      request.Urgency,
		},
	})

	match := s.matcher.FindMatches(ctx, string(request.BloodType), request.HospitalCity)

	if len(match.DonorsToContact) > 0 {
		contacts := make([]events.DonorContact, 0, len(match.DonorsToContact))
		for _, donor := range match.DonorsToContact {
			contacts = append(contacts, events.DonorContact{
				DonorID:   donor.ID,
				FullName:  donor.FullName,
				Phone:     donor.Phone,
				BloodType: donor.BloodType,
				City:      donor.City,
			})
		}
		s.publishEvent(ctx, events.Event{
			Type: events.EventDonorsNotified,
			Payload: events.DonorsNotifiedPayload{
				EmergencyID:  request.ID,
				HospitalCity: request.HospitalCity,
				ContactPhone: request.ContactPhone,
				Donors:       contacts,
			},
		})
	}

	return &EmergencySubmission{
		EmergencyID: request.ID,
		Status:      "success",
		Message:     statusMessage(match),
		Request:     *request,
		Match:       match,
	}, nil
}

func statusMessage(match domain.MatchResult) string {
	if len(match.DonorsToContact) == 0 {
		return fmt.Sprintf("Emergency request recorded. No available donors found in %s right now; we will alert you when donors become available.", match.City)
	}
	return fmt.Sprintf("Emergency request submitted. SMS alerts sent to %d of %d available donors in %s.",
		len(match.DonorsToContact), match.AvailableDonors, match.City)
}

func (s *EmergencyService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
