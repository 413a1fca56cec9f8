package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/bloodlink/donor-service/internal/config"
	"github.com/bloodlink/donor-service/internal/events"
)

// NotificationService simulates SMS delivery for domain events. No real
// gateway is called; every alert is a structured log line.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDonorRegistered, n.handleDonorRegistered)
	n.dispatcher.Subscribe(events.EventEmergencyRequested, n.handleEmergencyRequested)
	n.dispatcher.Subscribe(events.EventDonorsNotified, n.handleDonorsNotified)
}

func (n *NotificationService) handleDonorRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("DonorRegistered", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleEmergencyRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("EmergencyRequested", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleDonorsNotified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DonorsNotifiedPayload)
	if !ok {
		n.logger.Warn("DonorsNotified event with unexpected payload", zap.Any("payload", event.Payload))
		return nil
	}
	for _, donor := range payload.Donors {
		n.sendSMSStub(ctx, payload.EmergencyID, donor)
	}
	return nil
}

func (n *NotificationService) sendSMSStub(_ context.Context, emergencyID string, donor events.DonorContact) {
	if strings.TrimSpace(n.cfg.SMSSenderID) == "" {
		return
	}
	n.logger.Info("sms alert sent (simulated)",
		zap.String("sender_id", n.cfg.SMSSenderID),
		zap.String("emergency_id", emergencyID),
		zap.Int64("donor_id", donor.DonorID),
		zap.String("phone", donor.Phone),
		zap.String("blood_type", string(donor.BloodType)),
		zap.String("city", donor.City),
	)
}
