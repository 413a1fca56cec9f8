package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventDonorRegistered, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventDonorRegistered, ID: "1"})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "1", received[0].ID)

	// unrelated event types are not delivered
	err = d.Publish(context.Background(), Event{Type: EventEmergencyRequested, ID: "2"})
	require.NoError(t, err)
	assert.Len(t, received, 1)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventDonorsNotified, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventDonorsNotified, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventDonorsNotified})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}
