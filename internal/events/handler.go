package events

import (
	"encoding/json"
	"fmt"

	"casaflow/internal/notifier"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

type EventParams struct {
	WebURL   string
	Notifier notifier.INotifier
}

// HandleEvents drains the subscription and turns domain events into
// notifications. Messages are always acked; a notification failure is logged
// and the event dropped rather than redelivered forever.
func HandleEvents(params *EventParams, messages <-chan *message.Message) {
	for msg := range messages {
		var envelope Envelope
		if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
			zap.L().Error("Failed to decode event envelope", zap.Error(err))
			msg.Ack()
			continue
		}

		if err := handleEvent(params, envelope); err != nil {
			zap.L().Error("Failed to handle event",
				zap.String("type", envelope.Type),
				zap.Error(err))
		}
		msg.Ack()
	}
}

func handleEvent(params *EventParams, envelope Envelope) error {
	if params.Notifier == nil {
		return nil
	}

	switch envelope.Type {
	case TypeWaitlistJoined:
		var payload WaitlistJoinedPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode waitlist payload: %w", err)
		}
		return params.Notifier.NotifyFromTemplate(
			payload.Email,
			"You're on the waitlist",
			"waitlist_confirmation",
			map[string]any{
				"FullName": payload.FullName,
				"WebURL":   params.WebURL,
			},
		)
	case TypeMaintenanceStatusChanged:
		var payload MaintenanceStatusChangedPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode maintenance payload: %w", err)
		}
		if payload.ContactEmail == "" {
			return nil
		}
		return params.Notifier.NotifyFromTemplate(
			payload.ContactEmail,
			fmt.Sprintf("Maintenance update: %s", payload.Title),
			"maintenance_update",
			map[string]any{
				"Title":        payload.Title,
				"PropertyName": payload.PropertyName,
				"Status":       string(payload.Status),
				"WebURL":       params.WebURL,
			},
		)
	default:
		zap.L().Warn("Unknown event type", zap.String("type", envelope.Type))
		return nil
	}
}
