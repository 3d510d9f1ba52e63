package events

import (
	"encoding/json"

	"casaflow/internal/messaging"
	"casaflow/internal/models"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

const (
	TypeWaitlistJoined           = "waitlist.joined"
	TypeMaintenanceStatusChanged = "maintenance.status_changed"
)

type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type WaitlistJoinedPayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type MaintenanceStatusChangedPayload struct {
	RequestID    string                   `json:"request_id"`
	Title        string                   `json:"title"`
	PropertyName string                   `json:"property_name"`
	Status       models.MaintenanceStatus `json:"status"`
	ContactEmail string                   `json:"contact_email"`
}

// Event is a publish-ready domain event. Trigger is fire-and-forget: a
// publish failure is logged, never surfaced to the request path.
type Event struct {
	publisher messaging.IPublisher
	eventType string
	payload   any
}

func NewWaitlistJoined(publisher messaging.IPublisher, email string, fullName string) Event {
	return Event{
		publisher: publisher,
		eventType: TypeWaitlistJoined,
		payload:   WaitlistJoinedPayload{Email: email, FullName: fullName},
	}
}

func NewMaintenanceStatusChanged(
	publisher messaging.IPublisher,
	request *models.MaintenanceRequest,
	propertyName string,
	contactEmail string,
) Event {
	return Event{
		publisher: publisher,
		eventType: TypeMaintenanceStatusChanged,
		payload: MaintenanceStatusChangedPayload{
			RequestID:    request.ID.String(),
			Title:        request.Title,
			PropertyName: propertyName,
			Status:       request.Status,
			ContactEmail: contactEmail,
		},
	}
}

func (e Event) Trigger() {
	if e.publisher == nil {
		return
	}

	payload, err := json.Marshal(e.payload)
	if err != nil {
		zap.L().Error("Failed to marshal event payload", zap.String("type", e.eventType), zap.Error(err))
		return
	}

	body, err := json.Marshal(Envelope{Type: e.eventType, Payload: payload})
	if err != nil {
		zap.L().Error("Failed to marshal event envelope", zap.String("type", e.eventType), zap.Error(err))
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	if err := e.publisher.Publish(msg); err != nil {
		zap.L().Error("Failed to publish event", zap.String("type", e.eventType), zap.Error(err))
	}
}
