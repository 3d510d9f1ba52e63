package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"casaflow/internal/messaging"
	"casaflow/internal/models"
	"casaflow/internal/notifier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notification struct {
	To           string
	Subject      string
	TemplateName string
	Data         any
}

type capturingNotifier struct {
	mu   sync.Mutex
	sent []notification
	done chan struct{}
}

func newCapturingNotifier() *capturingNotifier {
	return &capturingNotifier{done: make(chan struct{}, 10)}
}

func (n *capturingNotifier) NotifyFromTemplate(to, subject, templateName string, data any) error {
	n.mu.Lock()
	n.sent = append(n.sent, notification{To: to, Subject: subject, TemplateName: templateName, Data: data})
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *capturingNotifier) waitForOne(t *testing.T) notification {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

var _ notifier.INotifier = (*capturingNotifier)(nil)

func newEventsPipeline(t *testing.T, notify notifier.INotifier) messaging.IPublisher {
	t.Helper()

	channel := messaging.NewMemoryChannel()
	publisher := messaging.NewMemoryPublisher(channel, "notifications")
	subscriber := messaging.NewMemorySubscriber(channel, "notifications")
	t.Cleanup(func() { _ = publisher.Close() })

	params := &EventParams{WebURL: "http://localhost:3000", Notifier: notify}
	go HandleEvents(params, subscriber.Subscribe())

	return publisher
}

func TestWaitlistJoinedNotifiesRecipient(t *testing.T) {
	notify := newCapturingNotifier()
	publisher := newEventsPipeline(t, notify)

	NewWaitlistJoined(publisher, "new@example.com", "Ada Lovelace").Trigger()

	sent := notify.waitForOne(t)
	assert.Equal(t, "new@example.com", sent.To)
	assert.Equal(t, "waitlist_confirmation", sent.TemplateName)

	data, ok := sent.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", data["FullName"])
	assert.Equal(t, "http://localhost:3000", data["WebURL"])
}

func TestMaintenanceStatusChangedNotifiesContact(t *testing.T) {
	notify := newCapturingNotifier()
	publisher := newEventsPipeline(t, notify)

	request := &models.MaintenanceRequest{
		ID:     uuid.New(),
		Title:  "Leaking faucet",
		Status: models.MaintenanceStatusResolved,
	}
	NewMaintenanceStatusChanged(publisher, request, "Maple Court", "tenant@example.com").Trigger()

	sent := notify.waitForOne(t)
	assert.Equal(t, "tenant@example.com", sent.To)
	assert.Equal(t, "maintenance_update", sent.TemplateName)
	assert.Contains(t, sent.Subject, "Leaking faucet")
}

func TestMaintenanceStatusChangedWithoutContactIsDropped(t *testing.T) {
	notify := newCapturingNotifier()
	publisher := newEventsPipeline(t, notify)

	request := &models.MaintenanceRequest{ID: uuid.New(), Title: "Broken window"}
	NewMaintenanceStatusChanged(publisher, request, "Maple Court", "").Trigger()

	select {
	case <-notify.done:
		t.Fatal("no notification expected without a contact email")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestTriggerWithNilPublisherIsNoOp(t *testing.T) {
	NewWaitlistJoined(nil, "new@example.com", "Ada Lovelace").Trigger()
}

func TestEnvelopeRoundTrip(t *testing.T) {
	payload, err := json.Marshal(WaitlistJoinedPayload{Email: "new@example.com", FullName: "Ada"})
	require.NoError(t, err)

	body, err := json.Marshal(Envelope{Type: TypeWaitlistJoined, Payload: payload})
	require.NoError(t, err)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, TypeWaitlistJoined, decoded.Type)

	var decodedPayload WaitlistJoinedPayload
	require.NoError(t, json.Unmarshal(decoded.Payload, &decodedPayload))
	assert.Equal(t, "new@example.com", decodedPayload.Email)
}
