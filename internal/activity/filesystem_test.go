package activity

import (
	"testing"

	"casaflow/internal/models"
)

func newTestFilesystemClient(t *testing.T) *FilesystemClient {
	t.Helper()
	dir := t.TempDir() + "/index"
	config := models.ActivityConfiguration{
		Type: "filesystem",
		Filesystem: &models.FilesystemActivityConfiguration{
			Directory: dir,
		},
	}
	client := NewFilesystemClient(config)
	t.Cleanup(func() { _ = client.Close() })
	return client.(*FilesystemClient)
}

func sendTestActivity(t *testing.T, client *FilesystemClient, action, objectType, userID, propertyID, message string) {
	t.Helper()
	err := client.Send(models.Activity{
		Message: message,
		Filter: map[string]string{
			"action":      action,
			"object_type": objectType,
			"user_id":     userID,
			"property_id": propertyID,
		},
		Object: map[string]any{"name": "Maple Court"},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
}

func TestFilesystemSendAndSearch(t *testing.T) {
	client := newTestFilesystemClient(t)

	sendTestActivity(t, client, PropertyCreated, "property", "user-1", "prop-1", "property created")

	results, err := client.Search(map[string][]string{
		"action": {PropertyCreated},
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r["action"] != PropertyCreated {
		t.Errorf("expected action=%q, got %v", PropertyCreated, r["action"])
	}
	if r["object_type"] != "property" {
		t.Errorf("expected object_type=property, got %v", r["object_type"])
	}
	if r["user_id"] != "user-1" {
		t.Errorf("expected user_id=user-1, got %v", r["user_id"])
	}
	if r["property_id"] != "prop-1" {
		t.Errorf("expected property_id=prop-1, got %v", r["property_id"])
	}

	obj, ok := r["object"].(map[string]any)
	if !ok {
		t.Fatal("object should be a map")
	}
	if obj["name"] != "Maple Court" {
		t.Errorf("expected object name 'Maple Court', got %v", obj["name"])
	}
}

func TestFilesystemSearchFiltersCombine(t *testing.T) {
	client := newTestFilesystemClient(t)

	sendTestActivity(t, client, PropertyCreated, "property", "user-1", "prop-1", "property created")
	sendTestActivity(t, client, PropertyDeleted, "property", "user-1", "prop-1", "property deleted")
	sendTestActivity(t, client, TenantCreated, "tenant", "user-2", "", "tenant created")

	results, err := client.Search(map[string][]string{
		"user_id":     {"user-1"},
		"object_type": {"property"},
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	results, err = client.Search(map[string][]string{
		"action": {PropertyCreated, TenantCreated},
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results for value disjunction, got %d", len(results))
	}
}

func TestFilesystemSearchNoCriteriaReturnsEverything(t *testing.T) {
	client := newTestFilesystemClient(t)

	sendTestActivity(t, client, PropertyCreated, "property", "user-1", "prop-1", "property created")
	sendTestActivity(t, client, TenantCreated, "tenant", "user-2", "", "tenant created")

	results, err := client.Search(map[string][]string{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestFilesystemCountByDay(t *testing.T) {
	client := newTestFilesystemClient(t)

	sendTestActivity(t, client, PropertyCreated, "property", "user-1", "prop-1", "property created")
	sendTestActivity(t, client, PropertyUpdated, "property", "user-1", "prop-1", "property updated")

	points, err := client.CountByDay(map[string][]string{"object_type": {"property"}}, 7)
	if err != nil {
		t.Fatalf("CountByDay failed: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	var total int64
	for _, point := range points {
		total += point.Count
	}
	if total != 2 {
		t.Errorf("expected 2 counted activities, got %d", total)
	}

	today := points[len(points)-1]
	if today.Count != 2 {
		t.Errorf("expected both activities counted today, got %d", today.Count)
	}
}
