package activity

import "casaflow/internal/models"

// Action message constants indexed with every audit entry.
const (
	PropertyCreated          = "property created"
	PropertyUpdated          = "property updated"
	PropertyDeleted          = "property deleted"
	TenantCreated            = "tenant created"
	TenantUpdated            = "tenant updated"
	TenantDeleted            = "tenant deleted"
	LeaseCreated             = "lease created"
	LeaseUpdated             = "lease updated"
	LeaseDeleted             = "lease deleted"
	LeaseStatusChanged       = "lease status changed"
	MaintenanceCreated       = "maintenance request created"
	MaintenanceUpdated       = "maintenance request updated"
	MaintenanceDeleted       = "maintenance request deleted"
	MaintenanceStatusChanged = "maintenance request status changed"
	WaitlistJoined           = "waitlist joined"
)

// IActivityLogger is the audit trail behind the admin dashboard.
type IActivityLogger interface {
	Send(message models.Activity) error
	Search(searchCriteria map[string][]string) ([]map[string]any, error)
	CountByDay(searchCriteria map[string][]string, days int) ([]models.TimeSeriesPoint, error)
	Close() error
}
