package notifier

// INotifier sends a templated notification to one recipient. Delivery is
// best-effort; callers log failures and move on.
type INotifier interface {
	NotifyFromTemplate(to string, subject string, templateName string, data any) error
}
