package core

import (
	"casaflow/internal/models"
	"casaflow/internal/notifier"
)

func NewNotifier(config models.NotifierConfiguration) notifier.INotifier {
	switch config.Type {
	case "smtp":
		return notifier.NewSMTPNotifier(*config.SMTP)
	case "filesystem":
		return notifier.NewFilesystemNotifier(*config.Filesystem)
	default:
		return nil
	}
}
