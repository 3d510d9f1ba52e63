package notifier

import (
	"crypto/tls"
	"fmt"

	"casaflow/internal/models"

	"github.com/wneessen/go-mail"
)

type SMTPNotifier struct {
	config models.SMTPNotifierConfiguration
}

func NewSMTPNotifier(config models.SMTPNotifierConfiguration) *SMTPNotifier {
	return &SMTPNotifier{config: config}
}

func (s *SMTPNotifier) NotifyFromTemplate(
	to string,
	subject string,
	templateName string,
	data any,
) error {
	body, err := renderTemplate(templateName, data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err = msg.From(s.config.FromAddress); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err = msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.config.Port),
	}
	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}
	if s.config.EnableTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.config.SkipVerifyTLS {
		opts = append(opts, mail.WithTLSConfig(&tls.Config{InsecureSkipVerify: true})) //nolint:gosec // explicit opt-in
	}

	client, err := mail.NewClient(s.config.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	return client.DialAndSend(msg)
}
