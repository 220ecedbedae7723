package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"servicedesk/internal/shared/config"
)

// AssignmentNotifier sends a best-effort email to a technician when work is
// assigned. Callers treat failures as non-fatal.
type AssignmentNotifier interface {
	SendAssignmentNotification(to, staffName, requestNumber, requestTitle string) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendAssignmentNotification(to, staffName, requestNumber, requestTitle string) error {
	subject := fmt.Sprintf("Service request %s assigned to you", requestNumber)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>Service request <strong>%s</strong> has been assigned to you:</p>
			<p>%s</p>
			<p>Please log in to the service desk to start working on it.</p>
		</body>
		</html>
	`, staffName, requestNumber, requestTitle)

	plainBody := fmt.Sprintf(`Hello %s,

Service request %s has been assigned to you:
%s

Please log in to the service desk to start working on it.
`, staffName, requestNumber, requestTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
