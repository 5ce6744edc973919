package utils

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"referral-intake-server/models"
)

// MailDialer is satisfied by *gomail.Dialer.
type MailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier emails referral notifications from the configured mail account.
type Notifier struct {
	dialer     MailDialer
	sender     string
	senderName string
}

// NewNotifier dials the SMTP relay from cfg. On the submission port gomail
// upgrades the connection with STARTTLS before authenticating.
func NewNotifier(cfg *Config) *Notifier {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return NewNotifierWithDialer(d, cfg.SMTPUser, cfg.SMTPSenderName)
}

func NewNotifierWithDialer(d MailDialer, sender, senderName string) *Notifier {
	return &Notifier{dialer: d, sender: sender, senderName: senderName}
}

// Notify sends one plain-text message. Errors come back as *ServiceError.
func (n *Notifier) Notify(ctx context.Context, note models.ReferralNotification) error {
	if err := ctx.Err(); err != nil {
		return &ServiceError{Service: "email", Err: err}
	}

	if err := n.dialer.DialAndSend(n.message(note)); err != nil {
		return &ServiceError{Service: "email", Err: err}
	}
	return nil
}

func (n *Notifier) message(note models.ReferralNotification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.sender, n.senderName)
	m.SetHeader("To", note.Recipient)
	m.SetHeader("Subject", NotificationSubject(note.ProjectType))
	m.SetBody("text/plain", NotificationBody(note))
	return m
}

func NotificationSubject(projectType string) string {
	return "Nouvelle recommandation - " + projectType
}

func NotificationBody(note models.ReferralNotification) string {
	return fmt.Sprintf(`Hello !

Tu as reçu une nouvelle recommandation de la part de %s.

Cette recommandation concerne un projet de %s

Pour avoir accès à ta recommandation, voici le lien : %s
`, note.Referrer, note.ProjectType, note.SheetLink)
}
