package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"
)

const sendTimeout = 10 * time.Second

// SMTPDispatcher delivers notifications over plain SMTP. Delivery is
// best-effort: failures are logged and swallowed so a dead mail relay can
// never fail a committed workflow transition.
type SMTPDispatcher struct {
	addr string
	auth smtp.Auth
	from string
	log  *zap.Logger
}

func NewSMTPDispatcher(host, port, username, password, from string, log *zap.Logger) *SMTPDispatcher {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPDispatcher{
		addr: net.JoinHostPort(host, port),
		auth: auth,
		from: from,
		log:  log.With(zap.String("service", "notify")),
	}
}

func (d *SMTPDispatcher) Notify(ctx context.Context, m Message) {
	subject, body := render(m)
	msg := []byte("From: " + d.from + "\r\n" +
		"To: " + m.Recipient + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(d.addr, d.auth, d.from, []string{m.Recipient}, msg)
	}()

	var err error
	select {
	case err = <-done:
	case <-time.After(sendTimeout):
		err = fmt.Errorf("smtp send timed out after %s", sendTimeout)
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		d.log.Warn("notification delivery failed",
			zap.String("recipient", m.Recipient),
			zap.String("kind", string(m.Kind)),
			zap.Error(err),
		)
		return
	}
	d.log.Info("notification sent",
		zap.String("recipient", m.Recipient),
		zap.String("kind", string(m.Kind)),
	)
}

func render(m Message) (subject, body string) {
	title := m.Context["title"]
	docID := m.Context["document_id"]
	switch m.Kind {
	case KindReviewRequested:
		return "New Document for Review",
			fmt.Sprintf("Document %q (%s) has been submitted and requires your review.", title, docID)
	case KindApprovalRequested:
		return "Document Requires Approval",
			fmt.Sprintf("Document %q (%s) has completed all review stages and requires your approval.", title, docID)
	case KindSignatureRequested:
		return "Document Ready for Signature",
			fmt.Sprintf("Document %q (%s) has been approved and is ready for your signature.", title, docID)
	case KindSubmitterUpdate:
		s := fmt.Sprintf("Your document %q is now %s.", title, m.Context["status"])
		if notes := m.Context["notes"]; notes != "" {
			s += "\n\nNotes: " + notes
		}
		return "Document Status Update", s
	case KindDeadlineReminder:
		return "Deadline Reminder",
			fmt.Sprintf("The review of document %q (%s) is due at %s.", title, docID, m.Context["deadline"])
	default:
		return "Document Workflow Notification", fmt.Sprintf("Update on document %q (%s).", title, docID)
	}
}
