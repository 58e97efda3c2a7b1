package notify

import (
	"context"

	"go.uber.org/zap"
)

type Kind string

const (
	KindReviewRequested    Kind = "review_requested"
	KindApprovalRequested  Kind = "approval_requested"
	KindSignatureRequested Kind = "signature_requested"
	KindSubmitterUpdate    Kind = "submitter_update"
	KindDeadlineReminder   Kind = "deadline_reminder"
)

// Message is one role-targeted notification. Context carries template
// values such as document title, public id and reviewer notes.
type Message struct {
	Recipient string
	Kind      Kind
	Context   map[string]string
}

// Dispatcher is fire-and-forget: implementations log delivery failures
// internally and never surface them to the workflow engine.
type Dispatcher interface {
	Notify(ctx context.Context, m Message)
}

// LogDispatcher records would-be notifications instead of sending them.
// Used when SMTP is not configured, mirroring the production dispatcher's
// contract exactly.
type LogDispatcher struct {
	log *zap.Logger
}

func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With(zap.String("service", "notify"))}
}

func (d *LogDispatcher) Notify(_ context.Context, m Message) {
	d.log.Info("notification (email not configured)",
		zap.String("recipient", m.Recipient),
		zap.String("kind", string(m.Kind)),
		zap.Any("context", m.Context),
	)
}
