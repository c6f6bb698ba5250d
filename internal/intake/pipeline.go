package intake

import (
	"context"
	"net/http"
	"strings"
	"time"

	"portfolio-server/internal/logging"
	"portfolio-server/internal/origin"
	"portfolio-server/internal/ratelimit"
	"portfolio-server/internal/sanitize"
)

// Pipeline runs the intake stages for one submission. Stages short-circuit on
// first failure except the dual-sink stage, whose two sinks are attempted
// independently.
type Pipeline struct {
	guard    *origin.Guard
	limiter  *ratelimit.Limiter
	document DocumentSink     // nil when the Firestore sink is not configured
	notifier NotificationSink // nil when no notification sink is configured
	logger   *logging.Logger
	now      func() time.Time
}

func NewPipeline(guard *origin.Guard, limiter *ratelimit.Limiter, document DocumentSink, notifier NotificationSink) *Pipeline {
	return &Pipeline{
		guard:    guard,
		limiter:  limiter,
		document: document,
		notifier: notifier,
		logger:   logging.GetLogger(),
		now:      time.Now,
	}
}

// Admit runs the pre-body stages: origin guard, then per-client rate limit.
// It must run before the request body is even decoded, so disallowed origins
// get their 403 regardless of body shape and malformed-body spam still
// consumes the client's window. The returned outcome is only meaningful when
// ok is false.
func (p *Pipeline) Admit(rawOrigin, clientID string) (Outcome, bool) {
	if !p.guard.Allowed(rawOrigin) {
		return rejected(http.StatusForbidden, "Forbidden"), false
	}

	if !p.limiter.Allow(clientID, p.now()) {
		return rejected(http.StatusTooManyRequests, "Too many requests"), false
	}

	return Outcome{}, true
}

// Process runs the post-admission stages for one submission and synthesizes a
// single outcome: presence check, normalization, validation, dual-sink
// submit. Admit must have accepted the request first. Sink errors are logged
// and swallowed; the caller only sees a terminal failure when both sinks
// fail.
func (p *Pipeline) Process(ctx context.Context, sub Submission) Outcome {
	// Presence is checked on the raw fields, before normalization.
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return rejected(http.StatusBadRequest, msgMissingFields)
	}

	clean := Sanitized{
		Name:    sanitize.Clean(sub.Name),
		Email:   strings.ToLower(sanitize.Clean(sub.Email)),
		Message: sanitize.Clean(sub.Message),
	}

	if msg, ok := validateSanitized(&clean); !ok {
		return rejected(http.StatusBadRequest, msg)
	}

	return p.submit(ctx, &clean)
}

// submit attempts both sinks exactly once each, with no short-circuit between
// them, and combines their outcomes.
func (p *Pipeline) submit(ctx context.Context, clean *Sanitized) Outcome {
	// Sink calls run on a context detached from the client connection: if the
	// caller disconnects mid-flight, the writes are allowed to complete.
	sinkCtx := context.WithoutCancel(ctx)

	stored := false
	if p.document != nil {
		if err := p.document.Store(sinkCtx, clean); err != nil {
			p.logger.Error("document sink write failed (continuing): %v", err)
		} else {
			stored = true
			p.logger.Info("contact submission saved to %s", p.document.Name())
		}
	}

	notified := false
	if p.notifier != nil {
		if err := p.notifier.Send(sinkCtx, clean); err != nil {
			p.logger.Error("notification sink relay failed: %v", err)
		} else {
			notified = true
		}
	}

	switch {
	case notified && stored:
		return Outcome{
			Accepted: true,
			Stored:   true,
			Notified: true,
			Message:  "Email sent successfully",
			Service:  p.document.Name() + " + " + p.notifier.Name(),
			Status:   http.StatusOK,
		}
	case notified:
		return Outcome{
			Accepted: true,
			Notified: true,
			Message:  "Email sent successfully",
			Service:  p.notifier.Name(),
			Status:   http.StatusOK,
		}
	case stored:
		// The durable record exists; losing the alert is recoverable, the
		// operator can poll the store.
		return Outcome{
			Accepted: true,
			Stored:   true,
			Message:  "Submission saved (email delayed)",
			Service:  p.document.Name(),
			Status:   http.StatusOK,
		}
	default:
		return rejected(http.StatusInternalServerError, "Internal server error. Please try again later.")
	}
}

func rejected(status int, message string) Outcome {
	return Outcome{
		Message: message,
		Status:  status,
	}
}
