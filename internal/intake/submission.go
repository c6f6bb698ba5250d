// Package intake implements the contact-form submission pipeline: origin
// guard, per-client rate limit, input normalization, field validation, and the
// dual-sink write that relays accepted submissions.
package intake

import "context"

// Submission is the raw, per-request input to the pipeline. It is never
// persisted and exists only for the duration of one request.
type Submission struct {
	// RawOrigin is the Origin header value, falling back to Referer; empty
	// when neither is present. Admit consumes it before the body is decoded.
	RawOrigin string
	// ClientID identifies the caller for rate limiting, derived from
	// forwarded-address headers. Admit consumes it before the body is
	// decoded.
	ClientID string

	Name    string
	Email   string
	Message string
}

// Sanitized is the immutable post-normalization view of a submission. By the
// time one is handed to a sink, every field satisfies its bound: name 2-100
// characters, email lowercased and well-shaped, message 10-5000 characters.
type Sanitized struct {
	Name    string
	Email   string
	Message string
}

// Outcome is the single result of processing one submission. Built once,
// never mutated after return.
type Outcome struct {
	Accepted bool
	// Stored reports whether the document sink durably recorded the
	// submission.
	Stored bool
	// Notified reports whether the notification sink relayed the submission.
	Notified bool
	// Message is the user-facing success or error message.
	Message string
	// Service names the sink combination that handled an accepted
	// submission, e.g. "Firestore + Formspree".
	Service string
	Status  int
}

// DocumentSink durably stores accepted submissions. Implementations own their
// persistence; the pipeline treats a write failure as recoverable.
type DocumentSink interface {
	Store(ctx context.Context, s *Sanitized) error
	Name() string
}

// NotificationSink relays accepted submissions as a best-effort human alert.
type NotificationSink interface {
	Send(ctx context.Context, s *Sanitized) error
	Name() string
}
