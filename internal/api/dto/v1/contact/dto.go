package contact

// ContactRequest is the intake endpoint's JSON body. Presence and bounds are
// enforced by the pipeline, not by binding tags, so missing fields and
// malformed bodies produce distinct error messages.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is the success body for an accepted submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Service names the sink combination that handled the submission,
	// e.g. "Firestore + Formspree".
	Service string `json:"service"`
	// Stored reports whether the durable document write succeeded.
	Stored bool `json:"stored"`
}

// ErrorResponse is the flat error body every rejected request receives.
type ErrorResponse struct {
	Error string `json:"error"`
}
