package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolio-server/internal/intake"
)

const defaultFormspreeBaseURL = "https://formspree.io/f"

// FormspreeSink relays submissions to a Formspree form, which forwards them
// by email.
type FormspreeSink struct {
	formID  string
	baseURL string
	client  *http.Client
}

// NewFormspreeSink returns a sink for the given form ID, or nil when the ID
// is empty.
func NewFormspreeSink(formID string) *FormspreeSink {
	if formID == "" {
		return nil
	}
	return &FormspreeSink{
		formID:  formID,
		baseURL: defaultFormspreeBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// formspreePayload mirrors the fields Formspree includes in its notification
// email.
type formspreePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Send posts one submission to Formspree. Any non-2xx response is an error.
func (s *FormspreeSink) Send(ctx context.Context, sub *intake.Sanitized) error {
	payload := formspreePayload{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal formspree payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, s.formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create formspree request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send formspree request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("formspree returned status %d", resp.StatusCode)
	}

	return nil
}

func (s *FormspreeSink) Name() string {
	return "Formspree"
}
