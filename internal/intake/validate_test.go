package intake

import (
	"strings"
	"testing"
)

func TestValidateSanitized(t *testing.T) {
	valid := Sanitized{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, this is a test message.",
	}

	tests := []struct {
		name    string
		mutate  func(s *Sanitized)
		wantMsg string
		wantOK  bool
	}{
		{
			name:   "valid submission",
			mutate: func(s *Sanitized) {},
			wantOK: true,
		},
		{
			name:    "email without at sign",
			mutate:  func(s *Sanitized) { s.Email = "janeexample.com" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "email without domain dot",
			mutate:  func(s *Sanitized) { s.Email = "jane@example" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "email with spaces",
			mutate:  func(s *Sanitized) { s.Email = "jane doe@example.com" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "single character name",
			mutate:  func(s *Sanitized) { s.Name = "J" },
			wantMsg: "Name must be between 2 and 100 characters",
		},
		{
			name:   "two character name accepted",
			mutate: func(s *Sanitized) { s.Name = "Jo" },
			wantOK: true,
		},
		{
			name:    "name over 100 characters",
			mutate:  func(s *Sanitized) { s.Name = strings.Repeat("a", 101) },
			wantMsg: "Name must be between 2 and 100 characters",
		},
		{
			name:   "name exactly 100 characters accepted",
			mutate: func(s *Sanitized) { s.Name = strings.Repeat("a", 100) },
			wantOK: true,
		},
		{
			name:    "nine character message rejected",
			mutate:  func(s *Sanitized) { s.Message = strings.Repeat("x", 9) },
			wantMsg: "Message must be between 10 and 5000 characters",
		},
		{
			name:   "ten character message accepted",
			mutate: func(s *Sanitized) { s.Message = strings.Repeat("x", 10) },
			wantOK: true,
		},
		{
			name:    "message over 5000 characters",
			mutate:  func(s *Sanitized) { s.Message = strings.Repeat("x", 5001) },
			wantMsg: "Message must be between 10 and 5000 characters",
		},
		{
			name: "email checked before name",
			mutate: func(s *Sanitized) {
				s.Email = "broken"
				s.Name = "J"
			},
			wantMsg: "Invalid email format",
		},
		{
			name: "name checked before message",
			mutate: func(s *Sanitized) {
				s.Name = "J"
				s.Message = "short"
			},
			wantMsg: "Name must be between 2 and 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			msg, ok := validateSanitized(&s)
			if ok != tt.wantOK {
				t.Fatalf("validateSanitized() ok = %v, want %v (msg %q)", ok, tt.wantOK, msg)
			}
			if !tt.wantOK && msg != tt.wantMsg {
				t.Errorf("validateSanitized() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
