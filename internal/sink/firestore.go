// Package sink provides the document-store and notification implementations
// the intake pipeline writes accepted submissions to.
package sink

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"portfolio-server/internal/intake"
)

const submissionsCollection = "contact_submissions"

// FirestoreSink durably stores submissions in a Firestore collection via the
// Firebase Admin SDK. The SDK is initialized lazily, once, under a lock, on
// the first write.
type FirestoreSink struct {
	projectID string
	credsJSON []byte
	credsFile string

	initOnce sync.Once
	initErr  error
	client   *firestore.Client
}

// FirestoreConfig carries the service-account credentials, either inline JSON
// or a file path. Exactly one should be set; inline JSON wins when both are.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsJSON string
	CredentialsFile string
}

// NewFirestoreSink returns a sink for the given credentials, or nil when none
// are configured. A nil sink disables the durable write without failing the
// pipeline.
func NewFirestoreSink(cfg FirestoreConfig) *FirestoreSink {
	if cfg.CredentialsJSON == "" && cfg.CredentialsFile == "" {
		return nil
	}
	return &FirestoreSink{
		projectID: cfg.ProjectID,
		credsJSON: []byte(cfg.CredentialsJSON),
		credsFile: cfg.CredentialsFile,
	}
}

func (s *FirestoreSink) init(ctx context.Context) error {
	s.initOnce.Do(func() {
		var opt option.ClientOption
		if len(s.credsJSON) > 0 {
			opt = option.WithCredentialsJSON(s.credsJSON)
		} else {
			opt = option.WithCredentialsFile(s.credsFile)
		}

		var fbCfg *firebase.Config
		if s.projectID != "" {
			fbCfg = &firebase.Config{ProjectID: s.projectID}
		}

		app, err := firebase.NewApp(ctx, fbCfg, opt)
		if err != nil {
			s.initErr = fmt.Errorf("failed to initialize Firebase app: %w", err)
			return
		}

		client, err := app.Firestore(ctx)
		if err != nil {
			s.initErr = fmt.Errorf("failed to get Firestore client: %w", err)
			return
		}
		s.client = client
	})
	return s.initErr
}

// Store writes one submission document. Documents carry a generated UUID id,
// a server-side creation timestamp, and an unread flag for the operator.
func (s *FirestoreSink) Store(ctx context.Context, sub *intake.Sanitized) error {
	if err := s.init(ctx); err != nil {
		return err
	}

	doc := s.client.Collection(submissionsCollection).Doc(uuid.NewString())
	_, err := doc.Set(ctx, map[string]interface{}{
		"name":      sub.Name,
		"email":     sub.Email,
		"message":   sub.Message,
		"createdAt": firestore.ServerTimestamp,
		"read":      false,
	})
	if err != nil {
		return fmt.Errorf("failed to write submission to Firestore: %w", err)
	}
	return nil
}

func (s *FirestoreSink) Name() string {
	return "Firestore"
}

// Close releases the Firestore client if it was ever initialized.
func (s *FirestoreSink) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
