package sink

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server/internal/intake"
)

func TestFormspreeSinkSend(t *testing.T) {
	var gotPath string
	var gotPayload formspreePayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := NewFormspreeSink("abc123")
	s.baseURL = server.URL

	sub := &intake.Sanitized{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, this is a test message.",
	}
	require.NoError(t, s.Send(context.Background(), sub))

	assert.Equal(t, "/abc123", gotPath)
	assert.Equal(t, "Jane Doe", gotPayload.Name)
	assert.Equal(t, "jane@example.com", gotPayload.Email)
	assert.Equal(t, "Hello, this is a test message.", gotPayload.Message)
}

func TestFormspreeSinkNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	s := NewFormspreeSink("abc123")
	s.baseURL = server.URL

	err := s.Send(context.Background(), &intake.Sanitized{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestFormspreeSinkUnconfigured(t *testing.T) {
	assert.Nil(t, NewFormspreeSink(""))
}

func TestTelegramSinkUnconfigured(t *testing.T) {
	assert.Nil(t, NewTelegramSink("", "chat"))
	assert.Nil(t, NewTelegramSink("token", ""))
	assert.NotNil(t, NewTelegramSink("token", "chat"))
}

func TestFirestoreSinkUnconfigured(t *testing.T) {
	assert.Nil(t, NewFirestoreSink(FirestoreConfig{}))
	assert.NotNil(t, NewFirestoreSink(FirestoreConfig{CredentialsFile: "service-account.json"}))
}

func TestEscapeHTML(t *testing.T) {
	got := escapeHTML(`<b>Jane & "Doe"</b>`)
	assert.Equal(t, `&lt;b&gt;Jane &amp; "Doe"&lt;/b&gt;`, got)
}
