package emailrelay_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codecraftpakistan/codecraft-site/pkg/emailrelay"
	"github.com/codecraftpakistan/codecraft-site/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *emailrelay.Client {
	return emailrelay.NewClient(url, "https://www.codecraftpakistan.com", emailrelay.Credentials{
		ServiceID: "service_test",
		PublicKey: "public_test",
	}, httpclient.NewStandardClient(2*time.Second))
}

func TestClient_Send_Success(t *testing.T) {
	var received emailrelay.Message
	var origin, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin = r.Header.Get("Origin")
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	msg := client.NewMessage("template_notify", map[string]string{"reply_to": "ali@example.com"})

	err := client.Send(context.Background(), "notification", msg)
	require.NoError(t, err)

	assert.Equal(t, "https://www.codecraftpakistan.com", origin)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "service_test", received.ServiceID)
	assert.Equal(t, "template_notify", received.TemplateID)
	assert.Equal(t, "public_test", received.UserID)
	assert.Empty(t, received.AccessToken)
	assert.Equal(t, "ali@example.com", received.TemplateParams["reply_to"])
}

func TestClient_Send_IncludesAccessTokenWhenConfigured(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
	}))
	defer server.Close()

	client := emailrelay.NewClient(server.URL, "", emailrelay.Credentials{
		ServiceID:  "service_test",
		PublicKey:  "public_test",
		PrivateKey: "private_test",
	}, httpclient.NewStandardClient(2*time.Second))

	require.NoError(t, client.Send(context.Background(), "notification", client.NewMessage("t", nil)))
	assert.Equal(t, "private_test", raw["accessToken"])
}

func TestClient_Send_NonSuccessCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("template not found\n"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Send(context.Background(), "notification", client.NewMessage("missing", nil))
	require.Error(t, err)

	var relayErr *emailrelay.RelayError
	require.True(t, errors.As(err, &relayErr))
	assert.Equal(t, http.StatusInternalServerError, relayErr.StatusCode)
	assert.Equal(t, "template not found", relayErr.Error())
}

func TestClient_Send_EmptyErrorBodyUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Send(context.Background(), "acknowledgment", client.NewMessage("t", nil))
	require.Error(t, err)
	assert.Equal(t, emailrelay.FallbackErrorText, err.Error())
}

func TestClient_Send_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(url)
	err := client.Send(context.Background(), "notification", client.NewMessage("t", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay request failed")

	var relayErr *emailrelay.RelayError
	assert.False(t, errors.As(err, &relayErr))
}
