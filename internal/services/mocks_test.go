package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/codecraftpakistan/codecraft-site/pkg/emailrelay"
	"github.com/stretchr/testify/mock"
)

// MockRelay is a mock implementation of RelayClient
type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) NewMessage(templateID string, params map[string]string) *emailrelay.Message {
	return &emailrelay.Message{
		ServiceID:      "service_test",
		TemplateID:     templateID,
		UserID:         "public_test",
		TemplateParams: params,
	}
}

func (m *MockRelay) Send(ctx context.Context, kind string, msg *emailrelay.Message) error {
	args := m.Called(ctx, kind, msg)
	return args.Error(0)
}

// MockCaptcha is a mock implementation of CaptchaVerifier
type MockCaptcha struct {
	mock.Mock
}

func (m *MockCaptcha) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// relayReply is what the fake relay answers for one template
type relayReply struct {
	status int
	body   string
}

// fakeRelay is an httptest relay that records every message it receives
type fakeRelay struct {
	server  *httptest.Server
	mu      sync.Mutex
	got     []emailrelay.Message
	replies map[string]relayReply
}

func newFakeRelay(t *testing.T) *fakeRelay {
	t.Helper()

	f := &fakeRelay{replies: map[string]relayReply{}}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg emailrelay.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.got = append(f.got, msg)
		reply, ok := f.replies[msg.TemplateID]
		f.mu.Unlock()

		if !ok {
			reply = relayReply{status: http.StatusOK, body: "OK"}
		}
		w.WriteHeader(reply.status)
		_, _ = w.Write([]byte(reply.body))
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeRelay) reply(templateID string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[templateID] = relayReply{status: status, body: body}
}

func (f *fakeRelay) messages(templateID string) []emailrelay.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []emailrelay.Message
	for _, msg := range f.got {
		if msg.TemplateID == templateID {
			out = append(out, msg)
		}
	}
	return out
}

func (f *fakeRelay) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.got)
}
