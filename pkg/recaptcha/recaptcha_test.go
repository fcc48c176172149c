package recaptcha_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/codecraftpakistan/codecraft-site/pkg/recaptcha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHTTPClient mocks the HTTP client
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Get(url string) (*http.Response, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	args := m.Called(url, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestVerifier_Verify_Success(t *testing.T) {
	mockClient := new(MockHTTPClient)
	verifier := recaptcha.NewVerifier("test-secret-key", mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != recaptcha.DefaultVerifyURL || req.Method != http.MethodPost {
			return false
		}
		reader, err := req.GetBody()
		if err != nil {
			return false
		}
		body, _ := io.ReadAll(reader)
		return bytes.Contains(body, []byte("secret=test-secret-key")) &&
			bytes.Contains(body, []byte("response=valid-token"))
	})).Return(jsonResponse(`{"success": true, "hostname": "codecraftpakistan.com"}`), nil).Once()

	err := verifier.Verify(context.Background(), "valid-token")
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestVerifier_Verify_Rejected(t *testing.T) {
	mockClient := new(MockHTTPClient)
	verifier := recaptcha.NewVerifier("test-secret-key", mockClient).WithVerifyURL("http://captcha.local/verify")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://captcha.local/verify"
	})).Return(jsonResponse(`{"success": false, "error-codes": ["invalid-input-response"]}`), nil).Once()

	err := verifier.Verify(context.Background(), "bad-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid-input-response")
}

func TestVerifier_Verify_NetworkError(t *testing.T) {
	mockClient := new(MockHTTPClient)
	verifier := recaptcha.NewVerifier("test-secret-key", mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	err := verifier.Verify(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify recaptcha")
}

func TestVerifier_Verify_EmptyTokenSkipsNetwork(t *testing.T) {
	mockClient := new(MockHTTPClient)
	verifier := recaptcha.NewVerifier("test-secret-key", mockClient)

	err := verifier.Verify(context.Background(), "   ")
	require.Error(t, err)
	mockClient.AssertNotCalled(t, "Do", mock.Anything)
}

func TestVerifier_Verify_MalformedResponse(t *testing.T) {
	mockClient := new(MockHTTPClient)
	verifier := recaptcha.NewVerifier("test-secret-key", mockClient)

	mockClient.On("Do", mock.Anything).Return(jsonResponse(`not-json`), nil).Once()

	err := verifier.Verify(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode recaptcha response")
}
