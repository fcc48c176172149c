package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type relayFailure struct{ body string }

func (r *relayFailure) Error() string { return r.body }

func TestWrappedErrorsMatchSentinels(t *testing.T) {
	assert.True(t, Is(ConflictError("submission in progress"), ErrConflict))
	assert.True(t, Is(InvalidInputError("recaptchaToken", "verification failed"), ErrInvalidInput))
	assert.True(t, Is(NotFoundError("page"), ErrNotFound))
	assert.True(t, Is(InternalError("boom"), ErrInternal))
	assert.False(t, Is(ConflictError("x"), ErrInvalidInput))
}

func TestUpstreamError_KeepsCause(t *testing.T) {
	cause := &relayFailure{body: "template not found"}
	err := UpstreamError("email relay", cause)

	assert.True(t, Is(err, ErrUpstream))

	var target *relayFailure
	assert.True(t, As(err, &target))
	assert.Equal(t, "template not found", target.body)
	assert.Equal(t, "email relay: upstream failure: template not found", err.Error())
	assert.True(t, errors.Is(err, cause))
}
