package formtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndValidate(t *testing.T) {
	m, err := NewManager("secret", "codecraft-site", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("careers")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "careers", claims.Form)
	assert.NotEmpty(t, claims.InstanceID())
}

func TestManager_EachIssueIsUnique(t *testing.T) {
	m, err := NewManager("secret", "codecraft-site", time.Hour)
	require.NoError(t, err)

	a, _ := m.Issue("careers")
	b, _ := m.Issue("careers")
	ca, err := m.Validate(a)
	require.NoError(t, err)
	cb, err := m.Validate(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.InstanceID(), cb.InstanceID())
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	issuer, _ := NewManager("secret-a", "codecraft-site", time.Hour)
	validator, _ := NewManager("secret-b", "codecraft-site", time.Hour)

	token, err := issuer.Issue("careers")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsExpired(t *testing.T) {
	m, _ := NewManager("secret", "codecraft-site", time.Hour)
	m.ttl = -time.Minute

	token, err := m.Issue("careers")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_RandomSecretWhenUnset(t *testing.T) {
	a, err := NewManager("", "codecraft-site", 0)
	require.NoError(t, err)
	b, err := NewManager("", "codecraft-site", 0)
	require.NoError(t, err)

	token, _ := a.Issue("careers")
	_, err = b.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, 2*time.Hour, a.ttl)
}

func TestManager_RejectsGarbage(t *testing.T) {
	m, _ := NewManager("secret", "codecraft-site", time.Hour)
	_, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
