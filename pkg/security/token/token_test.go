package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-signing-secret"
	testIssuer = "studio-booking-test"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(testSecret, testIssuer, ttl)
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)

	tok, err := svc.Issue("a@b.com", false)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	assert.True(t, svc.Validate(tok))

	subject, err := svc.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}

func TestClaimsCarryAdminFlag(t *testing.T) {
	svc := newTestService(time.Hour)

	tok, err := svc.Issue("admin@studio.com", true)
	require.NoError(t, err)

	claims, err := svc.Claims(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.com", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.True(t, claims.Admin)
}

func TestValidateRejectsGarbageWithoutError(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, tok := range []string{
		"",
		"malformed",
		"malformed.jwt.token",
		"a.b",
		strings.Repeat("x", 512),
	} {
		assert.False(t, svc.Validate(tok), "token %q", tok)
	}
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	svc := newTestService(time.Hour)

	tok, err := svc.Issue("a@b.com", false)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// flip one signature byte
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	assert.False(t, svc.Validate(tampered))
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	other := NewService("another-secret", testIssuer, time.Hour)

	tok, err := other.Issue("a@b.com", false)
	require.NoError(t, err)

	assert.False(t, newTestService(time.Hour).Validate(tok))
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	other := NewService(testSecret, "someone-else", time.Hour)

	tok, err := other.Issue("a@b.com", false)
	require.NoError(t, err)

	assert.False(t, newTestService(time.Hour).Validate(tok))
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService(time.Millisecond)

	tok, err := svc.Issue("a@b.com", false)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	assert.False(t, svc.Validate(tok))
}

func TestSubjectOfExpiredToken(t *testing.T) {
	// Subject only decodes; expiry is Validate's concern.
	svc := newTestService(-time.Minute)

	tok, err := svc.Issue("a@b.com", false)
	require.NoError(t, err)

	subject, err := svc.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}

func TestSubjectOfMalformedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.Subject("invalid.token.structure")
	assert.Error(t, err)
}
