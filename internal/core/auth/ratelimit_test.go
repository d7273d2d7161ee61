package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterCapsHitsWithinWindow(t *testing.T) {
	l := NewRateLimiter(3, time.Hour)

	assert.True(t, l.Allow("k1"))
	assert.True(t, l.Allow("k1"))
	assert.True(t, l.Allow("k1"))
	assert.False(t, l.Allow("k1"), "fourth hit inside the window must be rejected")

	assert.True(t, l.Allow("k2"), "keys are tracked independently")
}

func TestRateLimiterDiscardsExpiredTimestamps(t *testing.T) {
	l := NewRateLimiter(2, 50*time.Millisecond)

	assert.True(t, l.Allow("k1"))
	assert.True(t, l.Allow("k1"))
	assert.False(t, l.Allow("k1"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, l.Allow("k1"), "window must slide, not reset in fixed buckets")
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NoError(t, VerifyPassword(hash, "s3cret"))
	assert.Error(t, VerifyPassword(hash, "wrong"))
}

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("admin@example.com")
	assert.NoError(t, err)

	email, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	_, err = svc.ValidateToken(token + "tampered")
	assert.Error(t, err)

	_, err = NewJWTService("other-secret").ValidateToken(token)
	assert.Error(t, err, "token signed with a different secret must fail")
}
