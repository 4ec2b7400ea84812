package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/repository"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/session"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/utils"
)

func newAuthService(t *testing.T) (*AuthService, *session.Store) {
	t.Helper()
	_, db := newTestStore(t)
	sessions := session.NewStore(time.Hour)
	svc := NewAuthService(repository.NewUserRepository(db), sessions, "test-secret", time.Hour)
	return svc, sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, sessions := newAuthService(t)

	user, err := svc.Register("Alice", "s3cret", "alice@example.com", "Alice A", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username, "usernames are normalized")
	assert.Equal(t, "CUSTOMER", user.Role)

	_, err = svc.Register("alice", "other", "", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))

	token, got, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// login minted a session id and created its cart
	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	require.NotEmpty(t, claims.SessionID)

	c, err := sessions.Get(claims.SessionID)
	require.NoError(t, err)
	assert.Empty(t, c.Entries())

	svc.Logout(claims.SessionID)
	_, err = sessions.Get(claims.SessionID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, sessions := newAuthService(t)

	_, err := svc.Register("bob", "hunter2", "", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("bob", "wrong")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, _, err = svc.Login("nobody", "hunter2")
	require.Error(t, err)

	assert.Equal(t, 0, sessions.Len(), "failed logins must not leak sessions")
}
