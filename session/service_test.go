package session

import (
	"testing"
	"time"

	"github.com/happywht/gg-mange/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newTestSessionService(t *testing.T) Service {
	db := testutils.SetupTestDB(t, &UserSession{})
	return NewSessionService(db)
}

func TestSessionService_TrackAndList(t *testing.T) {
	service := newTestSessionService(t)

	err := service.TrackSession(1, "token-a", "10.0.0.1", chromeUA, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	err = service.TrackSession(1, "token-b", "10.0.0.2", chromeUA, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	err = service.TrackSession(2, "token-c", "10.0.0.3", chromeUA, time.Now().Add(2*time.Hour))
	require.NoError(t, err)

	sessions, err := service.GetUserSessions(1, "token-a")
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	var currentCount int
	for _, s := range sessions {
		assert.Equal(t, "Chrome", s.Browser)
		assert.Equal(t, "Linux", s.OS)
		if s.Current {
			currentCount++
			assert.Equal(t, "10.0.0.1", s.IPAddress)
		}
	}
	assert.Equal(t, 1, currentCount)
}

func TestSessionService_RemoveByToken(t *testing.T) {
	service := newTestSessionService(t)

	require.NoError(t, service.TrackSession(1, "token-a", "10.0.0.1", chromeUA, time.Now().Add(time.Hour)))
	require.NoError(t, service.RemoveSessionByToken("token-a"))

	sessions, err := service.GetUserSessions(1, "")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionService_CleanupExpired(t *testing.T) {
	service := newTestSessionService(t)

	require.NoError(t, service.TrackSession(1, "stale", "10.0.0.1", chromeUA, time.Now().Add(-time.Minute)))
	require.NoError(t, service.TrackSession(1, "fresh", "10.0.0.1", chromeUA, time.Now().Add(time.Hour)))

	require.NoError(t, service.CleanupExpiredSessions())

	sessions, err := service.GetUserSessions(1, "")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Current)
}

func TestSessionService_UpdateLastUsed(t *testing.T) {
	service := newTestSessionService(t)

	require.NoError(t, service.TrackSession(1, "token-a", "10.0.0.1", chromeUA, time.Now().Add(time.Hour)))

	before, err := service.GetUserSessions(1, "token-a")
	require.NoError(t, err)
	require.Len(t, before, 1)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, service.UpdateLastUsed("token-a"))

	after, err := service.GetUserSessions(1, "token-a")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.True(t, after[0].LastUsed.After(before[0].LastUsed))
}
