package vault

import (
	"testing"
	"time"

	"github.com/happywht/gg-mange/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	db := testutils.SetupTestDB(t, &Account{}, &Announcement{})
	return NewStore(db, nil)
}

func TestStore_CreateAccount(t *testing.T) {
	store := newTestStore(t)

	t.Run("missing email rejected", func(t *testing.T) {
		err := store.CreateAccount(&Account{Password: "pw"})
		testutils.AssertErrorType(t, ErrValidation, err)
	})

	t.Run("missing password rejected", func(t *testing.T) {
		err := store.CreateAccount(&Account{Email: "a@example.com"})
		testutils.AssertErrorType(t, ErrValidation, err)
	})

	t.Run("server assigns id when absent", func(t *testing.T) {
		account := &Account{Email: "a@example.com", Password: "pw"}
		err := store.CreateAccount(account)
		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("caller-assigned id preserved", func(t *testing.T) {
		account := &Account{ID: "custom-id", Email: "b@example.com", Password: "pw"}
		err := store.CreateAccount(account)
		require.NoError(t, err)

		loaded, err := store.GetAccount("custom-id")
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", loaded.Email)
	})
}

func TestStore_GetAccount(t *testing.T) {
	store := newTestStore(t)

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.GetAccount("missing")
		testutils.AssertErrorType(t, ErrNotFound, err)
	})

	t.Run("round trip", func(t *testing.T) {
		account := &Account{
			Email:    "user@example.com",
			Password: "hunter2",
			Secret:   "JBSWY3DPEHPK3PXP",
		}
		require.NoError(t, store.CreateAccount(account))

		loaded, err := store.GetAccount(account.ID)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", loaded.Password)
		assert.Equal(t, "JBSWY3DPEHPK3PXP", loaded.Secret)
		assert.True(t, loaded.HasSecret())
	})
}

func TestStore_ListAccounts(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateAccount(&Account{Email: "a@example.com", Password: "pw"}))
	require.NoError(t, store.CreateAccount(&Account{Email: "b@example.com", Password: "pw", Secret: "JBSWY3DPEHPK3PXP"}))

	accounts, err := store.ListAccounts()
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	var withSecret int
	for _, a := range accounts {
		safe := a.Safe()
		assert.True(t, safe.HasPassword)
		if safe.HasSecret {
			withSecret++
		}
	}
	assert.Equal(t, 1, withSecret)
}

func TestStore_UpdateAccount(t *testing.T) {
	store := newTestStore(t)

	account := &Account{Email: "a@example.com", Password: "old"}
	require.NoError(t, store.CreateAccount(account))

	t.Run("updates in place", func(t *testing.T) {
		account.Password = "new"
		account.Name = "renamed"
		updated, err := store.UpdateAccount(account)
		require.NoError(t, err)
		assert.True(t, updated)

		loaded, err := store.GetAccount(account.ID)
		require.NoError(t, err)
		assert.Equal(t, "new", loaded.Password)
		assert.Equal(t, "renamed", loaded.Name)
	})

	t.Run("unknown id reports not updated", func(t *testing.T) {
		updated, err := store.UpdateAccount(&Account{ID: "missing", Email: "x@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("validation still enforced", func(t *testing.T) {
		_, err := store.UpdateAccount(&Account{ID: account.ID, Email: "", Password: "pw"})
		testutils.AssertErrorType(t, ErrValidation, err)
	})
}

func TestStore_DeleteAccount(t *testing.T) {
	store := newTestStore(t)

	account := &Account{Email: "a@example.com", Password: "pw"}
	require.NoError(t, store.CreateAccount(account))

	deleted, err := store.DeleteAccount(account.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// No tombstone: the row is gone.
	_, err = store.GetAccount(account.ID)
	testutils.AssertErrorType(t, ErrNotFound, err)

	deleted, err = store.DeleteAccount(account.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_Announcements(t *testing.T) {
	store := newTestStore(t)

	t.Run("empty store", func(t *testing.T) {
		_, err := store.CurrentAnnouncement()
		testutils.AssertErrorType(t, ErrNotFound, err)
	})

	t.Run("newest wins, older retained", func(t *testing.T) {
		first, err := store.PublishAnnouncement("first")
		require.NoError(t, err)
		require.NotNil(t, first)

		time.Sleep(10 * time.Millisecond)

		second, err := store.PublishAnnouncement("second")
		require.NoError(t, err)

		current, err := store.CurrentAnnouncement()
		require.NoError(t, err)
		assert.Equal(t, second.ID, current.ID)
		assert.Equal(t, "second", current.Message)

		count, err := store.DeleteAnnouncements()
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}
