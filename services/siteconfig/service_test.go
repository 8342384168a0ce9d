package siteconfig

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/happywht/gg-mange/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	svc, err := NewService(testutils.GetTestConfig(), nil)
	require.NoError(t, err)
	return svc
}

func TestService_Defaults(t *testing.T) {
	svc := newTestService(t)

	buttons := svc.Buttons()
	require.Contains(t, buttons, "guide")
	require.Contains(t, buttons, "gemini")
	assert.True(t, buttons["guide"].Visible)
	assert.Equal(t, "https://gemini.google.com/app", buttons["gemini"].URL)
}

func TestService_UpdateButton(t *testing.T) {
	svc := newTestService(t)

	t.Run("partial patch merges", func(t *testing.T) {
		hidden := false
		buttons, err := svc.UpdateButton("guide", ButtonPatch{Visible: &hidden})
		require.NoError(t, err)
		assert.False(t, buttons["guide"].Visible)
		// Untouched fields survive the patch.
		assert.Equal(t, "登录指导", buttons["guide"].Text)
	})

	t.Run("unknown key rejected without state change", func(t *testing.T) {
		before := svc.Buttons()
		text := "nope"
		_, err := svc.UpdateButton("bogus", ButtonPatch{Text: &text})
		require.ErrorIs(t, err, ErrUnknownButton)
		assert.Equal(t, before, svc.Buttons())
	})
}

func TestService_Contact(t *testing.T) {
	svc := newTestService(t)

	contact := svc.Contact()
	assert.Equal(t, "Test Contact", contact.Name)
	assert.Equal(t, "https://applink.feishu.cn/client/chat/open?openId=ou_test", contact.FeishuURL)

	updated := svc.UpdateContact(ContactPatch{Name: "New Name", OpenID: "ou_other"})
	assert.Equal(t, "New Name", updated.Name)
	// Empty patch fields keep the current value.
	assert.Equal(t, "contact@example.com", updated.Email)
	assert.Contains(t, updated.FeishuURL, "ou_other")
}

func TestService_DefaultsFile(t *testing.T) {
	t.Run("valid overrides applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "buttons.yaml")
		data := "guide:\n  visible: false\n  text: Guide\n  url: https://example.com/guide\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg := testutils.GetTestConfig()
		cfg.Buttons.File = path
		svc, err := NewService(cfg, nil)
		require.NoError(t, err)

		buttons := svc.Buttons()
		assert.False(t, buttons["guide"].Visible)
		assert.Equal(t, "Guide", buttons["guide"].Text)
		// Keys absent from the file keep compiled-in defaults.
		assert.Equal(t, "访问 Gemini", buttons["gemini"].Text)
	})

	t.Run("unknown key in file fails startup", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "buttons.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bogus:\n  visible: true\n"), 0o600))

		cfg := testutils.GetTestConfig()
		cfg.Buttons.File = path
		_, err := NewService(cfg, nil)
		require.ErrorIs(t, err, ErrUnknownButton)
	})
}

func TestService_ConcurrentAccess(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			visible := true
			_, _ = svc.UpdateButton("guide", ButtonPatch{Visible: &visible})
		}()
		go func() {
			defer wg.Done()
			_ = svc.Buttons()
			_ = svc.Contact()
		}()
	}
	wg.Wait()

	assert.True(t, svc.Buttons()["guide"].Visible)
}
