package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/session"
)

func TestManager_Lifecycle(t *testing.T) {
	manager := session.NewManager()

	sessionID, err := manager.Start()
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	state, ok := manager.Get(sessionID)
	require.True(t, ok)
	assert.Equal(t, models.PageLogin, state.PageID, "初期状態はログインページ")
	assert.Nil(t, state.UserID, "初期状態は未ログイン")

	manager.End(sessionID)
	_, ok = manager.Get(sessionID)
	assert.False(t, ok, "破棄後のセッションは取得できない")
}

func TestManager_SetPageAndUser(t *testing.T) {
	manager := session.NewManager()
	sessionID, err := manager.Start()
	require.NoError(t, err)

	assert.True(t, manager.SetPage(sessionID, models.PageRecommend))
	state, ok := manager.Get(sessionID)
	require.True(t, ok)
	assert.Equal(t, models.PageRecommend, state.PageID)

	userID, err := models.NewUserID("player1")
	require.NoError(t, err)
	assert.True(t, manager.SetUser(sessionID, &userID))
	got := manager.UserID(sessionID)
	require.NotNil(t, got)
	assert.Equal(t, userID, *got)

	assert.True(t, manager.SetUser(sessionID, nil))
	assert.Nil(t, manager.UserID(sessionID), "nilを設定するとログアウト状態になる")
}

func TestManager_UnknownSession(t *testing.T) {
	manager := session.NewManager()

	_, ok := manager.Get("unknown")
	assert.False(t, ok)
	assert.False(t, manager.SetPage("unknown", models.PageHistory))
	assert.False(t, manager.SetUser("unknown", nil))
	assert.Nil(t, manager.UserID("unknown"))
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	manager := session.NewManager()
	first, err := manager.Start()
	require.NoError(t, err)
	second, err := manager.Start()
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	userID, err := models.NewUserID("player1")
	require.NoError(t, err)
	manager.SetUser(first, &userID)

	assert.NotNil(t, manager.UserID(first))
	assert.Nil(t, manager.UserID(second), "別セッションにはログイン状態が波及しない")
}
