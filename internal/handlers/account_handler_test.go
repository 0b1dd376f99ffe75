package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furedea/pairs/testutil"
)

func TestAccountInfo_Success(t *testing.T) {
	_, router, _ := testutil.SetupApp(t, "http://unused")
	token := testutil.StartSession(t, router)
	testutil.RegisterTestAccount(t, router, token, "player1", "pass1234", 25, "男性")

	w := testutil.DoJSON(t, router, http.MethodGet, "/api/account", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "player1", response["user_id"])
	assert.Equal(t, float64(25), response["age"])
	assert.Equal(t, "男性", response["sex"])
	assert.NotContains(t, response, "hashed_password", "ハッシュは返さない")
}

func TestAccountInfo_LoginRequired(t *testing.T) {
	_, router, _ := testutil.SetupApp(t, "http://unused")
	token := testutil.StartSession(t, router)

	w := testutil.DoJSON(t, router, http.MethodGet, "/api/account", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ログインしていません", response["error"])
	assert.Equal(t, "login", response["redirect"], "ログインページへ誘導する")
}

// アカウント削除は紐づく履歴もすべて削除する。
func TestDeleteAccount_CascadesHistories(t *testing.T) {
	server := testutil.FakeCompletionServer(t, recommendedText)
	db, router, _ := testutil.SetupApp(t, server.URL)

	token := testutil.StartSession(t, router)
	testutil.RegisterTestAccount(t, router, token, "player1", "pass1234", 25, "男性")

	// 履歴を2件作成する
	for range 2 {
		w := testutil.DoJSON(t, router, http.MethodPost, "/api/recommend", token, recommendPayload())
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := testutil.DoJSON(t, router, http.MethodDelete, "/api/account", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "アカウントの削除に成功しました", response["message"])
	assert.Equal(t, "login", response["page"], "削除後はログインページへ遷移する")

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM account WHERE user_id = ?", "player1").Scan(&count))
	assert.Zero(t, count, "アカウントが削除されている")
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM history WHERE user_id = ?", "player1").Scan(&count))
	assert.Zero(t, count, "紐づく履歴もすべて削除されている")

	// 削除済みアカウントではログインできない
	_, err := testutil.LoginAndGetToken(t, router, "player1", "pass1234")
	assert.Error(t, err)
}

func TestDeleteAccount_LoginRequired(t *testing.T) {
	_, router, _ := testutil.SetupApp(t, "http://unused")
	token := testutil.StartSession(t, router)

	w := testutil.DoJSON(t, router, http.MethodDelete, "/api/account", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
