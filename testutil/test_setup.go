// Package testutil はテスト用のデータベース・ルーターのセットアップを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/furedea/pairs/internal/database"
	"github.com/furedea/pairs/internal/recommend"
	"github.com/furedea/pairs/internal/routes"
	"github.com/furedea/pairs/internal/session"
)

// SetupDB はテスト用のSQLiteデータベースを一時ファイルに作成し、テーブルを作成します。
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()
	os.Setenv("DB_DRIVER", "sqlite")

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "pairs_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}
	if err := database.CreateTables(db); err != nil {
		db.Close()
		t.Fatalf("Failed to create tables: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// FakeCompletionServer は指定した本文を返す文章生成APIのスタブサーバーを起動します。
func FakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("Failed to encode fake completion response: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// SetupApp はテスト用のデータベース・ルーター・セッションマネージャーをセットアップします。
// completionURL には FakeCompletionServer のURLを渡します。
func SetupApp(t *testing.T, completionURL string) (*sql.DB, *gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db := SetupDB(t)
	client := recommend.NewClient(completionURL, "test-api-key", "test-model")
	sessionManager := session.NewManager()
	router := routes.SetupRouter(db, client, sessionManager)
	return db, router, sessionManager
}

// DoJSON はJSONボディ付きのリクエストを実行します。tokenが空でなければAuthorizationヘッダーを付けます。
func DoJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// StartSession は新しいセッションを開始し、セッショントークンを返します。
func StartSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := DoJSON(t, router, http.MethodPost, "/api/session", "", nil)
	require.Equal(t, http.StatusCreated, w.Code, "セッション開始に失敗しました: %s", w.Body.String())

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	token, ok := response["token"].(string)
	require.True(t, ok, "token not found or not a string in session response")
	return token
}

// RegisterTestAccount はテスト用のアカウントを登録します。登録後はログイン状態になります。
func RegisterTestAccount(t *testing.T, router *gin.Engine, token, userID, password string, age int, sex string) {
	t.Helper()
	payload := map[string]any{
		"user_id":  userID,
		"password": password,
		"age":      age,
		"sex":      sex,
	}
	w := DoJSON(t, router, http.MethodPost, "/api/register", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, "アカウント登録に失敗しました: %s", w.Body.String())
}

// LoginAndGetToken は新しいセッションを開始してログインし、セッショントークンを返します。
func LoginAndGetToken(t *testing.T, router *gin.Engine, userID, password string) (string, error) {
	t.Helper()
	token := StartSession(t, router)
	payload := map[string]string{"user_id": userID, "password": password}
	w := DoJSON(t, router, http.MethodPost, "/api/login", token, payload)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	return token, nil
}
