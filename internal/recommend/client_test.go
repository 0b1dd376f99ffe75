package recommend_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/recommend"
)

func testPreferences(t *testing.T) (models.Genre, models.Price, models.Hardware, models.GameFormat, models.WorldView, models.Detail) {
	t.Helper()
	genre, err := models.NewGenre("アクション, ロールプレイング")
	require.NoError(t, err)
	price, err := models.NewPrice(0, 5000)
	require.NoError(t, err)
	hardware, err := models.NewHardware("Switch")
	require.NoError(t, err)
	gameFormat, err := models.NewGameFormat("2D")
	require.NoError(t, err)
	worldView, err := models.NewWorldView("ファンタジー")
	require.NoError(t, err)
	detail, err := models.NewDetail("時間を超える物語が好きです")
	require.NoError(t, err)
	return genre, price, hardware, gameFormat, worldView, detail
}

func TestBuildPrompt(t *testing.T) {
	genre, price, hardware, gameFormat, worldView, detail := testPreferences(t)

	prompt := recommend.BuildPrompt(genre, price, hardware, gameFormat, worldView, detail)
	assert.Contains(t, prompt, "ジャンル: アクション, ロールプレイング")
	assert.Contains(t, prompt, "値段: 0円 ~ 5000円")
	assert.Contains(t, prompt, "ハードウェア: Switch")
	assert.Contains(t, prompt, "ゲーム形式: 2D")
	assert.Contains(t, prompt, "世界観: ファンタジー")
	assert.Contains(t, prompt, "詳細: 時間を超える物語が好きです")
	assert.Contains(t, prompt, "推薦ゲーム: [ゲームタイトル]", "応答形式の指定を含む")
}

func TestClient_Generate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		response := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "推薦ゲーム: Chrono Trigger\n\n概要: 名作RPGです。"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := recommend.NewClient(server.URL, "test-api-key", "test-model")
	genre, price, hardware, gameFormat, worldView, detail := testPreferences(t)

	text, err := client.Generate(genre, price, hardware, gameFormat, worldView, detail)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "推薦ゲーム: Chrono Trigger"))

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2, "システム指示とユーザープロンプトの2件を送信する")
}

func TestClient_GenerateNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := recommend.NewClient(server.URL, "test-api-key", "test-model")
	genre, price, hardware, gameFormat, worldView, detail := testPreferences(t)

	_, err := client.Generate(genre, price, hardware, gameFormat, worldView, detail)
	assert.ErrorIs(t, err, recommend.ErrNoContent)
}

func TestClient_GenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := recommend.NewClient(server.URL, "test-api-key", "test-model")
	genre, price, hardware, gameFormat, worldView, detail := testPreferences(t)

	_, err := client.Generate(genre, price, hardware, gameFormat, worldView, detail)
	assert.Error(t, err)
}
