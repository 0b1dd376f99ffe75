// Package recommend は外部の文章生成APIを使ってゲーム推薦文を生成するクライアントです。
package recommend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/furedea/pairs/internal/models"
)

// ErrNoContent は生成APIが推薦文を返さなかった場合のエラーです。
var ErrNoContent = errors.New("no recommendation content")

const systemPrompt = "あなたはゲームの推薦をする人です。ユーザーの好みに合ったゲームを推薦してください。"

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo-0613"
)

// Client は文章生成APIへのHTTPクライアントです。
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient は新しいClientを作成します。
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientFromEnv は環境変数からClientを作成します。
func NewClientFromEnv() *Client {
	baseURL := os.Getenv("OPENAI_API_BASE")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return NewClient(baseURL, os.Getenv("OPENAI_API_KEY"), model)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// BuildPrompt はユーザーの好みから生成APIに渡すプロンプトを組み立てます。
func BuildPrompt(
	genre models.Genre,
	price models.Price,
	hardware models.Hardware,
	gameFormat models.GameFormat,
	worldView models.WorldView,
	detail models.Detail,
) string {
	return fmt.Sprintf(`ジャンル: %s
値段: %s
ハードウェア: %s
ゲーム形式: %s
世界観: %s
詳細: %s

以下の形式でゲームの推薦をお願いします:
推薦ゲーム: [ゲームタイトル]

概要: [簡潔なゲーム説明]

あなたの要望とのマッチング: このゲームは[ユーザーの要望]に対して[マッチングポイント]を提供します。

ユーザーレビュー: [レビューの抜粋]

購入/プレイ方法: [購入/プレイ方法に関する情報]`,
		genre, price.Display(), hardware, gameFormat, worldView, detail)
}

// Generate はユーザーの好みに合ったゲームの推薦文を生成します。
// 生成APIが推薦文を返さなかった場合はErrNoContentを返します。
func (c *Client) Generate(
	genre models.Genre,
	price models.Price,
	hardware models.Hardware,
	gameFormat models.GameFormat,
	worldView models.WorldView,
	detail models.Detail,
) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(genre, price, hardware, gameFormat, worldView, detail)},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("completion API failed with status: " + resp.Status)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", ErrNoContent
	}
	return chatResp.Choices[0].Message.Content, nil
}
