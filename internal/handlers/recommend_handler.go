package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/services"
	"github.com/furedea/pairs/internal/session"
)

// RecommendHandler は検索(推薦)ページを処理します。
type RecommendHandler struct {
	recommendService *services.RecommendService
	sessionManager   *session.Manager
}

// NewRecommendHandler は新しいRecommendHandlerを作成します。
func NewRecommendHandler(
	recommendService *services.RecommendService, sessionManager *session.Manager,
) *RecommendHandler {
	return &RecommendHandler{recommendService: recommendService, sessionManager: sessionManager}
}

// RecommendRequest は推薦の要求ボディです。複数選択の項目は", "区切りの文字列です。
type RecommendRequest struct {
	Genre      string `json:"genre"`
	LowPrice   int    `json:"low_price"`
	HighPrice  int    `json:"high_price"`
	Hardware   string `json:"hardware"`
	GameFormat string `json:"game_format"`
	WorldView  string `json:"world_view"`
	Detail     string `json:"detail"`
}

// GenerateHandler は好みを受け取り、おすすめのゲームを提案します。
// ログイン中の場合のみ検索履歴を保存します(未ログインでも推薦は受けられます)。
func (h *RecommendHandler) GenerateHandler(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	genre, err := models.NewGenre(req.Genre)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := models.NewPrice(req.LowPrice, req.HighPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hardware, err := models.NewHardware(req.Hardware)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gameFormat, err := models.NewGameFormat(req.GameFormat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	worldView, err := models.NewWorldView(req.WorldView)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := models.NewDetail(req.Detail)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := h.sessionManager.UserID(c.GetString("session_id"))
	recommendedText, recommendedGame, err := h.recommendService.Recommend(
		userID, genre, price, hardware, gameFormat, worldView, detail,
	)
	if err != nil {
		log.Printf("Failed to generate recommendation: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "予期せぬエラーが発生しました: おすすめのゲームが見つかりませんでした",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommended_game": string(recommendedGame),
		"recommended_text": recommendedText,
	})
}
