// Package handlers は各ページのコントローラー(Ginハンドラー)を提供します。
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/services"
	"github.com/furedea/pairs/internal/session"
)

// currentUserID はログイン中のユーザーIDを取得します。
// 未ログインの場合はエラーを返し、ログインページへの誘導を伝えます。
func currentUserID(c *gin.Context, manager *session.Manager) (models.UserID, bool) {
	userID := manager.UserID(c.GetString("session_id"))
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "ログインしていません",
			"redirect": string(models.PageLogin),
		})
		return "", false
	}
	return *userID, true
}

// rejectIfLoggedIn はログイン済みのユーザーを検索ページへ誘導します。
// ログインページと登録ページで使用します。
func rejectIfLoggedIn(c *gin.Context, manager *session.Manager) bool {
	if manager.UserID(c.GetString("session_id")) == nil {
		return false
	}
	c.JSON(http.StatusConflict, gin.H{
		"error":    "既にログインしています",
		"redirect": string(models.PageRecommend),
	})
	return true
}

// SessionHandler はセッションのライフサイクルとページ遷移を管理します。
type SessionHandler struct {
	sessionManager *session.Manager
	jwtService     *services.JWTService
}

// NewSessionHandler は新しいSessionHandlerを作成します。
func NewSessionHandler(sessionManager *session.Manager, jwtService *services.JWTService) *SessionHandler {
	return &SessionHandler{sessionManager: sessionManager, jwtService: jwtService}
}

// StartSessionHandler は新しいセッションを開始し、セッショントークンを発行します。
func (h *SessionHandler) StartSessionHandler(c *gin.Context) {
	sessionID, err := h.sessionManager.Start()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	token, err := h.jwtService.GenerateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "page": string(models.PageLogin)})
}

// EndSessionHandler はセッションを破棄します。
func (h *SessionHandler) EndSessionHandler(c *gin.Context) {
	h.sessionManager.End(c.GetString("session_id"))
	c.Status(http.StatusNoContent)
}

// CurrentPageHandler は現在のページとログイン状態を返します。
func (h *SessionHandler) CurrentPageHandler(c *gin.Context) {
	state, ok := h.sessionManager.Get(c.GetString("session_id"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}
	response := gin.H{"page": string(state.PageID), "title": state.PageID.Title()}
	if state.UserID != nil {
		response["user_id"] = state.UserID.String()
	}
	c.JSON(http.StatusOK, response)
}

// NavigateHandler は任意のページへ遷移します。ページ間の遷移順は制限しません。
func (h *SessionHandler) NavigateHandler(c *gin.Context) {
	var req struct {
		Page string `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	page, err := models.ParsePageID(req.Page)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.sessionManager.SetPage(c.GetString("session_id"), page) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": string(page), "title": page.Title()})
}
