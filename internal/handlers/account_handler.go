package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/repositories"
	"github.com/furedea/pairs/internal/services"
	"github.com/furedea/pairs/internal/session"
)

// AccountHandler はアカウント情報ページとアカウント削除ページを処理します。
type AccountHandler struct {
	accountService *services.AccountService
	sessionManager *session.Manager
}

// NewAccountHandler は新しいAccountHandlerを作成します。
func NewAccountHandler(accountService *services.AccountService, sessionManager *session.Manager) *AccountHandler {
	return &AccountHandler{accountService: accountService, sessionManager: sessionManager}
}

// InfoHandler はログイン中ユーザーのアカウント情報を返します。
func (h *AccountHandler) InfoHandler(c *gin.Context) {
	userID, ok := currentUserID(c, h.sessionManager)
	if !ok {
		return
	}

	account, err := h.accountService.Fetch(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "予期せぬエラーが発生しました: アカウントが存在しません",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteHandler はアカウントと紐づく履歴をすべて削除し、ログインページへ遷移します。
func (h *AccountHandler) DeleteHandler(c *gin.Context) {
	userID, ok := currentUserID(c, h.sessionManager)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "予期せぬエラーが発生しました: user_idが存在しません",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	sessionID := c.GetString("session_id")
	h.sessionManager.SetUser(sessionID, nil)
	h.sessionManager.SetPage(sessionID, models.PageLogin)
	c.JSON(http.StatusOK, gin.H{
		"message": "アカウントの削除に成功しました",
		"page":    string(models.PageLogin),
	})
}
