package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/repositories"
	"github.com/furedea/pairs/internal/session"
)

// HistoryHandler は検索履歴ページを処理します。
type HistoryHandler struct {
	historyRepo    *repositories.HistoryRepository
	sessionManager *session.Manager
}

// NewHistoryHandler は新しいHistoryHandlerを作成します。
func NewHistoryHandler(historyRepo *repositories.HistoryRepository, sessionManager *session.Manager) *HistoryHandler {
	return &HistoryHandler{historyRepo: historyRepo, sessionManager: sessionManager}
}

// ListHandler はログイン中ユーザーの検索履歴をすべて返します。
func (h *HistoryHandler) ListHandler(c *gin.Context) {
	userID, ok := currentUserID(c, h.sessionManager)
	if !ok {
		return
	}

	histories, err := h.historyRepo.Search(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch histories"})
		return
	}
	if histories == nil {
		histories = []*models.History{}
	}
	c.JSON(http.StatusOK, gin.H{"histories": histories})
}

// DeleteHandler は指定されたIDの検索履歴を削除します。
func (h *HistoryHandler) DeleteHandler(c *gin.Context) {
	if _, ok := currentUserID(c, h.sessionManager); !ok {
		return
	}

	historyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.historyRepo.Delete(historyID); err != nil {
		if errors.Is(err, repositories.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "予期せぬエラーが発生しました: history_idが存在しません",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete history"})
		return
	}
	c.Status(http.StatusNoContent)
}
