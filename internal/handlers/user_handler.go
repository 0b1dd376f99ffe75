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

// UserHandler はログイン・アカウント登録・ログアウトを処理します。
type UserHandler struct {
	accountService *services.AccountService
	sessionManager *session.Manager
}

// NewUserHandler は新しいUserHandlerを作成します。
func NewUserHandler(accountService *services.AccountService, sessionManager *session.Manager) *UserHandler {
	return &UserHandler{accountService: accountService, sessionManager: sessionManager}
}

// LoginRequest はログインの要求ボディです。
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// RegisterRequest はアカウント登録の要求ボディです。
type RegisterRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Sex      string `json:"sex"`
}

// LoginHandler はユーザーログインを処理します。
// 成功するとセッションにユーザーIDを設定し、検索ページへ遷移します。
func (h *UserHandler) LoginHandler(c *gin.Context) {
	if rejectIfLoggedIn(c, h.sessionManager) {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	// 形式不正な入力は存在しないIDと同じ扱いにする
	userID, err := models.NewUserID(req.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDまたはパスワードが違います"})
		return
	}
	password, err := models.NewPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDまたはパスワードが違います"})
		return
	}

	ok, err := h.accountService.Login(userID, password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDまたはパスワードが違います"})
		return
	}

	sessionID := c.GetString("session_id")
	h.sessionManager.SetUser(sessionID, &userID)
	h.sessionManager.SetPage(sessionID, models.PageRecommend)
	c.JSON(http.StatusOK, gin.H{
		"message": "ログインに成功しました",
		"user_id": userID.String(),
		"page":    string(models.PageRecommend),
	})
}

// RegisterHandler はアカウント登録を処理します。
// 成功するとそのままログイン状態になり、検索ページへ遷移します。
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	if rejectIfLoggedIn(c, h.sessionManager) {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	userID, err := models.NewUserID(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	password, err := models.NewPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	age, err := models.NewAge(req.Age)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sex, err := models.NewSex(req.Sex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.Register(userID, password, age, sex); err != nil {
		if errors.Is(err, repositories.ErrUserIDExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "ユーザーIDが既に存在しています"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}

	sessionID := c.GetString("session_id")
	h.sessionManager.SetUser(sessionID, &userID)
	h.sessionManager.SetPage(sessionID, models.PageRecommend)
	c.JSON(http.StatusCreated, gin.H{
		"message": "アカウント登録に成功しました",
		"user_id": userID.String(),
		"page":    string(models.PageRecommend),
	})
}

// LogoutHandler はログアウトを処理し、ログインページへ遷移します。
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	sessionID := c.GetString("session_id")
	h.sessionManager.SetUser(sessionID, nil)
	h.sessionManager.SetPage(sessionID, models.PageLogin)
	c.JSON(http.StatusOK, gin.H{"page": string(models.PageLogin)})
}
