// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/furedea/pairs/internal/handlers"
	"github.com/furedea/pairs/internal/recommend"
	"github.com/furedea/pairs/internal/repositories"
	"github.com/furedea/pairs/internal/services"
	"github.com/furedea/pairs/internal/session"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB, client *recommend.Client, sessionManager *session.Manager) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// リポジトリ
	accountRepo := repositories.NewAccountRepository(db)
	userRepo := repositories.NewUserRepository(accountRepo)
	historyRepo := repositories.NewHistoryRepository(db)

	// サービス
	accountService := services.NewAccountService(accountRepo, userRepo, historyRepo)
	recommendService := services.NewRecommendService(client, historyRepo)
	jwtService := services.NewJWTService()

	// ハンドラー
	sessionHandler := handlers.NewSessionHandler(sessionManager, jwtService)
	userHandler := handlers.NewUserHandler(accountService, sessionManager)
	recommendHandler := handlers.NewRecommendHandler(recommendService, sessionManager)
	accountHandler := handlers.NewAccountHandler(accountService, sessionManager)
	historyHandler := handlers.NewHistoryHandler(historyRepo, sessionManager)

	// ルーティング
	r.GET("/api/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})
	r.POST("/api/session", sessionHandler.StartSessionHandler)

	authorized := r.Group("/")
	authorized.Use(SessionMiddleware(jwtService, sessionManager))
	{
		authorized.DELETE("/api/session", sessionHandler.EndSessionHandler)
		authorized.GET("/api/pages/current", sessionHandler.CurrentPageHandler)
		authorized.POST("/api/pages/navigate", sessionHandler.NavigateHandler)
		authorized.POST("/api/login", userHandler.LoginHandler)
		authorized.POST("/api/register", userHandler.RegisterHandler)
		authorized.POST("/api/logout", userHandler.LogoutHandler)
		authorized.POST("/api/recommend", recommendHandler.GenerateHandler)
		authorized.GET("/api/account", accountHandler.InfoHandler)
		authorized.DELETE("/api/account", accountHandler.DeleteHandler)
		authorized.GET("/api/history", historyHandler.ListHandler)
		authorized.DELETE("/api/history/:id", historyHandler.DeleteHandler)
	}

	return r
}
