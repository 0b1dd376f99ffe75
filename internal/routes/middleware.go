package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/furedea/pairs/internal/services"
	"github.com/furedea/pairs/internal/session"
)

// SessionMiddleware はセッショントークンを検証し、セッションIDをコンテキストに設定するミドルウェアです。
// プロセス再起動などでセッションが失われている場合も401を返します。
func SessionMiddleware(jwtService *services.JWTService, sessionManager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}
		// "Bearer " プレフィックスを削除
		if !strings.HasPrefix(tokenString, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}
		tokenString = tokenString[len("Bearer "):]

		sessionID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if _, ok := sessionManager.Get(sessionID); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
