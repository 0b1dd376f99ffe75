// Package main はゲーム推薦アプリPairsのAPIサーバーを起動します。
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/furedea/pairs/internal/database"
	"github.com/furedea/pairs/internal/recommend"
	"github.com/furedea/pairs/internal/routes"
	"github.com/furedea/pairs/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	client := recommend.NewClientFromEnv()
	sessionManager := session.NewManager()
	router := routes.SetupRouter(db, client, sessionManager)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server listening on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
