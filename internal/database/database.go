// Package database はデータベース接続の初期化を行います。
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// GetMySQLDSN は環境変数からMySQL接続文字列 (DSN) を構築します。
func GetMySQLDSN() string {
	// main.go で godotenv.Load() が呼び出されるため、ここでは省略
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)
}

// GetSQLitePath は環境変数からSQLiteのファイルパスを取得します。
func GetSQLitePath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return "db/pairs.db"
}

// InitDB はデータベース接続を初期化し、テーブルを作成します。
// DB_DRIVER が "mysql" の場合はMySQLに、それ以外はSQLiteに接続します。
func InitDB() *sql.DB {
	var db *sql.DB
	var err error

	switch driver := os.Getenv("DB_DRIVER"); driver {
	case "mysql":
		db, err = sql.Open("mysql", GetMySQLDSN())
		if err != nil {
			log.Fatalf("Fatal: Failed to open database connection: %v", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	case "", "sqlite":
		path := GetSQLitePath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("Fatal: Failed to create database directory: %v", err)
		}
		db, err = sql.Open("sqlite", path)
		if err != nil {
			log.Fatalf("Fatal: Failed to open database connection: %v", err)
		}
		// modernc.org/sqlite は単一コネクションで扱う
		db.SetMaxOpenConns(1)
	default:
		log.Fatalf("Fatal: Unsupported DB_DRIVER: %s", driver)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("Fatal: Failed to ping database: %v", err)
	}
	if err := CreateTables(db); err != nil {
		log.Fatalf("Fatal: Failed to create tables: %v", err)
	}
	log.Println("Successfully connected to database!")
	return db
}

// CreateTables はaccountテーブルとhistoryテーブルを作成します。
func CreateTables(db *sql.DB) error {
	createAccountTableSQL := `
	CREATE TABLE IF NOT EXISTS account (
		user_id VARCHAR(20) PRIMARY KEY,
		hashed_password VARCHAR(255) NOT NULL,
		age INT NOT NULL,
		sex VARCHAR(10) NOT NULL
	);`
	if _, err := db.Exec(createAccountTableSQL); err != nil {
		return fmt.Errorf("could not create account table: %w", err)
	}

	createHistoryTableSQL := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id VARCHAR(20) NOT NULL,
		genre TEXT NOT NULL,
		price VARCHAR(30) NOT NULL,
		hardware TEXT NOT NULL,
		game_format TEXT NOT NULL,
		world_view TEXT NOT NULL,
		detail TEXT NOT NULL,
		recommended_game VARCHAR(100) NOT NULL
	);`
	if os.Getenv("DB_DRIVER") == "mysql" {
		createHistoryTableSQL = `
	CREATE TABLE IF NOT EXISTS history (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(20) NOT NULL,
		genre TEXT NOT NULL,
		price VARCHAR(30) NOT NULL,
		hardware TEXT NOT NULL,
		game_format TEXT NOT NULL,
		world_view TEXT NOT NULL,
		detail TEXT NOT NULL,
		recommended_game VARCHAR(100) NOT NULL
	);`
	}
	if _, err := db.Exec(createHistoryTableSQL); err != nil {
		return fmt.Errorf("could not create history table: %w", err)
	}

	// user_idでの検索用。外部キー制約は張らず、カスケード削除はアプリ側で行う。
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_history_user_id ON history (user_id)"); err != nil {
		// MySQLはCREATE INDEX IF NOT EXISTSをサポートしないため重複エラーは無視する
		if os.Getenv("DB_DRIVER") != "mysql" {
			return fmt.Errorf("could not create history index: %w", err)
		}
	}
	return nil
}
