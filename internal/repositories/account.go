// Package repositories はデータベース操作を行うリポジトリを提供します。
// 各メソッドは1回のユニットオブワーク(トランザクション)として完結します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"

	"github.com/furedea/pairs/internal/models"
)

var (
	// ErrUserIDExists はユーザーIDが既に登録されている場合のエラーです。
	ErrUserIDExists = errors.New("user id already exists")
	// ErrAccountNotFound はアカウントが見つからない場合のエラーです。
	ErrAccountNotFound = errors.New("account not found")
)

// sqliteConstraintUnique はSQLiteのUNIQUE制約違反の拡張エラーコードです。
const sqliteConstraintUnique = 2067

// isUniqueViolation はドライバ固有の一意性制約違反エラーを判定します。
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// AccountRepository はaccountテーブルへの操作を行うための構造体です。
type AccountRepository struct {
	DB *sql.DB
}

// NewAccountRepository は新しいAccountRepositoryインスタンスを作成します。
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// Add はパスワードをハッシュ化し、新しいアカウントを挿入します。
// ユーザーIDが既に存在する場合はErrUserIDExistsを返します。
func (r *AccountRepository) Add(
	userID models.UserID, password models.Password, age models.Age, sex models.Sex,
) error {
	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		return err
	}
	account := models.NewAccount(userID, hashedPassword, age, sex)

	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := "INSERT INTO account (user_id, hashed_password, age, sex) VALUES (?, ?, ?, ?)"
	if _, err := tx.Exec(query, account.UserID, account.HashedPassword, account.Age, account.Sex); err != nil {
		if isUniqueViolation(err) {
			return ErrUserIDExists
		}
		log.Printf("Failed to insert account: %v", err)
		return fmt.Errorf("could not insert account: %w", err)
	}
	return tx.Commit()
}

// Fetch はユーザーIDでアカウントを検索します。
// 存在しない場合はErrAccountNotFoundを返します。
func (r *AccountRepository) Fetch(userID models.UserID) (*models.Account, error) {
	query := "SELECT user_id, hashed_password, age, sex FROM account WHERE user_id = ?"
	var account models.Account
	err := r.DB.QueryRow(query, userID.String()).Scan(
		&account.UserID,
		&account.HashedPassword,
		&account.Age,
		&account.Sex,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		log.Printf("Failed to query account: %v", err)
		return nil, fmt.Errorf("could not query account: %w", err)
	}
	return &account, nil
}

// Delete は指定されたユーザーIDのアカウントを削除します。
// 存在しない場合はErrAccountNotFoundを返します。
func (r *AccountRepository) Delete(userID models.UserID) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM account WHERE user_id = ?", userID.String())
	if err != nil {
		log.Printf("Failed to delete account: %v", err)
		return fmt.Errorf("could not delete account: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}
	return tx.Commit()
}
