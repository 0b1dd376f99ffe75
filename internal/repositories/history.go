package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/furedea/pairs/internal/models"
)

// ErrHistoryNotFound は履歴が見つからない場合のエラーです。
var ErrHistoryNotFound = errors.New("history not found")

// HistoryRepository はhistoryテーブルへの操作を行うための構造体です。
type HistoryRepository struct {
	DB *sql.DB
}

// NewHistoryRepository は新しいHistoryRepositoryインスタンスを作成します。
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// Add は新しい履歴をデータベースに挿入します。
func (r *HistoryRepository) Add(history *models.History) (*models.History, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO history
		(user_id, genre, price, hardware, game_format, world_view, detail, recommended_game)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.Exec(
		query,
		history.UserID,
		history.Genre,
		history.Price,
		history.Hardware,
		history.GameFormat,
		history.WorldView,
		history.Detail,
		history.RecommendedGame,
	)
	if err != nil {
		log.Printf("Failed to insert history: %v", err)
		return nil, fmt.Errorf("could not insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	history.ID = int(id)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}
	return history, nil
}

// Search は指定ユーザーのすべての履歴を取得します。並び順は格納順です。
func (r *HistoryRepository) Search(userID models.UserID) ([]*models.History, error) {
	query := `SELECT id, user_id, genre, price, hardware, game_format, world_view, detail, recommended_game
		FROM history WHERE user_id = ?`
	rows, err := r.DB.Query(query, userID.String())
	if err != nil {
		log.Printf("Failed to query histories: %v", err)
		return nil, fmt.Errorf("could not query histories: %w", err)
	}
	defer rows.Close()

	var histories []*models.History
	for rows.Next() {
		var history models.History
		err := rows.Scan(
			&history.ID,
			&history.UserID,
			&history.Genre,
			&history.Price,
			&history.Hardware,
			&history.GameFormat,
			&history.WorldView,
			&history.Detail,
			&history.RecommendedGame,
		)
		if err != nil {
			log.Printf("Failed to scan history: %v", err)
			return nil, fmt.Errorf("could not scan history: %w", err)
		}
		histories = append(histories, &history)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating histories: %w", err)
	}
	return histories, nil
}

// Delete は指定されたIDの履歴を削除します。
// 存在しない場合はErrHistoryNotFoundを返します。
func (r *HistoryRepository) Delete(historyID int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM history WHERE id = ?", historyID)
	if err != nil {
		log.Printf("Failed to delete history: %v", err)
		return fmt.Errorf("could not delete history: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrHistoryNotFound
	}
	return tx.Commit()
}

// DeleteAll は指定ユーザーのすべての履歴を削除します。履歴がない場合は何もしません。
func (r *HistoryRepository) DeleteAll(userID models.UserID) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history WHERE user_id = ?", userID.String()); err != nil {
		log.Printf("Failed to delete histories: %v", err)
		return fmt.Errorf("could not delete histories: %w", err)
	}
	return tx.Commit()
}
