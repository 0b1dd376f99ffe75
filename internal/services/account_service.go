package services

import (
	"fmt"
	"log"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/repositories"
)

// AccountService はアカウント関連のビジネスロジックを扱います。
type AccountService struct {
	accountRepo *repositories.AccountRepository
	userRepo    *repositories.UserRepository
	historyRepo *repositories.HistoryRepository
}

// NewAccountService は新しいAccountServiceを作成します。
func NewAccountService(
	accountRepo *repositories.AccountRepository,
	userRepo *repositories.UserRepository,
	historyRepo *repositories.HistoryRepository,
) *AccountService {
	return &AccountService{accountRepo: accountRepo, userRepo: userRepo, historyRepo: historyRepo}
}

// Register は新しいアカウントを登録します。
// ユーザーIDが既に存在する場合はrepositories.ErrUserIDExistsを返します。
func (s *AccountService) Register(
	userID models.UserID, password models.Password, age models.Age, sex models.Sex,
) error {
	return s.accountRepo.Add(userID, password, age, sex)
}

// Login はユーザーIDとパスワードでユーザーを認証します。
func (s *AccountService) Login(userID models.UserID, password models.Password) (bool, error) {
	return s.userRepo.Login(userID, password)
}

// Fetch はアカウント情報を取得します。
func (s *AccountService) Fetch(userID models.UserID) (*models.Account, error) {
	return s.accountRepo.Fetch(userID)
}

// DeleteAccount はアカウントと紐づく履歴をすべて削除します。
// アカウント削除と履歴削除は別々のユニットオブワークであり、間で失敗すると
// 履歴が残る可能性があります(トランザクションをまたいだ原子性は保証しません)。
func (s *AccountService) DeleteAccount(userID models.UserID) error {
	if err := s.accountRepo.Delete(userID); err != nil {
		return err
	}
	if err := s.historyRepo.DeleteAll(userID); err != nil {
		log.Printf("Failed to delete histories for %s: %v", userID, err)
		return fmt.Errorf("could not delete histories: %w", err)
	}
	return nil
}
