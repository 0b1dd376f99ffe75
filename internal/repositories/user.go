package repositories

import (
	"errors"
	"fmt"

	"github.com/furedea/pairs/internal/models"
)

// UserRepository はログイン認証を行うための構造体です。
type UserRepository struct {
	accountRepo *AccountRepository
}

// NewUserRepository は新しいUserRepositoryインスタンスを作成します。
func NewUserRepository(accountRepo *AccountRepository) *UserRepository {
	return &UserRepository{accountRepo: accountRepo}
}

// Login はユーザーIDとパスワードでユーザーを認証します。
// アカウントが存在しない場合やパスワードが一致しない場合はfalseを返します。
func (r *UserRepository) Login(userID models.UserID, password models.Password) (bool, error) {
	account, err := r.accountRepo.Fetch(userID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("could not fetch account: %w", err)
	}
	return models.HashedPassword(account.HashedPassword).Verify(password), nil
}
