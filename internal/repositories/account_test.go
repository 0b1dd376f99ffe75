package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/repositories"
	"github.com/furedea/pairs/testutil"
)

func mustUserID(t *testing.T, value string) models.UserID {
	t.Helper()
	userID, err := models.NewUserID(value)
	require.NoError(t, err)
	return userID
}

func mustPassword(t *testing.T, value string) models.Password {
	t.Helper()
	password, err := models.NewPassword(value)
	require.NoError(t, err)
	return password
}

func addTestAccount(t *testing.T, repo *repositories.AccountRepository, userID, password string) models.UserID {
	t.Helper()
	userIDModel := mustUserID(t, userID)
	age, err := models.NewAge(25)
	require.NoError(t, err)
	sex, err := models.NewSex("男性")
	require.NoError(t, err)
	require.NoError(t, repo.Add(userIDModel, mustPassword(t, password), age, sex))
	return userIDModel
}

func TestAccountRepository_AddAndFetch(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := repositories.NewAccountRepository(db)

	userID := addTestAccount(t, repo, "player1", "pass1234")

	account, err := repo.Fetch(userID)
	require.NoError(t, err)
	assert.Equal(t, "player1", account.UserID)
	assert.Equal(t, 25, account.Age)
	assert.Equal(t, "男性", account.Sex)
	assert.True(t, models.HashedPassword(account.HashedPassword).Verify(mustPassword(t, "pass1234")),
		"格納されるのはハッシュで、元のパスワードを検証できる")
}

func TestAccountRepository_AddDuplicate(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := repositories.NewAccountRepository(db)

	userID := addTestAccount(t, repo, "abcde", "pass1234")

	age, err := models.NewAge(30)
	require.NoError(t, err)
	sex, err := models.NewSex("女性")
	require.NoError(t, err)
	err = repo.Add(userID, mustPassword(t, "other123"), age, sex)
	assert.ErrorIs(t, err, repositories.ErrUserIDExists, "同じユーザーIDの二重登録は一意性違反になる")

	// 最初のアカウントはそのまま残る
	account, err := repo.Fetch(userID)
	require.NoError(t, err)
	assert.Equal(t, 25, account.Age)
}

func TestAccountRepository_FetchNotFound(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := repositories.NewAccountRepository(db)

	_, err := repo.Fetch(mustUserID(t, "ghost1"))
	assert.ErrorIs(t, err, repositories.ErrAccountNotFound)
}

func TestAccountRepository_Delete(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := repositories.NewAccountRepository(db)

	userID := addTestAccount(t, repo, "player1", "pass1234")
	require.NoError(t, repo.Delete(userID))

	_, err := repo.Fetch(userID)
	assert.ErrorIs(t, err, repositories.ErrAccountNotFound)

	err = repo.Delete(userID)
	assert.ErrorIs(t, err, repositories.ErrAccountNotFound, "存在しないアカウントの削除はNotFoundになる")
}

func TestUserRepository_Login(t *testing.T) {
	db := testutil.SetupDB(t)
	accountRepo := repositories.NewAccountRepository(db)
	userRepo := repositories.NewUserRepository(accountRepo)

	userID := addTestAccount(t, accountRepo, "player1", "pass1234")

	ok, err := userRepo.Login(userID, mustPassword(t, "pass1234"))
	require.NoError(t, err)
	assert.True(t, ok, "正しいIDとパスワードでログインできる")

	ok, err = userRepo.Login(userID, mustPassword(t, "wrong1234"))
	require.NoError(t, err)
	assert.False(t, ok, "パスワードが違う場合はfalse")

	ok, err = userRepo.Login(mustUserID(t, "ghost1"), mustPassword(t, "pass1234"))
	require.NoError(t, err)
	assert.False(t, ok, "存在しないIDの場合はfalse")
}
