package models

// Account はアカウントのデータベース構造体を表します。
// 検証済みの値型からのみ構築してください。
type Account struct {
	UserID         string `json:"user_id"`
	HashedPassword string `json:"-"` // JSONに出さない
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
}

// NewAccount は検証済みの値型からAccountを構築します。
func NewAccount(userID UserID, hashedPassword HashedPassword, age Age, sex Sex) *Account {
	return &Account{
		UserID:         string(userID),
		HashedPassword: string(hashedPassword),
		Age:            int(age),
		Sex:            string(sex),
	}
}
