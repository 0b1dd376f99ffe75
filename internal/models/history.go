package models

// History は検索履歴のデータベース構造体を表します。
// 検証済みの値型からのみ構築してください。
type History struct {
	ID              int    `json:"id,omitempty"` // 主キー(自動採番)
	UserID          string `json:"user_id"`
	Genre           string `json:"genre"`
	Price           string `json:"price"` // 表示用文字列 (例: "0円 ~ 5000円")
	Hardware        string `json:"hardware"`
	GameFormat      string `json:"game_format"`
	WorldView       string `json:"world_view"`
	Detail          string `json:"detail"`
	RecommendedGame string `json:"recommended_game"`
}

// NewHistory は検証済みの値型からHistoryを構築します。
func NewHistory(
	userID UserID,
	genre Genre,
	price Price,
	hardware Hardware,
	gameFormat GameFormat,
	worldView WorldView,
	detail Detail,
	recommendedGame RecommendedGame,
) *History {
	return &History{
		UserID:          string(userID),
		Genre:           string(genre),
		Price:           price.Display(),
		Hardware:        string(hardware),
		GameFormat:      string(gameFormat),
		WorldView:       string(worldView),
		Detail:          string(detail),
		RecommendedGame: string(recommendedGame),
	}
}
