package services

import (
	"github.com/furedea/pairs/internal/models"
	"github.com/furedea/pairs/internal/recommend"
	"github.com/furedea/pairs/internal/repositories"
)

// RecommendService はゲーム推薦のビジネスロジックを扱います。
type RecommendService struct {
	client      *recommend.Client
	historyRepo *repositories.HistoryRepository
}

// NewRecommendService は新しいRecommendServiceを作成します。
func NewRecommendService(client *recommend.Client, historyRepo *repositories.HistoryRepository) *RecommendService {
	return &RecommendService{client: client, historyRepo: historyRepo}
}

// Recommend は好みに合ったゲームの推薦文を生成し、推薦ゲーム名を抽出します。
// ログイン中(userIDがnilでない)の場合のみ履歴を保存します。
// 推薦文が得られない・推薦ゲーム名が抽出できない場合は履歴を保存せずエラーを返します。
func (s *RecommendService) Recommend(
	userID *models.UserID,
	genre models.Genre,
	price models.Price,
	hardware models.Hardware,
	gameFormat models.GameFormat,
	worldView models.WorldView,
	detail models.Detail,
) (string, models.RecommendedGame, error) {
	recommendedText, err := s.client.Generate(genre, price, hardware, gameFormat, worldView, detail)
	if err != nil {
		return "", "", err
	}

	recommendedGame, err := models.ExtractRecommendedGame(recommendedText)
	if err != nil {
		return "", "", err
	}

	if userID != nil {
		history := models.NewHistory(*userID, genre, price, hardware, gameFormat, worldView, detail, recommendedGame)
		if _, err := s.historyRepo.Add(history); err != nil {
			return "", "", err
		}
	}
	return recommendedText, recommendedGame, nil
}
