package models

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// UserID はユーザーIDのラッパー型です。構築時に入力値を検証します。
type UserID string

// NewUserID は文字数(5~20文字)を検証してUserIDを構築します。
func NewUserID(value string) (UserID, error) {
	if length := utf8.RuneCountInString(value); length < 5 || length > 20 {
		return "", errors.New("ユーザーIDは5文字以上20文字以下である必要があります")
	}
	return UserID(value), nil
}

// String はユーザーIDの文字列表現を返します。
func (u UserID) String() string {
	return string(u)
}

// Password は平文パスワードのラッパー型です。ハッシュ化前の一時的な値としてのみ使います。
type Password string

// NewPassword はパスワードを検証して構築します。
// 8文字以上で、英字と数字をそれぞれ1文字以上含む必要があります。
func NewPassword(value string) (Password, error) {
	if utf8.RuneCountInString(value) < 8 {
		return "", errors.New("パスワードは8文字以上である必要があります")
	}
	hasLetter := false
	hasDigit := false
	for _, char := range value {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return "", errors.New("パスワードには英字が必要です")
	}
	if !hasDigit {
		return "", errors.New("パスワードには数字が必要です")
	}
	return Password(value), nil
}

// HashedPassword はbcryptでハッシュ化されたパスワードです。平文は保持しません。
type HashedPassword string

// HashPassword はPasswordを一方向ハッシュ化してHashedPasswordを構築します。
func HashPassword(password Password) (HashedPassword, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return HashedPassword(hashed), nil
}

// Verify は平文パスワードがハッシュと一致するかを検証します。
func (h HashedPassword) Verify(password Password) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(password)) == nil
}

// Age は年齢のラッパー型です。
type Age int

// NewAge は範囲(0~100)を検証してAgeを構築します。
func NewAge(value int) (Age, error) {
	if value < 0 || value > 100 {
		return 0, errors.New("年齢は0以上100以下である必要があります")
	}
	return Age(value), nil
}

// Sex は性別のラッパー型です。
type Sex string

// NewSex は選択肢への所属を検証してSexを構築します。
func NewSex(value string) (Sex, error) {
	if !slices.Contains(SexOptions, value) {
		return "", fmt.Errorf("無効な値です: %s, 有効な値は%s", value, strings.Join(SexOptions, ", "))
	}
	return Sex(value), nil
}

// validateOptions は", "区切りの複数選択文字列を検証します。
// 空文字列は「未選択」として常に有効です。選択順や重複は呼び出し側の入力を
// そのまま保持し、正規化はしません。
func validateOptions(validOptions []string, value string) error {
	if value == "" {
		return nil
	}
	var invalidValues []string
	for _, option := range strings.Split(value, ", ") {
		if !slices.Contains(validOptions, strings.TrimSpace(option)) {
			invalidValues = append(invalidValues, option)
		}
	}
	if len(invalidValues) > 0 {
		return fmt.Errorf(
			"無効な値です: %s, 有効な値は%s, 検証したい値は%s",
			strings.Join(invalidValues, ", "), strings.Join(validOptions, ", "), value,
		)
	}
	return nil
}

// Genre はジャンルのラッパー型です。", "区切りの複数選択文字列を保持します。
type Genre string

// NewGenre は選択肢への所属を検証してGenreを構築します。
func NewGenre(value string) (Genre, error) {
	if err := validateOptions(GenreOptions, value); err != nil {
		return "", err
	}
	return Genre(value), nil
}

// Hardware はハードウェアのラッパー型です。
type Hardware string

// NewHardware は選択肢への所属を検証してHardwareを構築します。
func NewHardware(value string) (Hardware, error) {
	if err := validateOptions(HardwareOptions, value); err != nil {
		return "", err
	}
	return Hardware(value), nil
}

// GameFormat はゲーム形式のラッパー型です。
type GameFormat string

// NewGameFormat は選択肢への所属を検証してGameFormatを構築します。
func NewGameFormat(value string) (GameFormat, error) {
	if err := validateOptions(GameFormatOptions, value); err != nil {
		return "", err
	}
	return GameFormat(value), nil
}

// WorldView は世界観のラッパー型です。
type WorldView string

// NewWorldView は選択肢への所属を検証してWorldViewを構築します。
func NewWorldView(value string) (WorldView, error) {
	if err := validateOptions(WorldViewOptions, value); err != nil {
		return "", err
	}
	return WorldView(value), nil
}

// Price は価格帯(下限と上限)のラッパー型です。
type Price struct {
	low  int
	high int
}

// NewPrice は価格帯を検証してPriceを構築します。
// 下限・上限はそれぞれ0以上10000以下かつ1000の倍数で、下限は上限以下である必要があります。
func NewPrice(low, high int) (Price, error) {
	for _, price := range []int{low, high} {
		if price < 0 || price > 10000 {
			return Price{}, errors.New("価格は0円以上10000円以下である必要があります")
		}
		if price%1000 != 0 {
			return Price{}, errors.New("価格は1000円単位である必要があります")
		}
	}
	if low > high {
		return Price{}, errors.New("最低価格は最高価格以下である必要があります")
	}
	return Price{low: low, high: high}, nil
}

// Low は価格帯の下限を返します。
func (p Price) Low() int {
	return p.low
}

// High は価格帯の上限を返します。
func (p Price) High() int {
	return p.high
}

// Display は表示用の価格文字列を返します。
func (p Price) Display() string {
	return fmt.Sprintf("%d円 ~ %d円", p.low, p.high)
}

// Detail は詳細(自由記述)のラッパー型です。
type Detail string

// NewDetail は文字数(1000文字以内)を検証してDetailを構築します。
func NewDetail(value string) (Detail, error) {
	if utf8.RuneCountInString(value) > 1000 {
		return "", errors.New("詳細は1000文字以内である必要があります")
	}
	return Detail(value), nil
}

// recommendedGamePattern は生成テキストから推薦ゲーム行を抜き出すパターンです。
var recommendedGamePattern = regexp.MustCompile(`推薦ゲーム: ([^\n]*)`)

// RecommendedGame は推薦されたゲーム名のラッパー型です。
type RecommendedGame string

// NewRecommendedGame は文字数(100文字以内)を検証してRecommendedGameを構築します。
func NewRecommendedGame(value string) (RecommendedGame, error) {
	if utf8.RuneCountInString(value) > 100 {
		return "", errors.New("推薦ゲームは100文字以内である必要があります")
	}
	return RecommendedGame(value), nil
}

// ExtractRecommendedGame は生成されたテキストから「推薦ゲーム: 」に続く行を抽出します。
// 該当する行が存在しない場合はエラーを返します。
func ExtractRecommendedGame(recommendedText string) (RecommendedGame, error) {
	match := recommendedGamePattern.FindStringSubmatch(recommendedText)
	if match == nil {
		return "", errors.New("予期せぬエラーが発生しました: 推薦ゲームが見つかりませんでした")
	}
	return NewRecommendedGame(match[1])
}
