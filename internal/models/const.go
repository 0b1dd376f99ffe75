// Package models は検証済み値型と永続化レコード(Account, History)を定義します。
package models

import "fmt"

// PageID はアプリ内のページ識別子です。
type PageID string

const (
	PageLogin       PageID = "login"
	PageRegister    PageID = "register"
	PageRecommend   PageID = "recommend"
	PageAccountInfo PageID = "account_info"
	PageHistory     PageID = "history"
	PageDelete      PageID = "delete"
)

// pageTitles はページIDと表示タイトルの対応表です。
var pageTitles = map[PageID]string{
	PageLogin:       "ログイン",
	PageRegister:    "アカウント登録",
	PageRecommend:   "検索",
	PageAccountInfo: "アカウント情報",
	PageHistory:     "検索履歴",
	PageDelete:      "アカウント削除",
}

// ParsePageID は文字列をPageIDに変換します。未知のページはエラーを返します。
func ParsePageID(value string) (PageID, error) {
	page := PageID(value)
	if _, ok := pageTitles[page]; !ok {
		return "", fmt.Errorf("無効なページです: %s", value)
	}
	return page, nil
}

// Title はページの表示タイトルを返します。
func (p PageID) Title() string {
	return pageTitles[p]
}

// SexOptions は性別の選択肢です。
var SexOptions = []string{"男性", "女性", "その他"}

// GenreOptions はジャンルの選択肢です。
var GenreOptions = []string{
	"アクション",
	"アドベンチャー",
	"ロールプレイング",
	"シューティング",
	"シミュレーション",
	"スポーツ",
	"トリビア",
	"パズル",
	"ミュージック",
	"レース",
}

// HardwareOptions はハードウェアの選択肢です。
var HardwareOptions = []string{"Windows", "Mac", "iOS", "Android", "Switch", "Play Station"}

// GameFormatOptions はゲーム形式の選択肢です。
var GameFormatOptions = []string{"2D", "3D", "HD2D", "ドット", "アニメ調", "リアル調"}

// WorldViewOptions は世界観の選択肢です。
var WorldViewOptions = []string{
	"現代",
	"未来",
	"古代",
	"近代",
	"中世",
	"ファンタジー",
	"SF",
	"スチームパンク",
	"ホラー",
	"バトルロワイヤル",
}
