// =============================================================================
// area.go - 放送エリア定義
// =============================================================================
//
// bangumi.org の番組表はエリアごとに ggm_group_id で切り替わります。
// このファイルはエリア名（地名）から ggm_group_id への静的な対応表を持ちます。
//
// 【ポイント】
//   - 表は起動時に一度だけ作られ、以降は変更されない（読み取り専用）
//   - 順序付きのスライスで持つため、エラーメッセージや `tvshow areas` の
//     出力順が常に同じになる
//
// =============================================================================
package area

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultName はエリア未指定時に使うエリア名
const DefaultName = "東京"

// ErrUnknownArea は表にないエリア名が指定されたことを示す
var ErrUnknownArea = errors.New("unknown area")

// Area はエリア名と ggm_group_id の組
type Area struct {
	Name string // 表示名（例: "東京"）
	ID   string // ggm_group_id（例: "42"）
}

// table は全エリアの対応表（北から順）
var table = []Area{
	{"札幌", "1"},
	{"函館", "8"},
	{"旭川", "3"},
	{"帯広", "9"},
	{"釧路", "10"},
	{"北見", "12"},
	{"室蘭", "6"},
	{"青森", "13"},
	{"岩手", "16"},
	{"宮城", "19"},
	{"秋田", "22"},
	{"山形", "25"},
	{"福島", "28"},
	{"東京", "42"},
	{"神奈川", "45"},
	{"埼玉", "37"},
	{"千葉", "40"},
	{"茨城", "31"},
	{"栃木", "33"},
	{"群馬", "35"},
	{"山梨", "50"},
	{"長野", "51"},
	{"新潟", "56"},
	{"愛知", "73"},
	{"石川", "60"},
	{"静岡", "67"},
	{"福井", "62"},
	{"富山", "58"},
	{"三重", "76"},
	{"岐阜", "64"},
	{"大阪", "84"},
	{"京都", "81"},
	{"兵庫", "85"},
	{"和歌山", "93"},
	{"奈良", "91"},
	{"滋賀", "79"},
	{"広島", "101"},
	{"岡山", "98"},
	{"島根", "96"},
	{"鳥取", "95"},
	{"山口", "105"},
	{"愛媛", "112"},
	{"香川", "110"},
	{"徳島", "109"},
	{"高知", "116"},
	{"福岡", "117"},
	{"熊本", "126"},
	{"長崎", "123"},
	{"鹿児島", "131"},
	{"宮崎", "129"},
	{"大分", "127"},
	{"佐賀", "122"},
	{"沖縄", "134"},
	{"北九州", "120"},
}

// All は全エリアを表の順序で返す（呼び出し側が書き換えても表は変わらない）
func All() []Area {
	return append([]Area(nil), table...)
}

// Names は全エリア名を表の順序で返す
func Names() []string {
	names := make([]string, 0, len(table))
	for _, a := range table {
		names = append(names, a.Name)
	}
	return names
}

// Lookup はエリア名から Area を引く
//
// 見つからない場合は ErrUnknownArea を包んだエラーを返し、
// メッセージには指定可能な全エリア名を列挙する。
func Lookup(name string) (Area, error) {
	name = strings.TrimSpace(name)
	for _, a := range table {
		if a.Name == name {
			return a, nil
		}
	}
	return Area{}, errors.Wrapf(ErrUnknownArea, "area %q (valid areas: %s)", name, strings.Join(Names(), ", "))
}
