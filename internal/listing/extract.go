// =============================================================================
// extract.go - 番組エントリの抽出
// =============================================================================
//
// HTMLから取り出した番組ノードを Program に変換し、Listing にまとめます。
//
// 【設計のポイント】
//   ノードの読み方（属性・タイトル・チャンネル番号の解決）は Node インターフェース
//   の向こう側に隠している。goquery を使う実装は document.go にあり、テストでは
//   HTMLパーサなしで作った偽ノードを渡せる。
//
// 【壊れたノードの扱い】
//   - タイトルが無い、チャンネルが解決できない → そのエントリは捨てる
//   - 開始/終了時刻が12桁に満たない           → 時間軸に置けないので捨てる
//   - 説明・リンク・ID が無い                   → 空文字
//   1件の欠損で全体を失敗させず、取れた分だけを返す。
//
// =============================================================================
package listing

import (
	"strings"
)

const (
	// idPrefixLen は se-id の先頭に付く固定プレフィックスの長さ
	idPrefixLen = 7

	// stampLen は YYYYMMDDHHMM の長さ
	stampLen = 12
)

// Node は番組1件分のノードから値を読み出す能力
type Node interface {
	// Attr は属性値を返す（無ければ空文字）
	Attr(name string) string
	// Channel は所属チャンネル番号を返す。解決できなければ false
	Channel() (int, bool)
	// Title は番組名を返す（無ければ空文字）
	Title() string
	// Link は最初のリンク先を返す（無ければ空文字）
	Link() string
	// Detail は番組詳細を返す（無ければ空文字）
	Detail() string
}

// 番組ノードの属性名
const (
	attrStart = "s"
	attrEnd   = "e"
	attrID    = "se-id"
)

// Extract はノード列から Listing を作る
func Extract(nodes []Node) *Listing {
	l := NewListing()
	for _, n := range nodes {
		p, ok := ToProgram(n)
		if !ok {
			continue
		}
		l.Add(p)
	}
	return l
}

// ToProgram は1つのノードを Program に変換する
//
// 捨てるべきノードの場合は false を返す。
func ToProgram(n Node) (Program, bool) {
	name := normalizeWhitespace(n.Title())
	if name == "" {
		return Program{}, false
	}

	channel, ok := n.Channel()
	if !ok || channel < 1 {
		return Program{}, false
	}

	start, ok := normalizeStamp(n.Attr(attrStart))
	if !ok {
		return Program{}, false
	}
	end, ok := normalizeStamp(n.Attr(attrEnd))
	if !ok {
		return Program{}, false
	}

	return Program{
		ID:          stripIDPrefix(n.Attr(attrID)),
		Channel:     channel,
		Name:        name,
		Description: normalizeWhitespace(n.Detail()),
		Link:        strings.TrimSpace(n.Link()),
		Start:       start,
		End:         end,
	}, true
}

// stripIDPrefix は se-id の先頭7文字を取り除く
func stripIDPrefix(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= idPrefixLen {
		return ""
	}
	return id[idPrefixLen:]
}

// normalizeStamp は時刻属性を YYYYMMDDHHMM に揃える
//
// 秒まで付いた14桁でも先頭12桁を使う。
func normalizeStamp(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < stampLen {
		return "", false
	}
	s = s[:stampLen]
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	return s, true
}

// normalizeWhitespace は文字列内の連続する空白を単一スペースに正規化する
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
