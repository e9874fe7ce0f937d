// =============================================================================
// text.go - 表示幅を考慮した文字列操作
// =============================================================================
//
// 端末上の表示幅は文字数と一致しません（全角は2カラム、半角は1カラム）。
// 番組表をグリッドで揃えるため、幅の計測・切り詰め・パディングはすべて
// 表示幅（go-runewidth）で行います。
//
// 【絵文字・記号の扱い】
//   🈑 🈞 ♪ などの装飾記号は端末によって表示幅がまちまちで、列がずれる。
//   そのため計測の前に取り除き、出力にも出さない。
//   このファイルの関数はすべて、まず StripDecorations を通してから処理する。
//
// =============================================================================
package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// widthCond は East Asian Ambiguous を半角として数える計測条件
//
// runewidth.DefaultCondition はロケール環境変数で結果が変わるため使わない。
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StripDecorations は装飾用の記号・絵文字を取り除く
//
// 対象: Unicode の So（その他の記号）、異体字セレクタ、ZWJ、キーキャップ結合子、
// 肌の色の修飾子（U+1F3FB–U+1F3FF）、旗の絵文字に続くタグ文字（U+E0020–U+E007F）
func StripDecorations(s string) string {
	return strings.Map(func(r rune) rune {
		if isDecoration(r) {
			return -1
		}
		return r
	}, s)
}

func isDecoration(r rune) bool {
	switch {
	case unicode.Is(unicode.So, r):
		return true
	case unicode.Is(unicode.Variation_Selector, r):
		return true
	case r == '\u200d', r == '\u20e3':
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r >= 0xE0020 && r <= 0xE007F:
		return true
	}
	return false
}

// Width は装飾を除いた文字列の表示幅を返す
func Width(s string) int {
	return rawWidth(StripDecorations(s))
}

// Truncate は表示幅が w 以下に収まる最長の先頭部分を返す
//
// 次の1文字で w を超える時点で止めるので、文字の途中で切れることはない。
func Truncate(s string, w int) string {
	head, _ := split(StripDecorations(s), w)
	return head
}

// PadRight は表示幅がちょうど w になるよう右側を空白で埋める
//
// 既に w 以上なら切り詰めてから埋める（全角が1カラム分はみ出す場合も幅は w）。
func PadRight(s string, w int) string {
	t := Truncate(s, w)
	return t + spaces(w-rawWidth(t))
}

// Center は表示幅がちょうど w になるよう左右を空白で埋める
//
// 余りの幅は左に floor(pad/2)、右に残りを割り当てる。
func Center(s string, w int) string {
	t := Truncate(s, w)
	pad := w - rawWidth(t)
	left := pad / 2
	return spaces(left) + t + spaces(pad-left)
}

// Wrap2 は文字列を幅 w の2行に折り返す
//
// 2行目は1行目に入りきらなかった残り（先頭の空白は除く）を再び幅 w で切り詰めたもの。
func Wrap2(s string, w int) (string, string) {
	first, rest := split(StripDecorations(s), w)
	second, _ := split(strings.TrimLeft(rest, " "), w)
	return first, second
}

// split は装飾除去済みの文字列を幅 w の位置で2つに分ける
func split(s string, w int) (string, string) {
	used := 0
	for i, r := range s {
		rw := widthCond.RuneWidth(r)
		if used+rw > w {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

func rawWidth(s string) int {
	w := 0
	for _, r := range s {
		w += widthCond.RuneWidth(r)
	}
	return w
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
