// =============================================================================
// types.go - データ構造定義
// =============================================================================
//
// このファイルは番組表全体で使用するデータ構造（型）を定義します。
//
// 【このファイルで定義している型】
//   - Program:  1つの番組枠
//   - Channels: チャンネル名の一覧（チャンネル番号 N は添字 N-1）
//   - Listing:  (開始時刻, チャンネル) をキーに重複排除した番組の集合
//
// 【時刻の扱い】
//   Start / End は "YYYYMMDDHHMM" の12文字の文字列。
//   桁数が固定なので、文字列の大小比較がそのまま時刻の前後関係になる。
//
// =============================================================================
package listing

import (
	"fmt"
	"sort"
)

// Program は番組表の1エントリ
type Program struct {
	ID          string // se-id から固定の7文字プレフィックスを除いたもの
	Channel     int    // チャンネル番号（1始まり）
	Name        string // 番組名（必須）
	Description string // 番組詳細（空の場合あり）
	Link        string // 番組ページのURL（空の場合あり）
	Start       string // 開始時刻 YYYYMMDDHHMM
	End         string // 終了時刻 YYYYMMDDHHMM
}

// Channels はチャンネル名の一覧
type Channels []string

// Name はチャンネル番号 n の表示名を返す
//
// 一覧に無い番号は "ch<n>" を返す。
func (c Channels) Name(n int) string {
	if n >= 1 && n <= len(c) {
		return c[n-1]
	}
	return fmt.Sprintf("ch%d", n)
}

// key は Listing の重複判定キー
type key struct {
	start   string
	channel int
}

// Listing は番組の集合
//
// 同じ (Start, Channel) の番組は最初に追加されたものだけが残る。
// 2日分の番組表を取得したときに重なった枠を吸収するため。
type Listing struct {
	programs map[key]Program
}

// NewListing は空の Listing を作る
func NewListing() *Listing {
	return &Listing{programs: make(map[key]Program)}
}

// Add は番組を追加する。同じキーが既にあれば何もせず false を返す
func (l *Listing) Add(p Program) bool {
	k := key{start: p.Start, channel: p.Channel}
	if _, ok := l.programs[k]; ok {
		return false
	}
	l.programs[k] = p
	return true
}

// Merge は src の番組をすべて l に追加する（既存の枠が優先）
func (l *Listing) Merge(src *Listing) int {
	if src == nil {
		return 0
	}
	added := 0
	for _, p := range src.Programs() {
		if l.Add(p) {
			added++
		}
	}
	return added
}

// Len は番組数を返す
func (l *Listing) Len() int {
	return len(l.programs)
}

// Programs は番組を (Start, Channel) 順に並べて返す
func (l *Listing) Programs() []Program {
	out := make([]Program, 0, len(l.programs))
	for _, p := range l.programs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Channel < out[j].Channel
	})
	return out
}
