// =============================================================================
// render.go - 番組表の出力
// =============================================================================
//
// 抽出した番組を端末向けのテキストにします。出力形式は2種類:
//
//	list: 時刻順の一覧（1時間ごとに見出し）
//	grid: チャンネルを列、時間を行にした罫線付きの表
//
// どちらの形式も最後に出典（bangumi.org）を1行出力する。
//
// =============================================================================
package render

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"tvshow/internal/broadcast"
	"tvshow/internal/listing"
)

// Attribution は出力の最後に付ける出典表示
const Attribution = "This TV schedule is got from テレビ番組表Gガイド(https://bangumi.org)"

// Mode は出力形式
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// MaxHours は表示できる時間幅の上限（1週間）
const MaxHours = 24 * 7

// ErrUnknownMode は未対応の出力形式
var ErrUnknownMode = errors.New("unknown output mode")

// ParseMode は文字列を Mode に変換する
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeGrid, ModeList:
		return m, nil
	}
	return "", errors.Wrapf(ErrUnknownMode, "mode %q (valid modes: %s, %s)", s, ModeGrid, ModeList)
}

// Renderer は現在時刻と表示範囲を持ち、番組を整形する
type Renderer struct {
	Channels listing.Channels
	Now      time.Time
	Hours    int  // 現在時刻から何時間先まで表示するか
	Verbose  bool // list で番組詳細とリンクも出す
}

// Render は mode に応じて List または Grid を呼ぶ
func (r Renderer) Render(w io.Writer, mode Mode, programs []listing.Program) error {
	switch mode {
	case ModeGrid:
		return r.Grid(w, programs)
	case ModeList:
		return r.List(w, programs)
	}
	return errors.Wrapf(ErrUnknownMode, "%q", mode)
}

// window は表示範囲の両端を YYYYMMDDHHMM で返す
func (r Renderer) window() (string, string) {
	return broadcast.Stamp(r.Now), broadcast.Stamp(r.Now.Add(time.Duration(r.Hours) * time.Hour))
}

// clock は YYYYMMDDHHMM から "HH:MM" を取り出す
func clock(stamp string) string {
	return stamp[8:10] + ":" + stamp[10:12]
}

// writeAttribution は出典行を書く
func writeAttribution(b *strings.Builder, style lipgloss.Style) {
	b.WriteString("\n")
	b.WriteString(style.Render(Attribution))
	b.WriteString("\n")
}

func flush(w io.Writer, b *strings.Builder) error {
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write schedule failed")
	}
	return nil
}
