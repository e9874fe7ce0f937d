package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tvshow/internal/listing"
)

const (
	// ColumnWidth はチャンネル列1つの表示幅
	ColumnWidth = 20
	// GutterWidth は左端の時刻欄の表示幅
	GutterWidth = 11
	// MaxChannels はグリッドに並べるチャンネル数の上限
	MaxChannels = 8

	hourLayout = "2006010215"
)

// Grid は番組をチャンネル×時間の表で書き出す
//
//	           │      NHK総合       │       Eテレ        │
//	───────────┼────────────────────┼────────────────────┤
//	21:00      │21:00 ニュース7     │21:30 きょうの料理  │
//	           │                    │                    │
//	───────────┼────────────────────┼────────────────────┤
//
// 対象は終了時刻が now 以上かつ開始時刻が now+Hours 以下の番組。
// 各セルにはその1時間に始まる最初の番組を入れ、入りきらない番組名は2行目へ送る。
func (r Renderer) Grid(w io.Writer, programs []listing.Program) error {
	faint := lipgloss.NewRenderer(w).NewStyle().Faint(true)
	from, to := r.window()

	var airing []listing.Program
	for _, p := range programs {
		if p.End < from || p.Start > to {
			continue
		}
		airing = append(airing, p)
	}

	var b strings.Builder
	channels := gridChannels(airing)
	if len(channels) == 0 {
		fmt.Fprintf(&b, "No programs within the next %d hours.\n", r.Hours)
		writeAttribution(&b, faint)
		return flush(w, &b)
	}

	cells := make([]string, len(channels))
	for i, ch := range channels {
		cells[i] = Center(r.Channels.Name(ch), ColumnWidth)
	}
	writeRow(&b, spaces(GutterWidth), cells)
	separator := rule(len(channels))
	b.WriteString(separator)

	lines := make([]string, len(channels))
	hour := time.Date(r.Now.Year(), r.Now.Month(), r.Now.Day(), r.Now.Hour(), 0, 0, 0, r.Now.Location())
	for i := 0; i <= r.Hours; i++ {
		prefix := hour.Format(hourLayout)
		for j, ch := range channels {
			cells[j], lines[j] = "", ""
			if p, ok := firstInHour(airing, ch, prefix); ok {
				cells[j], lines[j] = Wrap2(clock(p.Start)+" "+p.Name, ColumnWidth)
			}
			cells[j] = PadRight(cells[j], ColumnWidth)
			lines[j] = PadRight(lines[j], ColumnWidth)
		}
		writeRow(&b, PadRight(hour.Format("15")+":00", GutterWidth), cells)
		writeRow(&b, spaces(GutterWidth), lines)
		b.WriteString(separator)
		hour = hour.Add(time.Hour)
	}

	writeAttribution(&b, faint)
	return flush(w, &b)
}

// gridChannels は番組のあるチャンネルを番号の小さい順に最大 MaxChannels 個返す
func gridChannels(programs []listing.Program) []int {
	seen := map[int]bool{}
	var out []int
	for _, p := range programs {
		if !seen[p.Channel] {
			seen[p.Channel] = true
			out = append(out, p.Channel)
		}
	}
	sort.Ints(out)
	if len(out) > MaxChannels {
		out = out[:MaxChannels]
	}
	return out
}

// firstInHour は channel で prefix（YYYYMMDDHH）の時間に始まる最初の番組を返す
//
// programs は開始時刻順に並んでいること。
func firstInHour(programs []listing.Program, channel int, prefix string) (listing.Program, bool) {
	for _, p := range programs {
		if p.Channel == channel && strings.HasPrefix(p.Start, prefix) {
			return p, true
		}
	}
	return listing.Program{}, false
}

func writeRow(b *strings.Builder, gutter string, cells []string) {
	b.WriteString(gutter)
	for _, c := range cells {
		b.WriteString("│")
		b.WriteString(c)
	}
	b.WriteString("│\n")
}

// rule は列数 n の区切り線
func rule(n int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("─", GutterWidth))
	for i := 0; i < n; i++ {
		b.WriteString("┼")
		b.WriteString(strings.Repeat("─", ColumnWidth))
	}
	b.WriteString("┤\n")
	return b.String()
}
