package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tvshow/internal/listing"
)

// List は番組を時刻順の一覧で書き出す
//
// 対象は終了時刻が now 以上かつ now+Hours 以下の番組。
// 開始時刻の YYYYMMDDHH が変わるたびに見出しを1回だけ出す。
//
//	2025/01/15 21時
//	21:00~22:00 [NHK総合1・東京] ニュース7 [101234]
func (r Renderer) List(w io.Writer, programs []listing.Program) error {
	lr := lipgloss.NewRenderer(w)
	heading := lr.NewStyle().Bold(true)
	faint := lr.NewStyle().Faint(true)

	from, to := r.window()

	var b strings.Builder
	lastHour := ""
	shown := 0
	for _, p := range programs {
		if p.End < from || p.End > to {
			continue
		}

		if hour := p.Start[:10]; hour != lastHour {
			if lastHour != "" {
				b.WriteString("\n")
			}
			b.WriteString(heading.Render(fmt.Sprintf("%s/%s/%s %s時", hour[0:4], hour[4:6], hour[6:8], hour[8:10])))
			b.WriteString("\n")
			lastHour = hour
		}

		fmt.Fprintf(&b, "%s~%s [%s] %s [%s]\n", clock(p.Start), clock(p.End), r.Channels.Name(p.Channel), p.Name, p.ID)
		if r.Verbose {
			if p.Description != "" {
				b.WriteString("    " + faint.Render(p.Description) + "\n")
			}
			if p.Link != "" {
				b.WriteString("    " + faint.Render(p.Link) + "\n")
			}
		}
		shown++
	}

	if shown == 0 {
		fmt.Fprintf(&b, "No programs end within the next %d hours.\n", r.Hours)
	}

	writeAttribution(&b, faint)
	return flush(w, &b)
}
