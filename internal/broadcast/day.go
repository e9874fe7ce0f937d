// =============================================================================
// day.go - 放送日の計算
// =============================================================================
//
// 番組表の「1日」は 05:00 から翌 05:00 までです（放送日）。
// 深夜 03:00 に番組表を見る場合、取得すべきは前日の番組表になります。
//
// 【このファイルで提供する機能】
//   - EffectiveDate: 現在時刻から放送日（YYYYMMDD）を求める
//   - NeedsNextDay:  表示範囲が次の 05:00 をまたぐか判定する
//   - Stamp / ParseStamp: YYYYMMDDHHMM 形式との相互変換
//
// どれも副作用のない純粋関数で、テストで全時刻を総当たりしている。
//
// =============================================================================
package broadcast

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// CutoverHour は放送日が切り替わる時刻（時）
	CutoverHour = 5

	// StampLayout は番組の開始・終了時刻の形式（YYYYMMDDHHMM）
	StampLayout = "200601021504"

	// DateLayout は番組表リクエストの日付形式（YYYYMMDD）
	DateLayout = "20060102"
)

// EffectiveDate は now が属する放送日を YYYYMMDD で返す
//
// 05:00 より前は前日の放送日として扱う。
//
//	EffectiveDate(2025-01-15 03:00) // "20250114"
//	EffectiveDate(2025-01-15 05:00) // "20250115"
func EffectiveDate(now time.Time) string {
	return dayStart(now).Format(DateLayout)
}

// NextBoundary は now が属する放送日の終わり（次の 05:00）を返す
func NextBoundary(now time.Time) time.Time {
	return dayStart(now).AddDate(0, 0, 1)
}

// NeedsNextDay は now から hours 時間後までの範囲に次の放送日が含まれるかを返す
//
// 範囲の終端がちょうど 05:00 の場合も true。05:00 開始の番組は次の放送日の
// 番組表にしか載らないため。
func NeedsNextDay(now time.Time, hours int) bool {
	if hours <= 0 {
		return false
	}
	end := now.Add(time.Duration(hours) * time.Hour)
	return !end.Before(NextBoundary(now))
}

// NextDate は YYYYMMDD の翌日を返す
func NextDate(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", errors.Wrapf(err, "invalid broadcast date %q", date)
	}
	return d.AddDate(0, 0, 1).Format(DateLayout), nil
}

// Stamp は時刻を YYYYMMDDHHMM に整形する
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseStamp は YYYYMMDDHHMM を loc の時刻として解釈する
func ParseStamp(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(StampLayout, s, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp %q", s)
	}
	return t, nil
}

// dayStart は now が属する放送日の開始時刻（その日の 05:00）を返す
func dayStart(now time.Time) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), CutoverHour, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}
