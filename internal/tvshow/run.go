// =============================================================================
// run.go - 取得から表示までの処理の流れ
// =============================================================================
//
// 【処理フロー】
//
//	1. エリア名 → エリアID
//	2. 現在時刻 → 放送日（05:00 区切り）
//	3. 放送日の番組表を取得・解析        … 失敗したらエラー（致命的）
//	4. 表示範囲が次の 05:00 をまたぐなら翌放送日も取得・解析してマージ
//	                                       … 失敗してもログだけ出して続行
//	5. list / grid で出力
//
// すべて1つのゴルーチンで順番に行う。通信は同時に1本だけ。
//
// =============================================================================
package tvshow

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tvshow/internal/area"
	"tvshow/internal/broadcast"
	"tvshow/internal/listing"
	"tvshow/internal/render"
)

// Fetcher は1放送日分の番組表HTMLを取得する
type Fetcher interface {
	FetchDay(ctx context.Context, date, areaID string) (string, error)
}

// Options は1回の実行の設定
type Options struct {
	Area    string      // エリア名
	Hours   int         // 表示する時間幅
	Mode    render.Mode // 出力形式
	Verbose bool        // list で番組詳細とリンクも出す
	Now     time.Time   // 現在時刻（ゼロ値なら time.Now()）
}

// Runner は取得・解析・表示をまとめて行う
type Runner struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// New は Runner を作る。logger が nil なら何も出力しない
func New(fetcher Fetcher, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{fetcher: fetcher, logger: logger}
}

// Run は番組表を取得して w に出力する
func (r *Runner) Run(ctx context.Context, opts Options, w io.Writer) error {
	a, err := area.Lookup(opts.Area)
	if err != nil {
		return err
	}
	if opts.Hours < 1 || opts.Hours > render.MaxHours {
		return errors.Errorf("hours must be between 1 and %d, got %d", render.MaxHours, opts.Hours)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	channels, l, err := r.Collect(ctx, a, now, opts.Hours)
	if err != nil {
		return err
	}

	rd := render.Renderer{
		Channels: channels,
		Now:      now,
		Hours:    opts.Hours,
		Verbose:  opts.Verbose,
	}
	return rd.Render(w, opts.Mode, l.Programs())
}

// Collect は表示範囲に必要な放送日の番組表を取得し、1つの Listing にまとめる
//
// 1日目の失敗はエラーとして返す。2日目（翌放送日）の失敗は無視し、
// 1日目の分だけを返す。
func (r *Runner) Collect(ctx context.Context, a area.Area, now time.Time, hours int) (listing.Channels, *listing.Listing, error) {
	date := broadcast.EffectiveDate(now)

	channels, l, err := r.fetchDay(ctx, date, a)
	if err != nil {
		return nil, nil, err
	}
	r.logger.Info("Parsed TV schedule.",
		zap.String("area", a.Name),
		zap.String("date", date),
		zap.Int("channels", len(channels)),
		zap.Int("programs", l.Len()))

	if !broadcast.NeedsNextDay(now, hours) {
		return channels, l, nil
	}

	next, err := broadcast.NextDate(date)
	if err != nil {
		r.logger.Debug("Skipped the next broadcast day.", zap.Error(err))
		return channels, l, nil
	}
	nextChannels, nextListing, err := r.fetchDay(ctx, next, a)
	if err != nil {
		r.logger.Debug("Failed to fetch the next broadcast day. Continue with the first day only.",
			zap.String("date", next), zap.Error(err))
		return channels, l, nil
	}

	added := l.Merge(nextListing)
	if len(channels) == 0 {
		channels = nextChannels
	}
	r.logger.Info("Merged the next broadcast day.", zap.String("date", next), zap.Int("added", added))

	return channels, l, nil
}

// fetchDay は1放送日分を取得して解析する
func (r *Runner) fetchDay(ctx context.Context, date string, a area.Area) (listing.Channels, *listing.Listing, error) {
	html, err := r.fetcher.FetchDay(ctx, date, a.ID)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "fetch %s schedule for %s", a.Name, date)
	}
	channels, l, err := listing.ParseHTML(html)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse %s schedule for %s", a.Name, date)
	}
	if l.Len() == 0 && !strings.Contains(html, "program_area") {
		r.logger.Warn("The page has no program area. The page layout may have changed.",
			zap.String("area", a.Name), zap.String("date", date))
	}
	return channels, l, nil
}
