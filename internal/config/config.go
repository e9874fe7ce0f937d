// =============================================================================
// config.go - 設定
// =============================================================================
//
// 設定の優先順位:
//
//	既定値  <  --config で指定したYAMLファイル  <  コマンドラインフラグ
//
// YAMLファイルは任意。指定しなければ既定値とフラグだけで動く。
//
// 【YAMLの例】
//
//	area: 大阪
//	hours: 6
//	mode: list
//	timeout: 15s
//	log:
//	  level: debug
//
// =============================================================================
package config

import (
	"os"
	"time"
	_ "time/tzdata" // Asia/Tokyo を zoneinfo の無い環境でも読めるようにする

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"tvshow/internal/area"
	"tvshow/internal/bangumi"
	"tvshow/internal/logging"
	"tvshow/internal/render"
)

const (
	// DefaultHours は表示する時間幅の既定値
	DefaultHours = 12

	// DefaultLocation は番組表の時刻のタイムゾーン
	DefaultLocation = "Asia/Tokyo"
)

// ErrInvalidConfig は設定値の誤り
var ErrInvalidConfig = errors.New("invalid config")

// Config はアプリケーション全体の設定
type Config struct {
	Area      string         `yaml:"area"`      // エリア名（例: 東京）
	Hours     int            `yaml:"hours"`     // 現在時刻から何時間先まで表示するか
	Mode      string         `yaml:"mode"`      // grid / list
	Verbose   bool           `yaml:"verbose"`   // list で番組詳細とリンクも出す
	Timeout   time.Duration  `yaml:"timeout"`   // HTTPタイムアウト
	BaseURL   string         `yaml:"baseURL"`   // 番組表サイトのURL
	UserAgent string         `yaml:"userAgent"` // HTTPリクエストの User-Agent
	Location  string         `yaml:"location"`  // 現在時刻のタイムゾーン
	Log       logging.Config `yaml:"log"`
}

// Default は既定値の Config を返す
func Default() *Config {
	return &Config{
		Area:      area.DefaultName,
		Hours:     DefaultHours,
		Mode:      string(render.ModeGrid),
		Timeout:   bangumi.DefaultTimeout,
		BaseURL:   bangumi.DefaultBaseURL,
		UserAgent: bangumi.DefaultUserAgent,
		Location:  DefaultLocation,
		Log: logging.Config{
			Level:      logging.DefaultLevel,
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 3,
		},
	}
}

// Load は既定値の上に YAML ファイルの内容を重ねて返す
func Load(fPath string) (*Config, error) {
	cfg := Default()
	if fPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, errors.Wrap(err, "read config failed")
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s failed", fPath)
	}
	return cfg, nil
}

// Validate は設定値を検証する
func (c *Config) Validate() error {
	if c.Hours < 1 || c.Hours > render.MaxHours {
		return errors.Wrapf(ErrInvalidConfig, "hours must be between 1 and %d, got %d", render.MaxHours, c.Hours)
	}
	if c.Timeout <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := area.Lookup(c.Area); err != nil {
		return err
	}
	if _, err := c.TimeLocation(); err != nil {
		return err
	}
	return nil
}

// TimeLocation は Location を *time.Location に変換する
//
// 空文字の場合はローカルタイムゾーン。
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "location %q: %v", c.Location, err)
	}
	return loc, nil
}
