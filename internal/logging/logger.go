// =============================================================================
// logger.go - ログ設定
// =============================================================================
//
// 標準出力は番組表の出力に使うため、ログはすべて標準エラー出力へ書きます。
// FileName を指定した場合はローテーション付きのファイルにも書く（lumberjack）。
//
// =============================================================================
package logging

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config はログの設定
type Config struct {
	Level      string `yaml:"level"`      // debug / info / warn / error
	FileName   string `yaml:"fileName"`   // 空ならファイルには書かない
	MaxSize    int    `yaml:"maxSize"`    // ローテーションするサイズ（MB）
	MaxAge     int    `yaml:"maxAge"`     // 古いログを残す日数
	MaxBackups int    `yaml:"maxBackups"` // 古いログを残す個数
}

// DefaultLevel は既定のログレベル
//
// warn なので、翌日分の番組表取得の失敗（debug）は既定では表示されない。
const DefaultLevel = "warn"

// New は設定に従って Logger を作る
func New(cfg Config, stderr io.Writer) (*zap.Logger, error) {
	levelText := cfg.Level
	if levelText == "" {
		levelText = DefaultLevel
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	if stderr == nil {
		stderr = os.Stderr
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(stderr), level),
	}

	if cfg.FileName != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(file), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	ec.TimeKey = "time"
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	return ec
}
