// Package logging はzerologを使ったアプリケーション共通のロガーを提供する
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("source", "memory").Msg("✅ 推薦データを読み込みました")
//	logging.Ctx(ctx).Warn().Err(err).Msg("⚠️ 返答の生成に失敗")
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config ロガーの設定
type Config struct {
	// Level は出力する最小レベル: debug, info, warn, error（既定: info）
	Level string
	// Format は出力形式: json または console（既定: json）
	Format string
	// Caller を有効にすると呼び出し元のファイルと行番号を出力する
	Caller bool
	// Output は出力先（既定: os.Stderr）
	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(Config{})
}

// Init はグローバルロガーを設定する。複数回呼び出した場合は再設定される
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.Caller {
		logger = logger.With().Caller().Logger()
	}
	log = logger
}

// parseLevel 文字列をzerologのレベルに変換する（不明な値はinfo）
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger グローバルロガーのコピーを取得
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// Ctx はコンテキストのリクエストIDを付与したロガーを返す
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id := RequestIDFromContext(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}
