package githubify

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger 全局日志记录器，默认只输出 warn 及以上
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// SetLogger 设置自定义日志记录器
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}
