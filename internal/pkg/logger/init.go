package logger

import (
	"Parchment/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"
)

// LogWriter 访问日志输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 初始化全局 slog，JSON 输出并注入 trace_id
func InitLogger(cfg config.LoggingConfig) {
	handler := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: ParseLevel(cfg.Level)})
	log.SetDefault(log.New(&ContextHandler{handler}))
}

// ParseLevel 将配置中的级别字符串转换为 slog.Level，未知值按 info 处理
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// truncate 截断过长的请求体/命令，避免日志膨胀
func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit] + "...[truncated]"
	}
	return s
}
