package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Kargones/glclient/internal/pkg/urlutil"
)

// redacted заменяет значения секретных атрибутов.
const redacted = "***"

// secretKeys: ключи атрибутов, значения которых не попадают в лог.
var secretKeys = map[string]struct{}{
	"token":         {},
	"private_token": {},
	"password":      {},
	"authorization": {},
}

// NewLogger создаёт Logger с заданной конфигурацией и возвращает io.Closer
// для файла логов. Закрывать его нужно при завершении процесса.
//
// Поддерживаемые режимы вывода (config.Output):
//   - "stderr" или "": логи пишутся в os.Stderr
//   - "file": логи пишутся в файл с ротацией через lumberjack
func NewLogger(config Config) (Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	switch config.Output {
	case OutputFile:
		if lj := newLumberjackWriter(config); lj != nil {
			w, closer = lj, lj
		}
	case OutputStderr, "":
	default:
		_, _ = fmt.Fprintf(os.Stderr, "WARNING: неизвестный logging output %q, используется stderr\n", config.Output) //nolint:errcheck // bootstrap stderr
	}

	return NewLoggerWithWriter(config, w), closer
}

// newLumberjackWriter создаёт writer с ротацией. Создаёт директорию файла
// логов, при ошибке возвращает nil и вызывающий пишет в stderr.
func newLumberjackWriter(config Config) *lumberjack.Logger {
	if config.FilePath == "" {
		_, _ = os.Stderr.WriteString("WARNING: logging output=file без filePath, используется stderr\n") //nolint:errcheck // bootstrap stderr
		return nil
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "WARNING: не удалось создать директорию логов %q: %v\n", dir, err) //nolint:errcheck // bootstrap stderr
			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// NewLoggerWithWriter создаёт Logger с заданной конфигурацией и writer.
// Используется в тестах и там, где writer выбирает вызывающий.
func NewLoggerWithWriter(config Config, w io.Writer) *SlogAdapter {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(config.Level),
		ReplaceAttr: redactAttr,
	}
	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return NewSlogAdapter(slog.New(handler))
}

// redactAttr скрывает значения секретных атрибутов и учётные данные в URL.
func redactAttr(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	if _, ok := secretKeys[key]; ok {
		return slog.String(a.Key, redacted)
	}
	if a.Value.Kind() == slog.KindString && strings.HasSuffix(key, "url") {
		return slog.String(a.Key, urlutil.StripCredentials(a.Value.String()))
	}
	return a
}

// parseLevel конвертирует строковый уровень в slog.Level.
// При неизвестном значении возвращает slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
