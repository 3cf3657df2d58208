package logging

import (
	"fmt"
	"slices"
)

// Значения полей Config.
const (
	FormatJSON = "json"
	FormatText = "text"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	// OutputStderr оставляет stdout под вывод результатов команд.
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию, совпадают с env-default в internal/config.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/glctl.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // дней
	DefaultCompress   = true
)

var levels = []string{LevelDebug, LevelInfo, LevelWarn, LevelError}

// Config задаёт логирование glctl (переменные GL_LOG_*).
// Поля ротации используются только при Output = OutputFile и передаются
// в lumberjack.Logger.
type Config struct {
	Level  string
	Format string
	Output string

	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Validate проверяет значения перечислений и параметры файлового вывода.
// Пустые Level, Format и Output допустимы и означают значения по умолчанию.
func (c Config) Validate() error {
	if c.Level != "" && !slices.Contains(levels, c.Level) {
		return fmt.Errorf("неизвестный уровень логирования %q", c.Level)
	}
	if c.Format != "" && c.Format != FormatJSON && c.Format != FormatText {
		return fmt.Errorf("неизвестный формат логов %q", c.Format)
	}
	switch c.Output {
	case "", OutputStderr:
	case OutputFile:
		if c.FilePath == "" {
			return fmt.Errorf("для output=file требуется путь к файлу")
		}
		if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
			return fmt.Errorf("параметры ротации не могут быть отрицательными")
		}
	default:
		return fmt.Errorf("неизвестный вывод логов %q", c.Output)
	}
	return nil
}
