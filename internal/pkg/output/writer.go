package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Поддерживаемые форматы вывода (GL_OUTPUT_FORMAT).
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatYAML = "yaml"
)

// Writer выводит Result команды glctl в одном из форматов.
type Writer interface {
	Write(w io.Writer, result *Result) error
}

// NewWriter выбирает Writer по формату без учёта регистра.
// Неизвестный формат даёт TextWriter; config.Validate отсекает его раньше.
func NewWriter(format string) Writer {
	switch strings.ToLower(format) {
	case FormatJSON:
		return NewJSONWriter()
	case FormatYAML, "yml":
		return NewYAMLWriter()
	default:
		return NewTextWriter()
	}
}

// ValidateFormat возвращает ошибку для формата, которого нет среди FormatJSON,
// FormatText, FormatYAML. Пустая строка означает формат по умолчанию.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON, FormatText, FormatYAML, "yml":
		return nil
	}
	return fmt.Errorf("неизвестный формат вывода %q (допустимо: json, text, yaml)", format)
}

// JSONWriter пишет Result одним JSON-документом с отступом в два пробела.
// HTML-символы в описаниях задач и merge request-ов не экранируются.
type JSONWriter struct{}

// NewJSONWriter создаёт JSONWriter.
func NewJSONWriter() *JSONWriter { return &JSONWriter{} }

func (j *JSONWriter) Write(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("не удалось сериализовать результат в JSON: %w", err)
	}
	return nil
}
