package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// divider отделяет данные от сводки в текстовом выводе.
const divider = "──────────────────────────────────────────"

// TextWriter форматирует Result в человекочитаемый текст.
// Data выводится в YAML-подобном виде.
type TextWriter struct{}

// NewTextWriter создаёт новый TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write форматирует result в текст и записывает в w.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s: %s\n", result.Command, result.Status)

	if result.Error != nil {
		fmt.Fprintf(&b, "Ошибка [%s]: %s\n", result.Error.Code, result.Error.Message)
	}

	if result.Data != nil {
		plain, err := toPlain(result.Data)
		if err != nil {
			return err
		}
		body, err := yaml.Marshal(plain)
		if err != nil {
			return fmt.Errorf("не удалось отформатировать Data: %w", err)
		}
		b.WriteString(divider + "\n")
		b.Write(body)
		b.WriteString(divider + "\n")
	}

	if result.Page != nil {
		b.WriteString(formatPage(result.Page) + "\n")
	}

	if result.Metadata != nil && result.Status == StatusSuccess {
		fmt.Fprintf(&b, "Время выполнения: %s\n", formatDuration(result.Metadata.DurationMs))
	}

	_, err := w.Write(b.Bytes())
	return err
}

// formatPage описывает страницу списка, опуская неизвестные итоги.
func formatPage(p *PageInfo) string {
	parts := []string{fmt.Sprintf("Страница %d", p.Page)}
	if p.TotalPages > 0 {
		parts[0] += fmt.Sprintf(" из %d", p.TotalPages)
	}
	if p.Total > 0 {
		parts = append(parts, fmt.Sprintf("всего %d", p.Total))
	}
	if p.NextPage > 0 {
		parts = append(parts, fmt.Sprintf("следующая: --page %d", p.NextPage))
	}
	return strings.Join(parts, ", ")
}

// formatDuration форматирует длительность: миллисекунды, секунды или минуты.
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dмс", ms)
	}
	sec := ms / 1000
	if sec < 60 {
		return fmt.Sprintf("%.1fс", float64(ms)/1000)
	}
	return fmt.Sprintf("%dм %dс", sec/60, sec%60)
}
