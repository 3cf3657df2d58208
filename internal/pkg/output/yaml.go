package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter форматирует Result в YAML.
type YAMLWriter struct{}

// NewYAMLWriter создаёт новый YAMLWriter.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// Write сериализует result в YAML и записывает в w.
// Data предварительно проходит через JSON, чтобы ключи совпадали
// с JSON-тегами моделей GitLab.
func (y *YAMLWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		_, err := io.WriteString(w, "null\n")
		return err
	}
	out := *result
	if out.Data != nil {
		plain, err := toPlain(out.Data)
		if err != nil {
			return err
		}
		out.Data = plain
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&out); err != nil {
		return fmt.Errorf("не удалось сериализовать результат в YAML: %w", err)
	}
	return encoder.Close()
}

// toPlain переводит значение в map/slice/скаляры через JSON.
func toPlain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать Data: %w", err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("не удалось разобрать Data: %w", err)
	}
	return plain, nil
}
