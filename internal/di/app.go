package di

import (
	"github.com/Kargones/glclient/internal/command"
	"github.com/Kargones/glclient/internal/config"
	"github.com/Kargones/glclient/internal/pkg/logging"
)

// App содержит инициализированные зависимости одного запуска glctl.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию, переданную в InitializeApp().
	Config *config.Config

	// Logger пишет структурированные логи согласно Config.Logging.
	Logger logging.Logger

	// TraceID коррелирует логи и span-ы одного запуска.
	TraceID string

	// Runner выполняет команды реестра с выводом, метриками и span-ами.
	Runner *command.Runner
}
