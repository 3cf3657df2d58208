//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/glclient/internal/config"
)

//go:generate go run -mod=mod github.com/google/wire/cmd/wire

// ProviderSet объединяет все провайдеры приложения.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideOutputWriter,
	ProvideTraceID,
	ProvideMetricsCollector,
	ProvideTracingProvider,
	ProvideGitLabClient,
	ProvideEnv,
	ProvideRunner,
	wire.Struct(new(App), "*"),
)

// InitializeApp строит App по загруженной конфигурации.
// Возвращаемая cleanup-функция закрывает файл логов и завершает
// TracerProvider; её нужно вызвать перед выходом из процесса.
//
// Wire генерирует реализацию этой функции в wire_gen.go.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
