// Package main содержит точку входа glctl, консольного клиента GitLab API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/Kargones/glclient/internal/command/handlers"
	"github.com/Kargones/glclient/internal/config"
	"github.com/Kargones/glclient/internal/constants"
	"github.com/Kargones/glclient/internal/di"
	"github.com/Kargones/glclient/internal/pkg/tracing"
)

var registerOnce sync.Once

func main() {
	os.Exit(run(os.Args[1:]))
}

// run содержит основную логику приложения и возвращает exit code.
// os.Exit вызывается только в main, чтобы отработали defer-ы
// (cleanup логов и отправка span-ов).
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию: %v\n", err)
		return constants.ExitConfig
	}

	name, cmdArgs := splitCommand(args, cfg.Command)
	registerOnce.Do(handlers.RegisterAll)

	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось инициализировать приложение: %v\n", err)
		return constants.ExitConfig
	}
	defer cleanup()

	app.Logger.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit", constants.Commit),
		slog.Any("gitlab", cfg.GitLab),
	)

	ctx := tracing.WithTraceID(context.Background(), app.TraceID)
	return app.Runner.Run(ctx, name, cmdArgs)
}

// splitCommand выделяет имя команды: первый аргумент, если это не флаг,
// иначе GL_COMMAND, иначе help.
func splitCommand(args []string, fallback string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	if fallback != "" {
		return fallback, args
	}
	return constants.ActHelp, args
}
