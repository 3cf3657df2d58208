// Package handlers явно регистрирует все обработчики команд glctl.
package handlers

import (
	"github.com/Kargones/glclient/internal/command/handlers/branches"
	"github.com/Kargones/glclient/internal/command/handlers/files"
	"github.com/Kargones/glclient/internal/command/handlers/help"
	"github.com/Kargones/glclient/internal/command/handlers/issues"
	"github.com/Kargones/glclient/internal/command/handlers/login"
	"github.com/Kargones/glclient/internal/command/handlers/mergerequests"
	"github.com/Kargones/glclient/internal/command/handlers/pipelines"
	"github.com/Kargones/glclient/internal/command/handlers/projects"
	"github.com/Kargones/glclient/internal/command/handlers/users"
	"github.com/Kargones/glclient/internal/command/handlers/version"
)

// RegisterAll регистрирует все обработчики в глобальном реестре.
// Вызывается один раз из main() до выполнения команды.
func RegisterAll() {
	help.RegisterCmd()
	version.RegisterCmd()
	login.RegisterCmd()
	users.RegisterCmd()
	projects.RegisterCmd()
	branches.RegisterCmd()
	issues.RegisterCmd()
	mergerequests.RegisterCmd()
	pipelines.RegisterCmd()
	files.RegisterCmd()
}
