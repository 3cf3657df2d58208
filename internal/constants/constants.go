// Package constants содержит константы glctl: имя приложения, имена команд
// и переменных окружения.
package constants

// AppName: имя исполняемого файла.
const AppName = "glctl"

// Имена команд.
const (
	// ActHelp - вывод списка команд
	ActHelp = "help"
	// ActVersion - вывод версии glctl и версии сервера GitLab
	ActVersion = "version"
	// ActLogin - получение private token по логину и паролю
	ActLogin = "login"
	// ActUserCurrent - текущий пользователь
	ActUserCurrent = "user-current"
	// ActProjectGet - проект по ID или пути
	ActProjectGet = "project-get"
	// ActProjectList - список проектов
	ActProjectList = "project-list"
	// ActBranchList - список веток проекта
	ActBranchList = "branch-list"
	// ActBranchCreate - создание ветки
	ActBranchCreate = "branch-create"
	// ActBranchDelete - удаление ветки
	ActBranchDelete = "branch-delete"
	// ActIssueList - список задач проекта
	ActIssueList = "issue-list"
	// ActIssueCreate - создание задачи
	ActIssueCreate = "issue-create"
	// ActMRList - список merge request-ов проекта
	ActMRList = "mr-list"
	// ActPipelineList - список pipeline-ов проекта
	ActPipelineList = "pipeline-list"
	// ActFileRaw - содержимое файла репозитория
	ActFileRaw = "file-raw"
)

// Переменные окружения.
const (
	EnvConfigPath   = "GL_CONFIG"
	EnvCommand      = "GL_COMMAND"
	EnvOutputFormat = "GL_OUTPUT_FORMAT"
	EnvBaseURL      = "GL_BASE_URL"
	EnvPrivateToken = "GL_PRIVATE_TOKEN"
	EnvPassword     = "GL_PASSWORD"
)

// Коды завершения процесса.
const (
	ExitOK         = 0
	ExitCommand    = 1
	ExitUsage      = 2
	ExitConfig     = 5
	ExitOutputFail = 6
)
